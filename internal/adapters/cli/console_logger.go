package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/andrescamacho/portlogistics-go/internal/application/common"
	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
)

var levelRank = map[string]int{
	common.LevelDebug: 0,
	common.LevelInfo:  1,
	common.LevelWarn:  2,
	common.LevelError: 3,
}

// configLevels maps logging.level values onto logger levels
var configLevels = map[string]string{
	"debug": common.LevelDebug,
	"info":  common.LevelInfo,
	"warn":  common.LevelWarn,
	"error": common.LevelError,
}

// ConsoleLogger writes operation notifications to a terminal.
// Text format prints the bare message; JSON format prints one object per line.
type ConsoleLogger struct {
	mu       sync.Mutex
	out      io.Writer
	minLevel string
	json     bool
	clock    shared.Clock
}

// NewConsoleLogger creates a console logger for the configured level and format
func NewConsoleLogger(out io.Writer, level, format string, clock shared.Clock) *ConsoleLogger {
	minLevel, ok := configLevels[strings.ToLower(level)]
	if !ok {
		minLevel = common.LevelInfo
	}
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &ConsoleLogger{
		out:      out,
		minLevel: minLevel,
		json:     format == "json",
		clock:    clock,
	}
}

func (l *ConsoleLogger) Log(level, message string, metadata map[string]interface{}) {
	if levelRank[level] < levelRank[l.minLevel] {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.json {
		fmt.Fprintln(l.out, message)
		return
	}

	entry := make(map[string]interface{}, len(metadata)+3)
	for k, v := range metadata {
		entry[k] = v
	}
	entry["time"] = l.clock.Now().Format("2006-01-02T15:04:05.000Z07:00")
	entry["level"] = level
	entry["message"] = message

	bytes, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintln(l.out, message)
		return
	}
	fmt.Fprintln(l.out, string(bytes))
}

// Compile-time interface check
var _ common.OperationLogger = (*ConsoleLogger)(nil)
