package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/portlogistics-go/internal/application/common"
	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
)

func TestConsoleLogger_TextPrintsBareMessage(t *testing.T) {
	var out bytes.Buffer
	logger := NewConsoleLogger(&out, "info", "text", nil)

	logger.Log(common.LevelInfo, "Moving Ship1 from A to B", map[string]interface{}{"vessel": "Ship1"})
	logger.Log(common.LevelError, "Error: bad", nil)

	assert.Equal(t, "Moving Ship1 from A to B\nError: bad\n", out.String())
}

func TestConsoleLogger_FiltersBelowLevel(t *testing.T) {
	var out bytes.Buffer
	logger := NewConsoleLogger(&out, "warn", "text", nil)

	logger.Log(common.LevelDebug, "debug", nil)
	logger.Log(common.LevelInfo, "info", nil)
	logger.Log(common.LevelWarn, "warn", nil)
	logger.Log(common.LevelError, "error", nil)

	assert.Equal(t, "warn\nerror\n", out.String())
}

func TestConsoleLogger_JSONLines(t *testing.T) {
	var out bytes.Buffer
	clock := shared.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	logger := NewConsoleLogger(&out, "debug", "json", clock)

	logger.Log(common.LevelInfo, "Ship1 is sailing to B", map[string]interface{}{"vessel": "Ship1"})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "Ship1 is sailing to B", entry["message"])
	assert.Equal(t, "Ship1", entry["vessel"])
	assert.Equal(t, "2024-03-01T12:00:00.000Z", entry["time"])
}

func TestConsoleLogger_UnknownLevelDefaultsToInfo(t *testing.T) {
	var out bytes.Buffer
	logger := NewConsoleLogger(&out, "chatty", "text", nil)

	logger.Log(common.LevelDebug, "hidden", nil)
	logger.Log(common.LevelInfo, "shown", nil)

	assert.Equal(t, "shown\n", out.String())
}
