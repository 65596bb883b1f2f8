package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	dto "github.com/prometheus/client_model/go"
	"gorm.io/gorm"

	"github.com/andrescamacho/portlogistics-go/internal/adapters/metrics"
	"github.com/andrescamacho/portlogistics-go/internal/infrastructure/config"
	"github.com/andrescamacho/portlogistics-go/internal/infrastructure/database"
)

// openDatabase connects to the journal database and migrates its tables
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// logOutput resolves logging.output to a writer. The returned close func is never nil.
func logOutput(cfg *config.LoggingConfig, stdout io.Writer) (io.Writer, func(), error) {
	switch cfg.Output {
	case "stderr":
		return os.Stderr, func() {}, nil
	case "file":
		f, err := os.OpenFile(cfg.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	default:
		return stdout, func() {}, nil
	}
}

// writeMetrics prints every gathered sample as "name{labels} value"
func writeMetrics(out io.Writer) error {
	registry := metrics.GetRegistry()
	if registry == nil {
		return nil
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	fmt.Fprintln(out, "\nMetrics:")
	for _, family := range families {
		writeFamily(out, family)
	}

	return nil
}

func writeFamily(out io.Writer, family *dto.MetricFamily) {
	for _, m := range family.GetMetric() {
		labels := make([]string, 0, len(m.GetLabel()))
		for _, pair := range m.GetLabel() {
			labels = append(labels, fmt.Sprintf("%s=%q", pair.GetName(), pair.GetValue()))
		}

		name := family.GetName()
		if len(labels) > 0 {
			name = fmt.Sprintf("%s{%s}", name, strings.Join(labels, ","))
		}

		switch {
		case m.GetCounter() != nil:
			fmt.Fprintf(out, "  %s %g\n", name, m.GetCounter().GetValue())
		case m.GetGauge() != nil:
			fmt.Fprintf(out, "  %s %g\n", name, m.GetGauge().GetValue())
		case m.GetHistogram() != nil:
			fmt.Fprintf(out, "  %s_count %d\n", name, m.GetHistogram().GetSampleCount())
		}
	}
}

// truncate shortens s to maxLen runes, marking the cut with "..."
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
