package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/portlogistics-go/internal/adapters/memory"
	"github.com/andrescamacho/portlogistics-go/internal/adapters/metrics"
	"github.com/andrescamacho/portlogistics-go/internal/adapters/persistence"
	"github.com/andrescamacho/portlogistics-go/internal/adapters/scenario"
	"github.com/andrescamacho/portlogistics-go/internal/application/common"
	"github.com/andrescamacho/portlogistics-go/internal/application/logistics"
	"github.com/andrescamacho/portlogistics-go/internal/application/mediator"
	"github.com/andrescamacho/portlogistics-go/internal/infrastructure/config"
	"github.com/andrescamacho/portlogistics-go/internal/infrastructure/database"
	"github.com/andrescamacho/portlogistics-go/pkg/utils"
)

// runOptions holds the flags of the run command
type runOptions struct {
	scenarioPath    string
	opsPath         string
	label           string
	enableUnload    bool
	enforceCapacity bool
	rate            float64
	metricsDump     bool
}

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay operations against a scenario",
		Long: `Build the ports and vessels described by a scenario file and replay
operations against them in order. Operations come from the scenario's
"operations" list, or from --ops (one per line, '#' comments allowed,
"-" reads stdin).

Unrecognized lines are ignored. Malformed lines and unknown names are
reported and the run continues with the next operation.

Examples:
  portlogistics run --scenario harbor.yaml
  portlogistics run --scenario harbor.yaml --ops operations.txt
  portlogistics run --scenario harbor.yaml --enable-unload --enforce-capacity
  portlogistics run --scenario harbor.yaml --rate 2 --metrics-dump`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			applyRunFlags(cmd, cfg, opts)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return executeRun(ctx, cmd.OutOrStdout(), cmd.InOrStdin(), cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.scenarioPath, "scenario", "", "Scenario file with ports, vessels and operations (yaml, json, toml)")
	cmd.Flags().StringVar(&opts.opsPath, "ops", "", "Operations file, one command per line (\"-\" for stdin)")
	cmd.Flags().StringVar(&opts.label, "label", "", "Run label used in the run ID (default: scenario file name)")
	cmd.Flags().BoolVar(&opts.enableUnload, "enable-unload", false, "Accept UNLOAD <vessel> TO <port>")
	cmd.Flags().BoolVar(&opts.enforceCapacity, "enforce-capacity", false, "Reject loads that exceed vessel weight capacity")
	cmd.Flags().Float64Var(&opts.rate, "rate", 0, "Operations per second (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.metricsDump, "metrics-dump", false, "Print collected metrics after the run")
	cmd.MarkFlagRequired("scenario")

	return cmd
}

// applyRunFlags lets explicitly set flags override the loaded configuration
func applyRunFlags(cmd *cobra.Command, cfg *config.Config, opts *runOptions) {
	if cmd.Flags().Changed("enable-unload") {
		cfg.Engine.EnableUnload = opts.enableUnload
	}
	if cmd.Flags().Changed("enforce-capacity") {
		cfg.Engine.EnforceCapacity = opts.enforceCapacity
	}
	if cmd.Flags().Changed("rate") {
		cfg.Engine.OperationsPerSecond = opts.rate
	}
	if opts.metricsDump {
		cfg.Metrics.Enabled = true
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
}

func executeRun(ctx context.Context, out io.Writer, in io.Reader, cfg *config.Config, opts *runOptions) error {
	if cfg.Engine.OperationsPerSecond < 0 {
		return fmt.Errorf("--rate cannot be negative")
	}

	s, err := scenario.Load(opts.scenarioPath)
	if err != nil {
		return err
	}

	operations := s.Operations
	if opts.opsPath != "" {
		operations, err = readOperationsFile(opts.opsPath, in)
		if err != nil {
			return err
		}
	}

	engine := logistics.NewOperationEngine(memory.NewPortRegistry(), memory.NewVesselRegistry(), logistics.EngineOptions{
		EnableUnload:    cfg.Engine.EnableUnload,
		EnforceCapacity: cfg.Engine.EnforceCapacity,
	})
	if err := s.Build(engine); err != nil {
		return fmt.Errorf("failed to build scenario: %w", err)
	}

	var commandCollector *metrics.CommandMetricsCollector
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
		defer metrics.ResetRegistry()

		operationCollector := metrics.NewOperationMetricsCollector()
		if err := operationCollector.Register(); err != nil {
			return fmt.Errorf("failed to register operation metrics: %w", err)
		}
		metrics.SetGlobalOperationCollector(operationCollector)

		commandCollector = metrics.NewCommandMetricsCollector()
		if err := commandCollector.Register(); err != nil {
			return fmt.Errorf("failed to register command metrics: %w", err)
		}
	}

	label := opts.label
	if label == "" {
		label = strings.TrimSuffix(filepath.Base(opts.scenarioPath), filepath.Ext(opts.scenarioPath))
	}
	runID := utils.GenerateRunID(label, time.Now())

	logWriter, closeLog, err := logOutput(&cfg.Logging, out)
	if err != nil {
		return err
	}
	defer closeLog()

	loggers := common.MultiLogger{NewConsoleLogger(logWriter, cfg.Logging.Level, cfg.Logging.Format, nil)}

	var journal logistics.RunJournal
	if cfg.Database.Enabled {
		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer database.Close(db)

		journal = persistence.NewGormRunRepository(db)
		if cfg.Logging.Persist {
			logRepo := persistence.NewGormOperationLogRepository(db, nil)
			loggers = append(loggers, persistence.NewRunLogger(ctx, logRepo, runID))
		}
	}

	var pacer logistics.Pacer
	if cfg.Engine.OperationsPerSecond > 0 {
		pacer = rate.NewLimiter(rate.Limit(cfg.Engine.OperationsPerSecond), 1)
	}

	m := mediator.NewMediator()
	m.Use(metrics.PrometheusMiddleware(commandCollector))
	if err := logistics.RegisterHandlers(m, logistics.NewProcessOperationsHandler(engine, journal, pacer, nil)); err != nil {
		return fmt.Errorf("failed to register handlers: %w", err)
	}

	ctx = common.WithLogger(ctx, loggers)
	resp, runErr := m.Send(ctx, &logistics.ProcessOperationsCommand{
		Operations: operations,
		Label:      label,
		RunID:      runID,
	})
	if resp == nil {
		return runErr
	}

	result, ok := resp.(*logistics.ProcessOperationsResponse)
	if !ok {
		return fmt.Errorf("unexpected response type %T", resp)
	}

	printReport(out, result)
	printState(out, engine)

	if opts.metricsDump {
		if err := writeMetrics(out); err != nil {
			return err
		}
	}

	return runErr
}

func readOperationsFile(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		return scenario.ReadOperations(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open operations file: %w", err)
	}
	defer f.Close()

	return scenario.ReadOperations(f)
}

// printReport displays one row per operation
func printReport(out io.Writer, resp *logistics.ProcessOperationsResponse) {
	report := resp.Report

	fmt.Fprintf(out, "\nRun %s\n", resp.RunID)
	fmt.Fprintf(out, "%-4s %-10s %-44s %s\n", "#", "STATUS", "OPERATION", "DETAIL")
	fmt.Fprintln(out, "─────────────────────────────────────────────────────────────────────────────────")

	for _, r := range report.Results {
		fmt.Fprintf(out, "%-4d %-10s %-44s %s\n",
			r.Index+1,
			r.Status,
			truncate(strings.TrimSpace(r.Operation), 44),
			resultDetail(r),
		)
	}

	fmt.Fprintf(out, "\nTotal: %d operations (%d succeeded, %d failed, %d ignored)\n",
		len(report.Results), report.Succeeded, report.Failed, report.Ignored)
}

func resultDetail(r logistics.OperationResult) string {
	switch r.Status {
	case logistics.StatusSucceeded:
		return fmt.Sprintf("loaded %d, delivered %d (%g)", r.ItemsLoaded, r.ItemsDelivered, r.WeightDelivered)
	case logistics.StatusFailed:
		return r.Err.Error()
	default:
		return "-"
	}
}

// printState displays where every item ended up
func printState(out io.Writer, engine *logistics.OperationEngine) {
	fmt.Fprintln(out, "\nPorts:")
	fmt.Fprintf(out, "  %-20s %-8s %s\n", "NAME", "ITEMS", "WEIGHT")
	for _, p := range engine.Ports() {
		fmt.Fprintf(out, "  %-20s %-8d %g\n", truncate(p.Name(), 20), len(p.Inventory()), p.InventoryWeight())
	}

	fmt.Fprintln(out, "\nVessels:")
	fmt.Fprintf(out, "  %-20s %-12s %-8s %-8s %s\n", "NAME", "CLASS", "ITEMS", "FUEL", "WEIGHT/CAPACITY")
	for _, v := range engine.Vessels() {
		fmt.Fprintf(out, "  %-20s %-12s %-8d %-8s %g/%g\n",
			truncate(v.Name(), 20), v.Class(), len(v.Manifest()),
			fmt.Sprintf("%.0f%%", v.Fuel().Percentage()),
			v.ManifestWeight(), v.WeightCapacity())
	}
}
