package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/portlogistics-go/internal/adapters/persistence"
	"github.com/andrescamacho/portlogistics-go/internal/infrastructure/config"
	"github.com/andrescamacho/portlogistics-go/internal/infrastructure/database"
)

// NewRunsCommand creates the runs command with subcommands
func NewRunsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect journaled runs",
		Long:  `Inspect runs recorded in the journal database (requires database.enabled).`,
	}

	cmd.AddCommand(newRunsListCommand())
	cmd.AddCommand(newRunsLogsCommand())

	return cmd
}

// newRunsListCommand lists recent runs
func newRunsListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
			defer cancel()

			runs, err := persistence.NewGormRunRepository(db).ListRecent(ctx, limit)
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs found")
				return nil
			}

			fmt.Fprintf(out, "%-36s %-6s %-6s %-8s %-8s %s\n",
				"RUN ID", "OPS", "OK", "FAILED", "IGNORED", "STARTED")
			fmt.Fprintln(out, "─────────────────────────────────────────────────────────────────────────────────")

			for _, r := range runs {
				fmt.Fprintf(out, "%-36s %-6d %-6d %-8d %-8d %s\n",
					truncate(r.RunID, 36),
					r.Operations,
					r.Succeeded,
					r.Failed,
					r.Ignored,
					r.StartedAt.Format("2006-01-02 15:04:05"),
				)
			}

			fmt.Fprintf(out, "\nTotal: %d runs\n", len(runs))

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs")

	return cmd
}

// newRunsLogsCommand retrieves persisted run logs
func newRunsLogsCommand() *cobra.Command {
	var (
		limit int
		level string
	)

	cmd := &cobra.Command{
		Use:   "logs <run-id>",
		Short: "Get logs from a run",
		Long: `Retrieve the persisted log of a run (requires logging.persist).

Examples:
  portlogistics runs logs harbor-20240301-0a1b2c3d
  portlogistics runs logs harbor-20240301-0a1b2c3d --level ERROR`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := args[0]
			out := cmd.OutOrStdout()

			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer database.Close(db)

			var levelPtr *string
			if level != "" {
				levelPtr = &level
			}

			logs, err := persistence.NewGormOperationLogRepository(db, nil).GetLogs(cmd.Context(), runID, levelPtr, limit)
			if err != nil {
				return fmt.Errorf("failed to get logs: %w", err)
			}

			if len(logs) == 0 {
				fmt.Fprintln(out, "No logs found for run:", runID)
				return nil
			}

			for _, log := range logs {
				fmt.Fprintf(out, "[%s] [%s] %s\n",
					log.Timestamp.Format("2006-01-02 15:04:05"),
					log.Level,
					log.Message,
				)
			}

			fmt.Fprintf(out, "\nTotal: %d log entries\n", len(logs))

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of log entries (0 = all)")
	cmd.Flags().StringVar(&level, "level", "", "Filter by log level (INFO, WARNING, ERROR, DEBUG)")

	return cmd
}
