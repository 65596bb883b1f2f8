package logistics

import (
	"context"
	"fmt"

	"github.com/andrescamacho/portlogistics-go/internal/application/common"
	"github.com/andrescamacho/portlogistics-go/internal/application/mediator"
	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
	"github.com/andrescamacho/portlogistics-go/pkg/utils"
)

// ProcessOperationsCommand replays a list of operation lines against the engine
type ProcessOperationsCommand struct {
	Operations []string
	Label      string // optional, used to build the run ID
	RunID      string // optional, generated when empty
}

// ProcessOperationsResponse carries the run ID and the per-operation report
type ProcessOperationsResponse struct {
	RunID  string
	Report *RunReport
}

// ProcessOperationsHandler executes ProcessOperationsCommand
type ProcessOperationsHandler struct {
	engine  *OperationEngine
	journal RunJournal
	pacer   Pacer
	clock   shared.Clock
}

// NewProcessOperationsHandler creates a new handler.
// journal and pacer are optional; a nil clock means the real clock.
func NewProcessOperationsHandler(engine *OperationEngine, journal RunJournal, pacer Pacer, clock shared.Clock) *ProcessOperationsHandler {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &ProcessOperationsHandler{
		engine:  engine,
		journal: journal,
		pacer:   pacer,
		clock:   clock,
	}
}

// Handle runs every operation in order. A pacing wait aborted by the context
// stops the run; the partial report is journaled and returned with the error.
func (h *ProcessOperationsHandler) Handle(ctx context.Context, request mediator.Request) (mediator.Response, error) {
	cmd, ok := request.(*ProcessOperationsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	startedAt := h.clock.Now()
	runID := cmd.RunID
	if runID == "" {
		runID = utils.GenerateRunID(cmd.Label, startedAt)
	}

	logger := common.LoggerFromContext(ctx)
	logger.Log(common.LevelInfo, fmt.Sprintf("Processing %d operations", len(cmd.Operations)), map[string]interface{}{
		"run_id": runID,
	})

	var pace func(ctx context.Context, index int) error
	if h.pacer != nil {
		pace = func(ctx context.Context, index int) error {
			if err := h.pacer.Wait(ctx); err != nil {
				return fmt.Errorf("run %s stopped before operation %d: %w", runID, index, err)
			}
			return nil
		}
	}
	report, runErr := h.engine.process(ctx, cmd.Operations, pace)

	// An interrupted run is still journaled
	ctx = context.WithoutCancel(ctx)

	logger.Log(common.LevelInfo, fmt.Sprintf("Run finished: %d succeeded, %d failed, %d ignored", report.Succeeded, report.Failed, report.Ignored), map[string]interface{}{
		"run_id": runID,
	})

	if h.journal != nil {
		summary := RunSummary{
			RunID:      runID,
			Label:      cmd.Label,
			Operations: len(report.Results),
			Succeeded:  report.Succeeded,
			Failed:     report.Failed,
			Ignored:    report.Ignored,
			StartedAt:  startedAt,
			FinishedAt: h.clock.Now(),
		}
		if err := h.journal.RecordRun(ctx, summary); err != nil {
			logger.Log(common.LevelWarn, fmt.Sprintf("failed to record run: %v", err), map[string]interface{}{
				"run_id": runID,
			})
		}
	}

	return &ProcessOperationsResponse{RunID: runID, Report: report}, runErr
}

// RegisterHandlers wires the logistics handlers into a mediator
func RegisterHandlers(m mediator.Mediator, handler *ProcessOperationsHandler) error {
	return mediator.RegisterHandler[*ProcessOperationsCommand](m, handler)
}
