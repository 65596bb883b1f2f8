package logistics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/andrescamacho/portlogistics-go/internal/adapters/persistence"
	"github.com/andrescamacho/portlogistics-go/internal/application/common"
	"github.com/andrescamacho/portlogistics-go/internal/application/logistics"
	"github.com/andrescamacho/portlogistics-go/test/helpers"
)

func TestProcessOperationsHandler_InterruptedRunIsRecorded(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	f := newFixture(t, logistics.EngineOptions{})
	journal := persistence.NewGormRunRepository(db)
	pacer := rate.NewLimiter(rate.Limit(1), 1)
	handler := logistics.NewProcessOperationsHandler(f.engine, journal, pacer, nil)

	ctx, cancel := context.WithCancel(f.ctx)
	cancel()

	// Act
	_, err := handler.Handle(ctx, &logistics.ProcessOperationsCommand{
		Operations: []string{"LOAD Ship1 FROM PortA TO PortB"},
		RunID:      "interrupted-run",
	})

	// Assert
	require.ErrorIs(t, err, context.Canceled)

	summary, err := journal.FindByID(context.Background(), "interrupted-run")
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Operations)
}

func TestProcessOperationsHandler_InterruptedRunKeepsClosingLog(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	f := newFixture(t, logistics.EngineOptions{})
	logRepo := persistence.NewGormOperationLogRepository(db, nil)
	handler := logistics.NewProcessOperationsHandler(f.engine, nil, rate.NewLimiter(rate.Limit(1), 1), nil)

	ctx, cancel := context.WithCancel(context.Background())
	ctx = common.WithLogger(ctx, persistence.NewRunLogger(ctx, logRepo, "interrupted-run"))
	cancel()

	// Act
	_, err := handler.Handle(ctx, &logistics.ProcessOperationsCommand{
		Operations: []string{"LOAD Ship1 FROM PortA TO PortB"},
		RunID:      "interrupted-run",
	})

	// Assert
	require.Error(t, err)
	entries, err := logRepo.GetLogs(context.Background(), "interrupted-run", nil, 0)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "Run finished: 0 succeeded, 0 failed, 0 ignored", entries[len(entries)-1].Message)
}
