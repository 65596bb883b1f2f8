package persistence

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/andrescamacho/portlogistics-go/internal/application/common"
	"github.com/andrescamacho/portlogistics-go/internal/domain/shared"
)

// OperationLogEntry represents a persisted log entry
type OperationLogEntry struct {
	ID        int
	RunID     string
	Timestamp time.Time
	Level     string
	Message   string
	Metadata  map[string]interface{}
}

// GormOperationLogRepository persists operation notifications per run
type GormOperationLogRepository struct {
	db    *gorm.DB
	clock shared.Clock
}

// NewGormOperationLogRepository creates a new operation log repository
// If clock is nil, uses RealClock (production behavior)
func NewGormOperationLogRepository(db *gorm.DB, clock shared.Clock) *GormOperationLogRepository {
	if clock == nil {
		clock = shared.NewRealClock()
	}
	return &GormOperationLogRepository{db: db, clock: clock}
}

// Log writes a log entry for a run
func (r *GormOperationLogRepository) Log(ctx context.Context, runID, level, message string, metadata map[string]interface{}) error {
	var metadataJSON string
	if len(metadata) > 0 {
		if bytes, err := json.Marshal(metadata); err == nil {
			metadataJSON = string(bytes)
		}
	}

	entry := &OperationLogModel{
		RunID:     runID,
		Timestamp: r.clock.Now(),
		Level:     level,
		Message:   message,
		Metadata:  metadataJSON,
	}

	return r.db.WithContext(ctx).Create(entry).Error
}

// GetLogs returns a run's entries in write order, optionally filtered by level
func (r *GormOperationLogRepository) GetLogs(ctx context.Context, runID string, level *string, limit int) ([]OperationLogEntry, error) {
	var models []OperationLogModel

	query := r.db.WithContext(ctx).Where("run_id = ?", runID)
	if level != nil {
		query = query.Where("level = ?", *level)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Order("id ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	entries := make([]OperationLogEntry, len(models))
	for i, model := range models {
		var metadata map[string]interface{}
		if model.Metadata != "" {
			if err := json.Unmarshal([]byte(model.Metadata), &metadata); err != nil {
				metadata = nil
			}
		}

		entries[i] = OperationLogEntry{
			ID:        model.ID,
			RunID:     model.RunID,
			Timestamp: model.Timestamp,
			Level:     model.Level,
			Message:   model.Message,
			Metadata:  metadata,
		}
	}

	return entries, nil
}

// RunLogger binds the repository to a single run so it satisfies common.OperationLogger.
// Write failures are dropped; logging never interrupts an operation.
type RunLogger struct {
	repo  *GormOperationLogRepository
	runID string
	ctx   context.Context
}

// NewRunLogger creates a logger that writes every entry under runID.
// Cancelling ctx does not stop writes, so an interrupted run keeps its closing entries.
func NewRunLogger(ctx context.Context, repo *GormOperationLogRepository, runID string) *RunLogger {
	return &RunLogger{repo: repo, runID: runID, ctx: context.WithoutCancel(ctx)}
}

func (l *RunLogger) Log(level, message string, metadata map[string]interface{}) {
	_ = l.repo.Log(l.ctx, l.runID, level, message, metadata)
}

// Compile-time interface check
var _ common.OperationLogger = (*RunLogger)(nil)
