package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/portlogistics-go/internal/application/logistics"
)

// GormRunRepository implements logistics.RunJournal using GORM
type GormRunRepository struct {
	db *gorm.DB
}

// NewGormRunRepository creates a new GORM run repository
func NewGormRunRepository(db *gorm.DB) *GormRunRepository {
	return &GormRunRepository{db: db}
}

// RecordRun persists a run summary (upsert on run ID)
func (r *GormRunRepository) RecordRun(ctx context.Context, summary logistics.RunSummary) error {
	model := &RunModel{
		ID:         summary.RunID,
		Label:      summary.Label,
		Operations: summary.Operations,
		Succeeded:  summary.Succeeded,
		Failed:     summary.Failed,
		Ignored:    summary.Ignored,
		StartedAt:  summary.StartedAt,
		FinishedAt: summary.FinishedAt,
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// FindByID retrieves a run summary by run ID
func (r *GormRunRepository) FindByID(ctx context.Context, runID string) (*logistics.RunSummary, error) {
	var model RunModel
	result := r.db.WithContext(ctx).Where("id = ?", runID).First(&model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("run not found: %s", runID)
		}
		return nil, fmt.Errorf("failed to find run: %w", result.Error)
	}

	summary := modelToSummary(&model)
	return &summary, nil
}

// ListRecent returns the most recently started runs first
func (r *GormRunRepository) ListRecent(ctx context.Context, limit int) ([]logistics.RunSummary, error) {
	var models []RunModel
	if err := r.db.WithContext(ctx).Order("started_at DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	summaries := make([]logistics.RunSummary, 0, len(models))
	for i := range models {
		summaries = append(summaries, modelToSummary(&models[i]))
	}
	return summaries, nil
}

func modelToSummary(model *RunModel) logistics.RunSummary {
	return logistics.RunSummary{
		RunID:      model.ID,
		Label:      model.Label,
		Operations: model.Operations,
		Succeeded:  model.Succeeded,
		Failed:     model.Failed,
		Ignored:    model.Ignored,
		StartedAt:  model.StartedAt,
		FinishedAt: model.FinishedAt,
	}
}

// Compile-time interface check
var _ logistics.RunJournal = (*GormRunRepository)(nil)
