package persistence

import (
	"time"
)

// RunModel represents the runs table: one row per replayed batch of operations
type RunModel struct {
	ID         string    `gorm:"column:id;primaryKey;not null"`
	Label      string    `gorm:"column:label"`
	Operations int       `gorm:"column:operations;not null;default:0"`
	Succeeded  int       `gorm:"column:succeeded;not null;default:0"`
	Failed     int       `gorm:"column:failed;not null;default:0"`
	Ignored    int       `gorm:"column:ignored;not null;default:0"`
	StartedAt  time.Time `gorm:"column:started_at;not null"`
	FinishedAt time.Time `gorm:"column:finished_at;not null"`
}

func (RunModel) TableName() string {
	return "runs"
}

// OperationLogModel represents the operation_logs table
type OperationLogModel struct {
	ID        int       `gorm:"column:id;primaryKey;autoIncrement"`
	RunID     string    `gorm:"column:run_id;not null;index"`
	Timestamp time.Time `gorm:"column:timestamp;not null"`
	Level     string    `gorm:"column:level;not null;default:'INFO'"`
	Message   string    `gorm:"column:message;type:text;not null"`
	Metadata  string    `gorm:"column:metadata;type:text"` // JSON as text
}

func (OperationLogModel) TableName() string {
	return "operation_logs"
}
