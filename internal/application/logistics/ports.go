package logistics

import (
	"context"
	"time"
)

// RunSummary is the journal entry written once per processed batch
type RunSummary struct {
	RunID      string
	Label      string
	Operations int
	Succeeded  int
	Failed     int
	Ignored    int
	StartedAt  time.Time
	FinishedAt time.Time
}

// RunJournal records run summaries. It never stores ports, vessels or cargo.
type RunJournal interface {
	RecordRun(ctx context.Context, summary RunSummary) error
}

// Pacer spaces operations out during a replay
type Pacer interface {
	Wait(ctx context.Context) error
}
