package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/portlogistics-go/internal/adapters/persistence"
	"github.com/andrescamacho/portlogistics-go/internal/application/logistics"
	"github.com/andrescamacho/portlogistics-go/test/helpers"
)

func TestRunRepository_RecordAndFind(t *testing.T) {
	// Arrange
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	summary := logistics.RunSummary{
		RunID:      "harbor-20240301-0a1b2c3d",
		Label:      "harbor",
		Operations: 3,
		Succeeded:  2,
		Failed:     1,
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
	}

	// Act
	err := repo.RecordRun(context.Background(), summary)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), summary.RunID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, summary.RunID, found.RunID)
	assert.Equal(t, "harbor", found.Label)
	assert.Equal(t, 3, found.Operations)
	assert.Equal(t, 2, found.Succeeded)
	assert.Equal(t, 1, found.Failed)
	assert.Equal(t, 0, found.Ignored)
	assert.True(t, found.StartedAt.Equal(started))
}

func TestRunRepository_RecordRunTwiceUpdates(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)
	ctx := context.Background()

	summary := logistics.RunSummary{RunID: "run-1", Operations: 1, Succeeded: 1, StartedAt: time.Now(), FinishedAt: time.Now()}
	require.NoError(t, repo.RecordRun(ctx, summary))

	summary.Operations = 2
	summary.Ignored = 1
	require.NoError(t, repo.RecordRun(ctx, summary))

	found, err := repo.FindByID(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 2, found.Operations)
	assert.Equal(t, 1, found.Ignored)

	var count int64
	db.Model(&persistence.RunModel{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRunRepository_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)

	_, err := repo.FindByID(context.Background(), "missing")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "run not found")
}

func TestRunRepository_ListRecentNewestFirst(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormRunRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		at := base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, repo.RecordRun(ctx, logistics.RunSummary{RunID: id, StartedAt: at, FinishedAt: at}))
	}

	runs, err := repo.ListRecent(ctx, 2)

	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "third", runs[0].RunID)
	assert.Equal(t, "second", runs[1].RunID)
}
