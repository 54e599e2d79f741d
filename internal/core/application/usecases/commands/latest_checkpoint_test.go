package commands

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/checkpoint"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCheckpoint(t *testing.T, id int64, ts time.Time) *checkpoint.Checkpoint {
	t.Helper()
	cp, err := checkpoint.RestoreCheckpoint(
		kernel.ID(id), kernel.ID(1), ts, "", "scan", trackedorder.Processing)
	require.NoError(t, err)
	return cp
}

func TestLatestCheckpoint_EmptySlice_ReturnsNil(t *testing.T) {
	assert.Nil(t, latestCheckpoint(nil))
	assert.Nil(t, latestCheckpoint([]*checkpoint.Checkpoint{}))
}

func TestLatestCheckpoint_MaxTimestampWins(t *testing.T) {
	base := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	cps := []*checkpoint.Checkpoint{
		makeCheckpoint(t, 1, base.Add(2*time.Hour)),
		makeCheckpoint(t, 2, base.Add(5*time.Hour)),
		makeCheckpoint(t, 3, base),
	}

	last := latestCheckpoint(cps)
	require.NotNil(t, last)
	assert.Equal(t, kernel.ID(2), last.ID())
}

func TestLatestCheckpoint_TiedTimestamps_LaterInsertedWins(t *testing.T) {
	ts := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	cps := []*checkpoint.Checkpoint{
		makeCheckpoint(t, 1, ts),
		makeCheckpoint(t, 2, ts),
		makeCheckpoint(t, 3, ts.Add(-time.Hour)),
	}

	last := latestCheckpoint(cps)
	require.NotNil(t, last)
	assert.Equal(t, kernel.ID(2), last.ID())
}
