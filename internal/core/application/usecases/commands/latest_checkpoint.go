package commands

import "tracking/internal/core/domain/model/checkpoint"

// latestCheckpoint picks the checkpoint with the maximum timestamp from a
// slice in insertion order. On equal timestamps the later-inserted checkpoint
// wins, so the result is stable for callers that wrote two observations with
// the same timestamp. Returns nil for an empty slice.
func latestCheckpoint(checkpoints []*checkpoint.Checkpoint) *checkpoint.Checkpoint {
	var latest *checkpoint.Checkpoint
	for _, cp := range checkpoints {
		if latest == nil || !cp.Timestamp().Before(latest.Timestamp()) {
			latest = cp
		}
	}
	return latest
}
