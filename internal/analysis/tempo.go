package analysis

import "github.com/seamusw/cubesolver/pkg/types"

// PauseInfo represents a pause between two tracked moves.
type PauseInfo struct {
	AfterMoveIndex int   `json:"after_move_index"`
	DurationMs     int64 `json:"duration_ms"`
	TsMs           int64 `json:"ts_ms"`
}

// AnalyzePauses finds all pauses of at least thresholdMs in a
// timestamped move sequence.
func AnalyzePauses(moves []types.Move, thresholdMs int64) []PauseInfo {
	var pauses []PauseInfo

	for i := 1; i < len(moves); i++ {
		gap := moves[i].Timestamp - moves[i-1].Timestamp
		if gap >= thresholdMs {
			pauses = append(pauses, PauseInfo{
				AfterMoveIndex: i - 1,
				DurationMs:     gap,
				TsMs:           moves[i-1].Timestamp,
			})
		}
	}

	return pauses
}

// CalculateTPS calculates turns per second for a move sequence.
func CalculateTPS(moves []types.Move, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(len(moves)) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration calculates the average time between moves.
func CalculateAvgMoveDuration(moves []types.Move) float64 {
	if len(moves) < 2 {
		return 0
	}

	totalGap := moves[len(moves)-1].Timestamp - moves[0].Timestamp
	return float64(totalGap) / float64(len(moves)-1)
}

// FindLongestPause finds the longest pause in a move sequence.
func FindLongestPause(moves []types.Move) int64 {
	var longest int64

	for i := 1; i < len(moves); i++ {
		gap := moves[i].Timestamp - moves[i-1].Timestamp
		if gap > longest {
			longest = gap
		}
	}

	return longest
}

// CountPausesOver counts pauses strictly over a threshold.
func CountPausesOver(moves []types.Move, thresholdMs int64) int {
	count := 0
	for i := 1; i < len(moves); i++ {
		gap := moves[i].Timestamp - moves[i-1].Timestamp
		if gap > thresholdMs {
			count++
		}
	}
	return count
}
