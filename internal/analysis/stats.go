// Package analysis computes statistics over solver results and
// recorded move sequences.
package analysis

import (
	"github.com/seamusw/cubesolver/internal/solver"
	"github.com/seamusw/cubesolver/pkg/types"
)

// BatchSummary aggregates statistics for a batch of solves.
type BatchSummary struct {
	Solves             int     `json:"solves"`
	TotalMoves         int     `json:"total_moves"`
	MinMoves           int     `json:"min_moves"`
	MaxMoves           int     `json:"max_moves"`
	AvgMoves           float64 `json:"avg_moves"`
	AvgIterations      float64 `json:"avg_iterations"`
	TotalNodesExpanded uint64  `json:"total_nodes_expanded"`
	AvgNodesExpanded   float64 `json:"avg_nodes_expanded"`
	TotalElapsedMs     int64   `json:"total_elapsed_ms"`
	AvgElapsedMs       float64 `json:"avg_elapsed_ms"`
}

// Summarize aggregates a batch of solver results.
func Summarize(results []*solver.Result[types.Move]) *BatchSummary {
	s := &BatchSummary{Solves: len(results)}
	if len(results) == 0 {
		return s
	}

	iterations := 0
	for i, res := range results {
		n := res.Length()
		s.TotalMoves += n
		if i == 0 || n < s.MinMoves {
			s.MinMoves = n
		}
		if n > s.MaxMoves {
			s.MaxMoves = n
		}
		iterations += res.Iterations
		s.TotalNodesExpanded += res.NodesExpanded
		s.TotalElapsedMs += res.Elapsed.Milliseconds()
	}

	count := float64(len(results))
	s.AvgMoves = float64(s.TotalMoves) / count
	s.AvgIterations = float64(iterations) / count
	s.AvgNodesExpanded = float64(s.TotalNodesExpanded) / count
	s.AvgElapsedMs = float64(s.TotalElapsedMs) / count
	return s
}

// MovementProfile analyzes which faces and turns a move sequence uses.
type MovementProfile struct {
	FaceCounts    map[types.Face]int `json:"face_counts"`
	TurnCounts    map[types.Turn]int `json:"turn_counts"`
	MostUsedFace  types.Face         `json:"most_used_face"`
	MostUsedTurn  types.Turn         `json:"most_used_turn"`
	FaceSequences map[string]int     `json:"face_sequences"` // e.g., "RU" -> count
}

// AnalyzeMovementProfile counts face and turn usage across a sequence.
func AnalyzeMovementProfile(moves []types.Move) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts:    make(map[types.Face]int),
		TurnCounts:    make(map[types.Turn]int),
		FaceSequences: make(map[string]int),
	}

	for i, m := range moves {
		profile.FaceCounts[m.Face]++
		profile.TurnCounts[m.Turn]++

		// Track 2-move face sequences
		if i > 0 {
			seq := string(moves[i-1].Face) + string(m.Face)
			profile.FaceSequences[seq]++
		}
	}

	maxFaceCount := 0
	for face, count := range profile.FaceCounts {
		if count > maxFaceCount {
			maxFaceCount = count
			profile.MostUsedFace = face
		}
	}

	maxTurnCount := 0
	for turn, count := range profile.TurnCounts {
		if count > maxTurnCount {
			maxTurnCount = count
			profile.MostUsedTurn = turn
		}
	}

	return profile
}
