package analysis

import "time"

// SolveSample is the per-solve input to history aggregation. It mirrors
// the stored solve record without depending on the storage package.
type SolveSample struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	MoveCount     int       `json:"move_count"`
	Heuristic     string    `json:"heuristic"`
	NodesExpanded int64     `json:"nodes_expanded"`
	DurationMs    int64     `json:"duration_ms"`
}

// HistoryReport aggregates statistics across saved solves.
type HistoryReport struct {
	Solves     int       `json:"solves"`
	FirstSolve time.Time `json:"first_solve"`
	LastSolve  time.Time `json:"last_solve"`

	AvgMoves           float64 `json:"avg_moves"`
	AvgDurationMs      float64 `json:"avg_duration_ms"`
	AvgNodesExpanded   float64 `json:"avg_nodes_expanded"`
	TotalNodesExpanded int64   `json:"total_nodes_expanded"`

	Shortest SolveSample `json:"shortest"`
	Longest  SolveSample `json:"longest"`

	ByHeuristic map[string]int `json:"by_heuristic"`

	// Patterns is filled by the caller from MinePatterns over the
	// stored solutions.
	Patterns []NGram `json:"patterns,omitempty"`
}

// AnalyzeHistory aggregates saved solves into a report. Order of the
// input does not matter.
func AnalyzeHistory(solves []SolveSample) *HistoryReport {
	report := &HistoryReport{
		Solves:      len(solves),
		ByHeuristic: make(map[string]int),
	}
	if len(solves) == 0 {
		return report
	}

	totalMoves := 0
	var totalDurationMs int64
	for i, s := range solves {
		if i == 0 || s.CreatedAt.Before(report.FirstSolve) {
			report.FirstSolve = s.CreatedAt
		}
		if s.CreatedAt.After(report.LastSolve) {
			report.LastSolve = s.CreatedAt
		}
		if i == 0 || s.MoveCount < report.Shortest.MoveCount {
			report.Shortest = s
		}
		if i == 0 || s.MoveCount > report.Longest.MoveCount {
			report.Longest = s
		}

		totalMoves += s.MoveCount
		totalDurationMs += s.DurationMs
		report.TotalNodesExpanded += s.NodesExpanded
		report.ByHeuristic[s.Heuristic]++
	}

	count := float64(len(solves))
	report.AvgMoves = float64(totalMoves) / count
	report.AvgDurationMs = float64(totalDurationMs) / count
	report.AvgNodesExpanded = float64(report.TotalNodesExpanded) / count
	return report
}
