package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeHistoryEmpty(t *testing.T) {
	report := AnalyzeHistory(nil)
	assert.Zero(t, report.Solves)
	assert.Zero(t, report.AvgMoves)
	assert.Empty(t, report.ByHeuristic)
}

func TestAnalyzeHistory(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	solves := []SolveSample{
		{ID: "b", CreatedAt: base.Add(24 * time.Hour), MoveCount: 7, Heuristic: "facelet", NodesExpanded: 300, DurationMs: 40},
		{ID: "a", CreatedAt: base, MoveCount: 4, Heuristic: "facelet", NodesExpanded: 100, DurationMs: 20},
		{ID: "c", CreatedAt: base.Add(48 * time.Hour), MoveCount: 5, Heuristic: "corner", NodesExpanded: 200, DurationMs: 30},
	}

	report := AnalyzeHistory(solves)

	assert.Equal(t, 3, report.Solves)
	assert.Equal(t, base, report.FirstSolve)
	assert.Equal(t, base.Add(48*time.Hour), report.LastSolve)

	assert.InDelta(t, 16.0/3, report.AvgMoves, 1e-9)
	assert.InDelta(t, 30.0, report.AvgDurationMs, 1e-9)
	assert.Equal(t, int64(600), report.TotalNodesExpanded)
	assert.InDelta(t, 200.0, report.AvgNodesExpanded, 1e-9)

	assert.Equal(t, "a", report.Shortest.ID)
	assert.Equal(t, "b", report.Longest.ID)

	assert.Equal(t, map[string]int{"facelet": 2, "corner": 1}, report.ByHeuristic)
}
