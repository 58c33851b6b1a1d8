// Package tracker maintains live cube state from a stream of tracked
// moves, as reported by a connected smart cube.
package tracker

import (
	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/pkg/types"
)

// Tracker follows the cube through a session: it applies each reported
// move, keeps the timestamped history, and notices when the cube
// returns to solved.
//
// Tracker is not safe for concurrent use; callers serialize access.
type Tracker struct {
	cube      cube.Cube
	moves     []types.Move
	wasSolved bool
	onSolved  func()
}

// New creates a tracker starting from a solved cube.
func New() *Tracker {
	return &Tracker{
		cube:      cube.Solved(),
		wasSolved: true,
	}
}

// SetSolvedCallback sets a callback that fires each time the cube
// transitions from unsolved to solved.
func (t *Tracker) SetSolvedCallback(cb func()) {
	t.onSolved = cb
}

// Reset returns the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	t.cube = cube.Solved()
	t.moves = nil
	t.wasSolved = true
}

// ApplyMove applies one reported move.
func (t *Tracker) ApplyMove(m types.Move) {
	t.cube = t.cube.Apply(m)
	t.moves = append(t.moves, m)

	solved := t.cube.IsSolved()
	if solved && !t.wasSolved && t.onSolved != nil {
		t.onSolved()
	}
	t.wasSolved = solved
}

// ApplyMoves applies reported moves in order.
func (t *Tracker) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Cube returns the current cube state.
func (t *Tracker) Cube() cube.Cube {
	return t.cube
}

// Moves returns a copy of the move history.
func (t *Tracker) Moves() []types.Move {
	out := make([]types.Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// MoveCount returns the number of moves applied since the last reset.
func (t *Tracker) MoveCount() int {
	return len(t.moves)
}

// IsSolved returns true if the cube is currently solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}
