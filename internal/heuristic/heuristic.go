// Package heuristic provides admissible distance estimators for the
// facelet cube: a zero baseline, a facelet-counting bound, and a corner
// pattern database lookup.
//
// Every provider satisfies the solver's Heuristic interface for
// cube.Cube. Admissibility is the contract that matters: an estimate may
// never exceed the true number of moves to solved.
package heuristic

import "github.com/seamusw/cubesolver/internal/cube"

// Zero estimates every state at 0. It degrades the search to uniform
// cost: still correct, useful as a baseline when measuring how much a
// real heuristic prunes.
type Zero struct{}

// Estimate returns 0.
func (Zero) Estimate(cube.Cube) int { return 0 }

// FaceletDistance bounds the distance by misplaced-facelet count. One
// face turn relocates at most 20 facelets (8 on the turned face, 12 on
// the adjacent ring), so ceil(misplaced/20) never overestimates.
type FaceletDistance struct{}

// Estimate returns ceil(misplaced facelets / 20).
func (FaceletDistance) Estimate(c cube.Cube) int {
	return (c.MisplacedFacelets() + 19) / 20
}
