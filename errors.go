package cubesolver

import (
	"github.com/seamusw/cubesolver/internal/heuristic"
	"github.com/seamusw/cubesolver/internal/solver"
	"github.com/seamusw/cubesolver/pkg/types"
)

// Sentinel errors for the cubesolver package. These alias the errors
// raised by the underlying packages so errors.Is works on wrapped
// failures from Solve.
var (
	// Search errors
	ErrNoProgress    = solver.ErrNoProgress
	ErrBoundExceeded = solver.ErrBoundExceeded

	// Parsing errors
	ErrInvalidNotation = types.ErrInvalidNotation

	// Pattern table errors
	ErrPatternSize = heuristic.ErrPatternSize
)
