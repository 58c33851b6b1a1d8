package solver

import "errors"

// Sentinel errors for the solver package.
var (
	// ErrNoProgress means an iteration exhausted the reachable graph
	// without finding any candidate beyond the current bound, so no
	// further bound escalation can make progress.
	ErrNoProgress = errors.New("solver: search exhausted without bound progress")

	// ErrBoundExceeded means the next required bound lies above the
	// configured ceiling.
	ErrBoundExceeded = errors.New("solver: bound ceiling exceeded")

	// ErrBrokenPath means the predecessor chain did not lead back to the
	// root during reconstruction; it indicates a Rules implementation
	// whose Invert does not exactly undo Apply.
	ErrBrokenPath = errors.New("solver: predecessor chain broken during reconstruction")
)
