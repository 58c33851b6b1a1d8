package solver

import "time"

// Result carries a completed solve: the solution and its search metrics.
type Result[M any] struct {
	// Moves is the solution in root-to-goal order; empty when the root
	// was already solved.
	Moves []M

	// NodesExpanded counts states popped from the frontier and expanded,
	// summed over all iterations.
	NodesExpanded uint64

	// NodesGenerated counts successor nodes pushed onto the frontier,
	// summed over all iterations.
	NodesGenerated uint64

	// Iterations is the number of bounded expansions run.
	Iterations int

	// FinalBound is the bound of the iteration that found the solution.
	FinalBound int

	// Elapsed is the wall-clock duration of the whole solve.
	Elapsed time.Duration
}

// Length returns the solution length in moves.
func (r *Result[M]) Length() int {
	return len(r.Moves)
}

// ProgressUpdate is delivered to the WithProgress callback at the start
// of each iteration.
type ProgressUpdate struct {
	Iteration     int
	Bound         int
	NodesExpanded uint64
}
