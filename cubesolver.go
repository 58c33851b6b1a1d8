// Package cubesolver solves 3x3 Rubik's cubes optimally using
// iterative-deepening best-first search.
//
// # Features
//
//   - Move-optimal solutions over the 18-move face-turn alphabet
//   - Pluggable admissible heuristics, including corner pattern databases
//   - Seedable random scramble generation
//   - Search metrics (node counts, iterations, timing) on every solve
//
// # Quick Start
//
// Solve a scramble given in standard notation:
//
//	ctx := context.Background()
//	sol, err := cubesolver.SolveScramble(ctx, "R U F' D2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Solution:", sol.Notation())
//
// # Scrambles
//
// Scrambles are move sequences; build them from notation with
// types.ParseMoves or generate them randomly:
//
//	scramble := cubesolver.RandomScramble(5)
//	sol, err := cubesolver.Solve(ctx, scramble)
//
// # Heuristics
//
// By default the search is guided by a misplaced-facelet lower bound,
// which needs no precomputed data. Supply a corner pattern database for
// much faster searches:
//
//	table, _ := os.ReadFile("corner.pdb")
//	sol, err := cubesolver.Solve(ctx, scramble, cubesolver.WithCornerTable(table))
//
// The search visits states in cost order, so with any admissible
// heuristic (including none) the returned solution is optimal.
package cubesolver

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/heuristic"
	"github.com/seamusw/cubesolver/internal/solver"
	"github.com/seamusw/cubesolver/pkg/types"
)

// Solution describes a completed solve: the move sequence plus search
// metrics.
type Solution struct {
	// Moves is the solution in application order; empty when the
	// scramble already cancels itself out.
	Moves []types.Move

	// NodesExpanded counts states expanded across all search iterations.
	NodesExpanded uint64

	// NodesGenerated counts successor states pushed onto the frontier.
	NodesGenerated uint64

	// Iterations is the number of bounded search passes run.
	Iterations int

	// FinalBound is the cost bound of the pass that found the solution.
	FinalBound int

	// Elapsed is the wall-clock duration of the solve.
	Elapsed time.Duration
}

// Length returns the solution length in moves.
func (s *Solution) Length() int {
	return len(s.Moves)
}

// Notation returns the solution in standard notation, e.g. "L' D2 F".
func (s *Solution) Notation() string {
	return types.FormatMoves(s.Moves)
}

// Solve searches for a shortest move sequence that undoes the given
// scramble. The context cancels the search; a cancelled solve returns
// the context's error.
func Solve(ctx context.Context, scramble []types.Move, opts ...Option) (*Solution, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	heur, err := cfg.buildHeuristic()
	if err != nil {
		return nil, err
	}

	s := solver.New[cube.Cube, types.Move](cube.Rules{}, heur,
		solver.WithMaxBound(cfg.maxBound),
		solver.WithLogger(cfg.logger),
	)

	res, err := s.Solve(ctx, cube.Solved().ApplySequence(scramble))
	if err != nil {
		return nil, err
	}

	return &Solution{
		Moves:          res.Moves,
		NodesExpanded:  res.NodesExpanded,
		NodesGenerated: res.NodesGenerated,
		Iterations:     res.Iterations,
		FinalBound:     res.FinalBound,
		Elapsed:        res.Elapsed,
	}, nil
}

// SolveScramble parses a scramble in standard notation and solves it.
func SolveScramble(ctx context.Context, notation string, opts ...Option) (*Solution, error) {
	scramble, err := types.ParseMoves(notation)
	if err != nil {
		return nil, err
	}
	return Solve(ctx, scramble, opts...)
}

// RandomScramble generates a random scramble of the given length in
// which no move repeats or directly cancels its predecessor.
func RandomScramble(length int) []types.Move {
	seed := uint64(time.Now().UnixNano())
	return cube.Scramble(rand.New(rand.NewPCG(seed, seed)), length)
}
