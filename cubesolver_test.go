package cubesolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/pkg/types"
)

// requireSolves checks that the solution actually restores a cube
// scrambled by the given sequence.
func requireSolves(t *testing.T, scramble []types.Move, sol *Solution) {
	t.Helper()
	c := cube.Solved().ApplySequence(scramble).ApplySequence(sol.Moves)
	require.True(t, c.IsSolved(), "solution %q does not solve scramble %q",
		sol.Notation(), types.FormatMoves(scramble))
}

func TestSolveScramble(t *testing.T) {
	sol, err := SolveScramble(context.Background(), "R U F'")
	require.NoError(t, err)
	require.LessOrEqual(t, sol.Length(), 3)

	scramble, err := types.ParseMoves("R U F'")
	require.NoError(t, err)
	requireSolves(t, scramble, sol)
}

func TestSolveScrambleInvalidNotation(t *testing.T) {
	_, err := SolveScramble(context.Background(), "R X")
	require.ErrorIs(t, err, ErrInvalidNotation)
}

func TestSolveSelfCancellingScramble(t *testing.T) {
	sol, err := SolveScramble(context.Background(), "R R'")
	require.NoError(t, err)
	require.Zero(t, sol.Length())
	require.Empty(t, sol.Notation())
}

func TestSolveReportsMetrics(t *testing.T) {
	sol, err := SolveScramble(context.Background(), "R")
	require.NoError(t, err)
	require.Equal(t, "R'", sol.Notation())
	require.Equal(t, 1, sol.FinalBound)
	require.Equal(t, 1, sol.Iterations)
	require.NotZero(t, sol.NodesExpanded)
	require.NotZero(t, sol.NodesGenerated)
}

func TestWithoutHeuristicStillOptimal(t *testing.T) {
	scramble, err := types.ParseMoves("L D' B2")
	require.NoError(t, err)

	guided, err := Solve(context.Background(), scramble)
	require.NoError(t, err)
	blind, err := Solve(context.Background(), scramble, WithoutHeuristic())
	require.NoError(t, err)

	require.Equal(t, guided.Length(), blind.Length())
	requireSolves(t, scramble, blind)
	require.Greater(t, blind.NodesExpanded, guided.NodesExpanded,
		"unguided search should expand more states")
}

func TestWithMaxBound(t *testing.T) {
	_, err := SolveScramble(context.Background(), "R U F' D2 L", WithMaxBound(2))
	require.ErrorIs(t, err, ErrBoundExceeded)
}

func TestWithCornerTableWrongSize(t *testing.T) {
	_, err := SolveScramble(context.Background(), "R", WithCornerTable(make([]byte, 16)))
	require.ErrorIs(t, err, ErrPatternSize)
}

func TestSolveCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SolveScramble(ctx, "R U F' D2 L B")
	require.ErrorIs(t, err, context.Canceled)
}

func TestRandomScramble(t *testing.T) {
	moves := RandomScramble(25)
	require.Len(t, moves, 25)
	for i := 1; i < len(moves); i++ {
		require.NotEqual(t, moves[i-1].Face, moves[i].Face,
			"scramble repeats a face at %d", i)
	}
}
