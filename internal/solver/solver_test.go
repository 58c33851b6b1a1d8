package solver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/heuristic"
	"github.com/seamusw/cubesolver/pkg/types"
)

// ringRules walks a small cyclic graph with no solved state, so every
// search eventually exhausts it.
type ringRules struct{}

const ringSize = 8

func (ringRules) Apply(s, m int) int { return ((s+m)%ringSize + ringSize) % ringSize }
func (ringRules) Invert(s, m int) int { return ((s-m)%ringSize + ringSize) % ringSize }
func (ringRules) Solved(int) bool { return false }
func (ringRules) Moves() []int { return []int{1, -1} }

// lineRules walks the unbounded integer line with no solved state, so
// the bound escalates forever.
type lineRules struct{}

func (lineRules) Apply(s, m int) int { return s + m }
func (lineRules) Invert(s, m int) int { return s - m }
func (lineRules) Solved(int) bool { return false }
func (lineRules) Moves() []int { return []int{1, -1} }

// brokenRules violates the move contract: Invert does not undo Apply,
// which strands path reconstruction.
type brokenRules struct{}

func (brokenRules) Apply(s, m int) int { return s + m }
func (brokenRules) Invert(s, _ int) int { return s }
func (brokenRules) Solved(s int) bool { return s == 2 }
func (brokenRules) Moves() []int { return []int{1} }

func zeroInt() Heuristic[int] {
	return HeuristicFunc[int](func(int) int { return 0 })
}

// bfsDistance returns the exact move distance from root to solved,
// searching breadth-first up to maxDepth.
func bfsDistance(t *testing.T, root cube.Cube, maxDepth int) int {
	t.Helper()
	if root.IsSolved() {
		return 0
	}
	seen := map[cube.Cube]bool{root: true}
	frontier := []cube.Cube{root}
	for depth := 1; depth <= maxDepth; depth++ {
		var next []cube.Cube
		for _, c := range frontier {
			for _, m := range types.Alphabet() {
				succ := c.Apply(m)
				if seen[succ] {
					continue
				}
				if succ.IsSolved() {
					return depth
				}
				seen[succ] = true
				next = append(next, succ)
			}
		}
		frontier = next
	}
	t.Fatalf("no solution within %d moves of %v", maxDepth, root)
	return -1
}

func scrambleCube(t *testing.T, notation string) cube.Cube {
	t.Helper()
	moves, err := types.ParseMoves(notation)
	require.NoError(t, err)
	return cube.Solved().ApplySequence(moves)
}

func requireSolves(t *testing.T, scrambled cube.Cube, moves []types.Move) {
	t.Helper()
	require.True(t, scrambled.ApplySequence(moves).IsSolved(),
		"sequence %s does not solve the cube", types.FormatMoves(moves))
}

func TestSolveAlreadySolved(t *testing.T) {
	s := New[cube.Cube, types.Move](cube.Rules{}, heuristic.Zero{})

	res, err := s.Solve(context.Background(), cube.Solved())
	require.NoError(t, err)
	require.NotNil(t, res.Moves)
	require.Empty(t, res.Moves)
	require.Zero(t, res.Iterations)
	require.Zero(t, res.NodesExpanded)
}

func TestSolveSingleMove(t *testing.T) {
	scrambled := scrambleCube(t, "F2")
	s := New[cube.Cube, types.Move](cube.Rules{}, heuristic.Zero{})

	res, err := s.Solve(context.Background(), scrambled)
	require.NoError(t, err)
	require.Equal(t, 1, res.Length())
	require.Equal(t, "F2", types.FormatMoves(res.Moves))
	require.Equal(t, 1, res.FinalBound)
}

func TestSolveOptimalMatchesBFS(t *testing.T) {
	scrambles := []string{"R U F", "L D' B2", "F R2 U'", "R U R' U'"}

	for _, notation := range scrambles {
		t.Run(notation, func(t *testing.T) {
			scrambled := scrambleCube(t, notation)
			want := bfsDistance(t, scrambled, 4)

			for name, h := range map[string]Heuristic[cube.Cube]{
				"zero":    heuristic.Zero{},
				"facelet": heuristic.FaceletDistance{},
			} {
				s := New[cube.Cube, types.Move](cube.Rules{}, h)
				res, err := s.Solve(context.Background(), scrambled)
				require.NoError(t, err, "heuristic %s", name)
				require.Equal(t, want, res.Length(), "heuristic %s found a non-optimal solution", name)
				requireSolves(t, scrambled, res.Moves)
			}
		})
	}
}

func TestSolveFiveMoveScramble(t *testing.T) {
	scrambled := scrambleCube(t, "R U F' D2 L")
	s := New[cube.Cube, types.Move](cube.Rules{}, heuristic.FaceletDistance{})

	res, err := s.Solve(context.Background(), scrambled)
	require.NoError(t, err)
	require.LessOrEqual(t, res.Length(), 5)
	requireSolves(t, scrambled, res.Moves)
}

func TestHeuristicReducesExpansions(t *testing.T) {
	scrambled := scrambleCube(t, "R U R' U'")

	zero := New[cube.Cube, types.Move](cube.Rules{}, heuristic.Zero{})
	zeroRes, err := zero.Solve(context.Background(), scrambled)
	require.NoError(t, err)

	guided := New[cube.Cube, types.Move](cube.Rules{}, heuristic.FaceletDistance{})
	guidedRes, err := guided.Solve(context.Background(), scrambled)
	require.NoError(t, err)

	// Both find an optimal solution; the informed search pays for fewer
	// expansions to get there.
	require.Equal(t, zeroRes.Length(), guidedRes.Length())
	require.Greater(t, zeroRes.NodesExpanded, guidedRes.NodesExpanded)
}

func TestSolveBoundsStrictlyIncrease(t *testing.T) {
	scrambled := scrambleCube(t, "R U R' U'")
	want := bfsDistance(t, scrambled, 4)

	var bounds []int
	s := New[cube.Cube, types.Move](cube.Rules{}, heuristic.Zero{},
		WithProgress(func(u ProgressUpdate) {
			bounds = append(bounds, u.Bound)
		}))

	res, err := s.Solve(context.Background(), scrambled)
	require.NoError(t, err)

	// With the zero heuristic the bound starts at 1 and climbs one move
	// per iteration until the solution depth.
	require.Len(t, bounds, want)
	for i, b := range bounds {
		require.Equal(t, i+1, b)
	}
	require.Equal(t, want, res.FinalBound)
	require.Equal(t, want, res.Iterations)
}

func TestSolveWithInitialBound(t *testing.T) {
	scrambled := scrambleCube(t, "R U F")
	want := bfsDistance(t, scrambled, 4)

	s := New[cube.Cube, types.Move](cube.Rules{}, heuristic.Zero{}, WithInitialBound(10))

	res, err := s.Solve(context.Background(), scrambled)
	require.NoError(t, err)
	// A single generous iteration still pops states in cost order, so
	// the first solution found is optimal.
	require.Equal(t, 1, res.Iterations)
	require.Equal(t, want, res.Length())
	requireSolves(t, scrambled, res.Moves)
}

func TestSolveNoProgress(t *testing.T) {
	s := New[int, int](ringRules{}, zeroInt())

	res, err := s.Solve(context.Background(), 0)
	require.ErrorIs(t, err, ErrNoProgress)
	require.Nil(t, res)
}

func TestSolveBoundCeiling(t *testing.T) {
	s := New[int, int](lineRules{}, zeroInt(), WithMaxBound(5))

	res, err := s.Solve(context.Background(), 0)
	require.ErrorIs(t, err, ErrBoundExceeded)
	require.Nil(t, res)
}

func TestSolveBrokenInvert(t *testing.T) {
	s := New[int, int](brokenRules{}, zeroInt())

	res, err := s.Solve(context.Background(), 0)
	require.ErrorIs(t, err, ErrBrokenPath)
	require.Nil(t, res)
}

func TestSolveCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New[cube.Cube, types.Move](cube.Rules{}, heuristic.Zero{})
	res, err := s.Solve(ctx, scrambleCube(t, "R U F"))
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, res)
}

func TestSolverSequentialReuse(t *testing.T) {
	s := New[cube.Cube, types.Move](cube.Rules{}, heuristic.FaceletDistance{})

	for _, notation := range []string{"R U F", "L D' B2"} {
		scrambled := scrambleCube(t, notation)
		res, err := s.Solve(context.Background(), scrambled)
		require.NoError(t, err, "scramble %s", notation)
		requireSolves(t, scrambled, res.Moves)
	}
}

func TestSolverConcurrentSolves(t *testing.T) {
	s := New[cube.Cube, types.Move](cube.Rules{}, heuristic.FaceletDistance{})
	scrambles := []string{"R U F", "L D' B2", "F R2 U'", "R U R' U'"}

	var g errgroup.Group
	for _, notation := range scrambles {
		scrambled := scrambleCube(t, notation)
		g.Go(func() error {
			res, err := s.Solve(context.Background(), scrambled)
			if err != nil {
				return err
			}
			if !scrambled.ApplySequence(res.Moves).IsSolved() {
				return ErrBrokenPath
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
