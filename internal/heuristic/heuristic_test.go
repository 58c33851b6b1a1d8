package heuristic

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/pkg/types"
)

// statesToDepth breadth-first enumerates every cube within maxDepth
// moves of solved, with its exact distance.
func statesToDepth(maxDepth int) map[cube.Cube]int {
	dist := map[cube.Cube]int{cube.Solved(): 0}
	frontier := []cube.Cube{cube.Solved()}
	for d := 0; d < maxDepth; d++ {
		var next []cube.Cube
		for _, c := range frontier {
			for _, m := range types.Alphabet() {
				succ := c.Apply(m)
				if _, ok := dist[succ]; ok {
					continue
				}
				dist[succ] = d + 1
				next = append(next, succ)
			}
		}
		frontier = next
	}
	return dist
}

func TestZeroEstimate(t *testing.T) {
	var z Zero
	assert.Equal(t, 0, z.Estimate(cube.Solved()))

	rng := rand.New(rand.NewPCG(7, 11))
	scrambled, _ := cube.Scrambled(rng, 25)
	assert.Equal(t, 0, z.Estimate(scrambled))
}

func TestFaceletDistanceSolved(t *testing.T) {
	var f FaceletDistance
	assert.Equal(t, 0, f.Estimate(cube.Solved()))
}

func TestFaceletDistanceSingleMove(t *testing.T) {
	var f FaceletDistance
	c := cube.Solved().Apply(types.Move{Face: types.FaceR, Turn: types.TurnCW})
	// A quarter turn misplaces 12 facelets, so the bound is exactly 1.
	assert.Equal(t, 1, f.Estimate(c))
}

func TestFaceletDistanceAdmissible(t *testing.T) {
	var f FaceletDistance
	for c, depth := range statesToDepth(3) {
		est := f.Estimate(c)
		require.LessOrEqual(t, est, depth, "estimate %d exceeds true distance %d", est, depth)
	}
}

func TestCornerIndexSolved(t *testing.T) {
	idx, err := CornerIndex(cube.Solved())
	require.NoError(t, err)
	assert.Equal(t, uint32(0), idx)
}

func TestCornerIndexSingleMoves(t *testing.T) {
	seen := map[uint32]string{0: "solved"}
	for _, m := range types.Alphabet() {
		idx, err := CornerIndex(cube.Solved().Apply(m))
		require.NoError(t, err, "move %s", m.Notation())
		require.Less(t, idx, uint32(CornerPatternSize))
		prev, dup := seen[idx]
		require.False(t, dup, "moves %s and %s rank to the same corner index", m.Notation(), prev)
		seen[idx] = m.Notation()
	}
}

func TestCornerStateOnScrambles(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 20; i++ {
		scrambled, _ := cube.Scrambled(rng, 30)

		perm, ori, err := cornerState(scrambled)
		require.NoError(t, err)

		var cubies [8]bool
		twistSum := 0
		for slot := 0; slot < 8; slot++ {
			cubies[perm[slot]] = true
			twistSum += ori[slot]
		}
		for cubie, present := range cubies {
			assert.True(t, present, "cubie %d missing from permutation", cubie)
		}
		// Face turns preserve total corner twist mod 3.
		assert.Equal(t, 0, twistSum%3)

		idx, err := CornerIndex(scrambled)
		require.NoError(t, err)
		assert.Less(t, idx, uint32(CornerPatternSize))
	}
}

func TestIdentifyCornerInvalid(t *testing.T) {
	cubie, _ := identifyCorner([3]cube.Color{cube.White, cube.White, cube.Green})
	assert.Equal(t, -1, cubie, "two up/down stickers on one corner")

	cubie, _ = identifyCorner([3]cube.Color{cube.Red, cube.Green, cube.Blue})
	assert.Equal(t, -1, cubie, "no up/down sticker on the corner")
}

func TestCornerIndexRejectsCorruptCube(t *testing.T) {
	c := cube.Solved()
	c.Facelets[cube.U][8] = cube.White
	c.Facelets[cube.R][0] = cube.White
	_, err := CornerIndex(c)
	require.Error(t, err)
}

func TestNewCornerPatternWrongSize(t *testing.T) {
	_, err := NewCornerPattern(make([]byte, 16))
	require.ErrorIs(t, err, ErrPatternSize)
}

func TestCornerPatternEstimate(t *testing.T) {
	table := make([]byte, CornerPatternSize)
	rCube := cube.Solved().Apply(types.Move{Face: types.FaceR, Turn: types.TurnCW})
	uCube := cube.Solved().Apply(types.Move{Face: types.FaceU, Turn: types.TurnCW})

	idx, err := CornerIndex(rCube)
	require.NoError(t, err)
	table[idx] = 3

	p, err := NewCornerPattern(table)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Estimate(cube.Solved()))
	// Populated entry wins over the facelet bound of 1.
	assert.Equal(t, 3, p.Estimate(rCube))
	// Zero-filled entry falls back to the facelet bound.
	assert.Equal(t, 1, p.Estimate(uCube))
}
