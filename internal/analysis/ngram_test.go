package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamusw/cubesolver/pkg/types"
)

func TestRollingHashMatchesDirectHash(t *testing.T) {
	tokens := []uint8{3, 7, 7, 3, 9, 1, 3, 7}
	n := 3

	rh := NewRollingHash(n)
	for i := 0; i < n-1; i++ {
		rh.Add(tokens[i])
	}

	for i := n - 1; i < len(tokens); i++ {
		rh.Roll(tokens[i])
		require.True(t, rh.Ready())

		// Recompute the window hash from scratch.
		var want uint64
		for _, tok := range tokens[i-n+1 : i+1] {
			want = want*31 + uint64(tok)
		}
		assert.Equal(t, want, rh.Hash(), "window ending at %d", i)
		assert.Equal(t, tokens[i-n+1:i+1], rh.Window())
	}
}

func TestMinePatterns(t *testing.T) {
	sequences := [][]types.Move{
		parseMoves(t, "R U R' U'"),
		parseMoves(t, "R U R' F2"),
		parseMoves(t, "L2 R U R'"),
	}

	patterns := MinePatterns(sequences, 2, 3, 10)

	// Only patterns seen at least twice survive; ties break longest-first.
	require.Len(t, patterns, 3)
	assert.Equal(t, "R U R'", patterns[0].Notation())
	assert.Equal(t, 3, patterns[0].Count)
	assert.Equal(t, 3, patterns[0].N)
	assert.Equal(t, "R U", patterns[1].Notation())
	assert.Equal(t, 3, patterns[1].Count)
	assert.Equal(t, "U R'", patterns[2].Notation())
	assert.Equal(t, 3, patterns[2].Count)
}

func TestMinePatternsTopK(t *testing.T) {
	sequences := [][]types.Move{
		parseMoves(t, "R U R' U'"),
		parseMoves(t, "R U R' F2"),
	}

	patterns := MinePatterns(sequences, 2, 3, 1)
	require.Len(t, patterns, 1)
	assert.Equal(t, "R U R'", patterns[0].Notation())
	assert.Equal(t, 2, patterns[0].Count)
}

func TestMinePatternsOverlapping(t *testing.T) {
	// Overlapping occurrences inside one sequence still count.
	sequences := [][]types.Move{parseMoves(t, "R R R")}

	patterns := MinePatterns(sequences, 2, 2, 10)
	require.Len(t, patterns, 1)
	assert.Equal(t, "R R", patterns[0].Notation())
	assert.Equal(t, 2, patterns[0].Count)
}

func TestMinePatternsEmpty(t *testing.T) {
	assert.Empty(t, MinePatterns(nil, 2, 4, 5))
	assert.Empty(t, MinePatterns([][]types.Move{parseMoves(t, "R")}, 2, 4, 5))
}
