package tracker

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/pkg/types"
)

func mustParse(t *testing.T, notation string) []types.Move {
	t.Helper()
	moves, err := types.ParseMoves(notation)
	require.NoError(t, err)
	return moves
}

func TestTrackerAppliesMoves(t *testing.T) {
	tr := New()
	require.True(t, tr.IsSolved())

	moves := mustParse(t, "R U")
	tr.ApplyMoves(moves)

	assert.False(t, tr.IsSolved())
	assert.Equal(t, 2, tr.MoveCount())
	assert.Equal(t, cube.Solved().ApplySequence(moves), tr.Cube())
}

func TestTrackerSolvedCallback(t *testing.T) {
	tr := New()
	fired := 0
	tr.SetSolvedCallback(func() { fired++ })

	tr.ApplyMoves(mustParse(t, "R"))
	assert.Zero(t, fired)

	tr.ApplyMoves(mustParse(t, "R'"))
	assert.Equal(t, 1, fired)

	// A later scramble and solve fires again.
	tr.ApplyMoves(mustParse(t, "U2 U2"))
	assert.Equal(t, 2, fired)
}

func TestTrackerReset(t *testing.T) {
	tr := New()
	tr.ApplyMoves(mustParse(t, "R U F"))
	require.False(t, tr.IsSolved())

	tr.Reset()
	assert.True(t, tr.IsSolved())
	assert.Zero(t, tr.MoveCount())
	assert.Equal(t, cube.Solved(), tr.Cube())
}

func TestTrackerMovesReturnsCopy(t *testing.T) {
	tr := New()
	tr.ApplyMoves(mustParse(t, "R U"))

	moves := tr.Moves()
	moves[0] = types.Move{Face: types.FaceL, Turn: types.TurnCW}

	assert.Equal(t, "R", tr.Moves()[0].Notation())
}

func TestStateFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	sf, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Empty(t, sf.LastDeviceID())

	require.NoError(t, sf.SetLastDevice("AA:BB:CC", "GoCube_ABC"))

	reloaded, err := NewStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, "AA:BB:CC", reloaded.LastDeviceID())
	assert.Equal(t, "GoCube_ABC", reloaded.LastDeviceName())
}
