package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seamusw/cubesolver/pkg/types"
)

func TestVerbal(t *testing.T) {
	tests := []struct {
		notation string
		want     string
	}{
		{"R", "R up"},
		{"R'", "R down"},
		{"R2", "R up x 2"},
		{"L", "L down"},
		{"L'", "L up"},
		{"U", "top rotate right"},
		{"D'", "bottom rotate left"},
		{"F", "front rotate clockwise"},
		{"B'", "back rotate anti-clockwise"},
	}

	for _, tt := range tests {
		m, err := types.ParseMove(tt.notation)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, Verbal(m), "Verbal(%s)", tt.notation)
	}
}

func TestVerbalSequence(t *testing.T) {
	moves, err := types.ParseMoves("R U R'")
	assert.NoError(t, err)

	got := VerbalSequence(moves)
	assert.Equal(t, []string{"R up", "top rotate right", "R down"}, got)
}

func TestFormatVerbal(t *testing.T) {
	moves, err := types.ParseMoves("R U2")
	assert.NoError(t, err)

	assert.Equal(t, "R up, top rotate right x 2", FormatVerbal(moves))
	assert.Equal(t, "", FormatVerbal(nil))
}
