package heuristic

import (
	"errors"
	"fmt"

	"github.com/seamusw/cubesolver/internal/combin"
	"github.com/seamusw/cubesolver/internal/cube"
)

// CornerPatternSize is the number of distinct corner configurations:
// 8! cubie permutations times 3^7 orientations.
const CornerPatternSize = 40320 * 2187

// CornerPatternName is the name corner tables are stored under in the
// pattern database.
const CornerPatternName = "corner"

// ErrPatternSize reports a table whose length does not cover every
// corner configuration.
var ErrPatternSize = errors.New("heuristic: pattern table has wrong size")

// cornerSticker addresses one facelet of a corner slot.
type cornerSticker struct {
	face cube.Face
	idx  int
}

// cornerSlots lists the eight corner slots in URF, UFL, ULB, UBR, DFR,
// DLF, DBL, DRB order. Each slot's stickers start on the U or D face
// and continue clockwise around the corner as seen from outside.
var cornerSlots = [8][3]cornerSticker{
	{{cube.U, 8}, {cube.R, 0}, {cube.F, 2}}, // URF
	{{cube.U, 6}, {cube.F, 0}, {cube.L, 2}}, // UFL
	{{cube.U, 0}, {cube.L, 0}, {cube.B, 2}}, // ULB
	{{cube.U, 2}, {cube.B, 0}, {cube.R, 2}}, // UBR
	{{cube.D, 2}, {cube.F, 8}, {cube.R, 6}}, // DFR
	{{cube.D, 0}, {cube.L, 8}, {cube.F, 6}}, // DLF
	{{cube.D, 6}, {cube.B, 8}, {cube.L, 6}}, // DBL
	{{cube.D, 8}, {cube.R, 8}, {cube.B, 6}}, // DRB
}

// cornerCubies gives each cubie's colors in slot sticker order when the
// cube is solved. Cubie numbering matches cornerSlots.
var cornerCubies = [8][3]cube.Color{
	{cube.White, cube.Red, cube.Green},
	{cube.White, cube.Green, cube.Orange},
	{cube.White, cube.Orange, cube.Blue},
	{cube.White, cube.Blue, cube.Red},
	{cube.Yellow, cube.Green, cube.Red},
	{cube.Yellow, cube.Orange, cube.Green},
	{cube.Yellow, cube.Blue, cube.Orange},
	{cube.Yellow, cube.Red, cube.Blue},
}

// colorSet folds three colors into a comparable bitmask. Corner cubies
// never repeat a color, so the mask identifies the cubie.
func colorSet(colors [3]cube.Color) uint8 {
	return 1<<colors[0] | 1<<colors[1] | 1<<colors[2]
}

// identifyCorner matches observed stickers to a cubie and its twist:
// the position of the White or Yellow sticker within the slot order.
// It returns cubie -1 when the stickers form no legal corner.
func identifyCorner(got [3]cube.Color) (cubie, twist int) {
	twist = -1
	for i, col := range got {
		if col == cube.White || col == cube.Yellow {
			if twist >= 0 {
				return -1, 0
			}
			twist = i
		}
	}
	if twist < 0 {
		return -1, 0
	}
	want := colorSet(got)
	for i, colors := range cornerCubies {
		if colorSet(colors) == want {
			return i, twist
		}
	}
	return -1, 0
}

// cornerState reads the corner permutation and orientation off the
// facelets. perm[slot] is the cubie sitting in that slot, ori[slot] its
// twist.
func cornerState(c cube.Cube) (perm, ori [8]int, err error) {
	var seen [8]bool
	for slot, stickers := range cornerSlots {
		var got [3]cube.Color
		for i, s := range stickers {
			got[i] = c.Facelets[s.face][s.idx]
		}
		cubie, twist := identifyCorner(got)
		if cubie < 0 {
			return perm, ori, fmt.Errorf("heuristic: unrecognized corner %v%v%v in slot %d", got[0], got[1], got[2], slot)
		}
		if seen[cubie] {
			return perm, ori, fmt.Errorf("heuristic: corner %d appears twice", cubie)
		}
		seen[cubie] = true
		perm[slot] = cubie
		ori[slot] = twist
	}
	return perm, ori, nil
}

// CornerIndex ranks the cube's corner configuration into
// [0, CornerPatternSize). The permutation contributes its Lehmer code
// weighted by factorials; the first seven twists contribute a base-3
// rank (the eighth twist is determined by the rest on a legal cube).
// The solved cube ranks to 0.
func CornerIndex(c cube.Cube) (uint32, error) {
	perm, ori, err := cornerState(c)
	if err != nil {
		return 0, err
	}
	var permRank uint32
	for i := 0; i < 8; i++ {
		var smaller uint32
		for j := i + 1; j < 8; j++ {
			if perm[j] < perm[i] {
				smaller++
			}
		}
		permRank += smaller * combin.Factorial(7-i)
	}
	var oriRank uint32
	for i := 0; i < 7; i++ {
		oriRank = oriRank*3 + uint32(ori[i])
	}
	return permRank*2187 + oriRank, nil
}

// CornerPattern estimates distance from a precomputed table of exact
// corner-solve depths, one byte per configuration, indexed by
// CornerIndex. Tables are produced offline and imported through the
// pdb command.
//
// Estimate returns the larger of the table entry and the facelet
// bound. Both are admissible on their own, so their maximum is too, and
// a sparse table with zero-filled gaps still estimates usefully.
type CornerPattern struct {
	table    []byte
	fallback FaceletDistance
}

// NewCornerPattern wraps a corner depth table. The table must hold
// exactly one byte per corner configuration.
func NewCornerPattern(table []byte) (*CornerPattern, error) {
	if len(table) != CornerPatternSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrPatternSize, len(table), CornerPatternSize)
	}
	return &CornerPattern{table: table}, nil
}

// Estimate looks up the corner depth for the state, falling back to the
// facelet bound when the entry is smaller or the corners are unreadable.
func (p *CornerPattern) Estimate(c cube.Cube) int {
	low := p.fallback.Estimate(c)
	idx, err := CornerIndex(c)
	if err != nil {
		return low
	}
	if entry := int(p.table[idx]); entry > low {
		return entry
	}
	return low
}
