// Package cube provides a 3x3 Rubik's cube model with value semantics:
// cubes are small comparable values, and every move derives a new cube,
// which lets the solver use Cube directly as a map key.
package cube

import (
	"strings"

	"github.com/seamusw/cubesolver/pkg/types"
)

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face identifies one of the six cube faces.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube as 54 facelets.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves under the
// 18-move face-turn alphabet. Cube is a comparable value type: == compares
// full configurations, and a Cube may be used as a map key.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// Solved returns a cube in the solved state with standard orientation:
// White on top, Green in front.
func Solved() Cube {
	var c Cube
	for face := Face(0); face < 6; face++ {
		color := solvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

// solvedColor returns the color of a face when solved.
func solvedColor(f Face) Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		return White
	}
}

// IsSolved returns true if every facelet shows its face's solved color.
func (c Cube) IsSolved() bool {
	for face := Face(0); face < 6; face++ {
		want := solvedColor(face)
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != want {
				return false
			}
		}
	}
	return true
}

// Apply returns the cube after applying a move. The receiver is unchanged.
func (c Cube) Apply(m types.Move) Cube {
	face := moveFace(m.Face)
	switch m.Turn {
	case types.TurnCW:
		c.turnCW(face)
	case types.TurnCCW:
		c.turnCCW(face)
	case types.Turn180:
		c.turnCW(face)
		c.turnCW(face)
	}
	return c
}

// Invert returns the cube after undoing a move, so that
// c.Apply(m).Invert(m) == c for every cube and move.
func (c Cube) Invert(m types.Move) Cube {
	return c.Apply(m.Inverse())
}

// ApplySequence returns the cube after applying moves in order.
func (c Cube) ApplySequence(moves []types.Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// moveFace converts the notation face to the model face index.
func moveFace(f types.Face) Face {
	switch f {
	case types.FaceU:
		return U
	case types.FaceD:
		return D
	case types.FaceF:
		return F
	case types.FaceB:
		return B
	case types.FaceR:
		return R
	case types.FaceL:
		return L
	default:
		return U
	}
}

// The turn mechanics below mutate the receiver in place; they are only
// invoked on the local copy inside Apply.

func (c *Cube) turnCW(face Face) {
	c.rotateFaceCW(face)
	c.cycleEdgesCW(face)
}

func (c *Cube) turnCCW(face Face) {
	c.rotateFaceCCW(face)
	// CCW edge cycle is three CW cycles.
	c.cycleEdgesCW(face)
	c.cycleEdgesCW(face)
	c.cycleEdgesCW(face)
}

// rotateFaceCW rotates a face's own 9 facelets 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face Face) {
	f := &c.Facelets[face]
	// Corners: 0->2->8->6->0, edges: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// rotateFaceCCW rotates a face's own 9 facelets 90 degrees counter-clockwise.
func (c *Cube) rotateFaceCCW(face Face) {
	f := &c.Facelets[face]
	temp := f[0]
	f[0] = f[2]
	f[2] = f[8]
	f[8] = f[6]
	f[6] = temp

	temp = f[1]
	f[1] = f[5]
	f[5] = f[7]
	f[7] = f[3]
	f[3] = temp
}

// cycleEdgesCW cycles the 12 side facelets adjacent to a face, clockwise.
func (c *Cube) cycleEdgesCW(face Face) {
	switch face {
	case U:
		// Top rows: F -> L -> B -> R -> F
		c.cycleRows(
			strip{F, [3]int{0, 1, 2}},
			strip{L, [3]int{0, 1, 2}},
			strip{B, [3]int{0, 1, 2}},
			strip{R, [3]int{0, 1, 2}},
		)
	case D:
		// Bottom rows: F -> R -> B -> L -> F
		c.cycleRows(
			strip{F, [3]int{6, 7, 8}},
			strip{R, [3]int{6, 7, 8}},
			strip{B, [3]int{6, 7, 8}},
			strip{L, [3]int{6, 7, 8}},
		)
	case F:
		// U bottom -> R left -> D top -> L right
		c.cycleRows(
			strip{U, [3]int{6, 7, 8}},
			strip{R, [3]int{0, 3, 6}},
			strip{D, [3]int{2, 1, 0}},
			strip{L, [3]int{8, 5, 2}},
		)
	case B:
		// U top -> L left -> D bottom -> R right
		c.cycleRows(
			strip{U, [3]int{2, 1, 0}},
			strip{L, [3]int{0, 3, 6}},
			strip{D, [3]int{6, 7, 8}},
			strip{R, [3]int{8, 5, 2}},
		)
	case R:
		// U right -> B left -> D right -> F right
		c.cycleRows(
			strip{U, [3]int{2, 5, 8}},
			strip{B, [3]int{6, 3, 0}},
			strip{D, [3]int{2, 5, 8}},
			strip{F, [3]int{2, 5, 8}},
		)
	case L:
		// U left -> F left -> D left -> B right
		c.cycleRows(
			strip{U, [3]int{0, 3, 6}},
			strip{F, [3]int{0, 3, 6}},
			strip{D, [3]int{0, 3, 6}},
			strip{B, [3]int{8, 5, 2}},
		)
	}
}

// strip addresses three facelets on one face.
type strip struct {
	face Face
	idx  [3]int
}

// cycleRows moves strip a -> b -> c -> d -> a, position by position.
func (c *Cube) cycleRows(a, b, cc, d strip) {
	var saved [3]Color
	for i := 0; i < 3; i++ {
		saved[i] = c.Facelets[a.face][a.idx[i]]
	}
	for i := 0; i < 3; i++ {
		c.Facelets[a.face][a.idx[i]] = c.Facelets[d.face][d.idx[i]]
	}
	for i := 0; i < 3; i++ {
		c.Facelets[d.face][d.idx[i]] = c.Facelets[cc.face][cc.idx[i]]
	}
	for i := 0; i < 3; i++ {
		c.Facelets[cc.face][cc.idx[i]] = c.Facelets[b.face][b.idx[i]]
	}
	for i := 0; i < 3; i++ {
		c.Facelets[b.face][b.idx[i]] = saved[i]
	}
}

// String returns a text net of the cube: U on top, then L F R B, then D.
func (c Cube) String() string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(c.Facelets[U][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				sb.WriteString(c.Facelets[face][row*3+col].String() + " ")
			}
		}
		sb.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(c.Facelets[D][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// MisplacedFacelets counts facelets not showing their face's solved color.
func (c Cube) MisplacedFacelets() int {
	n := 0
	for face := Face(0); face < 6; face++ {
		want := solvedColor(face)
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] != want {
				n++
			}
		}
	}
	return n
}
