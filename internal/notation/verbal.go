// Package notation renders moves in alternate human-facing notations.
// Standard cube notation (R, U', F2) lives on types.Move itself; this
// package covers renderings meant to be read aloud while physically
// turning a cube.
package notation

import (
	"strings"

	"github.com/seamusw/cubesolver/pkg/types"
)

// Verbal converts a move to a spoken-style instruction.
// Reference frame: white on top, green in front, facing the cube.
//
// Mapping:
//
//	R  -> "R up"                   R' -> "R down"                  R2 -> "R up x 2"
//	L  -> "L down"                 L' -> "L up"                    L2 -> "L down x 2"
//	U  -> "top rotate right"       U' -> "top rotate left"         U2 -> "top rotate right x 2"
//	D  -> "bottom rotate right"    D' -> "bottom rotate left"      D2 -> "bottom rotate right x 2"
//	F  -> "front rotate clockwise" F' -> "front rotate anti-clockwise"
//	B  -> "back rotate clockwise"  B' -> "back rotate anti-clockwise"
func Verbal(m types.Move) string {
	switch m.Face {
	case types.FaceR:
		switch m.Turn {
		case types.TurnCW:
			return "R up"
		case types.TurnCCW:
			return "R down"
		case types.Turn180:
			return "R up x 2"
		}

	case types.FaceL:
		switch m.Turn {
		case types.TurnCW:
			return "L down"
		case types.TurnCCW:
			return "L up"
		case types.Turn180:
			return "L down x 2"
		}

	case types.FaceU:
		switch m.Turn {
		case types.TurnCW:
			return "top rotate right"
		case types.TurnCCW:
			return "top rotate left"
		case types.Turn180:
			return "top rotate right x 2"
		}

	case types.FaceD:
		switch m.Turn {
		case types.TurnCW:
			return "bottom rotate right"
		case types.TurnCCW:
			return "bottom rotate left"
		case types.Turn180:
			return "bottom rotate right x 2"
		}

	case types.FaceF:
		switch m.Turn {
		case types.TurnCW:
			return "front rotate clockwise"
		case types.TurnCCW:
			return "front rotate anti-clockwise"
		case types.Turn180:
			return "front rotate x 2"
		}

	case types.FaceB:
		switch m.Turn {
		case types.TurnCW:
			return "back rotate clockwise"
		case types.TurnCCW:
			return "back rotate anti-clockwise"
		case types.Turn180:
			return "back rotate x 2"
		}
	}

	return m.Notation() // Fallback to standard notation
}

// VerbalSequence converts a slice of moves to verbal instruction strings.
func VerbalSequence(moves []types.Move) []string {
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = Verbal(m)
	}
	return result
}

// FormatVerbal formats moves as a comma-separated verbal instruction string.
func FormatVerbal(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	var b strings.Builder
	for i, m := range moves {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Verbal(m))
	}
	return b.String()
}
