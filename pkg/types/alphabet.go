package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNotation is returned when a move string cannot be parsed.
var ErrInvalidNotation = errors.New("types: invalid move notation")

// AlphabetSize is the number of distinct moves: 6 faces x 3 turn amounts.
const AlphabetSize = 18

// Alphabet returns the full move alphabet in token order: for each face
// (R, L, U, D, F, B) the counter-clockwise, clockwise, and half turns.
// The slice is freshly allocated; Alphabet()[i].Token() == i.
func Alphabet() []Move {
	moves := make([]Move, AlphabetSize)
	for i := 0; i < AlphabetSize; i++ {
		moves[i] = MoveFromToken(uint8(i))
	}
	return moves
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := TurnCW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = TurnCCW
		case "2", "2'", "2`":
			turn = Turn180
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'". Any invalid token fails the whole parse.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InverseSequence returns the sequence that undoes moves: each move
// inverted, in reverse order.
func InverseSequence(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// MergeMoves merges adjacent same-face moves.
// For example: R R becomes R2, R R R becomes R', R R R R cancels out.
func MergeMoves(moves []Move) []Move {
	if len(moves) <= 1 {
		return moves
	}

	result := make([]Move, 0, len(moves))
	for _, move := range moves {
		if len(result) == 0 {
			result = append(result, move)
			continue
		}

		last := &result[len(result)-1]
		if last.Face == move.Face {
			merged := last.Merge(move)
			if merged == nil {
				result = result[:len(result)-1]
			} else {
				*last = *merged
			}
		} else {
			result = append(result, move)
		}
	}

	return result
}
