// Package types contains the shared move vocabulary for the cubesolver
// application: faces, turns, moves, and the fixed 18-move alphabet the
// solver searches over.
package types

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // 180 degree turn (half turn)
)

// Move represents a single cube move with face and turn direction.
// Timestamp carries the move time in milliseconds for recorded sequences
// (device tracking); it is zero for solver-generated moves and is ignored
// by the move identity helpers.
type Move struct {
	Face      Face  `json:"face"`
	Turn      Turn  `json:"turn"`
	Timestamp int64 `json:"ts_ms,omitempty"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
		// Turn180 is its own inverse
	}
	return inv
}

// Same reports whether two moves are the same face turn, ignoring timestamps.
func (m Move) Same(other Move) bool {
	return m.Face == other.Face && m.Turn == other.Turn
}

// IsCancellation returns true if the other move cancels this move.
func (m Move) IsCancellation(other Move) bool {
	if m.Face != other.Face {
		return false
	}
	return m.Turn == -other.Turn ||
		(m.Turn == Turn180 && other.Turn == Turn180)
}

// Merge combines two same-face moves into one, or returns nil if they
// cancel out completely (or are not mergeable).
func (m Move) Merge(other Move) *Move {
	if m.Face != other.Face {
		return nil
	}

	combined := int(m.Turn) + int(other.Turn)
	// Normalize into [-2, 2]; -2 and 2 are the same half turn.
	combined = ((combined+2)%4+4)%4 - 2
	if combined == 0 {
		return nil
	}
	if combined == -2 {
		combined = 2
	}

	return &Move{
		Face:      m.Face,
		Turn:      Turn(combined),
		Timestamp: other.Timestamp,
	}
}

// Token encodes the move as a single byte, its ordinal in the alphabet.
// Encoding: face*3 + turn_code where:
//   - face: R=0, L=1, U=2, D=3, F=4, B=5
//   - turn_code: CCW=0, CW=1, 180=2
func (m Move) Token() uint8 {
	var faceCode uint8
	switch m.Face {
	case FaceR:
		faceCode = 0
	case FaceL:
		faceCode = 1
	case FaceU:
		faceCode = 2
	case FaceD:
		faceCode = 3
	case FaceF:
		faceCode = 4
	case FaceB:
		faceCode = 5
	}

	var turnCode uint8
	switch m.Turn {
	case TurnCCW:
		turnCode = 0
	case TurnCW:
		turnCode = 1
	case Turn180:
		turnCode = 2
	}

	return faceCode*3 + turnCode
}

// MoveFromToken decodes a token back into a Move.
func MoveFromToken(token uint8) Move {
	faceCode := token / 3
	turnCode := token % 3

	var face Face
	switch faceCode {
	case 0:
		face = FaceR
	case 1:
		face = FaceL
	case 2:
		face = FaceU
	case 3:
		face = FaceD
	case 4:
		face = FaceF
	case 5:
		face = FaceB
	}

	var turn Turn
	switch turnCode {
	case 0:
		turn = TurnCCW
	case 1:
		turn = TurnCW
	case 2:
		turn = Turn180
	}

	return Move{Face: face, Turn: turn}
}
