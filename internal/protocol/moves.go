package protocol

import "github.com/seamusw/cubesolver/pkg/types"

// RotationToMove converts a rotation event to a canonical move.
func RotationToMove(rot RotationEvent, timestampMs int64) types.Move {
	turn := types.TurnCCW
	if rot.Clockwise {
		turn = types.TurnCW
	}

	return types.Move{
		Face:      rot.Face,
		Turn:      turn,
		Timestamp: timestampMs,
	}
}

// RotationsToMoves converts rotation events to canonical moves, merging
// adjacent same-face turns (two R clockwise become R2).
func RotationsToMoves(rotations []RotationEvent, timestampMs int64) []types.Move {
	if len(rotations) == 0 {
		return nil
	}

	moves := make([]types.Move, 0, len(rotations))
	for _, rot := range rotations {
		moves = append(moves, RotationToMove(rot, timestampMs))
	}

	return types.MergeMoves(moves)
}
