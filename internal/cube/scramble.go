package cube

import (
	"math/rand/v2"

	"github.com/seamusw/cubesolver/pkg/types"
)

// opposite pairs for scramble filtering.
var oppositeFace = map[types.Face]types.Face{
	types.FaceR: types.FaceL,
	types.FaceL: types.FaceR,
	types.FaceU: types.FaceD,
	types.FaceD: types.FaceU,
	types.FaceF: types.FaceB,
	types.FaceB: types.FaceF,
}

// Scramble generates a random move sequence of the given length.
// Consecutive moves never share a face, and a move never repeats the face
// before last when the intervening move was on the opposite face (those
// sequences collapse to shorter ones, e.g. R L R == R2 L).
func Scramble(rng *rand.Rand, length int) []types.Move {
	if length <= 0 {
		return nil
	}

	alphabet := types.Alphabet()
	moves := make([]types.Move, 0, length)

	for len(moves) < length {
		m := alphabet[rng.IntN(len(alphabet))]

		if n := len(moves); n > 0 {
			prev := moves[n-1]
			if m.Face == prev.Face {
				continue
			}
			if n > 1 && moves[n-2].Face == m.Face && oppositeFace[prev.Face] == m.Face {
				continue
			}
		}

		moves = append(moves, m)
	}

	return moves
}

// Scrambled returns a cube scrambled by a fresh random sequence, along
// with the sequence that produced it.
func Scrambled(rng *rand.Rand, length int) (Cube, []types.Move) {
	moves := Scramble(rng, length)
	return Solved().ApplySequence(moves), moves
}
