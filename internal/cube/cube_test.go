package cube

import (
	"math/rand/v2"
	"testing"

	"github.com/seamusw/cubesolver/pkg/types"
)

func TestSolvedCubeIsSolved(t *testing.T) {
	c := Solved()
	if !c.IsSolved() {
		t.Error("Solved() cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := Solved().Apply(types.Move{Face: types.FaceR, Turn: types.TurnCW})
	if c.IsSolved() {
		t.Error("cube should not be solved after R move")
	}
}

func TestQuarterTurnsFourTimesIdentity(t *testing.T) {
	for _, face := range []types.Face{types.FaceU, types.FaceD, types.FaceF, types.FaceB, types.FaceR, types.FaceL} {
		c := Solved()
		m := types.Move{Face: face, Turn: types.TurnCW}
		for i := 0; i < 4; i++ {
			c = c.Apply(m)
		}
		if !c.IsSolved() {
			t.Errorf("%s x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestHalfTurnTwiceIdentity(t *testing.T) {
	m := types.Move{Face: types.FaceR, Turn: types.Turn180}
	c := Solved().Apply(m).Apply(m)
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(c.String())
	}
}

func TestSexyMoveSixTimesIdentity(t *testing.T) {
	// (R U R' U') x 6 = identity
	seq, err := types.ParseMoves("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	c := Solved()
	for i := 0; i < 6; i++ {
		c = c.ApplySequence(seq)
	}
	if !c.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

// Every move must invert exactly: c.Apply(m).Invert(m) == c, including
// from non-solved positions.
func TestApplyInvertRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	starts := []Cube{Solved()}
	for i := 0; i < 5; i++ {
		c, _ := Scrambled(rng, 12)
		starts = append(starts, c)
	}

	for _, start := range starts {
		for _, m := range types.Alphabet() {
			got := start.Apply(m).Invert(m)
			if got != start {
				t.Fatalf("Apply(%s) then Invert(%s) did not restore the cube", m, m)
			}
		}
	}
}

func TestApplyDoesNotMutateReceiver(t *testing.T) {
	c := Solved()
	_ = c.Apply(types.Move{Face: types.FaceF, Turn: types.TurnCW})
	if !c.IsSolved() {
		t.Error("Apply must not mutate the receiver")
	}
}

func TestCubeEqualityAsMapKey(t *testing.T) {
	seq, err := types.ParseMoves("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}

	a := Solved().ApplySequence(seq)
	b := Solved().ApplySequence(seq)
	if a != b {
		t.Fatal("same sequence should give equal cube values")
	}

	seen := map[Cube]int{}
	seen[a]++
	seen[b]++
	if len(seen) != 1 || seen[a] != 2 {
		t.Error("equal cubes should collide as map keys")
	}
}

// Pin the orientation convention: R on a solved cube lifts the front
// column onto U and pushes U onto B.
func TestRMoveStripPlacement(t *testing.T) {
	c := Solved().Apply(types.Move{Face: types.FaceR, Turn: types.TurnCW})

	for _, i := range []int{2, 5, 8} {
		if c.Facelets[U][i] != Green {
			t.Errorf("U[%d] = %v, want Green from F", i, c.Facelets[U][i])
		}
		if c.Facelets[F][i] != Yellow {
			t.Errorf("F[%d] = %v, want Yellow from D", i, c.Facelets[F][i])
		}
		if c.Facelets[D][i] != Blue {
			t.Errorf("D[%d] = %v, want Blue from B", i, c.Facelets[D][i])
		}
	}
	for _, i := range []int{0, 3, 6} {
		if c.Facelets[B][i] != White {
			t.Errorf("B[%d] = %v, want White from U", i, c.Facelets[B][i])
		}
	}
}

func TestScrambleAvoidsRedundantMoves(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 50; trial++ {
		moves := Scramble(rng, 25)
		if len(moves) != 25 {
			t.Fatalf("scramble length = %d, want 25", len(moves))
		}
		for i := 1; i < len(moves); i++ {
			if moves[i].Face == moves[i-1].Face {
				t.Fatalf("consecutive moves on %s at %d: %s", moves[i].Face, i, types.FormatMoves(moves))
			}
		}
	}
}

func TestScrambleReversal(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	c, moves := Scrambled(rng, 20)
	if c.IsSolved() {
		t.Fatal("20-move scramble should not leave the cube solved")
	}

	c = c.ApplySequence(types.InverseSequence(moves))
	if !c.IsSolved() {
		t.Error("applying the inverse sequence should restore solved")
		t.Log(c.String())
	}
}

func TestMisplacedFacelets(t *testing.T) {
	if n := Solved().MisplacedFacelets(); n != 0 {
		t.Errorf("solved cube has %d misplaced facelets, want 0", n)
	}

	c := Solved().Apply(types.Move{Face: types.FaceR, Turn: types.TurnCW})
	// A quarter turn relocates the 12 side facelets; the turned face's own
	// stickers keep their color. Centers never move.
	if n := c.MisplacedFacelets(); n != 12 {
		t.Errorf("after R: %d misplaced facelets, want 12", n)
	}
}
