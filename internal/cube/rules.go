package cube

import "github.com/seamusw/cubesolver/pkg/types"

// Rules adapts the facelet cube to the solver's state interface: pure
// apply/invert over the 18-move alphabet with Cube's value equality.
type Rules struct{}

// Apply returns the cube reached from c by move m.
func (Rules) Apply(c Cube, m types.Move) Cube {
	return c.Apply(m)
}

// Invert returns the cube that m was applied to, given the result c.
func (Rules) Invert(c Cube, m types.Move) Cube {
	return c.Invert(m)
}

// Solved reports whether c is the solved configuration.
func (Rules) Solved(c Cube) bool {
	return c.IsSolved()
}

// Moves enumerates the full 18-move alphabet.
func (Rules) Moves() []types.Move {
	return types.Alphabet()
}
