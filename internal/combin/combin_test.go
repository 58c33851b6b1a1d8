package combin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorial(t *testing.T) {
	cases := []struct {
		n    uint32
		want uint32
	}{
		{0, 1},
		{1, 1},
		{5, 120},
		{12, 479001600},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Factorial(c.n), "Factorial(%d)", c.n)
	}
}

func TestFactorialOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { Factorial(13) })
}

func TestPermutationCount(t *testing.T) {
	cases := []struct {
		n, k uint32
		want uint32
	}{
		{5, 2, 20},
		{8, 8, 40320},
		{8, 0, 1},
		{3, 5, 0},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, PermutationCount(c.n, c.k), "PermutationCount(%d, %d)", c.n, c.k)
	}
}

func TestCombinationCount(t *testing.T) {
	cases := []struct {
		n, k uint32
		want uint32
	}{
		{5, 2, 10},
		{3, 5, 0},
		{12, 6, 924},
		{7, 0, 1},
		{7, 7, 1},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, CombinationCount(c.n, c.k), "CombinationCount(%d, %d)", c.n, c.k)
	}
}

// C(n,k) = C(n-1,k-1) + C(n-1,k) over the whole safe domain.
func TestCombinationPascal(t *testing.T) {
	for n := uint32(1); n <= 12; n++ {
		for k := uint32(1); k <= n; k++ {
			assert.Equal(t,
				CombinationCount(n-1, k-1)+CombinationCount(n-1, k),
				CombinationCount(n, k),
				"Pascal at n=%d k=%d", n, k)
		}
	}
}
