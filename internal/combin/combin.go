// Package combin provides the counting functions used to index heuristic
// pattern tables: factorials, permutation counts, and combination counts.
//
// Results are 32-bit unsigned; the largest factorial that fits is 12!.
// Calls outside that domain panic rather than silently wrapping.
package combin

// MaxFactorialInput is the largest n for which Factorial(n) fits in uint32.
const MaxFactorialInput = 12

// factorials holds n! for n in [0, MaxFactorialInput].
var factorials = [MaxFactorialInput + 1]uint32{
	1, 1, 2, 6, 24, 120, 720, 5040, 40320,
	362880, 3628800, 39916800, 479001600,
}

// Factorial returns n!.
// It panics if n > MaxFactorialInput, where the result would overflow.
func Factorial(n uint32) uint32 {
	if n > MaxFactorialInput {
		panic("combin: factorial input out of range")
	}
	return factorials[n]
}

// PermutationCount returns the number of k-permutations of n items,
// n!/(n-k)!. It returns 0 when k > n.
func PermutationCount(n, k uint32) uint32 {
	if k > n {
		return 0
	}
	return Factorial(n) / Factorial(n-k)
}

// CombinationCount returns the number of k-combinations of n items,
// n!/((n-k)!·k!). It returns 0 when n < k.
func CombinationCount(n, k uint32) uint32 {
	if n < k {
		return 0
	}
	return Factorial(n) / (Factorial(n-k) * Factorial(k))
}
