package analysis

import (
	"sort"
	"strings"

	"github.com/seamusw/cubesolver/pkg/types"
)

// NGram is a move pattern that recurs across the analyzed sequences.
type NGram struct {
	N        int      `json:"n"`
	Sequence []string `json:"sequence"`
	Tokens   []uint8  `json:"-"`
	Count    int      `json:"count"`
}

// Notation returns the pattern in space-separated standard notation.
func (g NGram) Notation() string {
	return strings.Join(g.Sequence, " ")
}

// RollingHash implements a Rabin-Karp rolling hash over move tokens.
type RollingHash struct {
	base   uint64
	hash   uint64
	pow    uint64 // base^(n-1) for removal
	window []uint8
	n      int
}

// NewRollingHash creates a rolling hash for window size n.
func NewRollingHash(n int) *RollingHash {
	rh := &RollingHash{
		base:   31,
		n:      n,
		window: make([]uint8, 0, n),
	}
	rh.pow = 1
	for i := 0; i < n-1; i++ {
		rh.pow *= rh.base
	}
	return rh
}

// Add appends a token while the window is still filling.
func (rh *RollingHash) Add(token uint8) {
	if len(rh.window) < rh.n {
		rh.window = append(rh.window, token)
		rh.hash = rh.hash*rh.base + uint64(token)
	}
}

// Roll removes the oldest token and adds a new one.
func (rh *RollingHash) Roll(token uint8) {
	if len(rh.window) < rh.n {
		rh.Add(token)
		return
	}

	old := rh.window[0]
	rh.hash = (rh.hash-uint64(old)*rh.pow)*rh.base + uint64(token)

	copy(rh.window, rh.window[1:])
	rh.window[rh.n-1] = token
}

// Hash returns the current hash value.
func (rh *RollingHash) Hash() uint64 {
	return rh.hash
}

// Window returns a copy of the current window.
func (rh *RollingHash) Window() []uint8 {
	result := make([]uint8, len(rh.window))
	copy(result, rh.window)
	return result
}

// Ready reports whether the window is full.
func (rh *RollingHash) Ready() bool {
	return len(rh.window) == rh.n
}

// ngramEntry tracks one pattern's occurrence count during mining.
type ngramEntry struct {
	tokens []uint8
	count  int
}

// MinePatterns finds the topK most frequent move patterns of length minN
// through maxN across the given sequences. Patterns never span sequence
// boundaries, occurrences may overlap within a sequence, and only patterns
// seen at least twice are reported. Results are ordered by count, then by
// length (longer first), then by notation.
func MinePatterns(sequences [][]types.Move, minN, maxN, topK int) []NGram {
	var entries []*ngramEntry

	// One table per length so hashes of different-length windows can
	// never collide with each other.
	for n := minN; n <= maxN; n++ {
		counts := make(map[uint64]*ngramEntry)
		for _, moves := range sequences {
			countSequence(counts, moves, n)
		}
		for _, entry := range counts {
			if entry.count >= 2 {
				entries = append(entries, entry)
			}
		}
	}

	result := make([]NGram, len(entries))
	for i, entry := range entries {
		sequence := make([]string, len(entry.tokens))
		for j, token := range entry.tokens {
			sequence[j] = types.MoveFromToken(token).Notation()
		}
		result[i] = NGram{
			N:        len(entry.tokens),
			Sequence: sequence,
			Tokens:   entry.tokens,
			Count:    entry.count,
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		if result[i].N != result[j].N {
			return result[i].N > result[j].N
		}
		return result[i].Notation() < result[j].Notation()
	})

	if len(result) > topK {
		result = result[:topK]
	}
	return result
}

// countSequence counts every n-window of moves into the shared table.
func countSequence(counts map[uint64]*ngramEntry, moves []types.Move, n int) {
	if len(moves) < n {
		return
	}

	tokens := make([]uint8, len(moves))
	for i, m := range moves {
		tokens[i] = m.Token()
	}

	rh := NewRollingHash(n)
	for i := 0; i < n-1; i++ {
		rh.Add(tokens[i])
	}

	for i := n - 1; i < len(tokens); i++ {
		rh.Roll(tokens[i])
		if !rh.Ready() {
			continue
		}

		hash := rh.Hash()
		if entry, exists := counts[hash]; exists {
			// Verify the window on a hash hit so collisions cannot
			// merge distinct patterns.
			if tokensEqual(entry.tokens, rh.window) {
				entry.count++
			}
			continue
		}
		counts[hash] = &ngramEntry{tokens: rh.Window(), count: 1}
	}
}

func tokensEqual(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
