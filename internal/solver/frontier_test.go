package solver

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrontierPopOrder(t *testing.T) {
	var f frontier[int, int]

	// cost = depth + estimate
	heap.Push(&f, node[int, int]{state: 1, depth: 4, estimate: 0}) // cost 4
	heap.Push(&f, node[int, int]{state: 2, depth: 1, estimate: 2}) // cost 3, est 2
	heap.Push(&f, node[int, int]{state: 3, depth: 0, estimate: 2}) // cost 2
	heap.Push(&f, node[int, int]{state: 4, depth: 3, estimate: 0}) // cost 3, est 0

	var order []int
	for f.Len() > 0 {
		n := heap.Pop(&f).(node[int, int])
		order = append(order, n.state)
	}

	// Ascending cost; the cost-3 tie is broken toward the smaller
	// estimate (state 4 before state 2).
	require.Equal(t, []int{3, 4, 2, 1}, order)
}

func TestFrontierAllowsDuplicateStates(t *testing.T) {
	var f frontier[int, int]

	heap.Push(&f, node[int, int]{state: 7, depth: 2, estimate: 0})
	heap.Push(&f, node[int, int]{state: 7, depth: 1, estimate: 0})

	require.Equal(t, 2, f.Len())
	first := heap.Pop(&f).(node[int, int])
	require.Equal(t, 1, first.depth, "cheaper duplicate pops first")
}
