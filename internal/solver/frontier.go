package solver

// node is a frontier entry: a state, the move that produced it, and the
// search bookkeeping needed for ordering. via is unset for the root.
type node[S comparable, M any] struct {
	state    S
	via      M
	hasVia   bool
	depth    int
	estimate int
}

// cost is the node's total ordering key: moves spent plus the admissible
// estimate of moves remaining.
func (n node[S, M]) cost() int {
	return n.depth + n.estimate
}

// frontier is a min-heap of generated-but-unexpanded nodes, ordered by
// cost; equal-cost ties prefer the smaller estimate so near-solved
// branches are completed first. States may appear more than once (reached
// by different paths); deduplication happens at expansion time.
type frontier[S comparable, M any] []node[S, M]

func (f frontier[S, M]) Len() int { return len(f) }

func (f frontier[S, M]) Less(i, j int) bool {
	ci, cj := f[i].cost(), f[j].cost()
	if ci != cj {
		return ci < cj
	}
	return f[i].estimate < f[j].estimate
}

func (f frontier[S, M]) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
}

func (f *frontier[S, M]) Push(x any) {
	*f = append(*f, x.(node[S, M]))
}

func (f *frontier[S, M]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
