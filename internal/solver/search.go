package solver

import (
	"container/heap"
	"context"
	"slices"
)

// outcomeKind tags the result of one bounded expansion.
type outcomeKind uint8

const (
	outcomeSolved outcomeKind = iota
	outcomeExhausted
)

// outcome is the tagged result of exploreWithBound: either a solved state
// with its path cost, or exhaustion with the smallest over-bound cost seen
// (hasNext is false when the reachable graph offered no such candidate).
type outcome[S comparable] struct {
	kind      outcomeKind
	goal      S
	cost      int
	nextBound int
	hasNext   bool
}

// searchContext owns the per-iteration state of one bounded expansion:
// the frontier, the visited set, and the predecessor map. A fresh context
// is created for every iteration, so nothing leaks across iterations or
// across concurrent solves.
type searchContext[S comparable, M any] struct {
	rules Rules[S, M]
	heur  Heuristic[S]

	visited  map[S]bool
	pred     map[S]M
	frontier frontier[S, M]

	expanded  uint64
	generated uint64
}

func newSearchContext[S comparable, M any](rules Rules[S, M], heur Heuristic[S]) *searchContext[S, M] {
	return &searchContext[S, M]{
		rules: rules,
		heur:  heur,
	}
}

// exploreWithBound expands the state graph from root, visiting only nodes
// whose cost (depth + estimate) stays within bound. States are expanded at
// most once per call; re-enqueued duplicates are dropped when popped.
func (sc *searchContext[S, M]) exploreWithBound(ctx context.Context, root S, bound int) (outcome[S], error) {
	sc.visited = make(map[S]bool)
	sc.pred = make(map[S]M)
	sc.frontier = sc.frontier[:0]

	heap.Push(&sc.frontier, node[S, M]{
		state:    root,
		depth:    0,
		estimate: sc.heur.Estimate(root),
	})

	moves := sc.rules.Moves()
	next := 0
	hasNext := false

	for sc.frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return outcome[S]{}, err
		}

		n := heap.Pop(&sc.frontier).(node[S, M])
		if sc.visited[n.state] {
			continue
		}
		sc.visited[n.state] = true
		if n.hasVia {
			sc.pred[n.state] = n.via
		}
		sc.expanded++

		if sc.rules.Solved(n.state) {
			return outcome[S]{kind: outcomeSolved, goal: n.state, cost: n.depth}, nil
		}

		for _, m := range moves {
			succ := sc.rules.Apply(n.state, m)
			if sc.visited[succ] {
				continue
			}

			est := sc.heur.Estimate(succ)
			cost := n.depth + 1 + est
			if cost > bound {
				if !hasNext || cost < next {
					next = cost
					hasNext = true
				}
				continue
			}

			heap.Push(&sc.frontier, node[S, M]{
				state:    succ,
				via:      m,
				hasVia:   true,
				depth:    n.depth + 1,
				estimate: est,
			})
			sc.generated++
		}
	}

	return outcome[S]{kind: outcomeExhausted, nextBound: next, hasNext: hasNext}, nil
}

// reconstructPath walks the predecessor chain backward from the solved
// state: record the move that produced each state, invert it to step to
// the predecessor, stop at the root, then reverse into root-to-goal order.
func (sc *searchContext[S, M]) reconstructPath(root, goal S) ([]M, error) {
	path := []M{}
	cur := goal

	for cur != root {
		m, ok := sc.pred[cur]
		if !ok {
			return nil, ErrBrokenPath
		}
		path = append(path, m)
		cur = sc.rules.Invert(cur, m)

		// The chain cannot be longer than the number of expanded states;
		// anything past that means Invert is not undoing Apply.
		if len(path) > len(sc.visited) {
			return nil, ErrBrokenPath
		}
	}

	slices.Reverse(path)
	return path, nil
}
