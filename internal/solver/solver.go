// Package solver implements an iterative-deepening best-first search over
// a finite, reversible move alphabet: bounded expansions ordered by
// depth + estimate, with the bound escalating to the smallest pruned cost
// until a solved state falls within it.
//
// The engine is generic over the state and move types. Any pair of Rules
// and Heuristic implementations can be swapped in without touching the
// engine; with an admissible heuristic the first solution found is optimal.
package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Rules binds a state type to its move alphabet. Implementations must be
// deterministic, and Invert must exactly undo Apply:
// Invert(Apply(s, m), m) == s for every reachable s and alphabet move m.
type Rules[S comparable, M any] interface {
	// Apply returns the state reached from s by move m.
	Apply(s S, m M) S
	// Invert returns the state that m was applied to, given the result s.
	Invert(s S, m M) S
	// Solved reports whether s is the goal configuration.
	Solved(s S) bool
	// Moves enumerates the full move alphabet.
	Moves() []M
}

// Heuristic estimates the number of moves remaining to the goal. The
// estimate must be admissible (never greater than the true distance)
// for the solver's optimality and termination guarantees to hold. A
// heuristic that always returns 0 degrades the search to uniform cost:
// still correct, but it expands far more nodes.
type Heuristic[S comparable] interface {
	Estimate(s S) int
}

// HeuristicFunc adapts a plain function to the Heuristic interface.
type HeuristicFunc[S comparable] func(S) int

// Estimate calls f(s).
func (f HeuristicFunc[S]) Estimate(s S) int { return f(s) }

// DefaultMaxBound is the ceiling applied when no explicit bound ceiling
// is configured. Callers searching domains with a known diameter should
// set a tighter ceiling via WithMaxBound.
const DefaultMaxBound = 100

type config struct {
	maxBound     int
	initialBound int
	log          zerolog.Logger
	progress     func(ProgressUpdate)
}

func defaultConfig() config {
	return config{
		maxBound: DefaultMaxBound,
		log:      zerolog.Nop(),
	}
}

// Option configures a Solver.
type Option func(*config)

// WithMaxBound sets the absolute bound ceiling. The solver fails with
// ErrBoundExceeded rather than escalate past it.
func WithMaxBound(n int) Option {
	return func(c *config) {
		c.maxBound = n
	}
}

// WithInitialBound overrides the first iteration's bound. The default is
// the root's heuristic estimate (at least 1).
func WithInitialBound(n int) Option {
	return func(c *config) {
		c.initialBound = n
	}
}

// WithLogger attaches a logger; iteration progress is logged at debug
// level and completion at info level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

// WithProgress registers a callback invoked at the start of every
// iteration with cumulative counters. The callback runs on the solving
// goroutine and should return quickly.
func WithProgress(fn func(ProgressUpdate)) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// Solver runs iterative-deepening searches for one Rules/Heuristic pair.
// A Solver holds no per-solve state: each Solve call builds its own search
// context, so independent solves may run concurrently on one Solver.
type Solver[S comparable, M any] struct {
	rules Rules[S, M]
	heur  Heuristic[S]
	cfg   config
}

// New creates a solver from a rules implementation and a heuristic.
func New[S comparable, M any](rules Rules[S, M], heur Heuristic[S], opts ...Option) *Solver[S, M] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Solver[S, M]{rules: rules, heur: heur, cfg: cfg}
}

// Solve searches for a move sequence from root to the goal configuration.
// It blocks until a solution is found, the search fails (ErrNoProgress,
// ErrBoundExceeded), or ctx is cancelled. An already-solved root yields an
// empty solution.
//
// The driver is a small state machine: SEARCHING(bound) runs one bounded
// expansion; Exhausted escalates to the smallest over-bound cost and
// re-enters SEARCHING; Solved reconstructs the path and terminates.
func (s *Solver[S, M]) Solve(ctx context.Context, root S) (*Result[M], error) {
	start := time.Now()
	res := &Result[M]{Moves: []M{}}

	if s.rules.Solved(root) {
		res.Elapsed = time.Since(start)
		return res, nil
	}

	bound := s.cfg.initialBound
	if bound <= 0 {
		bound = s.heur.Estimate(root)
		if bound < 1 {
			bound = 1
		}
	}

	for {
		res.Iterations++
		if s.cfg.progress != nil {
			s.cfg.progress(ProgressUpdate{
				Iteration:     res.Iterations,
				Bound:         bound,
				NodesExpanded: res.NodesExpanded,
			})
		}
		s.cfg.log.Debug().
			Int("iteration", res.Iterations).
			Int("bound", bound).
			Msg("deepening")

		sc := newSearchContext(s.rules, s.heur)
		out, err := sc.exploreWithBound(ctx, root, bound)
		res.NodesExpanded += sc.expanded
		res.NodesGenerated += sc.generated
		if err != nil {
			return nil, err
		}

		switch out.kind {
		case outcomeSolved:
			moves, err := sc.reconstructPath(root, out.goal)
			if err != nil {
				return nil, err
			}
			res.Moves = moves
			res.FinalBound = bound
			res.Elapsed = time.Since(start)
			s.cfg.log.Info().
				Int("length", len(moves)).
				Int("bound", bound).
				Int("iterations", res.Iterations).
				Uint64("nodes_expanded", res.NodesExpanded).
				Dur("elapsed", res.Elapsed).
				Msg("solved")
			return res, nil

		case outcomeExhausted:
			if !out.hasNext {
				s.cfg.log.Warn().Int("bound", bound).Msg("search space exhausted")
				return nil, fmt.Errorf("no solution reachable at bound %d: %w", bound, ErrNoProgress)
			}
			if out.nextBound > s.cfg.maxBound {
				s.cfg.log.Warn().
					Int("next_bound", out.nextBound).
					Int("ceiling", s.cfg.maxBound).
					Msg("bound ceiling reached")
				return nil, fmt.Errorf("next bound %d above ceiling %d: %w", out.nextBound, s.cfg.maxBound, ErrBoundExceeded)
			}
			// Escalation is strictly increasing: only over-bound costs
			// feed nextBound.
			bound = out.nextBound
		}
	}
}
