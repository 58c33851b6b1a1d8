package cubesolver

import (
	"github.com/rs/zerolog"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/heuristic"
	"github.com/seamusw/cubesolver/internal/solver"
)

// Option configures a solve.
type Option func(*config)

type config struct {
	maxBound    int
	guided      bool
	cornerTable []byte
	logger      zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		maxBound: solver.DefaultMaxBound,
		guided:   true,
		logger:   zerolog.Nop(),
	}
}

func (c *config) buildHeuristic() (solver.Heuristic[cube.Cube], error) {
	if c.cornerTable != nil {
		return heuristic.NewCornerPattern(c.cornerTable)
	}
	if c.guided {
		return heuristic.FaceletDistance{}, nil
	}
	return heuristic.Zero{}, nil
}

// WithMaxBound caps the search bound. The solve fails with
// ErrBoundExceeded once the next bound would pass the cap.
// The default is 100.
func WithMaxBound(n int) Option {
	return func(c *config) {
		c.maxBound = n
	}
}

// WithCornerTable guides the search with a corner pattern database:
// one byte per corner configuration, a lower bound on moves-to-solve.
// Solve fails with ErrPatternSize if the table has the wrong length.
func WithCornerTable(table []byte) Option {
	return func(c *config) {
		c.cornerTable = table
	}
}

// WithoutHeuristic disables search guidance entirely, degrading to
// uniform-cost search. Solutions stay optimal but searches expand far
// more states; mainly useful for comparing heuristics.
func WithoutHeuristic() Option {
	return func(c *config) {
		c.guided = false
		c.cornerTable = nil
	}
}

// WithLogger attaches a logger; search progress is logged at debug
// level.
func WithLogger(log zerolog.Logger) Option {
	return func(c *config) {
		c.logger = log
	}
}
