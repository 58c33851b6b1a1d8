package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/heuristic"
	"github.com/seamusw/cubesolver/internal/notation"
	"github.com/seamusw/cubesolver/internal/solver"
	"github.com/seamusw/cubesolver/internal/storage"
	"github.com/seamusw/cubesolver/pkg/types"
)

var (
	solveScramble  string
	solveRandom    bool
	solveMoves     int
	solveSeed      int64
	solveHeuristic string
	solveMaxBound  int
	solveTimeout   time.Duration
	solveSave      bool
	solveShow      bool
	solveVerbal    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a scrambled cube",
	Long: `Search for a shortest move sequence that solves a scrambled cube.

The scramble is given in standard face-turn notation (R, R', R2, ...), or
generated randomly with --random. The search deepens its cost bound until a
solution is found, so the reported solution is move-optimal.

Heuristics:
  zero     - No guidance (uniform-cost search, slow beyond short scrambles)
  facelet  - Misplaced-facelet lower bound (no database needed)
  corner   - Corner pattern database (import one first with 'cubesolver pdb import')`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Scramble sequence in standard notation (e.g. \"R U F' D2\")")
	solveCmd.Flags().BoolVar(&solveRandom, "random", false, "Generate a random scramble instead of --scramble")
	solveCmd.Flags().IntVar(&solveMoves, "moves", 5, "Random scramble length (with --random)")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "Random seed for --random (0 = time-based)")
	solveCmd.Flags().StringVar(&solveHeuristic, "heuristic", "facelet", "Search heuristic: zero, facelet, or corner")
	solveCmd.Flags().IntVar(&solveMaxBound, "max-bound", solver.DefaultMaxBound, "Give up when the search bound would exceed this")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Abort the search after this duration (0 = no limit)")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Save the solve to the database")
	solveCmd.Flags().BoolVar(&solveShow, "show", false, "Render the scrambled cube before solving")
	solveCmd.Flags().BoolVar(&solveVerbal, "verbal", false, "Print the solution as spoken turn instructions")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble, err := scrambleFromFlags()
	if err != nil {
		return err
	}

	// The corner heuristic loads its table from the database, and --save
	// writes the finished solve back. Open once, share both ways.
	var db *storage.DB
	if solveSave || solveHeuristic == "corner" {
		db, err = openDB()
		if err != nil {
			return err
		}
		defer db.Close()
	}

	heur, err := buildHeuristic(solveHeuristic, db)
	if err != nil {
		return err
	}

	start := cube.Solved().ApplySequence(scramble)

	if solveShow {
		fmt.Printf("Scramble: %s\n\n", types.FormatMoves(scramble))
		fmt.Println(renderCube(start))
	}

	ctx := context.Background()
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}

	s := solver.New[cube.Cube, types.Move](cube.Rules{}, heur,
		solver.WithMaxBound(solveMaxBound),
		solver.WithLogger(newLogger()),
	)

	res, err := s.Solve(ctx, start)
	if err != nil {
		switch {
		case errors.Is(err, solver.ErrBoundExceeded):
			return fmt.Errorf("no solution within %d moves: %w\nRaise the limit with --max-bound", solveMaxBound, err)
		case errors.Is(err, context.DeadlineExceeded):
			return fmt.Errorf("search timed out after %s", solveTimeout)
		default:
			return err
		}
	}

	printSolveResult(scramble, solveHeuristic, res)

	if solveSave {
		solveID, err := saveSolve(db, scramble, solveHeuristic, res)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Printf("Saved solve: %s\n", solveID)
		fmt.Printf("View it with: cubesolver history show %s\n", solveID)
	}

	return nil
}

// scrambleFromFlags resolves the scramble from --scramble or --random.
func scrambleFromFlags() ([]types.Move, error) {
	if solveScramble != "" && solveRandom {
		return nil, fmt.Errorf("--scramble and --random are mutually exclusive")
	}

	if solveScramble != "" {
		moves, err := types.ParseMoves(solveScramble)
		if err != nil {
			return nil, fmt.Errorf("invalid scramble: %w", err)
		}
		return moves, nil
	}

	if solveRandom {
		return cube.Scramble(newRand(solveSeed), solveMoves), nil
	}

	return nil, fmt.Errorf("provide a scramble with --scramble or use --random")
}

// newRand builds the scramble source. Seed 0 means time-based.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// buildHeuristic resolves a heuristic by name. db is only needed for the
// corner pattern database and may be nil otherwise.
func buildHeuristic(name string, db *storage.DB) (solver.Heuristic[cube.Cube], error) {
	switch name {
	case "zero":
		return heuristic.Zero{}, nil
	case "facelet":
		return heuristic.FaceletDistance{}, nil
	case "corner":
		repo := storage.NewPatternRepository(db)
		table, err := repo.Load(heuristic.CornerPatternName)
		if err != nil {
			if errors.Is(err, storage.ErrPatternNotFound) {
				return nil, fmt.Errorf("no corner pattern table in database\nImport one with: cubesolver pdb import <file>")
			}
			return nil, fmt.Errorf("failed to load corner pattern table: %w", err)
		}
		return heuristic.NewCornerPattern(table)
	default:
		return nil, fmt.Errorf("unknown heuristic %q (use zero, facelet, or corner)", name)
	}
}

func printSolveResult(scramble []types.Move, heurName string, res *solver.Result[types.Move]) {
	if res.Length() == 0 {
		fmt.Println("Cube is already solved")
		return
	}

	fmt.Printf("Solved in %s\n", formatDuration(res.Elapsed))
	fmt.Println()
	fmt.Printf("Scramble: %s\n", types.FormatMoves(scramble))
	fmt.Printf("Solution: %s\n", types.FormatMoves(res.Moves))
	fmt.Printf("Length:   %d moves\n", res.Length())
	if solveVerbal {
		fmt.Println()
		fmt.Println("Steps (white on top, green in front):")
		for i, m := range res.Moves {
			fmt.Printf("  %2d. %-3s %s\n", i+1, m.Notation(), notation.Verbal(m))
		}
	}
	fmt.Println()
	fmt.Println("Search statistics:")
	fmt.Printf("  Heuristic:       %s\n", heurName)
	fmt.Printf("  Iterations:      %d\n", res.Iterations)
	fmt.Printf("  Final bound:     %d\n", res.FinalBound)
	fmt.Printf("  Nodes expanded:  %d\n", res.NodesExpanded)
	fmt.Printf("  Nodes generated: %d\n", res.NodesGenerated)
	if res.Elapsed > 0 {
		rate := float64(res.NodesExpanded) / res.Elapsed.Seconds()
		fmt.Printf("  Rate:            %.0f nodes/s\n", rate)
	}
}

func saveSolve(db *storage.DB, scramble []types.Move, heurName string, res *solver.Result[types.Move]) (string, error) {
	repo := storage.NewSolveRepository(db)
	solveID, err := repo.Create(storage.SolveRecord{
		Scramble:       types.FormatMoves(scramble),
		Solution:       types.FormatMoves(res.Moves),
		MoveCount:      res.Length(),
		Heuristic:      heurName,
		NodesExpanded:  int64(res.NodesExpanded),
		NodesGenerated: int64(res.NodesGenerated),
		Iterations:     res.Iterations,
		FinalBound:     res.FinalBound,
		DurationMs:     res.Elapsed.Milliseconds(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to save solve: %w", err)
	}
	return solveID, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
