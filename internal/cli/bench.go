package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/seamusw/cubesolver/internal/analysis"
	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/solver"
	"github.com/seamusw/cubesolver/internal/storage"
	"github.com/seamusw/cubesolver/pkg/types"
)

var (
	benchCount     int
	benchMoves     int
	benchSeed      int64
	benchHeuristic string
	benchMaxBound  int
	benchWorkers   int
	benchJSON      bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the solver over random scrambles",
	Long: `Solve a batch of random scrambles and report aggregate statistics:
solution lengths, search iterations, node counts, and throughput.

Solves run concurrently; one solver instance is shared across workers.
Use --seed for a reproducible scramble batch, and --json for
machine-readable output.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().IntVar(&benchCount, "count", 20, "Number of scrambles to solve")
	benchCmd.Flags().IntVar(&benchMoves, "moves", 5, "Scramble length")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", 0, "Random seed for scramble generation (0 = time-based)")
	benchCmd.Flags().StringVar(&benchHeuristic, "heuristic", "facelet", "Search heuristic: zero, facelet, or corner")
	benchCmd.Flags().IntVar(&benchMaxBound, "max-bound", solver.DefaultMaxBound, "Give up on a scramble when the bound would exceed this")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", runtime.NumCPU(), "Concurrent solves")
	benchCmd.Flags().BoolVar(&benchJSON, "json", false, "Emit the summary as JSON")
}

func runBench(cmd *cobra.Command, args []string) error {
	if benchCount < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	if benchMoves < 1 {
		return fmt.Errorf("--moves must be at least 1")
	}
	if benchWorkers < 1 {
		return fmt.Errorf("--workers must be at least 1")
	}

	var db *storage.DB
	if benchHeuristic == "corner" {
		var err error
		db, err = openDB()
		if err != nil {
			return err
		}
		defer db.Close()
	}

	heur, err := buildHeuristic(benchHeuristic, db)
	if err != nil {
		return err
	}

	// Generate the whole batch up front from one source so --seed yields
	// the same scrambles regardless of worker scheduling.
	rng := newRand(benchSeed)
	scrambles := make([][]types.Move, benchCount)
	for i := range scrambles {
		scrambles[i] = cube.Scramble(rng, benchMoves)
	}

	s := solver.New[cube.Cube, types.Move](cube.Rules{}, heur,
		solver.WithMaxBound(benchMaxBound),
		solver.WithLogger(newLogger()),
	)

	if !benchJSON {
		fmt.Printf("Benchmark: %d scrambles x %d moves (%s heuristic, %d workers)\n",
			benchCount, benchMoves, benchHeuristic, benchWorkers)
	}

	results := make([]*solver.Result[types.Move], benchCount)
	wallStart := time.Now()

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(benchWorkers)
	for i := range scrambles {
		g.Go(func() error {
			start := cube.Solved().ApplySequence(scrambles[i])
			res, err := s.Solve(ctx, start)
			if err != nil {
				return fmt.Errorf("scramble %q: %w", types.FormatMoves(scrambles[i]), err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	wall := time.Since(wallStart)
	summary := analysis.Summarize(results)

	if benchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Println()
	fmt.Printf("  Solves:          %d\n", summary.Solves)
	fmt.Printf("  Moves:           %.2f avg (min %d, max %d)\n", summary.AvgMoves, summary.MinMoves, summary.MaxMoves)
	fmt.Printf("  Iterations:      %.1f avg\n", summary.AvgIterations)
	fmt.Printf("  Nodes expanded:  %d total, %.0f avg\n", summary.TotalNodesExpanded, summary.AvgNodesExpanded)
	fmt.Printf("  Solve time:      %.0fms avg\n", summary.AvgElapsedMs)
	fmt.Printf("  Wall time:       %s\n", formatDuration(wall))
	if wall > 0 {
		fmt.Printf("  Throughput:      %.1f solves/s\n", float64(summary.Solves)/wall.Seconds())
	}

	return nil
}
