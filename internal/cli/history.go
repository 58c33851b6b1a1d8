package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/analysis"
	"github.com/seamusw/cubesolver/internal/storage"
	"github.com/seamusw/cubesolver/pkg/types"
)

var (
	historyLimit      int
	historyLast       bool
	historyStatsLimit int
	historyStatsJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage saved solves",
	Long:  `Commands for listing, inspecting, and deleting solves saved with 'cubesolver solve --save'.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent saved solves",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show details of a saved solve",
	Long: `Display a saved solve: scramble, solution, and search statistics.

Use --last to show the most recent solve.`,
	RunE: runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <solve-id>",
	Short: "Delete a saved solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate statistics across saved solves",
	Long: `Summarize saved solves: solution lengths, search effort per heuristic,
and move patterns that recur across solutions.`,
	RunE: runHistoryStats,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent solve")

	historyCmd.AddCommand(historyDeleteCmd)

	historyCmd.AddCommand(historyStatsCmd)
	historyStatsCmd.Flags().IntVar(&historyStatsLimit, "limit", 100, "Aggregate over the most recent N solves")
	historyStatsCmd.Flags().BoolVar(&historyStatsJSON, "json", false, "Output the report as JSON")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	if len(solves) == 0 {
		fmt.Println("No solves saved yet")
		fmt.Println("Save one with: cubesolver solve --random --save")
		return nil
	}

	fmt.Printf("Saved solves (showing %d):\n", len(solves))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-6s  %-9s  %s\n", "ID", "Created", "Moves", "Heuristic", "Duration")
	fmt.Println("------------------------------------  --------------------  ------  ---------  --------")

	for _, s := range solves {
		fmt.Printf("%-36s  %-20s  %-6d  %-9s  %s\n",
			s.SolveID,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			s.MoveCount,
			s.Heuristic,
			formatDuration(time.Duration(s.DurationMs)*time.Millisecond),
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	var solveID string
	if historyLast {
		solves, err := repo.List(1)
		if err != nil {
			return fmt.Errorf("failed to get latest solve: %w", err)
		}
		if len(solves) == 0 {
			return fmt.Errorf("no solves found")
		}
		solveID = solves[0].SolveID
	} else if len(args) > 0 {
		solveID = args[0]
	} else {
		return fmt.Errorf("please provide a solve ID or use --last")
	}

	solve, err := repo.Get(solveID)
	if err != nil {
		return fmt.Errorf("failed to get solve: %w", err)
	}
	if solve == nil {
		return fmt.Errorf("solve not found: %s", solveID)
	}

	fmt.Println("Solve Details")
	fmt.Println("=============")
	fmt.Println()
	fmt.Printf("ID:      %s\n", solve.SolveID)
	fmt.Printf("Created: %s\n", solve.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Println()
	fmt.Printf("Scramble: %s\n", solve.Scramble)
	fmt.Printf("Solution: %s\n", solve.Solution)
	fmt.Printf("Length:   %d moves\n", solve.MoveCount)
	fmt.Println()
	fmt.Println("Search statistics:")
	fmt.Printf("  Heuristic:       %s\n", solve.Heuristic)
	fmt.Printf("  Iterations:      %d\n", solve.Iterations)
	fmt.Printf("  Final bound:     %d\n", solve.FinalBound)
	fmt.Printf("  Nodes expanded:  %d\n", solve.NodesExpanded)
	fmt.Printf("  Nodes generated: %d\n", solve.NodesGenerated)
	fmt.Printf("  Duration:        %s\n", formatDuration(time.Duration(solve.DurationMs)*time.Millisecond))

	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solve, err := repo.Get(args[0])
	if err != nil {
		return fmt.Errorf("failed to get solve: %w", err)
	}
	if solve == nil {
		return fmt.Errorf("solve not found: %s", args[0])
	}

	if err := repo.Delete(solve.SolveID); err != nil {
		return err
	}

	fmt.Printf("Deleted solve: %s\n", solve.SolveID)
	return nil
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	if historyStatsLimit < 1 {
		return fmt.Errorf("--limit must be at least 1")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solves, err := repo.List(historyStatsLimit)
	if err != nil {
		return fmt.Errorf("failed to list solves: %w", err)
	}

	if len(solves) == 0 {
		fmt.Println("No solves saved yet")
		fmt.Println("Save one with: cubesolver solve --random --save")
		return nil
	}

	samples := make([]analysis.SolveSample, len(solves))
	solutions := make([][]types.Move, 0, len(solves))
	for i, s := range solves {
		samples[i] = analysis.SolveSample{
			ID:            s.SolveID,
			CreatedAt:     s.CreatedAt,
			MoveCount:     s.MoveCount,
			Heuristic:     s.Heuristic,
			NodesExpanded: s.NodesExpanded,
			DurationMs:    s.DurationMs,
		}

		moves, err := types.ParseMoves(s.Solution)
		if err != nil {
			return fmt.Errorf("stored solution for %s is invalid: %w", s.SolveID, err)
		}
		solutions = append(solutions, moves)
	}

	report := analysis.AnalyzeHistory(samples)
	report.Patterns = analysis.MinePatterns(solutions, 2, 4, 5)

	if historyStatsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	printHistoryReport(report)
	return nil
}

func printHistoryReport(report *analysis.HistoryReport) {
	fmt.Println("Solve History")
	fmt.Println("=============")
	fmt.Println()
	fmt.Printf("Solves:      %d (%s to %s)\n", report.Solves,
		report.FirstSolve.Format("2006-01-02"), report.LastSolve.Format("2006-01-02"))
	fmt.Printf("Avg length:  %.1f moves\n", report.AvgMoves)
	fmt.Printf("Shortest:    %d moves (%s)\n", report.Shortest.MoveCount, report.Shortest.ID)
	fmt.Printf("Longest:     %d moves (%s)\n", report.Longest.MoveCount, report.Longest.ID)
	fmt.Printf("Avg search:  %s\n", formatDuration(time.Duration(report.AvgDurationMs*float64(time.Millisecond))))
	fmt.Printf("Avg nodes:   %.0f\n", report.AvgNodesExpanded)
	fmt.Printf("Total nodes: %d\n", report.TotalNodesExpanded)

	heuristics := make([]string, 0, len(report.ByHeuristic))
	for name := range report.ByHeuristic {
		heuristics = append(heuristics, name)
	}
	sort.Strings(heuristics)

	fmt.Println()
	fmt.Println("By heuristic:")
	for _, name := range heuristics {
		fmt.Printf("  %-9s %d\n", name, report.ByHeuristic[name])
	}

	if len(report.Patterns) > 0 {
		fmt.Println()
		fmt.Println("Recurring solution patterns:")
		for _, p := range report.Patterns {
			fmt.Printf("  %-12s x%d\n", p.Notation(), p.Count)
		}
	}
}
