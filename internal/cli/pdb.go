package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/heuristic"
	"github.com/seamusw/cubesolver/internal/storage"
	"github.com/seamusw/cubesolver/pkg/types"
)

var (
	verifyDepth int
)

var pdbCmd = &cobra.Command{
	Use:   "pdb",
	Short: "Manage pattern database tables",
	Long: `Commands for importing, exporting, and auditing pattern database tables.

Tables are stored in the database as checksummed chunks. The corner table
holds one byte per corner configuration (8! x 3^7 entries, ~88 MB) giving a
lower bound on moves-to-solve; the solver's corner heuristic reads it.`,
}

var pdbImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a corner pattern table from a file",
	Long: `Import a raw corner pattern table into the database.

The file must contain exactly one byte per corner configuration, indexed by
corner permutation rank and orientation. Only the size is checked on import;
run 'cubesolver pdb verify' afterwards to audit the entries.`,
	Args: cobra.ExactArgs(1),
	RunE: runPdbImport,
}

var pdbExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export the corner pattern table to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runPdbExport,
}

var pdbInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show stored pattern tables",
	RunE:  runPdbInfo,
}

var pdbVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Audit the corner table against true solve distances",
	Long: `Check that the stored corner table never overestimates.

Walks every cube position reachable within --depth moves and compares the
table entry for its corner configuration against the true distance. An entry
above the true distance means the table would steer the solver past optimal
solutions, so any violation marks the table as unusable.`,
	RunE: runPdbVerify,
}

var pdbDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a stored pattern table",
	Args:  cobra.ExactArgs(1),
	RunE:  runPdbDelete,
}

func init() {
	rootCmd.AddCommand(pdbCmd)

	pdbCmd.AddCommand(pdbImportCmd)
	pdbCmd.AddCommand(pdbExportCmd)
	pdbCmd.AddCommand(pdbInfoCmd)

	pdbCmd.AddCommand(pdbVerifyCmd)
	pdbVerifyCmd.Flags().IntVar(&verifyDepth, "depth", 4, "Audit positions up to this many moves from solved")

	pdbCmd.AddCommand(pdbDeleteCmd)
}

func runPdbImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read table file: %w", err)
	}

	if len(data) != heuristic.CornerPatternSize {
		return fmt.Errorf("table file is %d bytes, want %d (one byte per corner configuration)",
			len(data), heuristic.CornerPatternSize)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewPatternRepository(db)
	if err := repo.Save(heuristic.CornerPatternName, "corner", data); err != nil {
		return fmt.Errorf("failed to store table: %w", err)
	}

	info, err := repo.Info(heuristic.CornerPatternName)
	if err != nil {
		return fmt.Errorf("failed to read back table info: %w", err)
	}

	fmt.Printf("Imported corner table: %d bytes\n", info.SizeBytes)
	fmt.Printf("Checksum: %s\n", info.Checksum)
	fmt.Println()
	fmt.Println("Audit it with: cubesolver pdb verify")

	return nil
}

func runPdbExport(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewPatternRepository(db)
	data, err := repo.Load(heuristic.CornerPatternName)
	if err != nil {
		if errors.Is(err, storage.ErrPatternNotFound) {
			return fmt.Errorf("no corner pattern table in database")
		}
		return fmt.Errorf("failed to load table: %w", err)
	}

	if err := os.WriteFile(args[0], data, 0644); err != nil {
		return fmt.Errorf("failed to write table file: %w", err)
	}

	fmt.Printf("Exported %d bytes to %s\n", len(data), args[0])
	return nil
}

func runPdbInfo(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewPatternRepository(db)
	tables, err := repo.List()
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	if len(tables) == 0 {
		fmt.Println("No pattern tables stored")
		fmt.Println("Import one with: cubesolver pdb import <file>")
		return nil
	}

	fmt.Printf("%-10s  %-10s  %-12s  %-20s  %s\n", "Name", "Kind", "Size", "Created", "Checksum")
	fmt.Println("----------  ----------  ------------  --------------------  --------")

	for _, t := range tables {
		fmt.Printf("%-10s  %-10s  %-12d  %-20s  %.8s\n",
			t.Name,
			t.Kind,
			t.SizeBytes,
			t.CreatedAt.Format("2006-01-02 15:04:05"),
			t.Checksum,
		)
	}

	return nil
}

func runPdbVerify(cmd *cobra.Command, args []string) error {
	if verifyDepth < 0 {
		return fmt.Errorf("--depth must not be negative")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewPatternRepository(db)
	data, err := repo.Load(heuristic.CornerPatternName)
	if err != nil {
		if errors.Is(err, storage.ErrPatternNotFound) {
			return fmt.Errorf("no corner pattern table in database\nImport one with: cubesolver pdb import <file>")
		}
		return fmt.Errorf("failed to load table: %w", err)
	}
	if len(data) != heuristic.CornerPatternSize {
		return fmt.Errorf("stored table is %d bytes, want %d", len(data), heuristic.CornerPatternSize)
	}

	fmt.Printf("Auditing corner table to depth %d...\n", verifyDepth)
	startTime := time.Now()

	// Breadth-first over full cube states: the depth at which a state first
	// appears is its true distance, and the table entry for its corner
	// configuration must not exceed it.
	alphabet := types.Alphabet()
	depths := map[cube.Cube]int{cube.Solved(): 0}
	frontier := []cube.Cube{cube.Solved()}

	checked := 0
	violations := 0
	for depth := 0; len(frontier) > 0; depth++ {
		for _, c := range frontier {
			idx, err := heuristic.CornerIndex(c)
			if err != nil {
				return fmt.Errorf("corner extraction failed during audit: %w", err)
			}
			checked++
			if int(data[idx]) > depth {
				violations++
				if violations <= 5 {
					fmt.Printf("  VIOLATION: entry %d at distance-%d position (index %d)\n",
						data[idx], depth, idx)
				}
			}
		}

		if depth == verifyDepth {
			break
		}

		var next []cube.Cube
		for _, c := range frontier {
			for _, m := range alphabet {
				succ := c.Apply(m)
				if _, ok := depths[succ]; ok {
					continue
				}
				depths[succ] = depth + 1
				next = append(next, succ)
			}
		}
		frontier = next
	}

	fmt.Println()
	fmt.Printf("Checked %d positions in %s\n", checked, formatDuration(time.Since(startTime)))
	if violations > 0 {
		return fmt.Errorf("%d violations: table overestimates and must not be used for solving", violations)
	}

	fmt.Println("No violations: table is a valid lower bound for the audited positions")
	return nil
}

func runPdbDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewPatternRepository(db)
	info, err := repo.Info(args[0])
	if err != nil {
		if errors.Is(err, storage.ErrPatternNotFound) {
			return fmt.Errorf("no pattern table named %q", args[0])
		}
		return err
	}

	if err := repo.Delete(info.Name); err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}

	fmt.Printf("Deleted pattern table %s (%d bytes)\n", info.Name, info.SizeBytes)
	return nil
}
