// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Rubik's Cube optimal solver",
	Long: `cubesolver - An iterative-deepening Rubik's Cube solver.

Solve scrambled cubes optimally with pattern-database heuristics, benchmark
search performance over random scrambles, and track a GoCube smart cube over
Bluetooth to solve its physical state.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesolver/cubesolver.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// newLogger builds the console logger commands hand to the solver and BLE
// client. Debug events are suppressed unless --verbose is set.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// openDB opens the database from the --db flag or the default location and
// applies pending migrations.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error

	if dbPath == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(dbPath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}
