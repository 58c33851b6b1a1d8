package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/storage"
	"github.com/seamusw/cubesolver/internal/tracker"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database contents and nearby cubes",
	Long:  `Display the database location, stored pattern tables and solves, the last paired device, and any GoCube devices in BLE range.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	fmt.Println("Cube Solver Status")
	fmt.Println("==================")
	fmt.Println()

	path := dbPath
	if path == "" {
		path, _ = storage.DefaultDBPath()
	}
	fmt.Printf("Database: %s\n", path)

	db, err := openDB()
	if err == nil {
		defer db.Close()

		patternRepo := storage.NewPatternRepository(db)
		if tables, err := patternRepo.List(); err == nil {
			if len(tables) == 0 {
				fmt.Println("Pattern tables: none")
			} else {
				fmt.Printf("Pattern tables: %d\n", len(tables))
				for _, t := range tables {
					fmt.Printf("  - %s (%s, %d bytes)\n", t.Name, t.Kind, t.SizeBytes)
				}
			}
		}

		solveRepo := storage.NewSolveRepository(db)
		if solves, err := solveRepo.List(1); err == nil && len(solves) > 0 {
			fmt.Printf("Last solve: %s (%d moves)\n",
				solves[0].CreatedAt.Format("2006-01-02 15:04:05"), solves[0].MoveCount)
		}
	}

	fmt.Println()

	stateFile, err := tracker.NewDefaultStateFile()
	if err == nil && stateFile.LastDeviceID() != "" {
		fmt.Printf("Last device: %s (%s)\n", stateFile.LastDeviceName(), stateFile.LastDeviceID())
	} else {
		fmt.Println("No device history")
	}

	fmt.Println()

	_, results, err := scanForCube()
	if err != nil {
		fmt.Printf("Scan error: %v\n", err)
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No GoCube devices found")
		fmt.Println()
		fmt.Println("Tips:")
		fmt.Println("  - Rotate the cube to wake it up")
		fmt.Println("  - Make sure it is not connected to your phone")
		fmt.Println("  - Check that Bluetooth is enabled")
	} else {
		fmt.Printf("Found %d device(s):\n", len(results))
		for _, r := range results {
			fmt.Printf("  - %s (UUID: %s, RSSI: %d)\n", r.Name, r.UUID, r.RSSI)
		}
	}

	return nil
}
