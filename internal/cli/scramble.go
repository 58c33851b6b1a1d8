package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/pkg/types"
)

var (
	scrambleMoves int
	scrambleSeed  int64
	scrambleShow  bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence in standard face-turn notation.

Consecutive moves never repeat a face, and axis runs like R L R are avoided,
so every move disturbs the cube. Use --seed for a reproducible sequence.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)

	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 20, "Number of scramble moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 = time-based)")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Render the scrambled cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleMoves < 1 {
		return fmt.Errorf("--moves must be at least 1")
	}

	scrambled, moves := cube.Scrambled(newRand(scrambleSeed), scrambleMoves)

	fmt.Println(types.FormatMoves(moves))

	if scrambleShow {
		fmt.Println()
		fmt.Println(renderCube(scrambled))
	}

	return nil
}
