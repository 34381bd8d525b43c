package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_solver"
)

var (
	scrambleLength int
	scrambleSeed   uint64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Print a random scramble",
	Long: `Print a random scramble. The same --seed always prints the same scramble.
No face is turned twice in a row.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleLength, "length", 0, "Number of moves (default: scramble_length from config)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Seed for the scramble")
}

func runScramble(cmd *cobra.Command, args []string) error {
	length := settings.ScrambleLength
	if cmd.Flags().Changed("length") {
		if scrambleLength < 0 {
			return fmt.Errorf("length must not be negative, got %d", scrambleLength)
		}
		length = scrambleLength
	}

	src := scrambleSource{seed: scrambleSeed, seeded: cmd.Flags().Changed("seed"), length: length}
	moves, err := src.moves()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), gocube.FormatMoves(moves))
	return nil
}
