package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_solver"

	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

var (
	solveScrambleText string
	solveSeed     uint64
	solveSave     bool
	solvePlain    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scramble a cube and solve it",
	Long: `Scramble a simulated cube and solve it phase by phase, printing every step.

The scramble is taken from --scramble, generated from --seed, or generated
randomly. Use --save to store the solve in the history database.

Examples:
  gocube-solver solve --scramble "R U R' U' F2 D"
  gocube-solver solve --seed 42 --save`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveScrambleText, "scramble", "", "Scramble sequence to apply")
	solveCmd.Flags().Uint64Var(&solveSeed, "seed", 0, "Seed for a generated scramble")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Save the solve to history")
	solveCmd.Flags().BoolVar(&solvePlain, "plain", false, "Print the cube with letters instead of colors")
	solveCmd.MarkFlagsMutuallyExclusive("scramble", "seed")
}

func runSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	src := scrambleSource{
		text:   solveScrambleText,
		seed:   solveSeed,
		seeded: cmd.Flags().Changed("seed"),
		length: settings.ScrambleLength,
	}
	scramble, err := src.moves()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s\n\n", titleStyle.Render("Scramble:"), gocube.FormatMoves(scramble))
	start := gocube.NewCube()
	start.Apply(scramble...)
	printNet(out, start, solvePlain)

	c, sol, solveErr := solveScramble(scramble, settings.Simplify)
	printSolution(out, sol)
	if solveErr == nil {
		fmt.Fprintln(out)
		printNet(out, c, solvePlain)
	}

	if solveSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		id, err := storage.NewSolveRepository(db).Create(
			gocube.FormatMoves(scramble),
			gocube.FormatMoves(sol.Moves),
			sol.MoveCount(),
			c.IsSolved(),
			stepsFromSolution(sol),
		)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nSaved solve: %s\n", id)
	}

	if solveErr != nil {
		return fmt.Errorf("solve failed: %w", solveErr)
	}
	return nil
}
