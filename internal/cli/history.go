package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

var (
	historyLimit int
	historyLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved solves",
	Long:  `Commands for listing, inspecting and deleting solves saved with 'solve --save'.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show details of a solve",
	Long: `Display a saved solve with its scramble, solution and every step.

Use --last to show the most recent solve.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <solve-id>",
	Short: "Delete a saved solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&historyLast, "last", false, "Show the most recent solve")

	historyCmd.AddCommand(historyDeleteCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Fprintln(out, "No solves saved yet. Save one with: gocube-solver solve --save")
		return nil
	}

	fmt.Fprintf(out, "Recent solves (showing %d):\n\n", len(solves))
	fmt.Fprintf(out, "%-36s  %-20s  %-6s  %s\n", "ID", "Created", "Moves", "Solved")
	for _, s := range solves {
		fmt.Fprintf(out, "%-36s  %-20s  %-6d  %t\n",
			s.SolveID, s.CreatedAt.Local().Format("2006-01-02 15:04:05"), s.MoveCount, s.Solved)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 && !historyLast {
		return fmt.Errorf("specify a solve ID or use --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves := storage.NewSolveRepository(db)
	var solve *storage.Solve
	if historyLast {
		solve, err = solves.GetLast()
	} else {
		solve, err = solves.Get(args[0])
	}
	if err != nil {
		return err
	}
	if solve == nil {
		return fmt.Errorf("solve not found")
	}

	steps, err := storage.NewStepRepository(db).GetBySolve(solve.SolveID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "ID:       %s\n", solve.SolveID)
	fmt.Fprintf(out, "Created:  %s\n", solve.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Scramble: %s\n", solve.Scramble)
	fmt.Fprintf(out, "Solution: %s\n", moveStyle.Render(solve.Solution))
	fmt.Fprintf(out, "Moves:    %d\n", solve.MoveCount)
	fmt.Fprintf(out, "Solved:   %t\n", solve.Solved)

	phase := ""
	for _, s := range steps {
		if s.Phase != phase {
			phase = s.Phase
			fmt.Fprintf(out, "\n%s\n", phaseStyle.Render(phase))
		}
		label := s.CaseName
		if s.Pattern != nil {
			label += " " + *s.Pattern
		}
		fmt.Fprintf(out, "  %3d  %-28s front=%-6s %s\n", s.StepIndex, label, s.FrontFace, s.Algorithm)
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves := storage.NewSolveRepository(db)
	solve, err := solves.Get(args[0])
	if err != nil {
		return err
	}
	if solve == nil {
		return fmt.Errorf("solve not found: %s", args[0])
	}
	if err := solves.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted solve: %s\n", args[0])
	return nil
}
