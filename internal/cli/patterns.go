package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_solver"

	"github.com/SeamusWaldron/gocube_solver/internal/solver"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Inspect the last-layer pattern tables",
	Long: `Inspect the OLL and PLL tables the solver uses for the last layer.

OLL signatures are eight digits without separators; PLL signatures are eight
space-separated values. Both list the bottom layer from front-right around
to right, two positions per side face.`,
}

var patternsListCmd = &cobra.Command{
	Use:       "list oll|pll",
	Short:     "List every pattern and its algorithm",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"oll", "pll"},
	RunE:      runPatternsList,
}

var patternsMatchCmd = &cobra.Command{
	Use:   "match oll|pll <signature>",
	Short: "Resolve a signature to its pattern, front face and algorithm",
	Example: `  gocube-solver patterns match oll 00011021
  gocube-solver patterns match pll "0 2 0 2 0 2 0 2"`,
	Args: cobra.ExactArgs(2),
	RunE: runPatternsMatch,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
	patternsCmd.AddCommand(patternsListCmd)
	patternsCmd.AddCommand(patternsMatchCmd)
}

// lookupTable returns the table and its signature separator by name.
func lookupTable(name string) (*solver.Table, string, error) {
	switch name {
	case "oll":
		t, err := solver.OLLTable()
		return t, "", err
	case "pll":
		t, err := solver.PLLTable()
		return t, " ", err
	default:
		return nil, "", fmt.Errorf("unknown table %q (want oll or pll)", name)
	}
}

func runPatternsList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	table, _, err := lookupTable(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s (%d patterns)\n\n", titleStyle.Render(table.Name()), table.Len())
	for _, p := range table.Patterns() {
		alg, err := table.Algorithm(p)
		if err != nil {
			return err
		}
		if alg == "" {
			alg = statusStyle.Render("(solved)")
		}
		fmt.Fprintf(out, "  %-18s %s\n", p, alg)
	}

	if len(table.Skipped) > 0 {
		fmt.Fprintf(out, "\n%s\n", statusStyle.Render("Skipped algorithms:"))
		for _, s := range table.Skipped {
			fmt.Fprintf(out, "  %s: %s\n", s.Algorithm, errorStyle.Render(s.Reason))
		}
	}
	return nil
}

func runPatternsMatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	table, sep, err := lookupTable(args[0])
	if err != nil {
		return err
	}

	sig, err := gocube.ParseSignature(args[1], sep)
	if err != nil {
		return err
	}
	m, err := table.Match(sig)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Signature: %s\n", m.Signature)
	fmt.Fprintf(out, "Pattern:   %s\n", m.Pattern)
	fmt.Fprintf(out, "Front:     %s\n", m.Front)
	fmt.Fprintf(out, "Algorithm: %s\n", moveStyle.Render(m.Algorithm))
	return nil
}
