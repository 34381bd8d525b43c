package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	gocube "github.com/SeamusWaldron/gocube_solver"

	"github.com/SeamusWaldron/gocube_solver/internal/render"
	"github.com/SeamusWaldron/gocube_solver/internal/solver"
	"github.com/SeamusWaldron/gocube_solver/internal/storage"
)

// scrambleSource is how a command was told to scramble the cube.
type scrambleSource struct {
	text   string
	seed   uint64
	seeded bool
	length int
}

// moves returns the scramble: parsed from text if given, otherwise random
// from the seed, or from the clock when no seed was set.
func (s scrambleSource) moves() ([]gocube.Move, error) {
	if s.text != "" {
		moves, err := gocube.ParseMoves(s.text)
		if err != nil {
			return nil, fmt.Errorf("invalid scramble: %w", err)
		}
		return moves, nil
	}
	seed := s.seed
	if !s.seeded {
		seed = uint64(time.Now().UnixNano())
	}
	return gocube.Scramble(seed, s.length), nil
}

// solveScramble solves a fresh cube scrambled with moves and returns the
// solved cube and the solution.
func solveScramble(moves []gocube.Move, simplify bool) (*gocube.Cube, *solver.Solution, error) {
	c := gocube.NewCube()
	c.Apply(moves...)
	sol, err := solver.New(solver.WithSimplify(simplify)).Solve(c)
	return c, sol, err
}

// stepsFromSolution flattens a solution into storage rows.
func stepsFromSolution(sol *solver.Solution) []storage.Step {
	var steps []storage.Step
	for _, r := range sol.Steps {
		for _, cs := range r.Steps {
			steps = append(steps, storage.Step{
				Phase:     r.Phase.String(),
				Strategy:  r.Strategy,
				CaseName:  cs.Case,
				Signature: storage.Optional(cs.Signature),
				Pattern:   storage.Optional(cs.Pattern),
				FrontFace: cs.Orientation.Front.String(),
				Algorithm: cs.Algorithm,
				MoveCount: len(cs.Moves),
			})
		}
	}
	return steps
}

// printSolution writes each phase and its steps, then the full solution.
func printSolution(w io.Writer, sol *solver.Solution) {
	for _, r := range sol.Steps {
		fmt.Fprintf(w, "\n%s (%d moves)\n", phaseStyle.Render(r.Phase.DisplayName()), len(r.Moves()))
		if len(r.Steps) == 0 {
			fmt.Fprintf(w, "  %s\n", statusStyle.Render("already complete"))
			continue
		}
		for _, cs := range r.Steps {
			if len(cs.Moves) == 0 {
				continue
			}
			label := cs.Case
			if cs.Pattern != "" {
				label = fmt.Sprintf("%s %s", cs.Case, cs.Pattern)
			}
			fmt.Fprintf(w, "  %-28s %s\n", label, moveStyle.Render(gocube.FormatMoves(cs.Moves)))
			fmt.Fprintf(w, "  %-28s %s\n", "", statusStyle.Render(fmt.Sprintf("%s as %s", cs.Algorithm, cs.Orientation)))
		}
	}

	fmt.Fprintf(w, "\n%s %s\n", titleStyle.Render("Solution:"), gocube.FormatMoves(sol.Moves))
	fmt.Fprintf(w, "%s %d\n", titleStyle.Render("Moves:"), sol.MoveCount())
}

// printNet writes the cube net in the configured style.
func printNet(w io.Writer, c *gocube.Cube, plain bool) {
	net := render.Net(c, render.Options{Color: settings.Color && !plain})
	for _, line := range strings.Split(strings.TrimRight(net, "\n"), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
