package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_solver"

	"github.com/SeamusWaldron/gocube_solver/internal/notation"
	"github.com/SeamusWaldron/gocube_solver/internal/render"
	"github.com/SeamusWaldron/gocube_solver/internal/solver"
)

var (
	stepScramble string
	stepSeed     uint64
	stepPlay     bool
	stepSpeed    float64
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Step through a solve move by move",
	Long: `Solve a scrambled cube and walk through the solution one move at a time,
showing the cube, the phase reached and how to make the next move by hand.

Usage:
  gocube-solver step --seed 42           # Step manually
  gocube-solver step --play --speed 2.0  # Play back at 2 moves per second`,
	Args: cobra.NoArgs,
	RunE: runStep,
}

func init() {
	rootCmd.AddCommand(stepCmd)
	stepCmd.Flags().StringVar(&stepScramble, "scramble", "", "Scramble sequence to apply")
	stepCmd.Flags().Uint64Var(&stepSeed, "seed", 0, "Seed for a generated scramble")
	stepCmd.Flags().BoolVar(&stepPlay, "play", false, "Start playing instead of waiting for keys")
	stepCmd.Flags().Float64VarP(&stepSpeed, "speed", "s", 1.0, "Moves per second while playing")
	stepCmd.MarkFlagsMutuallyExclusive("scramble", "seed")
}

func runStep(cmd *cobra.Command, args []string) error {
	src := scrambleSource{
		text:   stepScramble,
		seed:   stepSeed,
		seeded: cmd.Flags().Changed("seed"),
		length: settings.ScrambleLength,
	}
	scramble, err := src.moves()
	if err != nil {
		return err
	}

	start := gocube.NewCube()
	start.Apply(scramble...)
	_, sol, err := solveScramble(scramble, false)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	model := newStepModel(start, scramble, sol, stepSpeed, stepPlay)
	model.color = settings.Color
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("step error: %w", err)
	}
	return nil
}

// stepMove is one physical move of a solution with the step it belongs to.
type stepMove struct {
	move     gocube.Move
	phase    gocube.Phase
	strategy string
	label    string
}

// flattenSolution lists the moves of every step in order. Moves are taken
// per step, unsimplified, so each keeps its case label.
func flattenSolution(sol *solver.Solution) []stepMove {
	var out []stepMove
	for _, r := range sol.Steps {
		for _, cs := range r.Steps {
			label := cs.Case
			if cs.Pattern != "" {
				label += " " + cs.Pattern
			}
			for _, m := range cs.Moves {
				out = append(out, stepMove{move: m, phase: r.Phase, strategy: r.Strategy, label: label})
			}
		}
	}
	return out
}

// Step model
type stepModel struct {
	start    *gocube.Cube
	scramble []gocube.Move
	moves    []stepMove
	index    int
	tracker  *gocube.Tracker
	speed    float64
	playing  bool
	color    bool
	quitting bool
}

func newStepModel(start *gocube.Cube, scramble []gocube.Move, sol *solver.Solution, speed float64, play bool) *stepModel {
	if speed <= 0 {
		speed = 1
	}
	m := &stepModel{
		start:    start,
		scramble: scramble,
		moves:    flattenSolution(sol),
		speed:    speed,
		playing:  play,
	}
	m.reset()
	return m
}

type stepTickMsg time.Time

func (m *stepModel) Init() tea.Cmd {
	if !m.playing {
		return nil
	}
	return m.tick()
}

func (m *stepModel) tick() tea.Cmd {
	delay := time.Duration(float64(time.Second) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return stepTickMsg(t)
	})
}

func (m *stepModel) reset() {
	m.index = 0
	m.tracker = gocube.NewTracker(m.start.Clone())
}

func (m *stepModel) next() bool {
	if m.index >= len(m.moves) {
		return false
	}
	m.tracker.ApplyMove(m.moves[m.index].move)
	m.index++
	return true
}

// back undoes the last move by replaying everything before it.
func (m *stepModel) back() {
	if m.index == 0 {
		return
	}
	target := m.index - 1
	m.reset()
	for m.index < target {
		m.next()
	}
}

func (m *stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			m.next()

		case "b", "backspace":
			m.back()

		case "p":
			m.playing = !m.playing
			if m.playing {
				return m, m.tick()
			}

		case "r":
			m.reset()
			m.playing = false

		case "c":
			m.color = !m.color

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case stepTickMsg:
		if !m.playing {
			return m, nil
		}
		if !m.next() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *stepModel) View() string {
	if m.quitting {
		return "Stepping ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("GoCube Solver"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Scramble: %s\n", gocube.FormatMoves(m.scramble)))
	status := fmt.Sprintf("Move %d/%d", m.index, len(m.moves))
	if m.playing {
		status += fmt.Sprintf(" [PLAYING %.2gx]", m.speed)
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if m.tracker.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", phaseStyle.Render("SOLVED!")))
	} else {
		p := m.tracker.GetProgress()
		b.WriteString(fmt.Sprintf("Phase: %s\n", phaseStyle.Render(p.Phase.DisplayName())))
		b.WriteString(statusStyle.Render(fmt.Sprintf("Cross %d/4  F2L %d/12  Oriented %d/8", p.CrossEdges, p.F2LPieces, p.OrientedPieces)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(render.Net(m.tracker.Cube(), render.Options{Color: m.color}))
	b.WriteString("\n")

	if m.index < len(m.moves) {
		next := m.moves[m.index]
		b.WriteString(fmt.Sprintf("Next: %s  %s\n",
			moveStyle.Render(next.move.Notation()),
			notation.ToPersonalNotation(next.move)))
		b.WriteString(statusStyle.Render(fmt.Sprintf("%s: %s", next.strategy, next.label)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("SPACE/n=next  b=back  p=play  r=reset  c=color  +/-=speed  q=quit"))
	b.WriteString("\n")

	return b.String()
}
