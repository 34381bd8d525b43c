package solver

import (
	gocube "github.com/SeamusWaldron/gocube_solver"
)

// Strategy solves one phase on a cube it is given exclusive use of.
type Strategy interface {
	// Name is the short identifier used in logs and storage.
	Name() string
	// Phase is the phase reached when Solve succeeds.
	Phase() gocube.Phase
	IsSolved(c *gocube.Cube) bool
	// Solve applies moves to c until the phase is reached.
	Solve(c *gocube.Cube) (*StepResult, error)
}

// PatternStrategy is a Strategy that resolves a state signature against a
// table of canonical patterns.
type PatternStrategy interface {
	Strategy
	Signature(c *gocube.Cube) (gocube.Signature, error)
	Matcher() (*gocube.Matcher, error)
}

// CaseStep is one algorithm a strategy applied.
type CaseStep struct {
	Case        string             // case identifier, e.g. "down-flipped"
	Piece       string             // piece the case was about, if any
	Signature   string             // signature before the step, for table-driven steps
	Pattern     string             // matched canonical pattern
	Orientation gocube.Orientation // frame the algorithm was replayed in
	Algorithm   string             // algorithm as written in its frame
	Moves       []gocube.Move      // physical moves applied
}

// StepResult collects what one strategy did.
type StepResult struct {
	Strategy string
	Phase    gocube.Phase
	Steps    []CaseStep
}

// Moves returns the physical moves of every step in order.
func (r *StepResult) Moves() []gocube.Move {
	var out []gocube.Move
	for _, s := range r.Steps {
		out = append(out, s.Moves...)
	}
	return out
}

// recorder applies algorithms to a cube and records them as steps.
type recorder struct {
	cube   *gocube.Cube
	result *StepResult
}

func newRecorder(s Strategy, c *gocube.Cube) *recorder {
	return &recorder{
		cube:   c,
		result: &StepResult{Strategy: s.Name(), Phase: s.Phase()},
	}
}

// apply replays step.Algorithm in frame o and records the physical moves.
func (r *recorder) apply(step CaseStep, o gocube.Orientation) error {
	moves, err := gocube.ParseMoves(step.Algorithm)
	if err != nil {
		return err
	}
	physical := make([]gocube.Move, len(moves))
	for i, m := range moves {
		physical[i] = m.Reorient(o)
	}
	r.cube.Apply(physical...)

	step.Orientation = o
	step.Moves = physical
	r.result.Steps = append(r.result.Steps, step)
	return nil
}
