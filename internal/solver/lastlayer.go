package solver

import (
	"fmt"

	gocube "github.com/SeamusWaldron/gocube_solver"
)

// LastLayer resolves the DOWN layer with one table lookup: orientation for
// OLL, permutation for PLL.
type LastLayer struct {
	name      string
	phase     gocube.Phase
	table     func() (*Table, error)
	signature func(*gocube.Cube) (gocube.Signature, error)
	ready     func(*gocube.Cube) bool
	solved    func(*gocube.Cube) bool
	// auf finishes with DOWN turns until the cube is solved.
	auf bool
}

// NewOLL orients the last layer.
func NewOLL() *LastLayer {
	return &LastLayer{
		name:      "oll",
		phase:     gocube.PhaseOLL,
		table:     OLLTable,
		signature: OLLSignature,
		ready:     (*gocube.Cube).IsF2LSolved,
		solved: func(c *gocube.Cube) bool {
			return c.IsF2LSolved() && c.IsLastLayerOriented()
		},
	}
}

// NewPLL permutes the oriented last layer and turns it into place.
func NewPLL() *LastLayer {
	return &LastLayer{
		name:      "pll",
		phase:     gocube.PhaseSolved,
		table:     PLLTable,
		signature: PLLSignature,
		ready: func(c *gocube.Cube) bool {
			return c.IsF2LSolved() && c.IsLastLayerOriented()
		},
		solved: (*gocube.Cube).IsSolved,
		auf:    true,
	}
}

func (s *LastLayer) Name() string { return s.name }

func (s *LastLayer) Phase() gocube.Phase { return s.phase }

func (s *LastLayer) IsSolved(c *gocube.Cube) bool { return s.solved(c) }

func (s *LastLayer) Signature(c *gocube.Cube) (gocube.Signature, error) {
	return s.signature(c)
}

func (s *LastLayer) Matcher() (*gocube.Matcher, error) {
	t, err := s.table()
	if err != nil {
		return nil, err
	}
	return t.Matcher, nil
}

func (s *LastLayer) Solve(c *gocube.Cube) (*StepResult, error) {
	if !s.ready(c) {
		return nil, fmt.Errorf("%w: %s", ErrNotReady, s.name)
	}
	m, err := s.Matcher()
	if err != nil {
		return nil, err
	}
	sig, err := s.signature(c)
	if err != nil {
		return nil, err
	}
	match, err := m.Match(sig)
	if err != nil {
		return nil, err
	}

	rec := newRecorder(s, c)
	step := CaseStep{
		Case:      s.name,
		Signature: match.Signature,
		Pattern:   match.Pattern,
		Algorithm: match.Algorithm,
	}
	if err := rec.apply(step, lastLayerFrame(match.Front)); err != nil {
		return nil, err
	}

	if s.auf {
		k, err := aufTurns(c)
		if err != nil {
			return nil, err
		}
		if k > 0 {
			if err := rec.apply(CaseStep{Case: "auf", Algorithm: repeat("D", k)}, gocube.DefaultOrientation); err != nil {
				return nil, err
			}
		}
	}

	if !s.solved(c) {
		return nil, fmt.Errorf("%w: %s pattern %q", ErrUnsolved, s.name, match.Pattern)
	}
	return rec.result, nil
}

// aufTurns returns how many clockwise D turns solve c.
func aufTurns(c *gocube.Cube) (int, error) {
	probe := c.Clone()
	for k := 0; k < 4; k++ {
		if probe.IsSolved() {
			return k, nil
		}
		probe.ApplyMove(gocube.D)
	}
	return 0, fmt.Errorf("%w: last layer is not one turn from solved", ErrUnsolved)
}
