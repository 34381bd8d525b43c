package gocube

// Phase represents how far a cube has been solved. The cross is built on
// the UP face and the last layer is finished on DOWN. Phases progress from
// Scrambled (0) to Solved, allowing comparison with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates no phase is complete.
	PhaseScrambled Phase = iota

	// PhaseCross indicates the four UP edges are placed and oriented.
	PhaseCross

	// PhaseFirstLayer indicates the UP layer is complete.
	PhaseFirstLayer

	// PhaseF2L indicates the UP and middle layers are complete.
	PhaseF2L

	// PhaseOLL indicates every DOWN-layer piece shows its DOWN color on DOWN.
	PhaseOLL

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// Phases lists every phase in solving order.
var Phases = []Phase{PhaseScrambled, PhaseCross, PhaseFirstLayer, PhaseF2L, PhaseOLL, PhaseSolved}

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseCross:
		return "cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseF2L:
		return "f2l"
	case PhaseOLL:
		return "oll"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseCross:
		return "Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseF2L:
		return "First Two Layers (F2L)"
	case PhaseOLL:
		return "Last Layer Oriented (OLL)"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}

// ParsePhase parses a phase key as returned by String.
func ParsePhase(s string) (Phase, bool) {
	for _, p := range Phases {
		if p.String() == s {
			return p, true
		}
	}
	return PhaseScrambled, false
}
