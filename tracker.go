package gocube

// Tracker wraps a Cube, records the moves applied to it and reports phase
// transitions.
type Tracker struct {
	cube          *Cube
	history       []Move
	lastPhase     Phase
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(phase Phase, moveIndex int)
}

// NewTracker creates a tracker over cube. The cube is used in place.
func NewTracker(cube *Cube) *Tracker {
	phase := cube.DetectPhase()
	return &Tracker{
		cube:         cube,
		lastPhase:    phase,
		highestPhase: phase,
	}
}

// SetPhaseCallback sets a callback that fires when a new highest phase is
// reached. moveIndex is the number of moves applied so far.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase, moveIndex int)) {
	t.phaseCallback = cb
}

// ApplyMove applies a move and checks for phase transitions.
func (t *Tracker) ApplyMove(m Move) {
	t.cube.ApplyMove(m)
	t.history = append(t.history, m)
	t.checkPhaseTransition()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Apply parses seq and applies it move by move.
func (t *Tracker) Apply(seq string) error {
	moves, err := ParseMoves(seq)
	if err != nil {
		return err
	}
	t.ApplyMoves(moves)
	return nil
}

// checkPhaseTransition checks if we've completed a new phase.
func (t *Tracker) checkPhaseTransition() {
	currentPhase := t.cube.DetectPhase()
	t.lastPhase = currentPhase

	// Only a new high fires the callback; phases may regress mid-algorithm.
	if currentPhase > t.highestPhase {
		t.highestPhase = currentPhase
		if t.phaseCallback != nil {
			t.phaseCallback(currentPhase, len(t.history))
		}
	}
}

// CurrentPhase returns the phase detected after the last move.
func (t *Tracker) CurrentPhase() Phase {
	return t.lastPhase
}

// HighestPhase returns the highest phase reached.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// History returns the moves applied so far.
func (t *Tracker) History() []Move {
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// GetProgress returns the detailed progress.
func (t *Tracker) GetProgress() Progress {
	return t.cube.GetProgress()
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
