package solver

import "errors"

var (
	// ErrUnsolved reports a strategy that ran to completion without reaching
	// its phase. It indicates a bug or a table gap, never a transient state.
	ErrUnsolved = errors.New("solver: phase not reached")

	// ErrNotReady reports a strategy started before the phases it builds on.
	ErrNotReady = errors.New("solver: earlier phase incomplete")
)
