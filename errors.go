package gocube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the gocube package.
var (
	// Geometry errors
	ErrUnknownFace   = errors.New("gocube: unknown face")
	ErrUnknownNormal = errors.New("gocube: unknown face normal")
	ErrUnknownColor  = errors.New("gocube: unknown color")

	// State errors
	ErrInvalidCubie  = errors.New("gocube: invalid cubie")
	ErrCubieNotFound = errors.New("gocube: cubie not found")

	// Parsing errors
	ErrInvalidNotation    = errors.New("gocube: invalid move notation")
	ErrInvalidOrientation = errors.New("gocube: invalid orientation")
	ErrInvalidSignature   = errors.New("gocube: invalid signature")

	// Pattern errors
	ErrNoPatternFound = errors.New("gocube: no pattern found")
)

// PatternError reports a signature that could not be resolved against a
// pattern table. It matches ErrNoPatternFound with errors.Is.
type PatternError struct {
	Table     string // table name, e.g. "oll"
	Signature string // the offending signature
	Pattern   string // pattern the signature was compared against, if any
}

func (e *PatternError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("gocube: %s signature %q is not a rotation of pattern %q", e.Table, e.Signature, e.Pattern)
	}
	return fmt.Sprintf("gocube: no %s pattern for signature %q", e.Table, e.Signature)
}

func (e *PatternError) Unwrap() error {
	return ErrNoPatternFound
}
