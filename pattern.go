package gocube

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Signature summarizes the slice of cube state one solving phase cares
// about. It has one chunk per position around the bottom layer, enumerated
// front-right-down, front-down, front-left-down, left-down, left-back-down,
// back-down, back-right-down, right-down. Two consecutive positions belong
// to one side face, so rotating the signature left by one face chunk is the
// same as turning the whole cube a quarter about the vertical axis.
type Signature []int

// Format joins the values with sep. OLL signatures use "" and PLL
// signatures use " ".
func (s Signature) Format(sep string) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

// RotateLeft moves the first n values to the end.
func (s Signature) RotateLeft(n int) Signature {
	if len(s) == 0 {
		return Signature{}
	}
	n = ((n % len(s)) + len(s)) % len(s)
	out := make(Signature, 0, len(s))
	out = append(out, s[n:]...)
	return append(out, s[:n]...)
}

// ParseSignature parses a formatted signature. With an empty sep every
// character is one single-digit value.
func ParseSignature(s, sep string) (Signature, error) {
	var parts []string
	if sep == "" {
		parts = strings.Split(s, "")
	} else {
		parts = strings.Split(strings.TrimSpace(s), sep)
	}
	sig := make(Signature, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSignature, s)
		}
		sig = append(sig, v)
	}
	return sig, nil
}

// rotationOrder is the front face after each successive left rotation of a
// signature: a pattern found after i rotations sits on rotationOrder[i].
var rotationOrder = [4]Face{Front, Left, Back, Right}

// Match is a resolved signature.
type Match struct {
	Signature string // formatted input signature
	Pattern   string // canonical table key
	Algorithm string // algorithm for Pattern, authored with Front as front
	Front     Face   // face to treat as front when replaying Algorithm
	Rotations int    // left rotations from Signature to Pattern
}

// Matcher resolves signatures against a table holding one canonical
// signature per rotation class.
type Matcher struct {
	name  string
	chunk int
	sep   string
	table map[string]string
}

// NewMatcher creates a matcher. chunk is the number of signature values per
// side face and sep the separator used to format table keys.
func NewMatcher(name string, chunk int, sep string, table map[string]string) *Matcher {
	return &Matcher{name: name, chunk: chunk, sep: sep, table: table}
}

func (m *Matcher) Name() string { return m.name }

// Len returns the number of canonical patterns.
func (m *Matcher) Len() int { return len(m.table) }

// Patterns returns the canonical patterns in sorted order.
func (m *Matcher) Patterns() []string {
	keys := make([]string, 0, len(m.table))
	for k := range m.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// rotations returns sig followed by its three left rotations.
func (m *Matcher) rotations(sig Signature) [4]string {
	var out [4]string
	for i := range out {
		out[i] = sig.RotateLeft(i * m.chunk).Format(m.sep)
	}
	return out
}

// FindPattern returns the first of sig and its left rotations that is a
// table key.
func (m *Matcher) FindPattern(sig Signature) (string, error) {
	for _, candidate := range m.rotations(sig) {
		if _, ok := m.table[candidate]; ok {
			return candidate, nil
		}
	}
	return "", &PatternError{Table: m.name, Signature: sig.Format(m.sep)}
}

// FrontFaceFor returns the face that must play front so that the algorithm
// stored for pattern applies to a cube whose signature is sig.
func (m *Matcher) FrontFaceFor(sig Signature, pattern string) (Face, error) {
	for i, candidate := range m.rotations(sig) {
		if candidate == pattern {
			return rotationOrder[i], nil
		}
	}
	return 0, &PatternError{Table: m.name, Signature: sig.Format(m.sep), Pattern: pattern}
}

// Algorithm returns the algorithm stored for pattern.
func (m *Matcher) Algorithm(pattern string) (string, error) {
	alg, ok := m.table[pattern]
	if !ok {
		return "", &PatternError{Table: m.name, Signature: pattern}
	}
	return alg, nil
}

// Match resolves sig to its pattern, algorithm and front face.
func (m *Matcher) Match(sig Signature) (Match, error) {
	for i, candidate := range m.rotations(sig) {
		if alg, ok := m.table[candidate]; ok {
			return Match{
				Signature: sig.Format(m.sep),
				Pattern:   candidate,
				Algorithm: alg,
				Front:     rotationOrder[i],
				Rotations: i,
			}, nil
		}
	}
	return Match{}, &PatternError{Table: m.name, Signature: sig.Format(m.sep)}
}

// Known reports whether sig or one of its rotations is in the table.
func (m *Matcher) Known(sig Signature) bool {
	_, err := m.FindPattern(sig)
	return err == nil
}
