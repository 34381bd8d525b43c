package gocube

import (
	"fmt"
	"strings"
)

// Turn represents the direction and magnitude of a turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Layer selects which slices of the cube a move turns, relative to the
// move's reference face.
type Layer int

const (
	LayerOuter Layer = iota // the face layer only: R
	LayerWide               // face layer and middle slice: r
	LayerSlice              // middle slice only: M, E, S
	LayerCube               // all three layers: x, y, z
)

// Move is a single turn. Face is the reference face whose clockwise
// direction the turn follows; for slices and rotations that is the face
// named by convention (M follows L, E follows D, S follows F, x follows R,
// y follows U, z follows F).
type Move struct {
	Face  Face
	Layer Layer
	Turn  Turn
}

var sliceLetters = map[Face]string{Left: "M", Down: "E", Front: "S"}

var cubeLetters = map[Face]string{Right: "x", Up: "y", Front: "z"}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2, r, M', x2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return m.letter() + suffix
}

func (m Move) letter() string {
	switch m.Layer {
	case LayerWide:
		return strings.ToLower(m.Face.Letter())
	case LayerSlice:
		if l, ok := sliceLetters[m.Face]; ok {
			return l
		}
	case LayerCube:
		if l, ok := cubeLetters[m.Face]; ok {
			return l
		}
	}
	return m.Face.Letter()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
	}
	return inv
}

// Axis returns the principal axis the move turns about.
func (m Move) Axis() Axis {
	n := m.Face.Normal()
	switch {
	case n.X != 0:
		return AxisX
	case n.Y != 0:
		return AxisY
	default:
		return AxisZ
	}
}

// sign is +1 when the reference face lies on the positive end of the axis.
func (m Move) sign() int {
	return m.Face.Normal().Get(m.Axis())
}

// Layers returns the coordinates, along Axis, of the layers the move turns.
func (m Move) Layers() []int {
	s := m.sign()
	switch m.Layer {
	case LayerWide:
		return []int{s, 0}
	case LayerSlice:
		return []int{0}
	case LayerCube:
		return []int{-1, 0, 1}
	default:
		return []int{s}
	}
}

// Angle returns the rotation about Axis. A clockwise turn seen from the
// reference face is a negative rotation about that face's outward normal.
func (m Move) Angle() Angle {
	switch m.Turn {
	case Double:
		return Half
	case CCW:
		return Angle(90 * m.sign())
	default:
		return Angle(-90 * m.sign())
	}
}

// Reorient maps the move's logical reference face to the physical face
// that plays its role under o.
func (m Move) Reorient(o Orientation) Move {
	m.Face = o.Physical(m.Face)
	return m
}

var tokenFaces = map[byte]Move{
	'U': {Face: Up}, 'D': {Face: Down}, 'F': {Face: Front},
	'B': {Face: Back}, 'R': {Face: Right}, 'L': {Face: Left},
	'u': {Face: Up, Layer: LayerWide}, 'd': {Face: Down, Layer: LayerWide},
	'f': {Face: Front, Layer: LayerWide}, 'b': {Face: Back, Layer: LayerWide},
	'r': {Face: Right, Layer: LayerWide}, 'l': {Face: Left, Layer: LayerWide},
	'M': {Face: Left, Layer: LayerSlice}, 'E': {Face: Down, Layer: LayerSlice},
	'S': {Face: Front, Layer: LayerSlice},
	'x': {Face: Right, Layer: LayerCube}, 'y': {Face: Up, Layer: LayerCube},
	'z': {Face: Front, Layer: LayerCube},
}

// ParseMove parses a single move token.
// Examples: R, R', RPrime, R2, r, M, x'
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, fmt.Errorf("%w: empty token", ErrInvalidNotation)
	}

	move, ok := tokenFaces[s[0]]
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	switch s[1:] {
	case "":
		move.Turn = CW
	case "'", "`", "Prime":
		move.Turn = CCW
	case "2", "2'", "2`", "2Prime":
		move.Turn = Double
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return move, nil
}

// ParseMoves parses a whitespace-separated sequence of moves.
// Example: "R U R' U'" or "R U RPrime UPrime"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// MustParseMoves is like ParseMoves but panics on invalid notation.
// It is intended for algorithm constants.
func MustParseMoves(s string) []Move {
	moves, err := ParseMoves(s)
	if err != nil {
		panic(err)
	}
	return moves
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}

// ReverseMoves returns the notation of the sequence that undoes seq.
func ReverseMoves(seq string) (string, error) {
	moves, err := ParseMoves(seq)
	if err != nil {
		return "", err
	}
	return FormatMoves(InvertMoves(moves)), nil
}

// quarters returns the move's turn as clockwise quarter turns in [0,3].
func (m Move) quarters() int {
	switch m.Turn {
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 1
	}
}

// SimplifyMoves merges adjacent turns of the same layer and drops turns
// that cancel out. "R R" becomes "R2" and "R R'" disappears.
func SimplifyMoves(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if n := len(out); n > 0 && out[n-1].Face == m.Face && out[n-1].Layer == m.Layer {
			q := (out[n-1].quarters() + m.quarters()) % 4
			out = out[:n-1]
			switch q {
			case 1:
				out = append(out, Move{Face: m.Face, Layer: m.Layer, Turn: CW})
			case 2:
				out = append(out, Move{Face: m.Face, Layer: m.Layer, Turn: Double})
			case 3:
				out = append(out, Move{Face: m.Face, Layer: m.Layer, Turn: CCW})
			}
			continue
		}
		out = append(out, m)
	}
	return out
}
