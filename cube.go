package gocube

import (
	"fmt"
	"strings"
)

// Cube represents a 3x3 Rubik's cube as 26 cubies: 8 corners, 12 edges and
// 6 centers. Every grid cell except the core holds exactly one cubie.
//
// The cube owns its cubies. Pointers returned by lookups stay valid and
// follow the cubie as moves reposition it.
type Cube struct {
	cubies []*Cubie
}

// NewCube creates a solved cube with standard orientation:
// White on top, Green in front.
func NewCube() *Cube {
	c := &Cube{cubies: make([]*Cubie, 0, 26)}
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				pos := Coord{X: x, Y: y, Z: z}
				if pos.nonZero() == 0 {
					continue
				}
				c.cubies = append(c.cubies, solvedCubie(pos))
			}
		}
	}
	return c
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	c.cubies = NewCube().cubies
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{cubies: make([]*Cubie, len(c.cubies))}
	for i, cb := range c.cubies {
		clone.cubies[i] = cb.Clone()
	}
	return clone
}

// Cubies returns all cubies.
func (c *Cube) Cubies() []*Cubie {
	out := make([]*Cubie, len(c.cubies))
	copy(out, c.cubies)
	return out
}

func (c *Cube) filter(keep func(*Cubie) bool) []*Cubie {
	var out []*Cubie
	for _, cb := range c.cubies {
		if keep(cb) {
			out = append(out, cb)
		}
	}
	return out
}

func (c *Cube) Corners() []*Cubie { return c.filter((*Cubie).IsCorner) }
func (c *Cube) Edges() []*Cubie   { return c.filter((*Cubie).IsEdge) }
func (c *Cube) Centers() []*Cubie { return c.filter((*Cubie).IsCenter) }

// GetCubie returns the cubie whose occupied faces are exactly faces, in any
// order. Zero or several matches return ErrCubieNotFound; several matches
// mean the cube is corrupt.
func (c *Cube) GetCubie(faces ...Face) (*Cubie, error) {
	var found *Cubie
	matches := 0
	for _, cb := range c.cubies {
		if cb.occupies(faces) {
			found = cb
			matches++
		}
	}
	if matches != 1 {
		return nil, fmt.Errorf("%w: faces %v (%d matches)", ErrCubieNotFound, faces, matches)
	}
	return found, nil
}

// CubieAt returns the cubie occupying pos.
func (c *Cube) CubieAt(pos Coord) (*Cubie, error) {
	for _, cb := range c.cubies {
		if cb.position == pos {
			return cb, nil
		}
	}
	return nil, fmt.Errorf("%w: position %s", ErrCubieNotFound, pos)
}

// FindCubie returns the cubie showing exactly the given colors, wherever it is.
func (c *Cube) FindCubie(colors ...Color) (*Cubie, error) {
	for _, cb := range c.cubies {
		if len(cb.colors) != len(colors) {
			continue
		}
		all := true
		for _, color := range colors {
			if !cb.HasColor(color) {
				all = false
				break
			}
		}
		if all {
			return cb, nil
		}
	}
	return nil, fmt.Errorf("%w: colors %v", ErrCubieNotFound, colors)
}

// Turn rotates every cubie whose coordinate along axis is one of layers.
// The layer is selected in full before any cubie moves.
func (c *Cube) Turn(axis Axis, angle Angle, layers ...int) {
	selected := c.filter(func(cb *Cubie) bool {
		v := cb.position.Get(axis)
		for _, l := range layers {
			if v == l {
				return true
			}
		}
		return false
	})
	for _, cb := range selected {
		cb.Rotate(axis, angle)
	}
}

// ApplyMove applies a Move to the cube.
func (c *Cube) ApplyMove(m Move) {
	c.Turn(m.Axis(), m.Angle(), m.Layers()...)
}

// Apply applies moves left to right.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// Move parses seq and applies it left to right. With WithOrientation each
// token is first remapped to the physical faces playing its logical roles.
// An invalid sequence leaves the cube unchanged.
func (c *Cube) Move(seq string, opts ...MoveOption) error {
	cfg := defaultMoveConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.orientation.Validate(); err != nil {
		return err
	}

	moves, err := ParseMoves(seq)
	if err != nil {
		return err
	}
	for _, m := range moves {
		c.ApplyMove(m.Reorient(cfg.orientation))
	}
	return nil
}

// IsSolved returns true if every cubie shows the solved color on each of
// its faces.
func (c *Cube) IsSolved() bool {
	for _, cb := range c.cubies {
		if !cb.IsSolved() {
			return false
		}
	}
	return true
}

// Equal reports whether both cubes have identical cubies in identical cells.
func (c *Cube) Equal(o *Cube) bool {
	if len(c.cubies) != len(o.cubies) {
		return false
	}
	for _, cb := range c.cubies {
		other, err := o.CubieAt(cb.position)
		if err != nil || !cb.Equal(other) {
			return false
		}
	}
	return true
}

// faceGrid gives, per face, the step to the next column and to the next row
// when the face is viewed in the standard unfolded net.
var faceGrid = [6]struct{ right, down Coord }{
	Up:    {right: Coord{X: 1}, down: Coord{Z: 1}},
	Down:  {right: Coord{X: 1}, down: Coord{Z: -1}},
	Front: {right: Coord{X: 1}, down: Coord{Y: -1}},
	Back:  {right: Coord{X: -1}, down: Coord{Y: -1}},
	Right: {right: Coord{Z: -1}, down: Coord{Y: -1}},
	Left:  {right: Coord{Z: 1}, down: Coord{Y: -1}},
}

// Facelets returns the sticker colors per face, each indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
func (c *Cube) Facelets() [6][9]Color {
	var out [6][9]Color
	byPos := make(map[Coord]*Cubie, len(c.cubies))
	for _, cb := range c.cubies {
		byPos[cb.position] = cb
	}
	for _, f := range AllFaces {
		g := faceGrid[f]
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				pos := f.Normal().Add(g.right.Scale(col - 1)).Add(g.down.Scale(row - 1))
				if cb, ok := byPos[pos]; ok {
					out[f][row*3+col] = cb.colors[f]
				}
			}
		}
	}
	return out
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	facelets := c.Facelets()
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(facelets[Up][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{Left, Front, Right, Back} {
			for col := 0; col < 3; col++ {
				b.WriteString(facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(facelets[Down][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
