package gocube

import (
	"fmt"
	"strings"
)

// Cubie is one of the 26 movable sub-cubes. It knows its grid position and
// which color shows on each face it currently occupies.
type Cubie struct {
	position Coord
	colors   map[Face]Color
}

// NewCubie builds a cubie from the colors it shows. The position is derived
// from the occupied faces, so {Up: White, Front: Green} lands at (0,1,1).
func NewCubie(colors map[Face]Color) (*Cubie, error) {
	if len(colors) == 0 || len(colors) > 3 {
		return nil, fmt.Errorf("%w: %d faces", ErrInvalidCubie, len(colors))
	}
	var pos Coord
	owned := make(map[Face]Color, len(colors))
	for f, c := range colors {
		if !f.valid() {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCubie, ErrUnknownFace)
		}
		if _, ok := colors[f.Opposite()]; ok {
			return nil, fmt.Errorf("%w: opposite faces %s and %s", ErrInvalidCubie, f, f.Opposite())
		}
		pos = pos.Add(f.Normal())
		owned[f] = c
	}
	return &Cubie{position: pos, colors: owned}, nil
}

// solvedCubie returns the cubie at pos as it sits on a solved cube.
func solvedCubie(pos Coord) *Cubie {
	colors := make(map[Face]Color, 3)
	for _, f := range AllFaces {
		if f.Normal().Dot(pos) == 1 {
			colors[f] = f.SolvedColor()
		}
	}
	return &Cubie{position: pos, colors: colors}
}

// Position returns the cubie's current grid cell.
func (c *Cubie) Position() Coord {
	return c.position
}

// Rotate turns the cubie about axis. Position and color map are replaced
// together; the new map is built completely before it is installed.
func (c *Cubie) Rotate(axis Axis, angle Angle) {
	rotated := make(map[Face]Color, len(c.colors))
	for f, color := range c.colors {
		rotated[f.Rotate(axis, angle)] = color
	}
	c.position = c.position.Rotate(axis, angle)
	c.colors = rotated
}

// ColorOf returns the color showing on face f.
func (c *Cubie) ColorOf(f Face) (Color, bool) {
	color, ok := c.colors[f]
	return color, ok
}

// FaceOfColor returns the face showing color.
func (c *Cubie) FaceOfColor(color Color) (Face, bool) {
	for _, f := range AllFaces {
		if got, ok := c.colors[f]; ok && got == color {
			return f, true
		}
	}
	return 0, false
}

func (c *Cubie) HasColor(color Color) bool {
	_, ok := c.FaceOfColor(color)
	return ok
}

// Faces returns the occupied faces in canonical face order.
func (c *Cubie) Faces() []Face {
	faces := make([]Face, 0, len(c.colors))
	for _, f := range AllFaces {
		if _, ok := c.colors[f]; ok {
			faces = append(faces, f)
		}
	}
	return faces
}

// Colors returns the showing colors in the order of Faces.
func (c *Cubie) Colors() []Color {
	faces := c.Faces()
	colors := make([]Color, len(faces))
	for i, f := range faces {
		colors[i] = c.colors[f]
	}
	return colors
}

func (c *Cubie) IsCorner() bool { return len(c.colors) == 3 }
func (c *Cubie) IsEdge() bool   { return len(c.colors) == 2 }
func (c *Cubie) IsCenter() bool { return len(c.colors) == 1 }

// IsSolved reports whether every sticker matches the solved color of the
// face it sits on.
func (c *Cubie) IsSolved() bool {
	for f, color := range c.colors {
		if f.SolvedColor() != color {
			return false
		}
	}
	return true
}

// occupies reports whether the cubie's faces are exactly the given set.
func (c *Cubie) occupies(faces []Face) bool {
	seen := make(map[Face]bool, len(faces))
	for _, f := range faces {
		if _, ok := c.colors[f]; !ok {
			return false
		}
		seen[f] = true
	}
	return len(seen) == len(c.colors)
}

// Clone returns a deep copy.
func (c *Cubie) Clone() *Cubie {
	colors := make(map[Face]Color, len(c.colors))
	for f, color := range c.colors {
		colors[f] = color
	}
	return &Cubie{position: c.position, colors: colors}
}

func (c *Cubie) Equal(o *Cubie) bool {
	if c.position != o.position || len(c.colors) != len(o.colors) {
		return false
	}
	for f, color := range c.colors {
		if got, ok := o.colors[f]; !ok || got != color {
			return false
		}
	}
	return true
}

// String renders the cubie as e.g. "up:W front:G @(0,1,1)".
func (c *Cubie) String() string {
	parts := make([]string, 0, len(c.colors)+1)
	for _, f := range c.Faces() {
		parts = append(parts, f.String()+":"+c.colors[f].String())
	}
	parts = append(parts, "@"+c.position.String())
	return strings.Join(parts, " ")
}
