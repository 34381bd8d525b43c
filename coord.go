package gocube

import "fmt"

// Axis is one of the three principal axes of the cube grid.
//
// X points from LEFT to RIGHT, Y from DOWN to UP and Z from BACK to FRONT.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Angle is a rotation in degrees. Positive angles turn counter-clockwise
// when looking from the positive end of the axis towards the origin.
type Angle int

const (
	Quarter        Angle = 90
	CounterQuarter Angle = -90
	Half           Angle = 180
)

// quarters normalizes the angle to a number of positive quarter turns in [0,3].
func (a Angle) quarters() int {
	if a%90 != 0 {
		panic(fmt.Sprintf("gocube: angle %d is not a multiple of 90", int(a)))
	}
	return ((int(a)/90)%4 + 4) % 4
}

// Coord is a cell of the centered 3x3x3 grid. Every component is -1, 0 or 1.
type Coord struct {
	X, Y, Z int
}

// Get returns the component of c along axis.
func (c Coord) Get(axis Axis) int {
	switch axis {
	case AxisX:
		return c.X
	case AxisY:
		return c.Y
	default:
		return c.Z
	}
}

// Rotate returns c rotated about axis by angle.
func (c Coord) Rotate(axis Axis, angle Angle) Coord {
	for i := angle.quarters(); i > 0; i-- {
		c = c.rotateQuarter(axis)
	}
	return c
}

func (c Coord) rotateQuarter(axis Axis) Coord {
	switch axis {
	case AxisX:
		return Coord{X: c.X, Y: -c.Z, Z: c.Y}
	case AxisY:
		return Coord{X: c.Z, Y: c.Y, Z: -c.X}
	default:
		return Coord{X: -c.Y, Y: c.X, Z: c.Z}
	}
}

func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

func (c Coord) Scale(k int) Coord {
	return Coord{X: k * c.X, Y: k * c.Y, Z: k * c.Z}
}

func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y, Z: -c.Z}
}

func (c Coord) Dot(o Coord) int {
	return c.X*o.X + c.Y*o.Y + c.Z*o.Z
}

func (c Coord) Cross(o Coord) Coord {
	return Coord{
		X: c.Y*o.Z - c.Z*o.Y,
		Y: c.Z*o.X - c.X*o.Z,
		Z: c.X*o.Y - c.Y*o.X,
	}
}

// InGrid reports whether every component is in {-1, 0, 1}.
func (c Coord) InGrid() bool {
	in := func(v int) bool { return v >= -1 && v <= 1 }
	return in(c.X) && in(c.Y) && in(c.Z)
}

// nonZero counts the components that are not 0.
func (c Coord) nonZero() int {
	n := 0
	for _, v := range [3]int{c.X, c.Y, c.Z} {
		if v != 0 {
			n++
		}
	}
	return n
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
}
