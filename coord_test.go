package gocube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allCoords() []Coord {
	var out []Coord
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				out = append(out, Coord{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}

var allAxes = []Axis{AxisX, AxisY, AxisZ}

func TestCoordRotate_FourQuartersIsIdentity(t *testing.T) {
	for _, axis := range allAxes {
		for _, c := range allCoords() {
			got := c
			for i := 0; i < 4; i++ {
				got = got.Rotate(axis, Quarter)
				assert.True(t, got.InGrid(), "%s rotated about %s left the grid", c, axis)
			}
			assert.Equal(t, c, got, "axis %s", axis)
		}
	}
}

func TestCoordRotate_HalfIsTwoQuarters(t *testing.T) {
	for _, axis := range allAxes {
		for _, c := range allCoords() {
			assert.Equal(t, c.Rotate(axis, Quarter).Rotate(axis, Quarter), c.Rotate(axis, Half))
		}
	}
}

func TestCoordRotate_CounterQuarterIsInverse(t *testing.T) {
	for _, axis := range allAxes {
		for _, c := range allCoords() {
			assert.Equal(t, c, c.Rotate(axis, Quarter).Rotate(axis, CounterQuarter))
			assert.Equal(t, c.Rotate(axis, CounterQuarter), c.Rotate(axis, 270))
		}
	}
}

func TestCoordRotate_RightHanded(t *testing.T) {
	assert.Equal(t, Coord{Y: 1}, Coord{Z: -1}.Rotate(AxisX, Quarter))
	assert.Equal(t, Coord{Z: 1}, Coord{Y: 1}.Rotate(AxisX, Quarter))
	assert.Equal(t, Coord{X: 1}, Coord{Z: 1}.Rotate(AxisY, Quarter))
	assert.Equal(t, Coord{Y: 1}, Coord{X: 1}.Rotate(AxisZ, Quarter))
}

func TestCoordRotate_RejectsOddAngles(t *testing.T) {
	assert.Panics(t, func() { Coord{X: 1}.Rotate(AxisX, 45) })
}

func TestCoordCross(t *testing.T) {
	assert.Equal(t, Right.Normal(), Up.Normal().Cross(Front.Normal()))
	assert.Equal(t, 0, Up.Normal().Dot(Front.Normal()))
}
