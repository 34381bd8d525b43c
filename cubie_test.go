package gocube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubie_DerivesPosition(t *testing.T) {
	c, err := NewCubie(map[Face]Color{Up: White, Front: Green})
	require.NoError(t, err)
	assert.Equal(t, Coord{Y: 1, Z: 1}, c.Position())
	assert.True(t, c.IsEdge())
	assert.Equal(t, []Face{Up, Front}, c.Faces())
	assert.Equal(t, []Color{White, Green}, c.Colors())
}

func TestNewCubie_Invalid(t *testing.T) {
	_, err := NewCubie(map[Face]Color{Up: White, Down: Yellow})
	assert.ErrorIs(t, err, ErrInvalidCubie)

	_, err = NewCubie(map[Face]Color{})
	assert.ErrorIs(t, err, ErrInvalidCubie)
}

func TestCubieRotate_FourQuartersIsIdentity(t *testing.T) {
	for _, orig := range NewCube().Cubies() {
		for _, axis := range allAxes {
			c := orig.Clone()
			for i := 0; i < 4; i++ {
				c.Rotate(axis, Quarter)
			}
			assert.True(t, orig.Equal(c), "%s about %s", orig, axis)
		}
	}
}

func TestCubieRotate_PreservesKind(t *testing.T) {
	for _, orig := range NewCube().Cubies() {
		for _, axis := range allAxes {
			for _, angle := range []Angle{Quarter, CounterQuarter, Half} {
				c := orig.Clone()
				c.Rotate(axis, angle)
				assert.Equal(t, len(orig.Faces()), len(c.Faces()))
				assert.Equal(t, orig.IsCorner(), c.IsCorner())
				assert.Equal(t, orig.IsEdge(), c.IsEdge())
				assert.Equal(t, orig.IsCenter(), c.IsCenter())

				// Occupied faces always agree with the position.
				var pos Coord
				for _, f := range c.Faces() {
					pos = pos.Add(f.Normal())
				}
				assert.Equal(t, c.Position(), pos)
			}
		}
	}
}

func TestCubieRotate_MovesStickers(t *testing.T) {
	c, err := NewCubie(map[Face]Color{Up: White, Front: Green, Right: Red})
	require.NoError(t, err)

	// A clockwise U turn carries the up-front-right corner to up-front-left.
	c.Rotate(AxisY, CounterQuarter)

	assert.Equal(t, Coord{X: -1, Y: 1, Z: 1}, c.Position())
	got, ok := c.ColorOf(Left)
	require.True(t, ok)
	assert.Equal(t, Green, got)
	got, ok = c.ColorOf(Front)
	require.True(t, ok)
	assert.Equal(t, Red, got)
	got, ok = c.ColorOf(Up)
	require.True(t, ok)
	assert.Equal(t, White, got)

	f, ok := c.FaceOfColor(Green)
	require.True(t, ok)
	assert.Equal(t, Left, f)
	assert.True(t, c.HasColor(Red))
	assert.False(t, c.HasColor(Blue))
	assert.False(t, c.IsSolved())
}

func TestCubieClone_IsDeep(t *testing.T) {
	orig, err := NewCubie(map[Face]Color{Up: White, Front: Green})
	require.NoError(t, err)
	clone := orig.Clone()
	clone.Rotate(AxisX, Quarter)

	assert.False(t, orig.Equal(clone))
	assert.Equal(t, Coord{Y: 1, Z: 1}, orig.Position())
	got, _ := orig.ColorOf(Front)
	assert.Equal(t, Green, got)
}
