package gocube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceNormalBijection(t *testing.T) {
	seen := map[Coord]bool{}
	for _, f := range AllFaces {
		n, err := NormalOf(f)
		require.NoError(t, err)
		assert.Equal(t, 1, n.nonZero(), "normal of %s", f)
		assert.False(t, seen[n], "normal %s used twice", n)
		seen[n] = true

		back, err := FaceOf(n)
		require.NoError(t, err)
		assert.Equal(t, f, back)
		assert.Equal(t, n.Neg(), f.Opposite().Normal())
	}
}

func TestFaceLookupErrors(t *testing.T) {
	_, err := NormalOf(Face(42))
	assert.ErrorIs(t, err, ErrUnknownFace)

	_, err = FaceOf(Coord{X: 1, Y: 1})
	assert.ErrorIs(t, err, ErrUnknownNormal)
}

func TestFaceRotate_Closure(t *testing.T) {
	for _, f := range AllFaces {
		for _, axis := range allAxes {
			for _, angle := range []Angle{Quarter, CounterQuarter, Half} {
				assert.NotPanics(t, func() { f.Rotate(axis, angle) })
			}
		}
	}
	assert.Equal(t, Right, Front.Rotate(AxisY, Quarter))
	assert.Equal(t, Up, Up.Rotate(AxisY, Quarter))
	assert.Equal(t, Down, Up.Rotate(AxisZ, Half))
}

func TestParseFace_NormalizesCasing(t *testing.T) {
	for _, s := range []string{"front", "FRONT", "Front", "f", "F", " front "} {
		f, err := ParseFace(s)
		require.NoError(t, err, s)
		assert.Equal(t, Front, f)
	}

	_, err := ParseFace("top")
	assert.ErrorIs(t, err, ErrUnknownFace)
}

func TestSolvedColors(t *testing.T) {
	seen := map[Color]bool{}
	for _, f := range AllFaces {
		c := f.SolvedColor()
		assert.False(t, seen[c])
		seen[c] = true

		home, err := c.HomeFace()
		require.NoError(t, err)
		assert.Equal(t, f, home)
	}
	assert.Equal(t, "W", White.String())
	assert.Equal(t, "?", Color('Q').String())

	c, err := ParseColor("g")
	require.NoError(t, err)
	assert.Equal(t, Green, c)

	_, err = ParseColor("Q")
	assert.ErrorIs(t, err, ErrUnknownColor)
}
