package gocube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allOrientations() []Orientation {
	var out []Orientation
	for _, up := range AllFaces {
		for _, front := range AllFaces {
			o := Orientation{Up: up, Front: front}
			if o.Validate() == nil {
				out = append(out, o)
			}
		}
	}
	return out
}

func TestOrientation_TwentyFourFrames(t *testing.T) {
	assert.Len(t, allOrientations(), 24)
}

func TestOrientation_DefaultIsIdentity(t *testing.T) {
	for _, f := range AllFaces {
		assert.Equal(t, f, DefaultOrientation.Physical(f))
	}
}

func TestOrientation_IsProperRotation(t *testing.T) {
	for _, o := range allOrientations() {
		seen := map[Face]bool{}
		for _, f := range AllFaces {
			p := o.Physical(f)
			assert.False(t, seen[p], "%s maps two roles to %s", o, p)
			seen[p] = true
			assert.Equal(t, f, o.Logical(p))
			assert.Equal(t, o.Physical(f.Opposite()), p.Opposite())
		}
		r := o.Physical(Right).Normal()
		assert.Equal(t, r, o.Physical(Up).Normal().Cross(o.Physical(Front).Normal()))
	}
}

func TestOrientation_UpsideDown(t *testing.T) {
	o := Orientation{Up: Down, Front: Front}
	assert.Equal(t, Left, o.Physical(Right))
	assert.Equal(t, Right, o.Physical(Left))
	assert.Equal(t, Back, o.Physical(Back))
	assert.Equal(t, Up, o.Physical(Down))
}

func TestOrientation_Validate(t *testing.T) {
	assert.ErrorIs(t, Orientation{Up: Up, Front: Down}.Validate(), ErrInvalidOrientation)
	assert.ErrorIs(t, Orientation{Up: Left, Front: Left}.Validate(), ErrInvalidOrientation)
	assert.NoError(t, Orientation{Up: Left, Front: Down}.Validate())
}

func TestParseOrientation(t *testing.T) {
	o, err := ParseOrientation("up=down,front=left")
	require.NoError(t, err)
	assert.Equal(t, Orientation{Up: Down, Front: Left}, o)

	o, err = ParseOrientation("FRONT=Right")
	require.NoError(t, err)
	assert.Equal(t, Orientation{Up: Up, Front: Right}, o)

	o, err = ParseOrientation("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOrientation, o)

	for _, bad := range []string{"up=up,front=down", "side=left", "front", "front=top"} {
		_, err := ParseOrientation(bad)
		assert.ErrorIs(t, err, ErrInvalidOrientation, bad)
	}
}
