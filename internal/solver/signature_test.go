package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_solver"
)

// undone returns a solved cube with the inverse of alg applied in the
// upside-down frame facing front, so that alg solves it again.
func undone(t *testing.T, alg []gocube.Move, front gocube.Face) *gocube.Cube {
	t.Helper()
	c := gocube.NewCube()
	applyIn(c, gocube.InvertMoves(alg), lastLayerFrame(front))
	require.True(t, c.IsF2LSolved())
	return c
}

func TestSignatures_Solved(t *testing.T) {
	c := gocube.NewCube()

	oll, err := OLLSignature(c)
	require.NoError(t, err)
	assert.Equal(t, "00000000", oll.Format(""))

	pll, err := PLLSignature(c)
	require.NoError(t, err)
	assert.Equal(t, "0 0 0 0 0 0 0 0", pll.Format(" "))
}

func TestPLLSignature_IgnoresLayerTurn(t *testing.T) {
	c := gocube.NewCube()
	c.ApplyMove(gocube.D)
	sig, err := PLLSignature(c)
	require.NoError(t, err)
	assert.Equal(t, "0 0 0 0 0 0 0 0", sig.Format(" "))

	// Orientation is untouched too.
	oll, err := OLLSignature(c)
	require.NoError(t, err)
	assert.Equal(t, "00000000", oll.Format(""))
}

func TestOLLSignature_EdgeFlip(t *testing.T) {
	sig, err := OLLSignature(undone(t, gocube.EdgeFlip, gocube.Front))
	require.NoError(t, err)

	flipped := 0
	for i := 1; i < len(sig); i += 2 {
		assert.Contains(t, []int{0, 1}, sig[i])
		flipped += sig[i]
	}
	assert.Equal(t, 2, flipped, sig.Format(""))
}

func TestOLLSignature_Sune(t *testing.T) {
	sig, err := OLLSignature(undone(t, gocube.Sune, gocube.Front))
	require.NoError(t, err)

	oriented := 0
	for i := 0; i < len(sig); i += 2 {
		assert.Equal(t, 0, sig[i+1], "edges stay oriented: %s", sig.Format(""))
		if sig[i] == 0 {
			oriented++
		}
	}
	assert.Equal(t, 1, oriented, sig.Format(""))
}

func TestSignatures_NotReady(t *testing.T) {
	c := gocube.NewCube()
	c.ApplyMove(gocube.R)
	_, err := OLLSignature(c)
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = PLLSignature(undone(t, gocube.Sune, gocube.Front))
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestSignatures_FollowCubeRotation(t *testing.T) {
	// Building the same case with another face in front rotates the
	// signature by one side face per quarter turn.
	fronts := []gocube.Face{gocube.Front, gocube.Right, gocube.Back, gocube.Left}
	cases := map[string]struct {
		alg       []gocube.Move
		signature func(*gocube.Cube) (gocube.Signature, error)
	}{
		"oll": {gocube.Sune, OLLSignature},
		"pll": {gocube.TPerm, PLLSignature},
	}

	for name, tc := range cases {
		base, err := tc.signature(undone(t, tc.alg, gocube.Front))
		require.NoError(t, err)

		for j, front := range fronts {
			sig, err := tc.signature(undone(t, tc.alg, front))
			require.NoError(t, err)
			assert.Equal(t, base.RotateLeft(2*j), sig, "%s front=%s", name, front)
		}
	}
}
