package gocube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ollMatcher() *Matcher {
	return NewMatcher("oll", 2, "", map[string]string{
		"00000000": "",
		"21000110": "R U RPrime U R U U RPrime",
	})
}

func mustSig(t *testing.T, s, sep string) Signature {
	t.Helper()
	sig, err := ParseSignature(s, sep)
	require.NoError(t, err)
	return sig
}

func TestSignatureFormat(t *testing.T) {
	sig := Signature{0, -1, 1, 2, 0, 0, 0, 0}
	assert.Equal(t, "0 -1 1 2 0 0 0 0", sig.Format(" "))
	assert.Equal(t, sig, mustSig(t, "0 -1 1 2 0 0 0 0", " "))
	assert.Equal(t, Signature{2, 1, 0, 0}, mustSig(t, "2100", ""))

	_, err := ParseSignature("2x00", "")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestSignatureRotateLeft(t *testing.T) {
	sig := mustSig(t, "21000110", "")
	assert.Equal(t, "00011021", sig.RotateLeft(2).Format(""))
	assert.Equal(t, "21000110", sig.RotateLeft(8).Format(""))
	assert.Equal(t, "10210001", sig.RotateLeft(-2).Format(""))
}

func TestFindPattern_Identity(t *testing.T) {
	m := ollMatcher()
	sig := mustSig(t, "21000110", "")

	pattern, err := m.FindPattern(sig)
	require.NoError(t, err)
	assert.Equal(t, "21000110", pattern)

	front, err := m.FrontFaceFor(sig, pattern)
	require.NoError(t, err)
	assert.Equal(t, Front, front)
}

func TestFindPattern_RotationInvariant(t *testing.T) {
	m := ollMatcher()
	key := mustSig(t, "21000110", "")

	// Rotating left by one face chunk carries the front chunk onto the
	// right face, so the algorithm is replayed with right as front.
	wantFront := []Face{Front, Right, Back, Left}
	for j, want := range wantFront {
		sig := key.RotateLeft(2 * j)

		pattern, err := m.FindPattern(sig)
		require.NoError(t, err)
		assert.Equal(t, "21000110", pattern, sig.Format(""))

		front, err := m.FrontFaceFor(sig, pattern)
		require.NoError(t, err)
		assert.Equal(t, want, front, sig.Format(""))

		match, err := m.Match(sig)
		require.NoError(t, err)
		assert.Equal(t, want, match.Front)
		assert.Equal(t, "R U RPrime U R U U RPrime", match.Algorithm)
		assert.Equal(t, (4-j)%4, match.Rotations)
	}
}

func TestFindPattern_NoMatch(t *testing.T) {
	m := ollMatcher()
	sig := mustSig(t, "11110000", "")

	_, err := m.FindPattern(sig)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoPatternFound)

	var perr *PatternError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "oll", perr.Table)
	assert.Equal(t, "11110000", perr.Signature)

	_, err = m.FrontFaceFor(mustSig(t, "21000110", ""), "00000000")
	assert.ErrorIs(t, err, ErrNoPatternFound)

	_, err = m.Match(sig)
	assert.ErrorIs(t, err, ErrNoPatternFound)
}

func TestMatcher_SpaceSeparated(t *testing.T) {
	m := NewMatcher("pll", 2, " ", map[string]string{
		"0 0 0 0 1 -1 2 2": "alg",
	})
	sig := mustSig(t, "1 -1 2 2 0 0 0 0", " ")
	match, err := m.Match(sig)
	require.NoError(t, err)
	assert.Equal(t, "0 0 0 0 1 -1 2 2", match.Pattern)
	assert.Equal(t, Back, match.Front)
	assert.Equal(t, 1, m.Len())
	assert.True(t, m.Known(sig))
}

func TestMatcher_Patterns(t *testing.T) {
	m := ollMatcher()
	assert.Equal(t, []string{"00000000", "21000110"}, m.Patterns())

	alg, err := m.Algorithm("00000000")
	require.NoError(t, err)
	assert.Equal(t, "", alg)

	_, err = m.Algorithm("12")
	assert.ErrorIs(t, err, ErrNoPatternFound)
}
