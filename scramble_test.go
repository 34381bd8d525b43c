package gocube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScramble_Deterministic(t *testing.T) {
	a := Scramble(42, 25)
	b := Scramble(42, 25)
	assert.Equal(t, a, b)
	assert.Len(t, a, 25)
	assert.NotEqual(t, FormatMoves(a), FormatMoves(Scramble(43, 25)))
}

func TestScramble_NoRepeatedFace(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		moves := Scramble(seed, 30)
		for i := 1; i < len(moves); i++ {
			assert.NotEqual(t, moves[i-1].Face, moves[i].Face)
			assert.Equal(t, LayerOuter, moves[i].Layer)
		}
	}
}
