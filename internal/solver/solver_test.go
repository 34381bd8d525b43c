package solver

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_solver"
)

func TestSolve_Scrambles(t *testing.T) {
	s := New()
	for seed := uint64(1); seed <= 100; seed++ {
		scramble := gocube.Scramble(seed, 25)
		c := gocube.NewCube()
		c.Apply(scramble...)

		sol, err := s.Solve(c)
		require.NoError(t, err, "seed %d", seed)
		assert.True(t, c.IsSolved(), "seed %d\n%s", seed, c)
		require.Len(t, sol.Steps, 4)

		// The reported moves solve a fresh copy of the scramble.
		replay := gocube.NewCube()
		replay.Apply(scramble...)
		replay.Apply(sol.Moves...)
		assert.True(t, replay.IsSolved(), "seed %d replay", seed)
	}
}

func TestSolve_WithoutSimplify(t *testing.T) {
	scramble := gocube.Scramble(42, 30)

	raw := gocube.NewCube()
	raw.Apply(scramble...)
	rawSol, err := New(WithSimplify(false)).Solve(raw)
	require.NoError(t, err)

	simple := gocube.NewCube()
	simple.Apply(scramble...)
	simpleSol, err := New().Solve(simple)
	require.NoError(t, err)

	assert.LessOrEqual(t, simpleSol.MoveCount(), rawSol.MoveCount())

	var all []gocube.Move
	for _, step := range rawSol.Steps {
		all = append(all, step.Moves()...)
	}
	assert.Equal(t, all, rawSol.Moves)

	replay := gocube.NewCube()
	replay.Apply(scramble...)
	replay.Apply(rawSol.Moves...)
	assert.True(t, replay.IsSolved())
}

func TestSolve_AlreadySolved(t *testing.T) {
	sol, err := New().Solve(gocube.NewCube())
	require.NoError(t, err)
	assert.Zero(t, sol.MoveCount())
	require.Len(t, sol.Steps, 4)
	for _, step := range sol.Steps {
		assert.Empty(t, step.Steps)
	}
}

func TestSolve_StrategyOrder(t *testing.T) {
	c := gocube.NewCube()
	c.Apply(gocube.Scramble(5, 25)...)

	sol, err := New(WithStrategies(NewOLL())).Solve(c)
	assert.ErrorIs(t, err, ErrNotReady)
	require.NotNil(t, sol)
	assert.Empty(t, sol.Moves)
}

func TestSolve_Phases(t *testing.T) {
	c := gocube.NewCube()
	c.Apply(gocube.Scramble(9, 25)...)

	tracker := gocube.NewTracker(c.Clone())
	var reached []gocube.Phase
	tracker.SetPhaseCallback(func(p gocube.Phase, _ int) {
		reached = append(reached, p)
	})

	sol, err := New().Solve(c)
	require.NoError(t, err)
	tracker.ApplyMoves(sol.Moves)

	assert.True(t, tracker.IsSolved())
	require.NotEmpty(t, reached)
	assert.Equal(t, gocube.PhaseSolved, reached[len(reached)-1])

	want := []gocube.Phase{gocube.PhaseCross, gocube.PhaseF2L, gocube.PhaseOLL, gocube.PhaseSolved}
	for i, step := range sol.Steps {
		assert.Equal(t, want[i], step.Phase)
	}
}

func TestSolve_LogsSteps(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	c := gocube.NewCube()
	c.Apply(gocube.Scramble(11, 25)...)
	_, err := New(WithLogger(logger)).Solve(c)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Phase reached")
	assert.Contains(t, out, `"strategy":"pll"`)
}
