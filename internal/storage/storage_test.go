package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "solves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleSteps() []Step {
	return []Step{
		{Phase: "cross", Strategy: "cross", CaseName: "down-facing", FrontFace: "front", Algorithm: "D F F", MoveCount: 3},
		{Phase: "oll", Strategy: "oll", CaseName: "oll", Signature: Optional("21000110"), Pattern: Optional("21000110"), FrontFace: "left", Algorithm: "F R U RPrime UPrime FPrime", MoveCount: 6},
	}
}

func TestOpen_MigratesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solves.db")

	db, err := Open(path)
	require.NoError(t, err)
	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, path, db.Path())
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestSolveRepository_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)
	steps := NewStepRepository(db)

	id, err := solves.Create("R U F", "F' U' R'", 3, true, sampleSteps())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	got, err := solves.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "R U F", got.Scramble)
	assert.Equal(t, "F' U' R'", got.Solution)
	assert.Equal(t, 3, got.MoveCount)
	assert.True(t, got.Solved)
	assert.False(t, got.CreatedAt.IsZero())

	stored, err := steps.GetBySolve(id)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 0, stored[0].StepIndex)
	assert.Equal(t, "down-facing", stored[0].CaseName)
	assert.Nil(t, stored[0].Signature)
	require.NotNil(t, stored[1].Pattern)
	assert.Equal(t, "21000110", *stored[1].Pattern)
	assert.Equal(t, "left", stored[1].FrontFace)
}

func TestSolveRepository_GetMissing(t *testing.T) {
	solves := NewSolveRepository(openTestDB(t))

	got, err := solves.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	last, err := solves.GetLast()
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestSolveRepository_ListAndLast(t *testing.T) {
	solves := NewSolveRepository(openTestDB(t))

	var ids []string
	for _, scramble := range []string{"R", "U", "F"} {
		id, err := solves.Create(scramble, "", 0, false, nil)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := solves.List(2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].SolveID)
	assert.Equal(t, ids[1], list[1].SolveID)

	last, err := solves.GetLast()
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, ids[2], last.SolveID)
	assert.Equal(t, "F", last.Scramble)
}

func TestSolveRepository_DeleteCascades(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)
	steps := NewStepRepository(db)

	id, err := solves.Create("R", "R'", 1, true, sampleSteps())
	require.NoError(t, err)
	require.NoError(t, solves.Delete(id))

	got, err := solves.Get(id)
	require.NoError(t, err)
	assert.Nil(t, got)

	stored, err := steps.GetBySolve(id)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestStepRepository_CreateBatchAppends(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)
	steps := NewStepRepository(db)

	id, err := solves.Create("R", "R'", 1, true, sampleSteps())
	require.NoError(t, err)

	require.NoError(t, steps.CreateBatch(id, sampleSteps()[:1]))

	stored, err := steps.GetBySolve(id)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	for i, s := range stored {
		assert.Equal(t, i, s.StepIndex)
	}
}

func TestStepRepository_UnknownSolveRollsBack(t *testing.T) {
	db := openTestDB(t)
	steps := NewStepRepository(db)

	err := steps.CreateBatch("missing", sampleSteps())
	assert.Error(t, err)

	stored, err := steps.GetBySolve("missing")
	require.NoError(t, err)
	assert.Empty(t, stored)
}
