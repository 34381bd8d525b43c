package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents a stored solve.
type Solve struct {
	SolveID   string
	CreatedAt time.Time
	Scramble  string
	Solution  string
	MoveCount int
	Solved    bool
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create stores a solve and its steps in one transaction and returns the
// new solve ID.
func (r *SolveRepository) Create(scramble, solution string, moveCount int, solved bool, steps []Step) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO solves (solve_id, created_at, scramble, solution, move_count, solved)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, createdAt.Format(timeLayout), scramble, solution, moveCount, boolToInt(solved))
		if err != nil {
			return fmt.Errorf("failed to create solve: %w", err)
		}
		return insertSteps(tx, id, steps)
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// timeLayout is fixed width so stored times sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

const solveColumns = `solve_id, created_at, scramble, solution, move_count, solved`

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var createdAtStr string
	var solved int
	if err := row.Scan(&s.SolveID, &createdAtStr, &s.Scramble, &s.Solution, &s.MoveCount, &solved); err != nil {
		return nil, err
	}
	s.CreatedAt, _ = time.Parse(timeLayout, createdAtStr)
	s.Solved = solved == 1
	return &s, nil
}

// Get retrieves a solve by ID. A missing solve returns nil, nil.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(`
		SELECT ` + solveColumns + `
		FROM solves
		WHERE solve_id = ?
	`, solveID))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	return s, nil
}

// GetLast retrieves the most recent solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(`
		SELECT ` + solveColumns + `
		FROM solves
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`))

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}

	return s, nil
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT ` + solveColumns + `
		FROM solves
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}

	return solves, rows.Err()
}

// Delete deletes a solve and its steps.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
