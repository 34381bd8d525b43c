package storage

import (
	"database/sql"
	"fmt"
)

// Step represents one applied algorithm of a stored solve.
type Step struct {
	StepID    int64
	SolveID   string
	StepIndex int
	Phase     string
	Strategy  string
	CaseName  string
	Signature *string
	Pattern   *string
	FrontFace string
	Algorithm string
	MoveCount int
}

// StepRepository provides access to solve steps.
type StepRepository struct {
	db *DB
}

// NewStepRepository creates a new step repository.
func NewStepRepository(db *DB) *StepRepository {
	return &StepRepository{db: db}
}

// CreateBatch appends steps to a solve in a single transaction. Step
// indexes continue from the steps already stored.
func (r *StepRepository) CreateBatch(solveID string, steps []Step) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		return insertSteps(tx, solveID, steps)
	})
}

func insertSteps(tx *sql.Tx, solveID string, steps []Step) error {
	var next int
	err := tx.QueryRow(`
		SELECT COALESCE(MAX(step_index), -1) + 1 FROM solve_steps WHERE solve_id = ?
	`, solveID).Scan(&next)
	if err != nil {
		return fmt.Errorf("failed to get next step index: %w", err)
	}

	for i, s := range steps {
		_, err := tx.Exec(`
			INSERT INTO solve_steps (solve_id, step_index, phase, strategy, case_name, signature, pattern, front_face, algorithm, move_count)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, solveID, next+i, s.Phase, s.Strategy, s.CaseName, s.Signature, s.Pattern, s.FrontFace, s.Algorithm, s.MoveCount)
		if err != nil {
			return fmt.Errorf("failed to create step %d: %w", next+i, err)
		}
	}
	return nil
}

// GetBySolve retrieves all steps for a solve in order.
func (r *StepRepository) GetBySolve(solveID string) ([]Step, error) {
	rows, err := r.db.Query(`
		SELECT step_id, solve_id, step_index, phase, strategy, case_name, signature, pattern, front_face, algorithm, move_count
		FROM solve_steps
		WHERE solve_id = ?
		ORDER BY step_index
	`, solveID)

	if err != nil {
		return nil, fmt.Errorf("failed to get steps: %w", err)
	}
	defer rows.Close()

	var steps []Step
	for rows.Next() {
		var s Step
		err := rows.Scan(&s.StepID, &s.SolveID, &s.StepIndex, &s.Phase, &s.Strategy, &s.CaseName,
			&s.Signature, &s.Pattern, &s.FrontFace, &s.Algorithm, &s.MoveCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan step: %w", err)
		}
		steps = append(steps, s)
	}

	return steps, rows.Err()
}

// Optional returns nil for an empty string.
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
