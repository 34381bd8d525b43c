// Package solver solves a cube phase by phase: a cross on UP, the first
// two layers, then the DOWN layer by orientation and permutation tables.
package solver

import (
	"fmt"

	"github.com/rs/zerolog"

	gocube "github.com/SeamusWaldron/gocube_solver"

	"github.com/SeamusWaldron/gocube_solver/internal/logging"
)

// Solution is the record of a full solve.
type Solution struct {
	Steps []*StepResult
	// Moves is every physical move in order, simplified unless disabled.
	Moves []gocube.Move
}

// MoveCount returns the number of moves in the solution.
func (s *Solution) MoveCount() int {
	return len(s.Moves)
}

// Solver runs its strategies in order.
type Solver struct {
	strategies []Strategy
	logger     zerolog.Logger
	simplify   bool
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger steps are reported to.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// WithSimplify controls whether the combined move list is simplified.
func WithSimplify(enabled bool) Option {
	return func(s *Solver) { s.simplify = enabled }
}

// WithStrategies replaces the default strategies.
func WithStrategies(strategies ...Strategy) Option {
	return func(s *Solver) { s.strategies = strategies }
}

// New creates a solver running cross, F2L, OLL and PLL.
func New(opts ...Option) *Solver {
	s := &Solver{
		strategies: []Strategy{NewCross(), NewF2L(), NewOLL(), NewPLL()},
		logger:     logging.GetLogger("solver"),
		simplify:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Strategies returns the strategies in the order they run.
func (s *Solver) Strategies() []Strategy {
	return s.strategies
}

// Solve solves c in place. On error c is left wherever the failing
// strategy stopped and the partial solution is returned with the error.
func (s *Solver) Solve(c *gocube.Cube) (*Solution, error) {
	done := logging.LogOperationStart(s.logger, "solve")
	defer done()

	sol := &Solution{}
	for _, strategy := range s.strategies {
		if strategy.IsSolved(c) {
			s.logger.Debug().Str("strategy", strategy.Name()).Msg("Phase already complete")
			sol.Steps = append(sol.Steps, &StepResult{Strategy: strategy.Name(), Phase: strategy.Phase()})
			continue
		}

		result, err := strategy.Solve(c)
		if err != nil {
			s.logger.Error().Err(err).Str("strategy", strategy.Name()).Msg("Strategy failed")
			sol.Moves = s.combine(sol.Steps)
			return sol, fmt.Errorf("%s: %w", strategy.Name(), err)
		}
		for _, step := range result.Steps {
			s.logger.Debug().
				Str("strategy", strategy.Name()).
				Str("case", step.Case).
				Str("signature", step.Signature).
				Str("pattern", step.Pattern).
				Str("orientation", step.Orientation.String()).
				Str("algorithm", step.Algorithm).
				Msg("Applied step")
		}
		s.logger.Info().
			Str("strategy", strategy.Name()).
			Str("phase", strategy.Phase().String()).
			Int("moves", len(result.Moves())).
			Msg("Phase reached")
		sol.Steps = append(sol.Steps, result)
	}

	sol.Moves = s.combine(sol.Steps)
	return sol, nil
}

func (s *Solver) combine(steps []*StepResult) []gocube.Move {
	var moves []gocube.Move
	for _, r := range steps {
		moves = append(moves, r.Moves()...)
	}
	if s.simplify {
		moves = gocube.SimplifyMoves(moves)
	}
	return moves
}
