// Package certifier decides, for a target team, whether a qualifying or
// relegation scenario is still combinatorially possible given every
// undetermined fixture outcome. "Guaranteed" is the negation of feasibility:
// a team is certainly top-4 exactly when no completion of the schedule lets
// four rivals finish level with or above it.
//
// The test is defined purely on points and ignores goal-difference
// tie-breaks, which makes the guarantee slightly conservative. That is an
// intentional simplification, not a bug.
package certifier

import (
	"context"
	"fmt"
	"time"

	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/league"
)

// Status is the terminal state of one feasibility solve.
type Status int

const (
	// StatusUnknown means the solve proved nothing within its resource bound.
	StatusUnknown Status = iota
	// StatusFeasible means a satisfying scenario exists.
	StatusFeasible
	// StatusInfeasible means no scenario can satisfy the constraints.
	StatusInfeasible
)

func (s Status) String() string {
	switch s {
	case StatusFeasible:
		return "feasible"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Solver is the narrow interface to the mixed-integer feasibility back end.
type Solver interface {
	Solve(ctx context.Context, p *Problem) (Status, error)
}

// Verdict is the tri-state answer for one guarantee question. An inconclusive
// solve is surfaced as VerdictUnknown, never coerced to either side.
type Verdict int

const (
	// VerdictUnknown means the underlying solve was inconclusive.
	VerdictUnknown Verdict = iota
	// VerdictGuaranteed means the outcome holds under every remaining scenario.
	VerdictGuaranteed
	// VerdictOpen means at least one remaining scenario breaks the outcome.
	VerdictOpen
)

func (v Verdict) String() string {
	switch v {
	case VerdictGuaranteed:
		return "guaranteed"
	case VerdictOpen:
		return "open"
	default:
		return "unknown"
	}
}

const (
	// topFourRivals is the indicator quota for the top-4 elimination test:
	// four rivals level or above pushes the target out of the top 4.
	topFourRivals = 4
	// relegationRivals is the quota for the relegation test: all but the
	// bottom 3 level or above leaves the target in the bottom 3.
	relegationRivals = league.TeamCount - 3
)

// Certifier answers guarantee questions by solving one 0/1 feasibility
// problem per question. It holds no mutable state and is safe for concurrent
// use; every call builds its own model.
type Certifier struct {
	solver    Solver
	timeLimit time.Duration
}

// Option configures a Certifier.
type Option func(*Certifier)

// WithTimeLimit bounds each solve's wall-clock time. Past the bound the
// verdict is unknown.
func WithTimeLimit(d time.Duration) Option {
	return func(c *Certifier) { c.timeLimit = d }
}

// WithSolver replaces the default GLPK back end.
func WithSolver(s Solver) Option {
	return func(c *Certifier) { c.solver = s }
}

// New creates a certifier backed by GLPK with a 30s per-solve bound unless
// configured otherwise.
func New(opts ...Option) *Certifier {
	c := &Certifier{
		solver:    NewGLPKSolver(),
		timeLimit: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GuaranteedTop4 reports whether the team's top-4 finish is mathematically
// settled regardless of how all remaining fixtures play out.
func (c *Certifier) GuaranteedTop4(ctx context.Context, l *league.League, team string) (Verdict, error) {
	return c.certify(ctx, l, team, "top4", topFourRivals)
}

// GuaranteedSafe reports whether the team finishing outside the bottom 3 is
// mathematically settled regardless of how all remaining fixtures play out.
func (c *Certifier) GuaranteedSafe(ctx context.Context, l *league.League, team string) (Verdict, error) {
	return c.certify(ctx, l, team, "safety", relegationRivals)
}

func (c *Certifier) certify(ctx context.Context, l *league.League, team, scenario string, minRivals int) (Verdict, error) {
	if !l.HasTeam(team) {
		return VerdictUnknown, &apperrors.ValidationError{
			Field:   "team",
			Message: fmt.Sprintf("unknown team name: %q", team),
		}
	}

	if c.timeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeLimit)
		defer cancel()
	}

	p := buildScenarioProblem(l, team, minRivals)
	status, err := c.solver.Solve(ctx, p)
	switch status {
	case StatusInfeasible:
		// No scenario lets minRivals teams catch the target: guarantee holds.
		return VerdictGuaranteed, nil
	case StatusFeasible:
		return VerdictOpen, nil
	default:
		reason := "solver terminated without a proof"
		if err != nil {
			reason = err.Error()
		}
		return VerdictUnknown, &apperrors.SolverInconclusiveError{Team: team, Scenario: scenario, Reason: reason}
	}
}
