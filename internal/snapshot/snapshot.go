// Package snapshot composes the per-team guarantee verdicts, the Monte Carlo
// probabilities and the sorted table into one reporting document. It owns the
// aggregation only; serialization and delivery belong to the callers.
package snapshot

import (
	"context"
	"sync"
	"time"

	"league-tracker-backend/internal/certifier"
	"league-tracker-backend/internal/forecast"
	"league-tracker-backend/internal/league"
	"league-tracker-backend/internal/logger"
)

// Certifier is the feasibility side of the composition.
type Certifier interface {
	GuaranteedTop4(ctx context.Context, l *league.League, team string) (certifier.Verdict, error)
	GuaranteedSafe(ctx context.Context, l *league.League, team string) (certifier.Verdict, error)
}

// Estimator is the sampling side of the composition.
type Estimator interface {
	Estimate(l *league.League, sims int, seed int64) (*forecast.Forecast, error)
}

// Meta carries the reproducibility and audit fields of a snapshot.
type Meta struct {
	GeneratedAt    int64  `json:"generated_at"`
	Sims           int    `json:"sims"`
	Seed           int64  `json:"seed"`
	TeamsCount     int    `json:"teams_count"`
	ResultsCount   int    `json:"results_count"`
	RemainingCount int    `json:"remaining_count"`
	Fingerprint    string `json:"fingerprint"`
}

// Official holds the tri-state guarantee verdicts for one team:
// "guaranteed", "open" or "unknown".
type Official struct {
	Top4 string `json:"top4"`
	Safe string `json:"safe"`
}

// TableRow is one ranked line of the report.
type TableRow struct {
	Rank           int      `json:"rank"`
	Team           string   `json:"team"`
	Played         int      `json:"played"`
	Wins           int      `json:"wins"`
	Draws          int      `json:"draws"`
	Losses         int      `json:"losses"`
	GoalsFor       int      `json:"gf"`
	GoalsAgainst   int      `json:"ga"`
	GoalDifference int      `json:"gd"`
	Points         int      `json:"points"`
	Official       Official `json:"official"`
	ProbTop4       float64  `json:"probTop4"`
	ProbSafe       float64  `json:"probSafe"`
}

// Snapshot is the full reporting document.
type Snapshot struct {
	Meta      Meta             `json:"meta"`
	Table     []TableRow       `json:"table"`
	Remaining []league.Fixture `json:"remaining"`
}

// Composer builds snapshots. Certifier and estimator calls treat the league
// as read-only, so one composer may serve concurrent requests.
type Composer struct {
	certifier Certifier
	estimator Estimator
	log       *logger.Logger
}

// NewComposer creates a composer over the given engines.
func NewComposer(c Certifier, e Estimator, log *logger.Logger) *Composer {
	if log == nil {
		log = logger.New()
	}
	return &Composer{certifier: c, estimator: e, log: log}
}

type teamVerdicts struct {
	top4 certifier.Verdict
	safe certifier.Verdict
}

// Build runs the estimator once and both certifier questions for every team,
// then merges everything with the sorted table. One team's inconclusive
// certifier result degrades only that team's verdict to "unknown"; it never
// aborts the rest of the snapshot.
func (c *Composer) Build(ctx context.Context, l *league.League, sims int, seed int64) (*Snapshot, error) {
	f, err := c.estimator.Estimate(l, sims, seed)
	if err != nil {
		return nil, err
	}

	teams := l.Teams()
	verdicts := make([]teamVerdicts, len(teams))

	// The two questions per team are independent of each other and of every
	// other team's questions; each solve builds its own model.
	var wg sync.WaitGroup
	for i, team := range teams {
		wg.Add(2)
		go func(i int, team string) {
			defer wg.Done()
			verdicts[i].top4 = c.verdict(ctx, l, team, c.certifier.GuaranteedTop4)
		}(i, team)
		go func(i int, team string) {
			defer wg.Done()
			verdicts[i].safe = c.verdict(ctx, l, team, c.certifier.GuaranteedSafe)
		}(i, team)
	}
	wg.Wait()

	verdictFor := make(map[string]teamVerdicts, len(teams))
	for i, team := range teams {
		verdictFor[team] = verdicts[i]
	}

	remaining := l.RemainingFixtures()
	rows := make([]TableRow, 0, len(teams))
	for i, s := range l.Table() {
		v := verdictFor[s.Team]
		rows = append(rows, TableRow{
			Rank:           i + 1,
			Team:           s.Team,
			Played:         s.Played,
			Wins:           s.Wins,
			Draws:          s.Draws,
			Losses:         s.Losses,
			GoalsFor:       s.GoalsFor,
			GoalsAgainst:   s.GoalsAgainst,
			GoalDifference: s.GoalDifference(),
			Points:         s.Points,
			Official: Official{
				Top4: v.top4.String(),
				Safe: v.safe.String(),
			},
			ProbTop4: f.Top4[s.Team],
			ProbSafe: f.Safe[s.Team],
		})
	}

	return &Snapshot{
		Meta: Meta{
			GeneratedAt:    time.Now().Unix(),
			Sims:           f.Sims,
			Seed:           f.Seed,
			TeamsCount:     len(teams),
			ResultsCount:   l.ResultCount(),
			RemainingCount: len(remaining),
			Fingerprint:    l.Fingerprint(),
		},
		Table:     rows,
		Remaining: remaining,
	}, nil
}

type certifyFunc func(ctx context.Context, l *league.League, team string) (certifier.Verdict, error)

func (c *Composer) verdict(ctx context.Context, l *league.League, team string, ask certifyFunc) certifier.Verdict {
	v, err := ask(ctx, l, team)
	if err != nil {
		c.log.WithField("team", team).Warnf("certifier inconclusive: %v", err)
	}
	return v
}
