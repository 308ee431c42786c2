// Package league holds the standings model: the ordered team list, the
// chronological list of recorded results, and everything derived from them
// (standings, remaining fixtures, the sorted table). A League is the immutable
// snapshot both the feasibility certifier and the probability estimator
// consume; neither mutates it.
package league

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	apperrors "league-tracker-backend/internal/errors"
)

const (
	// TeamCount is the fixed league size: a 20-team double round robin.
	TeamCount = 20

	// commentMarker prefixes entries that team-list files use for comments.
	// Such lines are rejected at load time, not silently stored.
	commentMarker = "#"
)

// TotalFixtures is the full ordered fixture universe: one home leg and one
// away leg per unordered pair.
const TotalFixtures = TeamCount * (TeamCount - 1)

// Fixture is an ordered (home, away) pairing not yet assigned a result.
type Fixture struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// Result is a recorded final score for a fixture. Results are append-only:
// they are never edited or removed once submitted.
type Result struct {
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeGoals int    `json:"hg"`
	AwayGoals int    `json:"ag"`
}

// TeamStanding is the derived aggregate for one team, recomputed on demand
// from the result list.
type TeamStanding struct {
	Team         string `json:"team"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"gf"`
	GoalsAgainst int    `json:"ga"`
	Points       int    `json:"points"`
}

// GoalDifference returns goals for minus goals against.
func (s *TeamStanding) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

// State is the serializable form of a league, used by persistence and the CLI
// state file.
type State struct {
	Teams   []string `json:"teams"`
	Results []Result `json:"results"`
}

// League is a 20-team double-round-robin league with a partial set of
// recorded results. The team order is the declared input order and is
// preserved for reproducible fixture enumeration.
type League struct {
	teams   []string
	teamSet map[string]struct{}
	results []Result
}

// New validates and builds a fresh league with no results. Names are trimmed;
// blank and comment-marker entries are rejected, as are duplicates. Exactly
// TeamCount distinct names are required.
func New(teamNames []string) (*League, error) {
	cleaned := make([]string, 0, len(teamNames))
	seen := make(map[string]struct{}, len(teamNames))
	for _, name := range teamNames {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &apperrors.ValidationError{Field: "teams", Message: "blank team name"}
		}
		if strings.HasPrefix(name, commentMarker) {
			return nil, &apperrors.ValidationError{Field: "teams", Message: fmt.Sprintf("comment entry not allowed as team name: %q", name)}
		}
		if _, dup := seen[name]; dup {
			return nil, &apperrors.ValidationError{Field: "teams", Message: fmt.Sprintf("duplicate team name: %q", name)}
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, name)
	}
	if len(cleaned) != TeamCount {
		return nil, &apperrors.ValidationError{
			Field:   "teams",
			Message: fmt.Sprintf("league must have exactly %d teams (got %d)", TeamCount, len(cleaned)),
		}
	}
	return &League{teams: cleaned, teamSet: seen, results: nil}, nil
}

// FromState rebuilds a league from its serialized form, re-validating every
// team name and replaying every result through SubmitResult so an invalid
// state file cannot produce a league that violates the model's invariants.
func FromState(st State) (*League, error) {
	l, err := New(st.Teams)
	if err != nil {
		return nil, err
	}
	for _, r := range st.Results {
		if err := l.SubmitResult(r.Home, r.Away, r.HomeGoals, r.AwayGoals); err != nil {
			return nil, fmt.Errorf("replaying result %s vs %s: %w", r.Home, r.Away, err)
		}
	}
	return l, nil
}

// State returns the serializable form of the league.
func (l *League) State() State {
	return State{Teams: l.Teams(), Results: l.Results()}
}

// Teams returns the team names in declared order.
func (l *League) Teams() []string {
	out := make([]string, len(l.teams))
	copy(out, l.teams)
	return out
}

// HasTeam reports whether name is a member of the league.
func (l *League) HasTeam(name string) bool {
	_, ok := l.teamSet[name]
	return ok
}

// Results returns the recorded results in submission order.
func (l *League) Results() []Result {
	out := make([]Result, len(l.results))
	copy(out, l.results)
	return out
}

// ResultCount returns the number of recorded results.
func (l *League) ResultCount() int {
	return len(l.results)
}

// Complete reports whether every fixture of the season has a result.
func (l *League) Complete() bool {
	return len(l.results) == TotalFixtures
}

// SubmitResult validates and appends a result. A fixture can be recorded at
// most once; re-submission is an error, not a merge.
func (l *League) SubmitResult(home, away string, homeGoals, awayGoals int) error {
	if !l.HasTeam(home) {
		return &apperrors.ValidationError{Field: "home", Message: fmt.Sprintf("unknown team name: %q", home)}
	}
	if !l.HasTeam(away) {
		return &apperrors.ValidationError{Field: "away", Message: fmt.Sprintf("unknown team name: %q", away)}
	}
	if home == away {
		return &apperrors.ValidationError{Field: "away", Message: "home and away cannot be the same team"}
	}
	if homeGoals < 0 || awayGoals < 0 {
		return &apperrors.ValidationError{Field: "goals", Message: "goals cannot be negative"}
	}
	for _, r := range l.results {
		if r.Home == home && r.Away == away {
			return &apperrors.ValidationError{
				Field:   "fixture",
				Message: fmt.Sprintf("fixture %s vs %s has already been recorded", home, away),
			}
		}
	}
	l.results = append(l.results, Result{Home: home, Away: away, HomeGoals: homeGoals, AwayGoals: awayGoals})
	return nil
}

// Standings folds every result into per-team aggregates: 3 points per win,
// 1 per draw. The fold is order-independent.
func (l *League) Standings() map[string]*TeamStanding {
	stats := make(map[string]*TeamStanding, len(l.teams))
	for _, t := range l.teams {
		stats[t] = &TeamStanding{Team: t}
	}
	for _, r := range l.results {
		home, away := stats[r.Home], stats[r.Away]
		home.Played++
		away.Played++
		home.GoalsFor += r.HomeGoals
		home.GoalsAgainst += r.AwayGoals
		away.GoalsFor += r.AwayGoals
		away.GoalsAgainst += r.HomeGoals
		switch {
		case r.HomeGoals > r.AwayGoals:
			home.Wins++
			home.Points += 3
			away.Losses++
		case r.HomeGoals < r.AwayGoals:
			away.Wins++
			away.Points += 3
			home.Losses++
		default:
			home.Draws++
			away.Draws++
			home.Points++
			away.Points++
		}
	}
	return stats
}

// RemainingFixtures returns the fixture universe minus recorded pairs, in a
// stable order: home teams iterated in declared order, nested over away teams
// in the same order. Consumers rely on this positionally for reproducibility.
func (l *League) RemainingFixtures() []Fixture {
	played := make(map[Fixture]struct{}, len(l.results))
	for _, r := range l.results {
		played[Fixture{Home: r.Home, Away: r.Away}] = struct{}{}
	}
	remaining := make([]Fixture, 0, TotalFixtures-len(l.results))
	for _, h := range l.teams {
		for _, a := range l.teams {
			if h == a {
				continue
			}
			f := Fixture{Home: h, Away: a}
			if _, done := played[f]; !done {
				remaining = append(remaining, f)
			}
		}
	}
	return remaining
}

// Table returns the standings sorted by points desc, goal difference desc,
// goals for desc, then team name asc. The name key only exists to make the
// order total when every football criterion ties.
func (l *League) Table() []TeamStanding {
	stats := l.Standings()
	rows := make([]TeamStanding, 0, len(l.teams))
	for _, t := range l.teams {
		rows = append(rows, *stats[t])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team < b.Team
	})
	return rows
}

// Fingerprint returns a sha256 content hash of the ordered result list. It is
// the cache and reproducibility-audit key for everything derived from this
// league state.
func (l *League) Fingerprint() string {
	h := sha256.New()
	for _, r := range l.results {
		fmt.Fprintf(h, "%s|%s|%d|%d", r.Home, r.Away, r.HomeGoals, r.AwayGoals)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Clone returns an independent copy of the league.
func (l *League) Clone() *League {
	teamSet := make(map[string]struct{}, len(l.teamSet))
	for t := range l.teamSet {
		teamSet[t] = struct{}{}
	}
	return &League{
		teams:   l.Teams(),
		teamSet: teamSet,
		results: l.Results(),
	}
}
