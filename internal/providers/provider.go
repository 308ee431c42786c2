package providers

import (
	"context"

	"league-tracker-backend/internal/config"
	apperrors "league-tracker-backend/internal/errors"
)

// Match is one finished fixture as reported by an upstream data source.
type Match struct {
	UTCDate   string `json:"utcDate"`
	Home      string `json:"home"`
	Away      string `json:"away"`
	HomeGoals int    `json:"hg"`
	AwayGoals int    `json:"ag"`
	ExternalID int64 `json:"id"`
}

// StandingRow is one row of an upstream league table. Used for season
// detection and cross-checking, not as a source of truth for points.
type StandingRow struct {
	Team           string `json:"team"`
	Points         int    `json:"points"`
	Played         int    `json:"played"`
	GoalsFor       int    `json:"gf"`
	GoalsAgainst   int    `json:"ga"`
	GoalDifference int    `json:"gd"`
}

// Provider fetches finished matches and standings from an upstream source.
type Provider interface {
	Name() string
	FinishedMatches(ctx context.Context, season int) ([]Match, error)
	Standings(ctx context.Context, season int) ([]StandingRow, error)
}

// ForName builds the named provider from configuration. The season 0 means
// "let the provider decide" where the upstream supports that.
func ForName(name string, cfg *config.Config) (Provider, error) {
	switch name {
	case "football-data", "":
		return NewFootballDataProvider(cfg)
	case "api-football":
		return NewAPIFootballProvider(cfg)
	default:
		return nil, apperrors.ErrUnknownProvider
	}
}
