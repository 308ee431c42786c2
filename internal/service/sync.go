package service

import (
	"context"
	"fmt"

	"league-tracker-backend/internal/config"
	"league-tracker-backend/internal/database/models"
	"league-tracker-backend/internal/logger"
	"league-tracker-backend/internal/providers"
	"league-tracker-backend/internal/repository"

	"github.com/google/uuid"
)

// providerFactory builds a provider by name. Swapped out in tests.
type providerFactory func(name string, cfg *config.Config) (providers.Provider, error)

// SyncService merges finished matches from an upstream provider into a
// tracked league. Local results win: a fixture that already has a result is
// never overwritten, and matches naming unknown teams are skipped, not
// guessed at.
type SyncService struct {
	leagues     LeagueServiceInterface
	leagueRepo  repository.LeagueRepositoryInterface
	nameMap     *providers.NameMap
	cfg         *config.Config
	newProvider providerFactory
	log         *logger.Logger
}

// NewSyncService creates a new sync service
func NewSyncService(
	leagues LeagueServiceInterface,
	leagueRepo repository.LeagueRepositoryInterface,
	nameMap *providers.NameMap,
	cfg *config.Config,
) *SyncService {
	if nameMap == nil {
		nameMap = providers.NewNameMap(nil)
	}
	return &SyncService{
		leagues:     leagues,
		leagueRepo:  leagueRepo,
		nameMap:     nameMap,
		cfg:         cfg,
		newProvider: providers.ForName,
		log:         logger.New(),
	}
}

// SyncResponse reports what a sync run did
type SyncResponse struct {
	Provider     string `json:"provider"`
	Season       int    `json:"season"`
	Fetched      int    `json:"fetched"`
	Added        int    `json:"added"`
	SkippedKnown int    `json:"skipped_known"`
	SkippedTeams int    `json:"skipped_unknown_teams"`
}

// Sync fetches finished matches and appends the ones the league is missing.
// A zero season falls back to the configured default, which most providers
// interpret as the current season.
func (s *SyncService) Sync(ctx context.Context, leagueID uuid.UUID, providerName string, season int) (*SyncResponse, error) {
	provider, err := s.newProvider(providerName, s.cfg)
	if err != nil {
		return nil, err
	}
	if season == 0 {
		season = s.cfg.DefaultSeason
	}

	domain, err := s.leagues.Domain(leagueID)
	if err != nil {
		return nil, err
	}

	matches, err := provider.FinishedMatches(ctx, season)
	if err != nil {
		return nil, err
	}

	resp := &SyncResponse{
		Provider: provider.Name(),
		Season:   season,
		Fetched:  len(matches),
	}

	for _, m := range matches {
		home := s.nameMap.Canonical(m.Home)
		away := s.nameMap.Canonical(m.Away)

		if !domain.HasTeam(home) || !domain.HasTeam(away) {
			s.log.WithFields(map[string]interface{}{
				"home": m.Home,
				"away": m.Away,
			}).Debug("Skipping match with unmapped team")
			resp.SkippedTeams++
			continue
		}

		// Replaying into the domain model applies the duplicate check and
		// score validation in one place.
		if err := domain.SubmitResult(home, away, m.HomeGoals, m.AwayGoals); err != nil {
			resp.SkippedKnown++
			continue
		}

		if err := s.leagueRepo.AppendResult(leagueID, &models.MatchResult{
			Home:      home,
			Away:      away,
			HomeGoals: m.HomeGoals,
			AwayGoals: m.AwayGoals,
		}); err != nil {
			return resp, fmt.Errorf("failed to store synced result %s vs %s: %w", home, away, err)
		}
		resp.Added++
	}

	s.log.WithFields(map[string]interface{}{
		"provider": resp.Provider,
		"fetched":  resp.Fetched,
		"added":    resp.Added,
	}).Info("Sync completed")
	return resp, nil
}

var _ SyncServiceInterface = (*SyncService)(nil)
