package service

import (
	"context"
	"fmt"
	"testing"

	"league-tracker-backend/internal/config"
	"league-tracker-backend/internal/database/models"
	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/league"
	"league-tracker-backend/internal/providers"
	"league-tracker-backend/internal/snapshot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name    string
	matches []providers.Match
	err     error
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) FinishedMatches(_ context.Context, _ int) ([]providers.Match, error) {
	return p.matches, p.err
}

func (p *stubProvider) Standings(_ context.Context, _ int) ([]providers.StandingRow, error) {
	return nil, nil
}

// stubLeagues serves a fixed domain league; only Domain is expected to run.
type stubLeagues struct {
	LeagueServiceInterface
	domain *league.League
}

func (s *stubLeagues) Domain(uuid.UUID) (*league.League, error) { return s.domain, nil }

// recordingRepo captures appended results.
type recordingRepo struct {
	LeagueRepositoryStub
	appended []*models.MatchResult
}

func (r *recordingRepo) AppendResult(_ uuid.UUID, result *models.MatchResult) error {
	r.appended = append(r.appended, result)
	return nil
}

// LeagueRepositoryStub panics on any unexpected repository call.
type LeagueRepositoryStub struct{}

func (LeagueRepositoryStub) Create(*models.League, []string) error { panic("unexpected Create") }
func (LeagueRepositoryStub) GetByID(uuid.UUID) (*models.League, error) {
	panic("unexpected GetByID")
}
func (LeagueRepositoryStub) GetByName(string) (*models.League, error) {
	panic("unexpected GetByName")
}
func (LeagueRepositoryStub) GetAll(int, int) ([]models.League, int64, error) {
	panic("unexpected GetAll")
}
func (LeagueRepositoryStub) GetWithTeams(uuid.UUID) (*models.League, error) {
	panic("unexpected GetWithTeams")
}
func (LeagueRepositoryStub) GetWithResults(uuid.UUID) (*models.League, error) {
	panic("unexpected GetWithResults")
}
func (LeagueRepositoryStub) AppendResult(uuid.UUID, *models.MatchResult) error {
	panic("unexpected AppendResult")
}
func (LeagueRepositoryStub) Delete(uuid.UUID) error { panic("unexpected Delete") }

func syncTeams() []string {
	teams := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		teams = append(teams, fmt.Sprintf("Team %02d", i))
	}
	return teams
}

func newSyncFixture(t *testing.T, stub *stubProvider, played []league.Result) (*SyncService, *recordingRepo, *league.League) {
	domain, err := league.New(syncTeams())
	require.NoError(t, err)
	for _, r := range played {
		require.NoError(t, domain.SubmitResult(r.Home, r.Away, r.HomeGoals, r.AwayGoals))
	}

	repo := &recordingRepo{}
	cfg := &config.Config{DefaultSeason: 2025}
	svc := NewSyncService(&stubLeagues{domain: domain}, repo, providers.NewNameMap(map[string]string{
		"The First": "Team 01",
	}), cfg)
	svc.newProvider = func(string, *config.Config) (providers.Provider, error) {
		return stub, nil
	}
	return svc, repo, domain
}

func TestSync_AddsOnlyMissingResults(t *testing.T) {
	teams := syncTeams()
	stub := &stubProvider{name: "football-data", matches: []providers.Match{
		// Already recorded locally, must be skipped
		{Home: teams[0], Away: teams[1], HomeGoals: 9, AwayGoals: 9},
		// New, with an upstream alias for the home side
		{Home: "The First", Away: teams[2], HomeGoals: 2, AwayGoals: 0},
		// Relegated club no longer in the league
		{Home: "Burnley FC", Away: teams[3], HomeGoals: 1, AwayGoals: 1},
	}}

	svc, repo, _ := newSyncFixture(t, stub, []league.Result{
		{Home: teams[0], Away: teams[1], HomeGoals: 1, AwayGoals: 0},
	})

	resp, err := svc.Sync(context.Background(), uuid.New(), "football-data", 0)
	require.NoError(t, err)

	assert.Equal(t, "football-data", resp.Provider)
	assert.Equal(t, 2025, resp.Season)
	assert.Equal(t, 3, resp.Fetched)
	assert.Equal(t, 1, resp.Added)
	assert.Equal(t, 1, resp.SkippedKnown)
	assert.Equal(t, 1, resp.SkippedTeams)

	require.Len(t, repo.appended, 1)
	assert.Equal(t, "Team 01", repo.appended[0].Home)
	assert.Equal(t, teams[2], repo.appended[0].Away)
	assert.Equal(t, 2, repo.appended[0].HomeGoals)
}

func TestSync_LocalResultWins(t *testing.T) {
	teams := syncTeams()
	stub := &stubProvider{name: "football-data", matches: []providers.Match{
		{Home: teams[0], Away: teams[1], HomeGoals: 5, AwayGoals: 5},
	}}

	svc, repo, domain := newSyncFixture(t, stub, []league.Result{
		{Home: teams[0], Away: teams[1], HomeGoals: 1, AwayGoals: 0},
	})

	resp, err := svc.Sync(context.Background(), uuid.New(), "", 2025)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Added)
	assert.Equal(t, 1, resp.SkippedKnown)
	assert.Empty(t, repo.appended)

	// The locally recorded score is untouched
	standings := domain.Standings()
	assert.Equal(t, 3, standings[teams[0]].Points)
}

func TestSync_ProviderFailure(t *testing.T) {
	stub := &stubProvider{name: "football-data", err: &apperrors.ProviderError{Provider: "football-data", Message: "rate limited"}}

	svc, _, _ := newSyncFixture(t, stub, nil)

	_, err := svc.Sync(context.Background(), uuid.New(), "", 2025)
	require.Error(t, err)
	assert.True(t, apperrors.IsProvider(err))
}

func TestSync_UnknownProvider(t *testing.T) {
	svc := NewSyncService(&stubLeagues{}, &recordingRepo{}, nil, &config.Config{})

	_, err := svc.Sync(context.Background(), uuid.New(), "bbc-sport", 0)
	assert.ErrorIs(t, err, apperrors.ErrUnknownProvider)
}

// stubStatus returns a canned snapshot for the publish tests.
type stubStatus struct {
	snap *snapshot.Snapshot
	err  error
}

func (s *stubStatus) GetStatus(context.Context, uuid.UUID, int, int64) (*snapshot.Snapshot, error) {
	return s.snap, s.err
}
