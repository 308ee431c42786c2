package snapshot_test

import (
	"context"
	"fmt"
	"testing"

	"league-tracker-backend/internal/certifier"
	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/forecast"
	"league-tracker-backend/internal/league"
	"league-tracker-backend/internal/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCertifier struct {
	guaranteedTop4 map[string]bool
	guaranteedSafe map[string]bool
	inconclusive   map[string]bool
}

func (f *fakeCertifier) GuaranteedTop4(_ context.Context, _ *league.League, team string) (certifier.Verdict, error) {
	if f.inconclusive[team] {
		return certifier.VerdictUnknown, &apperrors.SolverInconclusiveError{Team: team, Scenario: "top4", Reason: "time limit"}
	}
	if f.guaranteedTop4[team] {
		return certifier.VerdictGuaranteed, nil
	}
	return certifier.VerdictOpen, nil
}

func (f *fakeCertifier) GuaranteedSafe(_ context.Context, _ *league.League, team string) (certifier.Verdict, error) {
	if f.inconclusive[team] {
		return certifier.VerdictUnknown, &apperrors.SolverInconclusiveError{Team: team, Scenario: "safety", Reason: "time limit"}
	}
	if f.guaranteedSafe[team] {
		return certifier.VerdictGuaranteed, nil
	}
	return certifier.VerdictOpen, nil
}

type fakeEstimator struct {
	forecast *forecast.Forecast
	err      error
}

func (f *fakeEstimator) Estimate(_ *league.League, _ int, _ int64) (*forecast.Forecast, error) {
	return f.forecast, f.err
}

func newTestLeague(t *testing.T) *league.League {
	t.Helper()
	names := make([]string, 0, league.TeamCount)
	for i := 1; i <= league.TeamCount; i++ {
		names = append(names, fmt.Sprintf("Team %02d", i))
	}
	l, err := league.New(names)
	require.NoError(t, err)
	return l
}

func uniformForecast(l *league.League, sims int, seed int64) *forecast.Forecast {
	f := &forecast.Forecast{Sims: sims, Seed: seed, Top4: map[string]float64{}, Safe: map[string]float64{}}
	for _, team := range l.Teams() {
		f.Top4[team] = 0.2
		f.Safe[team] = 0.85
	}
	return f
}

func TestBuild_ComposesTableVerdictsAndMeta(t *testing.T) {
	l := newTestLeague(t)
	teams := l.Teams()
	require.NoError(t, l.SubmitResult(teams[0], teams[1], 2, 0))

	certifierStub := &fakeCertifier{
		guaranteedTop4: map[string]bool{teams[0]: true},
		guaranteedSafe: map[string]bool{teams[0]: true, teams[1]: true},
	}
	estimatorStub := &fakeEstimator{forecast: uniformForecast(l, 500, 7)}

	snap, err := snapshot.NewComposer(certifierStub, estimatorStub, nil).Build(context.Background(), l, 500, 7)
	require.NoError(t, err)

	assert.Len(t, snap.Table, league.TeamCount)
	assert.Equal(t, 1, snap.Table[0].Rank)
	assert.Equal(t, teams[0], snap.Table[0].Team)
	assert.Equal(t, "guaranteed", snap.Table[0].Official.Top4)
	assert.Equal(t, "guaranteed", snap.Table[0].Official.Safe)
	assert.Equal(t, "open", snap.Table[1].Official.Top4)
	assert.Equal(t, 0.2, snap.Table[0].ProbTop4)
	assert.Equal(t, 0.85, snap.Table[0].ProbSafe)

	assert.Equal(t, 500, snap.Meta.Sims)
	assert.Equal(t, int64(7), snap.Meta.Seed)
	assert.Equal(t, league.TeamCount, snap.Meta.TeamsCount)
	assert.Equal(t, 1, snap.Meta.ResultsCount)
	assert.Equal(t, league.TotalFixtures-1, snap.Meta.RemainingCount)
	assert.Equal(t, l.Fingerprint(), snap.Meta.Fingerprint)
	assert.NotZero(t, snap.Meta.GeneratedAt)
	assert.Len(t, snap.Remaining, league.TotalFixtures-1)
}

func TestBuild_InconclusiveTeamDoesNotAbortOthers(t *testing.T) {
	l := newTestLeague(t)
	teams := l.Teams()

	certifierStub := &fakeCertifier{
		guaranteedTop4: map[string]bool{teams[0]: true},
		inconclusive:   map[string]bool{teams[3]: true},
	}
	estimatorStub := &fakeEstimator{forecast: uniformForecast(l, 100, 1)}

	snap, err := snapshot.NewComposer(certifierStub, estimatorStub, nil).Build(context.Background(), l, 100, 1)
	require.NoError(t, err)

	byTeam := make(map[string]snapshot.TableRow)
	for _, row := range snap.Table {
		byTeam[row.Team] = row
	}
	assert.Equal(t, "unknown", byTeam[teams[3]].Official.Top4)
	assert.Equal(t, "unknown", byTeam[teams[3]].Official.Safe)
	assert.Equal(t, "guaranteed", byTeam[teams[0]].Official.Top4)
	assert.Equal(t, "open", byTeam[teams[1]].Official.Top4)
}

func TestBuild_EstimatorErrorPropagates(t *testing.T) {
	l := newTestLeague(t)
	estimatorStub := &fakeEstimator{err: &apperrors.SamplingParameterError{Parameter: "sims", Message: "must be positive"}}

	_, err := snapshot.NewComposer(&fakeCertifier{}, estimatorStub, nil).Build(context.Background(), l, 0, 1)
	require.Error(t, err)
	assert.True(t, apperrors.IsSamplingParameter(err))
}

func TestCacheKey_ChangesWithEveryParameter(t *testing.T) {
	base := snapshot.CacheKey("abc", 100, 1)
	assert.Equal(t, "abc/100/1", base)
	assert.NotEqual(t, base, snapshot.CacheKey("abd", 100, 1))
	assert.NotEqual(t, base, snapshot.CacheKey("abc", 200, 1))
	assert.NotEqual(t, base, snapshot.CacheKey("abc", 100, 2))
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	cache := snapshot.NewMemoryCache()

	_, ok := cache.Get("missing")
	assert.False(t, ok)

	snap := &snapshot.Snapshot{Meta: snapshot.Meta{Fingerprint: "abc"}}
	require.NoError(t, cache.Put("k", snap))

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "abc", got.Meta.Fingerprint)
}
