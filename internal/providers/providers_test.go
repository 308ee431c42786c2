package providers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"league-tracker-backend/internal/config"
	apperrors "league-tracker-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func baseProviderCfg() *config.Config {
	return &config.Config{
		FootballDataAPIKey:  "fd-key",
		FootballDataBaseURL: "https://api.football-data.org/v4",
		APIFootballAPIKey:   "af-key",
		APIFootballBaseURL:  "https://v3.football.api-sports.io",
	}
}

func TestFootballData_FinishedMatches_Success(t *testing.T) {
	cfg := baseProviderCfg()
	p, err := NewFootballDataProvider(cfg)
	require.NoError(t, err)

	p.httpClient = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "fd-key", req.Header.Get("X-Auth-Token"))
		assert.Equal(t, "/v4/competitions/PL/matches", req.URL.Path)
		q := req.URL.Query()
		assert.Equal(t, "FINISHED", q.Get("status"))
		assert.Equal(t, "2025", q.Get("season"))

		return jsonResponse(200, `{
			"matches": [
				{
					"id": 101,
					"utcDate": "2025-08-16T14:00:00Z",
					"homeTeam": {"name": "Arsenal FC"},
					"awayTeam": {"name": "Chelsea FC"},
					"score": {"fullTime": {"home": 2, "away": 1}}
				},
				{
					"id": 102,
					"utcDate": "2025-08-17T15:30:00Z",
					"homeTeam": {"name": "Everton FC"},
					"awayTeam": {"name": "Fulham FC"},
					"score": {"fullTime": {"home": null, "away": null}}
				}
			]
		}`), nil
	})}

	matches, err := p.FinishedMatches(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Arsenal FC", matches[0].Home)
	assert.Equal(t, 2, matches[0].HomeGoals)
	assert.Equal(t, 1, matches[0].AwayGoals)
	assert.Equal(t, int64(101), matches[0].ExternalID)
	// Null full-time scores decode as zero
	assert.Equal(t, 0, matches[1].HomeGoals)
	assert.Equal(t, 0, matches[1].AwayGoals)
}

func TestFootballData_Standings_FiltersTotalOnly(t *testing.T) {
	p, err := NewFootballDataProvider(baseProviderCfg())
	require.NoError(t, err)

	p.httpClient = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/v4/competitions/PL/standings", req.URL.Path)
		return jsonResponse(200, `{
			"standings": [
				{"type": "HOME", "table": [{"team": {"name": "Arsenal FC"}, "points": 99}]},
				{"type": "TOTAL", "table": [
					{"team": {"name": "Arsenal FC"}, "points": 10, "playedGames": 4, "goalsFor": 9, "goalsAgainst": 2, "goalDifference": 7}
				]}
			]
		}`), nil
	})}

	table, err := p.Standings(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.Equal(t, "Arsenal FC", table[0].Team)
	assert.Equal(t, 10, table[0].Points)
	assert.Equal(t, 7, table[0].GoalDifference)
}

func TestFootballData_UpstreamError(t *testing.T) {
	p, err := NewFootballDataProvider(baseProviderCfg())
	require.NoError(t, err)

	p.httpClient = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(429, `{"message":"rate limited"}`), nil
	})}

	_, err = p.FinishedMatches(context.Background(), 0)
	require.Error(t, err)
	assert.True(t, apperrors.IsProvider(err))
	assert.Contains(t, err.Error(), "status=429")
}

func TestFootballData_MissingKey(t *testing.T) {
	cfg := baseProviderCfg()
	cfg.FootballDataAPIKey = ""
	_, err := NewFootballDataProvider(cfg)
	assert.ErrorIs(t, err, apperrors.ErrFootballDataKeyMissing)
}

func TestAPIFootball_FinishedMatches_Success(t *testing.T) {
	p, err := NewAPIFootballProvider(baseProviderCfg())
	require.NoError(t, err)

	p.httpClient = &http.Client{Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "af-key", req.Header.Get("x-apisports-key"))
		assert.Equal(t, "/fixtures", req.URL.Path)
		q := req.URL.Query()
		assert.Equal(t, "39", q.Get("league"))
		assert.Equal(t, "2025", q.Get("season"))
		assert.Equal(t, "FT", q.Get("status"))

		return jsonResponse(200, `{
			"response": [
				{
					"fixture": {"id": 555, "date": "2025-08-16T14:00:00+00:00"},
					"teams": {"home": {"name": "Liverpool"}, "away": {"name": "Spurs"}},
					"goals": {"home": 3, "away": 0}
				}
			]
		}`), nil
	})}

	matches, err := p.FinishedMatches(context.Background(), 2025)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Liverpool", matches[0].Home)
	assert.Equal(t, 3, matches[0].HomeGoals)
	assert.Equal(t, int64(555), matches[0].ExternalID)
}

func TestAPIFootball_SeasonRequired(t *testing.T) {
	p, err := NewAPIFootballProvider(baseProviderCfg())
	require.NoError(t, err)

	_, err = p.FinishedMatches(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrSeasonRequired)

	_, err = p.Standings(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrSeasonRequired)
}

func TestForName(t *testing.T) {
	cfg := baseProviderCfg()

	p, err := ForName("football-data", cfg)
	require.NoError(t, err)
	assert.Equal(t, "football-data", p.Name())

	// Empty name defaults to football-data
	p, err = ForName("", cfg)
	require.NoError(t, err)
	assert.Equal(t, "football-data", p.Name())

	p, err = ForName("api-football", cfg)
	require.NoError(t, err)
	assert.Equal(t, "api-football", p.Name())

	_, err = ForName("bbc-sport", cfg)
	assert.ErrorIs(t, err, apperrors.ErrUnknownProvider)
}

func TestNameMap(t *testing.T) {
	m := NewNameMap(map[string]string{"Man United": "Manchester United FC"})
	assert.Equal(t, "Manchester United FC", m.Canonical("Man United"))
	assert.Equal(t, "Arsenal FC", m.Canonical("Arsenal FC"))
}

func TestLoadNameMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teams.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Spurs: Tottenham Hotspur FC\n"), 0o644))

	m, err := LoadNameMap(path)
	require.NoError(t, err)
	assert.Equal(t, "Tottenham Hotspur FC", m.Canonical("Spurs"))

	// Empty path gives an identity map
	m, err = LoadNameMap("")
	require.NoError(t, err)
	assert.Equal(t, "Spurs", m.Canonical("Spurs"))

	_, err = LoadNameMap(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
