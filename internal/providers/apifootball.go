package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"league-tracker-backend/internal/config"
	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/logger"
)

// premierLeagueID is API-FOOTBALL's identifier for the Premier League.
const premierLeagueID = 39

// APIFootballProvider reads the api-sports.io v3 API.
// Auth is the x-apisports-key header. Every call needs an explicit season.
type APIFootballProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewAPIFootballProvider creates an API-FOOTBALL provider
func NewAPIFootballProvider(cfg *config.Config) (*APIFootballProvider, error) {
	if cfg.APIFootballAPIKey == "" {
		return nil, apperrors.ErrAPIFootballKeyMissing
	}
	return &APIFootballProvider{
		apiKey:     cfg.APIFootballAPIKey,
		baseURL:    cfg.APIFootballBaseURL,
		httpClient: &http.Client{Timeout: 40 * time.Second},
		log:        logger.New(),
	}, nil
}

// Name returns the provider identifier
func (p *APIFootballProvider) Name() string { return "api-football" }

type afFixturesResponse struct {
	Response []struct {
		Fixture struct {
			ID   int64  `json:"id"`
			Date string `json:"date"`
		} `json:"fixture"`
		Teams struct {
			Home struct {
				Name string `json:"name"`
			} `json:"home"`
			Away struct {
				Name string `json:"name"`
			} `json:"away"`
		} `json:"teams"`
		Goals struct {
			Home *int `json:"home"`
			Away *int `json:"away"`
		} `json:"goals"`
	} `json:"response"`
}

type afStandingsResponse struct {
	Response []struct {
		League struct {
			Standings [][]struct {
				Team struct {
					Name string `json:"name"`
				} `json:"team"`
				Points    int `json:"points"`
				GoalsDiff int `json:"goalsDiff"`
				All       struct {
					Played int `json:"played"`
					Goals  struct {
						For     int `json:"for"`
						Against int `json:"against"`
					} `json:"goals"`
				} `json:"all"`
			} `json:"standings"`
		} `json:"league"`
	} `json:"response"`
}

// FinishedMatches returns full-time fixtures for the given season.
func (p *APIFootballProvider) FinishedMatches(ctx context.Context, season int) ([]Match, error) {
	if season <= 0 {
		return nil, apperrors.ErrSeasonRequired
	}

	params := url.Values{}
	params.Set("league", strconv.Itoa(premierLeagueID))
	params.Set("season", strconv.Itoa(season))
	params.Set("status", "FT")

	var resp afFixturesResponse
	if err := p.getJSON(ctx, p.baseURL+"/fixtures?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(resp.Response))
	for _, r := range resp.Response {
		hg, ag := 0, 0
		if r.Goals.Home != nil {
			hg = *r.Goals.Home
		}
		if r.Goals.Away != nil {
			ag = *r.Goals.Away
		}
		matches = append(matches, Match{
			UTCDate:    r.Fixture.Date,
			Home:       r.Teams.Home.Name,
			Away:       r.Teams.Away.Name,
			HomeGoals:  hg,
			AwayGoals:  ag,
			ExternalID: r.Fixture.ID,
		})
	}
	return matches, nil
}

// Standings returns the league table for the given season.
func (p *APIFootballProvider) Standings(ctx context.Context, season int) ([]StandingRow, error) {
	if season <= 0 {
		return nil, apperrors.ErrSeasonRequired
	}

	params := url.Values{}
	params.Set("league", strconv.Itoa(premierLeagueID))
	params.Set("season", strconv.Itoa(season))

	var resp afStandingsResponse
	if err := p.getJSON(ctx, p.baseURL+"/standings?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	var table []StandingRow
	for _, r := range resp.Response {
		if len(r.League.Standings) == 0 {
			continue
		}
		for _, row := range r.League.Standings[0] {
			table = append(table, StandingRow{
				Team:           row.Team.Name,
				Points:         row.Points,
				Played:         row.All.Played,
				GoalsFor:       row.All.Goals.For,
				GoalsAgainst:   row.All.Goals.Against,
				GoalDifference: row.GoalsDiff,
			})
		}
	}
	return table, nil
}

// getJSON performs an authenticated GET request and decodes JSON into out.
func (p *APIFootballProvider) getJSON(ctx context.Context, fullURL string, out interface{}) error {
	p.log.Infof("Invoking API-FOOTBALL GET %s", fullURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("x-apisports-key", p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return &apperrors.ProviderError{Provider: p.Name(), Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &apperrors.ProviderError{
			Provider: p.Name(),
			Message:  fmt.Sprintf("request failed: status=%d body=%s", resp.StatusCode, string(body)),
		}
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode api-football response: %w", err)
	}
	return nil
}
