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

// FootballDataProvider reads the football-data.org v4 API.
// Auth is the X-Auth-Token header; the free tier allows 10 requests a minute,
// so callers should not poll aggressively.
type FootballDataProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewFootballDataProvider creates a football-data.org provider
func NewFootballDataProvider(cfg *config.Config) (*FootballDataProvider, error) {
	if cfg.FootballDataAPIKey == "" {
		return nil, apperrors.ErrFootballDataKeyMissing
	}
	return &FootballDataProvider{
		apiKey:     cfg.FootballDataAPIKey,
		baseURL:    cfg.FootballDataBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.New(),
	}, nil
}

// Name returns the provider identifier
func (p *FootballDataProvider) Name() string { return "football-data" }

type fdMatchesResponse struct {
	Matches []struct {
		ID       int64  `json:"id"`
		UTCDate  string `json:"utcDate"`
		HomeTeam struct {
			Name string `json:"name"`
		} `json:"homeTeam"`
		AwayTeam struct {
			Name string `json:"name"`
		} `json:"awayTeam"`
		Score struct {
			FullTime struct {
				Home *int `json:"home"`
				Away *int `json:"away"`
			} `json:"fullTime"`
		} `json:"score"`
	} `json:"matches"`
}

type fdStandingsResponse struct {
	Season struct {
		StartDate string `json:"startDate"`
	} `json:"season"`
	Standings []struct {
		Type  string `json:"type"`
		Table []struct {
			Team struct {
				Name string `json:"name"`
			} `json:"team"`
			Points         int `json:"points"`
			PlayedGames    int `json:"playedGames"`
			GoalsFor       int `json:"goalsFor"`
			GoalsAgainst   int `json:"goalsAgainst"`
			GoalDifference int `json:"goalDifference"`
		} `json:"table"`
	} `json:"standings"`
}

// FinishedMatches returns all finished Premier League fixtures. A zero season
// means the upstream's current season.
func (p *FootballDataProvider) FinishedMatches(ctx context.Context, season int) ([]Match, error) {
	params := url.Values{}
	params.Set("status", "FINISHED")
	if season > 0 {
		params.Set("season", strconv.Itoa(season))
	}

	var resp fdMatchesResponse
	if err := p.getJSON(ctx, p.baseURL+"/competitions/PL/matches?"+params.Encode(), &resp); err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		hg, ag := 0, 0
		if m.Score.FullTime.Home != nil {
			hg = *m.Score.FullTime.Home
		}
		if m.Score.FullTime.Away != nil {
			ag = *m.Score.FullTime.Away
		}
		matches = append(matches, Match{
			UTCDate:    m.UTCDate,
			Home:       m.HomeTeam.Name,
			Away:       m.AwayTeam.Name,
			HomeGoals:  hg,
			AwayGoals:  ag,
			ExternalID: m.ID,
		})
	}
	return matches, nil
}

// Standings returns the current TOTAL table. The season parameter is ignored
// here; football-data serves the current season's standings.
func (p *FootballDataProvider) Standings(ctx context.Context, _ int) ([]StandingRow, error) {
	var resp fdStandingsResponse
	if err := p.getJSON(ctx, p.baseURL+"/competitions/PL/standings", &resp); err != nil {
		return nil, err
	}

	var table []StandingRow
	for _, st := range resp.Standings {
		if st.Type != "TOTAL" {
			continue
		}
		for _, row := range st.Table {
			table = append(table, StandingRow{
				Team:           row.Team.Name,
				Points:         row.Points,
				Played:         row.PlayedGames,
				GoalsFor:       row.GoalsFor,
				GoalsAgainst:   row.GoalsAgainst,
				GoalDifference: row.GoalDifference,
			})
		}
	}
	return table, nil
}

// DetectCurrentSeasonYear returns the starting year of the season currently
// being played, taken from the standings endpoint's season metadata.
func (p *FootballDataProvider) DetectCurrentSeasonYear(ctx context.Context) (int, error) {
	var resp fdStandingsResponse
	if err := p.getJSON(ctx, p.baseURL+"/competitions/PL/standings", &resp); err != nil {
		return 0, err
	}
	if len(resp.Season.StartDate) < 4 {
		return 0, &apperrors.ProviderError{Provider: p.Name(), Message: "season start date missing from standings"}
	}
	year, err := strconv.Atoi(resp.Season.StartDate[:4])
	if err != nil {
		return 0, &apperrors.ProviderError{Provider: p.Name(), Message: "malformed season start date " + resp.Season.StartDate}
	}
	return year, nil
}

// getJSON performs an authenticated GET request and decodes JSON into out.
func (p *FootballDataProvider) getJSON(ctx context.Context, fullURL string, out interface{}) error {
	p.log.Infof("Invoking football-data API GET %s", fullURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("X-Auth-Token", p.apiKey)
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
		return fmt.Errorf("failed to decode football-data response: %w", err)
	}
	return nil
}
