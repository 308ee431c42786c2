package service

import (
	"errors"
	"fmt"

	"league-tracker-backend/internal/database/models"
	apperrors "league-tracker-backend/internal/errors"
	"league-tracker-backend/internal/league"
	"league-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeagueService handles business logic for tracked leagues
type LeagueService struct {
	repo      repository.LeagueRepositoryInterface
	validator *validator.Validate
}

// NewLeagueService creates a new league service
func NewLeagueService(repo repository.LeagueRepositoryInterface, validator *validator.Validate) *LeagueService {
	return &LeagueService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLeagueRequest represents the request to create a league
type CreateLeagueRequest struct {
	Name  string   `json:"name" validate:"required,min=1,max=80"`
	Teams []string `json:"teams" validate:"required"`
}

// SubmitResultRequest represents the request to record one final score
type SubmitResultRequest struct {
	Home      string `json:"home" validate:"required"`
	Away      string `json:"away" validate:"required"`
	HomeGoals int    `json:"hg" validate:"min=0"`
	AwayGoals int    `json:"ag" validate:"min=0"`
}

// LeagueResponse represents the response for league operations
type LeagueResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Teams          []string  `json:"teams,omitempty"`
	ResultsCount   int       `json:"results_count"`
	RemainingCount int       `json:"remaining_count"`
	Complete       bool      `json:"complete"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// LeagueListResponse represents a paginated list of leagues
type LeagueListResponse struct {
	Leagues []LeagueResponse `json:"leagues"`
	Total   int64            `json:"total"`
}

// TableRowResponse is one ranked line of the league table
type TableRowResponse struct {
	Rank           int    `json:"rank"`
	Team           string `json:"team"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"gf"`
	GoalsAgainst   int    `json:"ga"`
	GoalDifference int    `json:"gd"`
	Points         int    `json:"points"`
}

// TableResponse represents the sorted league table
type TableResponse struct {
	LeagueID uuid.UUID          `json:"league_id"`
	Table    []TableRowResponse `json:"table"`
}

// FixtureResponse is one unplayed pairing
type FixtureResponse struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// RemainingResponse represents the unplayed fixtures of a league
type RemainingResponse struct {
	LeagueID  uuid.UUID         `json:"league_id"`
	Remaining []FixtureResponse `json:"remaining"`
	Count     int               `json:"count"`
}

// Create creates a new tracked league with its twenty teams
func (s *LeagueService) Create(req *CreateLeagueRequest) (*LeagueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// The domain constructor owns the team-list rules (count, blanks,
	// duplicates), so run it before touching the database.
	domain, err := league.New(req.Teams)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing league by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrLeagueExists
	}

	model := &models.League{Name: req.Name}
	if err := s.repo.Create(model, domain.Teams()); err != nil {
		return nil, fmt.Errorf("failed to create league: %w", err)
	}

	return s.toResponse(model, domain), nil
}

// GetByID retrieves a league by ID
func (s *LeagueService) GetByID(id uuid.UUID) (*LeagueResponse, error) {
	model, domain, err := s.load(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(model, domain), nil
}

// GetByName retrieves a league by name
func (s *LeagueService) GetByName(name string) (*LeagueResponse, error) {
	model, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeagueNotFound
		}
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return s.GetByID(model.ID)
}

// List retrieves all leagues with pagination
func (s *LeagueService) List(limit, offset int) (*LeagueListResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	leagues, total, err := s.repo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leagues: %w", err)
	}

	resp := &LeagueListResponse{
		Leagues: make([]LeagueResponse, 0, len(leagues)),
		Total:   total,
	}
	for i := range leagues {
		resp.Leagues = append(resp.Leagues, LeagueResponse{
			ID:        leagues[i].ID,
			Name:      leagues[i].Name,
			CreatedAt: leagues[i].CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			UpdatedAt: leagues[i].UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return resp, nil
}

// SubmitResult records one final score for a league
func (s *LeagueService) SubmitResult(id uuid.UUID, req *SubmitResultRequest) (*LeagueResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	model, domain, err := s.load(id)
	if err != nil {
		return nil, err
	}

	// Replay against the in-memory model first so bad input never reaches
	// the database.
	if err := domain.SubmitResult(req.Home, req.Away, req.HomeGoals, req.AwayGoals); err != nil {
		return nil, err
	}

	result := &models.MatchResult{
		Home:      req.Home,
		Away:      req.Away,
		HomeGoals: req.HomeGoals,
		AwayGoals: req.AwayGoals,
	}
	if err := s.repo.AppendResult(id, result); err != nil {
		return nil, fmt.Errorf("failed to store result: %w", err)
	}

	return s.toResponse(model, domain), nil
}

// Table returns the sorted standings for a league
func (s *LeagueService) Table(id uuid.UUID) (*TableResponse, error) {
	_, domain, err := s.load(id)
	if err != nil {
		return nil, err
	}

	rows := domain.Table()
	resp := &TableResponse{LeagueID: id, Table: make([]TableRowResponse, 0, len(rows))}
	for i, row := range rows {
		resp.Table = append(resp.Table, TableRowResponse{
			Rank:           i + 1,
			Team:           row.Team,
			Played:         row.Played,
			Wins:           row.Wins,
			Draws:          row.Draws,
			Losses:         row.Losses,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference(),
			Points:         row.Points,
		})
	}
	return resp, nil
}

// Remaining returns the unplayed fixtures for a league
func (s *LeagueService) Remaining(id uuid.UUID) (*RemainingResponse, error) {
	_, domain, err := s.load(id)
	if err != nil {
		return nil, err
	}

	fixtures := domain.RemainingFixtures()
	resp := &RemainingResponse{
		LeagueID:  id,
		Remaining: make([]FixtureResponse, 0, len(fixtures)),
		Count:     len(fixtures),
	}
	for _, f := range fixtures {
		resp.Remaining = append(resp.Remaining, FixtureResponse{Home: f.Home, Away: f.Away})
	}
	return resp, nil
}

// Domain rebuilds the in-memory league model from storage. Other services use
// it as the single loading path for the engines.
func (s *LeagueService) Domain(id uuid.UUID) (*league.League, error) {
	_, domain, err := s.load(id)
	return domain, err
}

// Delete deletes a league and everything hanging off it
func (s *LeagueService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLeagueNotFound
		}
		return fmt.Errorf("failed to get league: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete league: %w", err)
	}
	return nil
}

// load fetches a league with teams and results and replays it into the
// domain model.
func (s *LeagueService) load(id uuid.UUID) (*models.League, *league.League, error) {
	model, err := s.repo.GetWithResults(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrLeagueNotFound
		}
		return nil, nil, fmt.Errorf("failed to get league: %w", err)
	}

	teams := make([]string, 0, len(model.Teams))
	for _, entry := range model.Teams {
		teams = append(teams, entry.Name)
	}

	domain, err := league.New(teams)
	if err != nil {
		return nil, nil, fmt.Errorf("stored league is corrupt: %w", err)
	}
	for _, r := range model.Results {
		if err := domain.SubmitResult(r.Home, r.Away, r.HomeGoals, r.AwayGoals); err != nil {
			return nil, nil, fmt.Errorf("stored result is corrupt: %w", err)
		}
	}
	return model, domain, nil
}

func (s *LeagueService) toResponse(model *models.League, domain *league.League) *LeagueResponse {
	return &LeagueResponse{
		ID:             model.ID,
		Name:           model.Name,
		Teams:          domain.Teams(),
		ResultsCount:   domain.ResultCount(),
		RemainingCount: len(domain.RemainingFixtures()),
		Complete:       domain.Complete(),
		CreatedAt:      model.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      model.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

var _ LeagueServiceInterface = (*LeagueService)(nil)
