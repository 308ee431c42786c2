package testutils

import (
	"fmt"
	"time"

	"league-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

// LeagueFactory provides methods to create test League data
type LeagueFactory struct{}

// NewLeagueFactory creates a new LeagueFactory
func NewLeagueFactory() *LeagueFactory {
	return &LeagueFactory{}
}

// Create creates a test League with default values
func (f *LeagueFactory) Create() *models.League {
	id := uuid.New()
	return &models.League{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Suffix with part of the UUID to avoid unique-name collisions
		Name: "Test League " + id.String()[:8],
	}
}

// WithName sets a custom name for the league
func (f *LeagueFactory) WithName(name string) *models.League {
	league := f.Create()
	league.Name = name
	return league
}

// TeamNames returns twenty distinct team names in declared order
func (f *LeagueFactory) TeamNames() []string {
	names := make([]string, 0, 20)
	for i := 1; i <= 20; i++ {
		names = append(names, fmt.Sprintf("Team %02d", i))
	}
	return names
}

// ResultFactory provides methods to create test MatchResult data
type ResultFactory struct{}

// NewResultFactory creates a new ResultFactory
func NewResultFactory() *ResultFactory {
	return &ResultFactory{}
}

// Create creates a test MatchResult for the given fixture
func (f *ResultFactory) Create(leagueID uuid.UUID, home, away string) *models.MatchResult {
	return &models.MatchResult{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		LeagueID:  leagueID,
		Home:      home,
		Away:      away,
		HomeGoals: 2,
		AwayGoals: 1,
	}
}

// WithScore sets a custom score for the result
func (f *ResultFactory) WithScore(leagueID uuid.UUID, home, away string, hg, ag int) *models.MatchResult {
	result := f.Create(leagueID, home, away)
	result.HomeGoals = hg
	result.AwayGoals = ag
	return result
}

// FactorySet provides access to all factories
type FactorySet struct {
	League *LeagueFactory
	Result *ResultFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		League: NewLeagueFactory(),
		Result: NewResultFactory(),
	}
}
