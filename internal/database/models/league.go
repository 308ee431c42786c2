package models

import (
	"github.com/google/uuid"
)

// League is a tracked 20-team season. Teams carry their declared order in
// Position; results are append-only in submission order.
type League struct {
	BaseModel
	Name string `json:"name" gorm:"size:80;not null;uniqueIndex" validate:"required,min=1,max=80"`

	// Relationships
	Teams   []TeamEntry   `json:"teams,omitempty" gorm:"foreignKey:LeagueID"`
	Results []MatchResult `json:"results,omitempty" gorm:"foreignKey:LeagueID"`
}

// TableName returns the table name for League
func (League) TableName() string {
	return "leagues"
}

// TeamEntry is one member team of a league. Position preserves the declared
// input order, which downstream fixture enumeration depends on.
type TeamEntry struct {
	BaseModel
	LeagueID uuid.UUID `json:"league_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_league_team" validate:"required"`
	Name     string    `json:"name" gorm:"size:60;not null;uniqueIndex:idx_league_team" validate:"required,min=1,max=60"`
	Position int       `json:"position" gorm:"not null"`
}

// TableName returns the table name for TeamEntry
func (TeamEntry) TableName() string {
	return "team_entries"
}

// MatchResult is one recorded final score. The (league, home, away) unique
// index enforces the at-most-one-result-per-fixture invariant at the storage
// layer as well as in the model.
type MatchResult struct {
	BaseModel
	LeagueID  uuid.UUID `json:"league_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_league_fixture" validate:"required"`
	Home      string    `json:"home" gorm:"size:60;not null;uniqueIndex:idx_league_fixture" validate:"required"`
	Away      string    `json:"away" gorm:"size:60;not null;uniqueIndex:idx_league_fixture" validate:"required"`
	HomeGoals int       `json:"hg" gorm:"not null" validate:"min=0"`
	AwayGoals int       `json:"ag" gorm:"not null" validate:"min=0"`
	Seq       int       `json:"seq" gorm:"not null;index"`
}

// TableName returns the table name for MatchResult
func (MatchResult) TableName() string {
	return "match_results"
}
