package repository

import (
	"league-tracker-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LeagueRepositoryInterface defines the interface for league repository operations
type LeagueRepositoryInterface interface {
	Create(league *models.League, teams []string) error
	GetByID(id uuid.UUID) (*models.League, error)
	GetByName(name string) (*models.League, error)
	GetAll(limit, offset int) ([]models.League, int64, error)
	GetWithTeams(id uuid.UUID) (*models.League, error)
	GetWithResults(id uuid.UUID) (*models.League, error)
	AppendResult(leagueID uuid.UUID, result *models.MatchResult) error
	Delete(id uuid.UUID) error
}

// SnapshotRepositoryInterface defines the interface for snapshot cache operations
type SnapshotRepositoryInterface interface {
	GetByCacheKey(leagueID uuid.UUID, cacheKey string) (*models.SnapshotRecord, error)
	Put(record *models.SnapshotRecord) error
	DeleteByLeague(leagueID uuid.UUID) error
}
