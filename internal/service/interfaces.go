package service

import (
	"context"

	"league-tracker-backend/internal/league"
	"league-tracker-backend/internal/snapshot"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LeagueServiceInterface defines the interface for league service
type LeagueServiceInterface interface {
	Create(req *CreateLeagueRequest) (*LeagueResponse, error)
	GetByID(id uuid.UUID) (*LeagueResponse, error)
	GetByName(name string) (*LeagueResponse, error)
	List(limit, offset int) (*LeagueListResponse, error)
	SubmitResult(id uuid.UUID, req *SubmitResultRequest) (*LeagueResponse, error)
	Table(id uuid.UUID) (*TableResponse, error)
	Remaining(id uuid.UUID) (*RemainingResponse, error)
	Domain(id uuid.UUID) (*league.League, error)
	Delete(id uuid.UUID) error
}

// StatusServiceInterface defines the interface for status service
type StatusServiceInterface interface {
	GetStatus(ctx context.Context, leagueID uuid.UUID, sims int, seed int64) (*snapshot.Snapshot, error)
}

// SyncServiceInterface defines the interface for sync service
type SyncServiceInterface interface {
	Sync(ctx context.Context, leagueID uuid.UUID, providerName string, season int) (*SyncResponse, error)
}

// PublishServiceInterface defines the interface for publish service
type PublishServiceInterface interface {
	Publish(ctx context.Context, leagueID uuid.UUID, req *PublishRequest) (*PublishResponse, error)
}

// ComposerInterface defines the interface for the snapshot composer
type ComposerInterface interface {
	Build(ctx context.Context, l *league.League, sims int, seed int64) (*snapshot.Snapshot, error)
}
