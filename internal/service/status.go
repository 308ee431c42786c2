package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"league-tracker-backend/internal/config"
	"league-tracker-backend/internal/database/models"
	"league-tracker-backend/internal/logger"
	"league-tracker-backend/internal/repository"
	"league-tracker-backend/internal/snapshot"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusService answers the "who is mathematically safe" question. Snapshots
// are cached by fingerprint and sampling parameters, so repeated asks for an
// unchanged league cost one database read.
type StatusService struct {
	leagues   LeagueServiceInterface
	snapshots repository.SnapshotRepositoryInterface
	composer  ComposerInterface
	cfg       *config.Config
	log       *logger.Logger
}

// NewStatusService creates a new status service
func NewStatusService(
	leagues LeagueServiceInterface,
	snapshots repository.SnapshotRepositoryInterface,
	composer ComposerInterface,
	cfg *config.Config,
) *StatusService {
	return &StatusService{
		leagues:   leagues,
		snapshots: snapshots,
		composer:  composer,
		cfg:       cfg,
		log:       logger.New(),
	}
}

// GetStatus returns the full snapshot for a league. Zero sims or seed fall
// back to the configured defaults.
func (s *StatusService) GetStatus(ctx context.Context, leagueID uuid.UUID, sims int, seed int64) (*snapshot.Snapshot, error) {
	if sims == 0 {
		sims = s.cfg.DefaultSims
	}
	if seed == 0 {
		seed = s.cfg.DefaultSeed
	}

	domain, err := s.leagues.Domain(leagueID)
	if err != nil {
		return nil, err
	}

	key := snapshot.CacheKey(domain.Fingerprint(), sims, seed)

	record, err := s.snapshots.GetByCacheKey(leagueID, key)
	if err == nil {
		var cached snapshot.Snapshot
		if err := json.Unmarshal(record.Document, &cached); err == nil {
			s.log.WithField("cache_key", key).Debug("Serving snapshot from cache")
			return &cached, nil
		}
		// A cached document we cannot decode is treated as a miss.
		s.log.WithField("cache_key", key).Warn("Discarding undecodable cached snapshot")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to read snapshot cache: %w", err)
	}

	snap, err := s.composer.Build(ctx, domain, sims, seed)
	if err != nil {
		return nil, err
	}

	document, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	if err := s.snapshots.Put(&models.SnapshotRecord{
		LeagueID:    leagueID,
		CacheKey:    key,
		Fingerprint: domain.Fingerprint(),
		Sims:        sims,
		Seed:        seed,
		Document:    document,
	}); err != nil {
		// Cache writes are best effort; the computed snapshot is still good.
		s.log.WithField("cache_key", key).Warnf("Failed to cache snapshot: %v", err)
	}

	return snap, nil
}

var _ StatusServiceInterface = (*StatusService)(nil)
