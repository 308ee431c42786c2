package repository

import (
	"league-tracker-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SnapshotRepository handles database operations for cached snapshots
type SnapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetByCacheKey retrieves a cached snapshot for a league by its cache key
func (r *SnapshotRepository) GetByCacheKey(leagueID uuid.UUID, cacheKey string) (*models.SnapshotRecord, error) {
	var record models.SnapshotRecord
	err := r.db.First(&record, "league_id = ? AND cache_key = ?", leagueID, cacheKey).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Put stores a snapshot record, replacing any previous document under the
// same cache key
func (r *SnapshotRepository) Put(record *models.SnapshotRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(record).Error
}

// DeleteByLeague removes all cached snapshots for a league
func (r *SnapshotRepository) DeleteByLeague(leagueID uuid.UUID) error {
	return r.db.Delete(&models.SnapshotRecord{}, "league_id = ?", leagueID).Error
}
