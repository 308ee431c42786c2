package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// SnapshotRecord is a cached, fully composed status snapshot. CacheKey is the
// result-list fingerprint plus the sampling parameters, so any new result or
// parameter change misses the cache by construction.
type SnapshotRecord struct {
	BaseModel
	LeagueID    uuid.UUID       `json:"league_id" gorm:"type:uuid;not null;index" validate:"required"`
	CacheKey    string          `json:"cache_key" gorm:"size:120;not null;uniqueIndex" validate:"required"`
	Fingerprint string          `json:"fingerprint" gorm:"size:64;not null;index"`
	Sims        int             `json:"sims" gorm:"not null"`
	Seed        int64           `json:"seed" gorm:"not null"`
	Document    json.RawMessage `json:"document" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for SnapshotRecord
func (SnapshotRecord) TableName() string {
	return "snapshot_records"
}
