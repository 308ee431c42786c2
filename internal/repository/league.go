package repository

import (
	"errors"

	"league-tracker-backend/internal/database/models"
	apperrors "league-tracker-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeagueRepository handles database operations for leagues
type LeagueRepository struct {
	db *gorm.DB
}

// NewLeagueRepository creates a new league repository
func NewLeagueRepository(db *gorm.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

// Create creates a league together with its team entries in one transaction.
// Team positions follow the order of the teams slice.
func (r *LeagueRepository) Create(league *models.League, teams []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(league).Error; err != nil {
			return err
		}
		entries := make([]models.TeamEntry, 0, len(teams))
		for i, name := range teams {
			entries = append(entries, models.TeamEntry{
				LeagueID: league.ID,
				Name:     name,
				Position: i,
			})
		}
		return tx.Create(&entries).Error
	})
}

// GetByID retrieves a league by ID
func (r *LeagueRepository) GetByID(id uuid.UUID) (*models.League, error) {
	var league models.League
	err := r.db.First(&league, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// GetByName retrieves a league by name
func (r *LeagueRepository) GetByName(name string) (*models.League, error) {
	var league models.League
	err := r.db.First(&league, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// GetAll retrieves all leagues with pagination
func (r *LeagueRepository) GetAll(limit, offset int) ([]models.League, int64, error) {
	var leagues []models.League
	var total int64

	if err := r.db.Model(&models.League{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("name asc").Find(&leagues).Error
	if err != nil {
		return nil, 0, err
	}

	return leagues, total, nil
}

// GetWithTeams retrieves a league with its teams in declared order
func (r *LeagueRepository) GetWithTeams(id uuid.UUID) (*models.League, error) {
	var league models.League
	err := r.db.Preload("Teams", func(db *gorm.DB) *gorm.DB {
		return db.Order("position asc")
	}).First(&league, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// GetWithResults retrieves a league with teams in declared order and results
// in submission order
func (r *LeagueRepository) GetWithResults(id uuid.UUID) (*models.League, error) {
	var league models.League
	err := r.db.
		Preload("Teams", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Preload("Results", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq asc")
		}).
		First(&league, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &league, nil
}

// AppendResult stores one result, assigning the next sequence number. The
// per-fixture unique index rejects a second result for the same pairing.
func (r *LeagueRepository) AppendResult(leagueID uuid.UUID, result *models.MatchResult) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.MatchResult
		err := tx.First(&existing, "league_id = ? AND home = ? AND away = ?",
			leagueID, result.Home, result.Away).Error
		if err == nil {
			return &apperrors.AlreadyExistsError{Entity: "result", Context: "for " + result.Home + " vs " + result.Away}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var maxSeq int64
		if err := tx.Model(&models.MatchResult{}).
			Where("league_id = ?", leagueID).
			Count(&maxSeq).Error; err != nil {
			return err
		}

		result.LeagueID = leagueID
		result.Seq = int(maxSeq)
		return tx.Create(result).Error
	})
}

// Delete deletes a league and its dependent rows
func (r *LeagueRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.MatchResult{}, "league_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.TeamEntry{}, "league_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.SnapshotRecord{}, "league_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.League{}, "id = ?", id).Error
	})
}
