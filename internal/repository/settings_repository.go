package repository

import (
	"errors"

	"github.com/yukikurage/project-tracker/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository is a GORM implementation of SettingsRepository
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Load returns the saved settings
func (r *GormSettingsRepository) Load() (models.Settings, error) {
	var rec models.SettingsRecord
	if err := r.db.First(&rec, models.SettingsRecordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Settings{}, ErrSettingsNotFound
		}
		return models.Settings{}, err
	}
	return rec.ToSettings(), nil
}

// Save upserts the single settings row
func (r *GormSettingsRepository) Save(settings models.Settings) error {
	rec := models.ToSettingsRecord(settings)
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"url", "max_entries", "days_between_dates", "updated_at"}),
	}).Create(&rec).Error
}
