package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository handles database operations for user settings
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepositoryInterface {
	return &SettingsRepository{
		db: db,
	}
}

// Create creates a settings row for a user
func (r *SettingsRepository) Create(settings *models.UserSettings) error {
	if settings == nil {
		return errors.New("settings cannot be nil")
	}

	if err := r.db.Create(settings).Error; err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}

	return nil
}

// GetByUserID retrieves the settings row for a user
func (r *SettingsRepository) GetByUserID(userID uuid.UUID) (*models.UserSettings, error) {
	var settings models.UserSettings
	if err := r.db.Where("user_id = ?", userID).First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &settings, nil
}

// Update updates a settings row
func (r *SettingsRepository) Update(settings *models.UserSettings) error {
	if settings == nil {
		return errors.New("settings cannot be nil")
	}

	if err := r.db.Save(settings).Error; err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	return nil
}

// UpdateFields updates specific settings fields for a user
func (r *SettingsRepository) UpdateFields(userID uuid.UUID, fields map[string]interface{}) error {
	result := r.db.Model(&models.UserSettings{}).
		Where("user_id = ?", userID).
		Updates(fields)

	if result.Error != nil {
		return fmt.Errorf("failed to update settings fields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSettingsNotFound
	}
	return nil
}
