package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DefaultAlertThreshold = 80
	DefaultItemsPerPage   = 25
)

var (
	ErrInvalidAlertThreshold = errors.New("alert threshold must be between 0 and 100")
	ErrInvalidItemsPerPage   = errors.New("items per page must be at least 1")
)

// UserSettings holds per-user preferences and spending limits. One row per
// user; created lazily with defaults on first access.
type UserSettings struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	MonthlyLimit   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"monthly_limit"`
	DailyLimit     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"daily_limit"`
	AlertThreshold int             `gorm:"not null;default:80" json:"alert_threshold"`
	ItemsPerPage   int             `gorm:"not null;default:25" json:"items_per_page"`
	Notifications  bool            `gorm:"not null;default:true" json:"notifications"`
	AutoSave       bool            `gorm:"not null;default:true" json:"auto_save"`
	CreatedAt      time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updated_at"`
}

// DefaultSettings returns the settings seeded for a user on first access.
func DefaultSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		UserID:         userID,
		MonthlyLimit:   decimal.Zero,
		DailyLimit:     decimal.Zero,
		AlertThreshold: DefaultAlertThreshold,
		ItemsPerPage:   DefaultItemsPerPage,
		Notifications:  true,
		AutoSave:       true,
	}
}

// BeforeCreate hook for UserSettings
func (s *UserSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// BeforeUpdate hook for UserSettings
func (s *UserSettings) BeforeUpdate(tx *gorm.DB) error {
	// Skip validation for map-based updates, where only specific columns
	// change and the receiver struct is empty.
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	s.UpdatedAt = time.Now()
	return s.Validate()
}

// Validate validates the settings fields
func (s *UserSettings) Validate() error {
	if s.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if s.MonthlyLimit.IsNegative() || s.DailyLimit.IsNegative() {
		return errors.New("spending limits cannot be negative")
	}

	if s.AlertThreshold < 0 || s.AlertThreshold > 100 {
		return ErrInvalidAlertThreshold
	}

	if s.ItemsPerPage < 1 {
		return ErrInvalidItemsPerPage
	}

	return nil
}

// TableName returns the table name for UserSettings
func (s *UserSettings) TableName() string {
	return "user_settings"
}
