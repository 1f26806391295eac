package models

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultCategoryColor = "#8b5cf6"

	MaxCategoryNameLength = 100
	MaxCategoryIconLength = 50
)

var (
	ErrInvalidCategoryType  = errors.New("invalid category type")
	ErrInvalidCategoryColor = errors.New("category color must be a hex string (#RRGGBB)")

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Category is a named, typed grouping label for transactions, owned by a
// single user. (user_id, name, type) is unique.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name_type" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name_type" json:"name"`
	Type      string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_categories_user_name_type" json:"type"`
	Color     string    `gorm:"type:varchar(7);not null;default:'#8b5cf6'" json:"color"`
	Icon      string    `gorm:"type:varchar(50)" json:"icon,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// BeforeUpdate hook for Category
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if c.Name == "" {
		return errors.New("category name is required")
	}

	if len(c.Name) > MaxCategoryNameLength {
		return errors.New("category name too long")
	}

	if !IsValidTransactionType(c.Type) {
		return ErrInvalidCategoryType
	}

	if c.Color != "" && !hexColorRegex.MatchString(c.Color) {
		return ErrInvalidCategoryColor
	}

	if len(c.Icon) > MaxCategoryIconLength {
		return errors.New("category icon too long")
	}

	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// DefaultCategories returns the fixed palette seeded for every new user.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Salary", Type: TransactionTypeIncome, Color: "#10b981", Icon: "fas fa-money-bill-wave"},
		{Name: "Freelance", Type: TransactionTypeIncome, Color: "#3b82f6", Icon: "fas fa-laptop"},
		{Name: "Investments", Type: TransactionTypeIncome, Color: "#8b5cf6", Icon: "fas fa-chart-line"},
		{Name: "Sales", Type: TransactionTypeIncome, Color: "#f59e0b", Icon: "fas fa-shopping-cart"},
		{Name: "Other", Type: TransactionTypeIncome, Color: "#6b7280", Icon: "fas fa-ellipsis-h"},
		{Name: "Food", Type: TransactionTypeExpense, Color: "#ef4444", Icon: "fas fa-utensils"},
		{Name: "Housing", Type: TransactionTypeExpense, Color: "#f59e0b", Icon: "fas fa-home"},
		{Name: "Transport", Type: TransactionTypeExpense, Color: "#3b82f6", Icon: "fas fa-car"},
		{Name: "Health", Type: TransactionTypeExpense, Color: "#10b981", Icon: "fas fa-heart"},
		{Name: "Education", Type: TransactionTypeExpense, Color: "#8b5cf6", Icon: "fas fa-graduation-cap"},
		{Name: "Leisure", Type: TransactionTypeExpense, Color: "#ec4899", Icon: "fas fa-gamepad"},
		{Name: "Clothing", Type: TransactionTypeExpense, Color: "#f97316", Icon: "fas fa-tshirt"},
		{Name: "Bills", Type: TransactionTypeExpense, Color: "#ef4444", Icon: "fas fa-file-invoice"},
		{Name: "Other", Type: TransactionTypeExpense, Color: "#6b7280", Icon: "fas fa-ellipsis-h"},
	}
}
