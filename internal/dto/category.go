package dto

import (
	"time"

	"github.com/google/uuid"
)

// Category Request DTOs

// CreateCategoryRequest contains data for creating a category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Type  string `json:"type" validate:"required,oneof=income expense"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
	Icon  string `json:"icon" validate:"omitempty,max=100"`
}

// UpdateCategoryRequest contains data for modifying a category.
// The type of an existing category cannot change.
type UpdateCategoryRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=100"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
	Icon  *string `json:"icon" validate:"omitempty,max=100"`
}

// CategoryStatsQuery contains the filter window for category statistics
type CategoryStatsQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Type      string `query:"type"`
}

// Category Response DTOs

// CategoryResponse represents a single category
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryStatsItem carries usage totals for one category, including
// categories no transaction references yet
type CategoryStatsItem struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Color            string    `json:"color"`
	Icon             string    `json:"icon,omitempty"`
	Total            string    `json:"total"`
	TransactionCount int       `json:"transactionCount"`
}
