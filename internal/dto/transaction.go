package dto

import (
	"time"

	"fintrack/internal/stats"

	"github.com/google/uuid"
)

// Transaction Request DTOs

// CreateTransactionRequest contains data for recording a transaction.
// Category is the category name; it is resolved against the caller's
// categories of the matching type.
type CreateTransactionRequest struct {
	Description string  `json:"description" validate:"required,min=1,max=255"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Category    string  `json:"category" validate:"required,min=1,max=100"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
}

// UpdateTransactionRequest contains data for modifying a transaction.
// All fields are optional; absent fields keep their stored value.
type UpdateTransactionRequest struct {
	Description *string  `json:"description" validate:"omitempty,min=1,max=255"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
	Type        *string  `json:"type" validate:"omitempty,oneof=income expense"`
	Category    *string  `json:"category" validate:"omitempty,min=1,max=100"`
	Date        *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ListTransactionsQuery contains filtering, sorting and pagination
// parameters for transaction listings. Unrecognized or malformed values
// are ignored rather than rejected.
type ListTransactionsQuery struct {
	Period      string `query:"period"`
	StartDate   string `query:"startDate"`
	EndDate     string `query:"endDate"`
	Type        string `query:"type"`
	Category    string `query:"category"`
	Search      string `query:"search"`
	AmountRange string `query:"amountRange"`
	Sort        string `query:"sort"`
	Page        int    `query:"page"`
	Limit       int    `query:"limit"`
}

// StatsQuery contains the filter window for transaction statistics
type StatsQuery struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	Type      string `query:"type"`
}

// AnalyticsQuery selects the analytics window in days
type AnalyticsQuery struct {
	Period int `query:"period"`
}

// BulkDeleteRequest contains the IDs of transactions to remove
type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1,dive,required"`
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction
type TransactionResponse struct {
	ID            uuid.UUID `json:"id"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	Type          string    `json:"type"`
	Category      string    `json:"category"`
	CategoryID    uuid.UUID `json:"categoryId"`
	CategoryColor string    `json:"categoryColor,omitempty"`
	CategoryIcon  string    `json:"categoryIcon,omitempty"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   stats.Pagination      `json:"pagination"`
}

// TransactionStatsResponse carries aggregate totals for a filter window
type TransactionStatsResponse struct {
	TotalIncome      string                       `json:"totalIncome"`
	TotalExpense     string                       `json:"totalExpense"`
	Balance          string                       `json:"balance"`
	TransactionCount int                          `json:"transactionCount"`
	Categories       map[string]CategoryBreakdown `json:"categories"`
}

// CategoryBreakdown carries per-category totals inside stats responses
type CategoryBreakdown struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Total   string `json:"total"`
}

// BucketResponse is a single point on a daily or monthly series
type BucketResponse struct {
	Label   string `json:"label"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// CategoryTotalResponse is one entry of the top-categories ranking
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// AnalyticsResponse carries the full dashboard aggregate for a period
type AnalyticsResponse struct {
	PeriodDays         int                      `json:"periodDays"`
	Summary            TransactionStatsResponse `json:"summary"`
	Comparison         PeriodDeltasResponse     `json:"comparison"`
	DailyBuckets       []BucketResponse         `json:"dailyBuckets"`
	MonthlyBuckets     []BucketResponse         `json:"monthlyBuckets"`
	TopCategories      []CategoryTotalResponse  `json:"topCategories"`
	TopSpendingWeekday string                   `json:"topSpendingWeekday"`
}

// PeriodDeltasResponse carries percent changes against the previous period
type PeriodDeltasResponse struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// BulkDeleteResponse reports how many transactions were removed
type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}
