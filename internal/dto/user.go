package dto

import "time"

// User Request DTOs

// UpdateProfileRequest contains profile fields a user may change
type UpdateProfileRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email      *string `json:"email" validate:"omitempty,email"`
	AvatarURL  *string `json:"avatarUrl" validate:"omitempty,url,max=500"`
	Currency   *string `json:"currency" validate:"omitempty,len=3"`
	DateFormat *string `json:"dateFormat" validate:"omitempty,max=20"`
	Theme      *string `json:"theme" validate:"omitempty,oneof=light dark"`
}

// ChangePasswordRequest contains data for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// UpdateSettingsRequest contains settings fields a user may change.
// Absent fields keep their stored value.
type UpdateSettingsRequest struct {
	MonthlyLimit   *float64 `json:"monthlyLimit" validate:"omitempty,gte=0"`
	DailyLimit     *float64 `json:"dailyLimit" validate:"omitempty,gte=0"`
	AlertThreshold *int     `json:"alertThreshold" validate:"omitempty,gte=0,lte=100"`
	ItemsPerPage   *int     `json:"itemsPerPage" validate:"omitempty,gte=1,lte=100"`
	Notifications  *bool    `json:"notifications"`
	AutoSave       *bool    `json:"autoSave"`
}

// User Response DTOs

// SettingsResponse represents a user's settings
type SettingsResponse struct {
	MonthlyLimit   string `json:"monthlyLimit"`
	DailyLimit     string `json:"dailyLimit"`
	AlertThreshold int    `json:"alertThreshold"`
	ItemsPerPage   int    `json:"itemsPerPage"`
	Notifications  bool   `json:"notifications"`
	AutoSave       bool   `json:"autoSave"`
}

// UserStatsResponse carries account-level usage figures
type UserStatsResponse struct {
	TotalIncome      string    `json:"totalIncome"`
	TotalExpense     string    `json:"totalExpense"`
	Balance          string    `json:"balance"`
	TransactionCount int       `json:"transactionCount"`
	CategoryCount    int       `json:"categoryCount"`
	MemberSince      time.Time `json:"memberSince"`
}

// ExportResponse is the full account snapshot produced by the export
// endpoint
type ExportResponse struct {
	Version      string                `json:"version"`
	ExportedAt   time.Time             `json:"exportedAt"`
	User         UserProfileResponse   `json:"user"`
	Settings     SettingsResponse      `json:"settings"`
	Categories   []CategoryResponse    `json:"categories"`
	Transactions []TransactionResponse `json:"transactions"`
}
