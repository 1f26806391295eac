package services

import (
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
)

// TokenServiceInterface defines the contract for token operations
type TokenServiceInterface interface {
	GenerateToken(user *models.User) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines the contract for password operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// AuthServiceInterface defines the contract for authentication operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
	DemoLogin() (*dto.AuthResponse, error)
	GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error)
}

// TransactionServiceInterface defines the contract for transaction operations
type TransactionServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	Get(userID, transactionID uuid.UUID) (*dto.TransactionResponse, error)
	List(userID uuid.UUID, query *dto.ListTransactionsQuery, now time.Time) (*dto.ListTransactionsResponse, error)
	Recent(userID uuid.UUID, limit int) ([]dto.TransactionResponse, error)
	Update(userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error)
	Delete(userID, transactionID uuid.UUID) error
	BulkDelete(userID uuid.UUID, req *dto.BulkDeleteRequest) (*dto.BulkDeleteResponse, error)
	Stats(userID uuid.UUID, query *dto.StatsQuery, now time.Time) (*dto.TransactionStatsResponse, error)
	Analytics(userID uuid.UUID, periodDays int, now time.Time) (*dto.AnalyticsResponse, error)
}

// CategoryServiceInterface defines the contract for category operations
type CategoryServiceInterface interface {
	Create(userID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Get(userID, categoryID uuid.UUID) (*dto.CategoryResponse, error)
	List(userID uuid.UUID, categoryType string) ([]dto.CategoryResponse, error)
	Update(userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(userID, categoryID uuid.UUID) error
	Stats(userID uuid.UUID, query *dto.CategoryStatsQuery, now time.Time) ([]dto.CategoryStatsItem, error)
}

// UserServiceInterface defines the contract for user account operations
type UserServiceInterface interface {
	GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	ChangePassword(userID uuid.UUID, req *dto.ChangePasswordRequest) error
	GetSettings(userID uuid.UUID) (*dto.SettingsResponse, error)
	UpdateSettings(userID uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
	Stats(userID uuid.UUID) (*dto.UserStatsResponse, error)
	Export(userID uuid.UUID, now time.Time) (*dto.ExportResponse, error)
}
