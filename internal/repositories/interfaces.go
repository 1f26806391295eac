package repositories

import (
	"fintrack/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	CreateWithDefaults(user *models.User, settings *models.UserSettings, categories []models.Category) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmailExcluding(email string, excludeUserID uuid.UUID) (*models.User, error)
	Update(user *models.User) error
	UpdateFields(userID uuid.UUID, fields map[string]interface{}) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	Delete(userID uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	CreateBatch(categories []models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Category, error)
	GetByUserID(userID uuid.UUID) ([]models.Category, error)
	GetByUserIDAndType(userID uuid.UUID, categoryType string) ([]models.Category, error)
	FindByName(userID uuid.UUID, name, categoryType string) (*models.Category, error)
	Update(category *models.Category) error
	Delete(id, userID uuid.UUID) error
	CountTransactions(categoryID uuid.UUID) (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID) ([]models.Transaction, error)
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id, userID uuid.UUID) error
	DeleteBatch(ids []uuid.UUID, userID uuid.UUID) (int64, error)
	CountByUserID(userID uuid.UUID) (int64, error)
}

// SettingsRepositoryInterface defines the contract for user settings repository operations
type SettingsRepositoryInterface interface {
	Create(settings *models.UserSettings) error
	GetByUserID(userID uuid.UUID) (*models.UserSettings, error)
	Update(settings *models.UserSettings) error
	UpdateFields(userID uuid.UUID, fields map[string]interface{}) error
}
