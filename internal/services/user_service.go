package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/stats"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExportVersion tags account snapshots produced by the export endpoint
const ExportVersion = "1.0.0"

var ErrEmailTaken = errors.New("email is already in use")

// UserService handles profile, password, settings and export operations
type UserService struct {
	userRepo        repositories.UserRepositoryInterface
	settingsRepo    repositories.SettingsRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	passwordService PasswordServiceInterface
	logger          *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	settingsRepo repositories.SettingsRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	passwordService PasswordServiceInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &UserService{
		userRepo:        userRepo,
		settingsRepo:    settingsRepo,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		passwordService: passwordService,
		logger:          logger,
	}
}

// GetProfile returns the caller's profile
func (s *UserService) GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	profile := toUserProfile(user)
	return &profile, nil
}

// UpdateProfile changes profile fields. An email change is rejected when
// another account already uses the address.
func (s *UserService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		_, err := s.userRepo.GetByEmailExcluding(*req.Email, userID)
		if err == nil {
			return nil, ErrEmailTaken
		}
		if !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.AvatarURL != nil {
		fields["avatar_url"] = *req.AvatarURL
	}
	if req.Currency != nil {
		fields["currency"] = *req.Currency
	}
	if req.DateFormat != nil {
		fields["date_format"] = *req.DateFormat
	}
	if req.Theme != nil {
		fields["theme"] = *req.Theme
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateFields(userID, fields); err != nil {
			if errors.Is(err, repositories.ErrEmailAlreadyExists) {
				return nil, ErrEmailTaken
			}
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	return s.GetProfile(userID)
}

// ChangePassword verifies the current password and stores a new hash
func (s *UserService) ChangePassword(userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	if req.CurrentPassword == req.NewPassword {
		return ErrSamePassword
	}

	user, err := s.getUser(userID)
	if err != nil {
		return err
	}

	if !s.passwordService.ComparePassword(req.CurrentPassword, user.PasswordHash) {
		return ErrCurrentPasswordWrong
	}

	hash, err := s.passwordService.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePasswordHash(userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password changed", "user_id", userID)
	return nil
}

// GetSettings returns the caller's settings, creating the defaults row
// on first access
func (s *UserService) GetSettings(userID uuid.UUID) (*dto.SettingsResponse, error) {
	settings, err := s.getOrCreateSettings(userID)
	if err != nil {
		return nil, err
	}

	response := toSettingsResponse(settings)
	return &response, nil
}

// UpdateSettings changes settings fields; absent fields keep their value
func (s *UserService) UpdateSettings(userID uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := s.getOrCreateSettings(userID)
	if err != nil {
		return nil, err
	}

	if req.MonthlyLimit != nil {
		settings.MonthlyLimit = decimal.NewFromFloat(*req.MonthlyLimit)
	}
	if req.DailyLimit != nil {
		settings.DailyLimit = decimal.NewFromFloat(*req.DailyLimit)
	}
	if req.AlertThreshold != nil {
		settings.AlertThreshold = *req.AlertThreshold
	}
	if req.ItemsPerPage != nil {
		settings.ItemsPerPage = *req.ItemsPerPage
	}
	if req.Notifications != nil {
		settings.Notifications = *req.Notifications
	}
	if req.AutoSave != nil {
		settings.AutoSave = *req.AutoSave
	}

	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	response := toSettingsResponse(settings)
	return &response, nil
}

// Stats returns account-level usage figures across all transactions
func (s *UserService) Stats(userID uuid.UUID) (*dto.UserStatsResponse, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	summary := stats.Summarize(transactions)

	return &dto.UserStatsResponse{
		TotalIncome:      summary.TotalIncome.String(),
		TotalExpense:     summary.TotalExpense.String(),
		Balance:          summary.Balance.String(),
		TransactionCount: summary.TransactionCount,
		CategoryCount:    len(categories),
		MemberSince:      user.CreatedAt,
	}, nil
}

// Export produces a full account snapshot
func (s *UserService) Export(userID uuid.UUID, now time.Time) (*dto.ExportResponse, error) {
	user, err := s.getUser(userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.getOrCreateSettings(userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	transactions, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	categoryResponses := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		categoryResponses[i] = toCategoryResponse(&categories[i])
	}

	return &dto.ExportResponse{
		Version:      ExportVersion,
		ExportedAt:   now,
		User:         toUserProfile(user),
		Settings:     toSettingsResponse(settings),
		Categories:   categoryResponses,
		Transactions: toTransactionResponses(transactions),
	}, nil
}

func (s *UserService) getUser(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// getOrCreateSettings lazily creates the defaults row for accounts that
// predate it
func (s *UserService) getOrCreateSettings(userID uuid.UUID) (*models.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repositories.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settings = models.DefaultSettings(userID)
	if err := s.settingsRepo.Create(settings); err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	return settings, nil
}
