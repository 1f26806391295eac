package services

import (
	"errors"
	"fmt"
	"log/slog"

	"fintrack/internal/config"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrDemoLoginDisabled  = errors.New("demo login is disabled")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	demoConfig      config.DemoConfig
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	demoConfig config.DemoConfig,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		demoConfig:      demoConfig,
		logger:          logger,
	}
}

// Register creates a new user together with their default settings and
// categories, then issues a token
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
	}

	// The settings row and category palette become visible atomically
	// with the user itself
	if err := s.userRepo.CreateWithDefaults(user, models.DefaultSettings(uuid.Nil), models.DefaultCategories()); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID, "email", user.Email)

	return s.issueToken(user)
}

// Login authenticates a user and returns a token
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.logger.Warn("failed login attempt", "email", req.Email)
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// DemoLogin issues a token for the seeded demo account without credentials
func (s *AuthService) DemoLogin() (*dto.AuthResponse, error) {
	if !s.demoConfig.Enabled {
		return nil, ErrDemoLoginDisabled
	}

	user, err := s.userRepo.GetByEmail(s.demoConfig.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, fmt.Errorf("demo user is not seeded: %w", err)
		}
		return nil, fmt.Errorf("failed to get demo user: %w", err)
	}

	s.logger.Info("demo login", "user_id", user.ID)

	return s.issueToken(user)
}

// GetProfile returns the profile for a token's user
func (s *AuthService) GetProfile(userID uuid.UUID) (*dto.UserProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	profile := toUserProfile(user)
	return &profile, nil
}

func (s *AuthService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, expiresAt, err := s.tokenService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.AuthResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      toUserProfile(user),
	}, nil
}
