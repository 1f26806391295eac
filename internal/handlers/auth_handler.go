package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
	metrics     *services.PrometheusMetrics
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface, metrics *services.PrometheusMetrics) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		metrics:     metrics,
	}
}

// Register creates a new account and returns a session token. The account
// is seeded with default settings and starter categories.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			return SendError(c, apierrors.UserAlreadyExists)
		case errors.Is(err, services.ErrPasswordTooShort),
			errors.Is(err, services.ErrPasswordTooLong),
			errors.Is(err, services.ErrPasswordEmpty):
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	if h.metrics != nil {
		h.metrics.RecordRegistration()
		h.metrics.RecordAuthEvent("register")
	}

	return SendSuccessWithMessage(c, http.StatusCreated, "Account created", resp)
}

// Login authenticates with email and password and returns a session token
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			if h.metrics != nil {
				h.metrics.RecordAuthEvent("login_failed")
			}
			return SendError(c, apierrors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordAuthEvent("login")
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// DemoLogin issues a token for the shared demo account without credentials
func (h *AuthHandler) DemoLogin(c echo.Context) error {
	resp, err := h.authService.DemoLogin()
	if err != nil {
		if errors.Is(err, services.ErrDemoLoginDisabled) || errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apierrors.AuthInvalidCredentials, apierrors.WithMessage("Demo login is not available"))
		}
		return SendSystemError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordAuthEvent("demo_login")
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Verify returns the profile of the authenticated caller
func (h *AuthHandler) Verify(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	profile, err := h.authService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apierrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, profile)
}
