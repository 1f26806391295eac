package handlers

import (
	"errors"
	"net/http"
	"time"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler handles profile, password, settings and export endpoints
type UserHandler struct {
	userService services.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService services.UserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile returns the caller's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	resp, err := h.userService.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apierrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// UpdateProfile changes profile fields. An email change is rejected when
// another account already uses the address.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return SendError(c, apierrors.UserNotFound)
		case errors.Is(err, services.ErrEmailTaken):
			return SendError(c, apierrors.UserAlreadyExists, apierrors.WithMessage("Email is already in use"))
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// ChangePassword verifies the current password and stores a new one
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.userService.ChangePassword(userID, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrCurrentPasswordWrong):
			return SendError(c, apierrors.UserWrongPassword)
		case errors.Is(err, services.ErrSamePassword):
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("New password must differ from the current password"))
		case errors.Is(err, services.ErrPasswordTooShort),
			errors.Is(err, services.ErrPasswordTooLong),
			errors.Is(err, services.ErrPasswordEmpty):
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
		case errors.Is(err, services.ErrUserNotFound):
			return SendError(c, apierrors.UserNotFound)
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccessWithMessage(c, http.StatusOK, "Password changed", nil)
}

// GetSettings returns the caller's settings, creating defaults on first
// access
func (h *UserHandler) GetSettings(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	resp, err := h.userService.GetSettings(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// UpdateSettings changes settings fields; absent fields keep their values
func (h *UserHandler) UpdateSettings(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.userService.UpdateSettings(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Stats returns account-level usage figures
func (h *UserHandler) Stats(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	resp, err := h.userService.Stats(userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apierrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Export produces a full account snapshot for download
func (h *UserHandler) Export(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	resp, err := h.userService.Export(userID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return SendError(c, apierrors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}
