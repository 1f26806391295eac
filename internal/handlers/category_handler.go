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

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List returns the caller's categories, optionally filtered by type
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	resp, err := h.categoryService.List(userID, c.QueryParam("type"))
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Create adds a category. Name and type must be unique together within
// the account.
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.categoryService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateCategory) {
			return SendError(c, apierrors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return SendSuccessWithMessage(c, http.StatusCreated, "Category created", resp)
}

// Get returns a single category owned by the caller
func (h *CategoryHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid category ID"))
	}

	resp, err := h.categoryService.Get(userID, categoryID)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return SendError(c, apierrors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Update renames or restyles a category; its type is immutable
func (h *CategoryHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid category ID"))
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.categoryService.Update(userID, categoryID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			return SendError(c, apierrors.CategoryNotFound)
		case errors.Is(err, services.ErrDuplicateCategory):
			return SendError(c, apierrors.CategoryAlreadyExists)
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Delete removes a category. Deletion is refused while transactions still
// reference it.
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categoryID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid category ID"))
	}

	if err := h.categoryService.Delete(userID, categoryID); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			return SendError(c, apierrors.CategoryNotFound)
		case errors.Is(err, services.ErrCategoryInUse):
			return SendError(c, apierrors.CategoryInUse)
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccessWithMessage(c, http.StatusOK, "Category deleted", nil)
}

// Stats returns per-category totals and counts, ordered by total descending
func (h *CategoryHandler) Stats(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.CategoryStatsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	resp, err := h.categoryService.Stats(userID, &query, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}
