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

// TransactionHandler handles transaction endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// List returns the caller's transactions filtered, sorted and paginated
// according to the query string
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.ListTransactionsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	resp, err := h.transactionService.List(userID, &query, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Create records a new transaction. The category name is resolved against
// the caller's categories of the matching type.
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.transactionService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownCategory) {
			return SendError(c, apierrors.CategoryUnknownName)
		}
		return SendSystemError(c, err)
	}

	return SendSuccessWithMessage(c, http.StatusCreated, "Transaction created", resp)
}

// Recent returns the caller's latest transactions
func (h *TransactionHandler) Recent(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	limit := getIntParam(c, "limit", services.DefaultRecentLimit)

	resp, err := h.transactionService.Recent(userID, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Stats returns income/expense totals and per-category breakdowns over an
// optional date window
func (h *TransactionHandler) Stats(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var query dto.StatsQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid query parameters"))
	}

	resp, err := h.transactionService.Stats(userID, &query, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Analytics returns the dashboard aggregate: summary, period comparison,
// daily and monthly buckets, top categories and busiest weekday
func (h *TransactionHandler) Analytics(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	periodDays := getIntParam(c, "period", 30)

	resp, err := h.transactionService.Analytics(userID, periodDays, time.Now().UTC())
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Get returns a single transaction owned by the caller
func (h *TransactionHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	resp, err := h.transactionService.Get(userID, transactionID)
	if err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Update modifies a transaction. Absent fields keep their stored values; a
// type or category change re-resolves the category linkage.
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.transactionService.Update(userID, transactionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTransactionNotFound):
			return SendError(c, apierrors.TransactionNotFound)
		case errors.Is(err, services.ErrUnknownCategory):
			return SendError(c, apierrors.CategoryUnknownName)
		default:
			return SendSystemError(c, err)
		}
	}

	return SendSuccess(c, http.StatusOK, resp)
}

// Delete removes a single transaction owned by the caller
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	transactionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.Delete(userID, transactionID); err != nil {
		if errors.Is(err, services.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccessWithMessage(c, http.StatusOK, "Transaction deleted", nil)
}

// BulkDelete removes a batch of transactions atomically. The whole batch
// is rejected when any ID is missing or not owned by the caller.
func (h *TransactionHandler) BulkDelete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.transactionService.BulkDelete(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrForeignTransactions) {
			return SendError(c, apierrors.TransactionBulkOwnership)
		}
		return SendSystemError(c, err)
	}

	return SendSuccessWithMessage(c, http.StatusOK, "Transactions deleted", resp)
}
