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

const (
	DefaultPageSize    = 25
	DefaultRecentLimit = 5
	MaxRecentLimit     = 50
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrUnknownCategory     = errors.New("unknown category for this type")
	ErrForeignTransactions = errors.New("one or more transactions do not belong to the user")
)

// TransactionService handles transaction business logic. Listing and
// statistics load the caller's full transaction set and run the filter,
// aggregation, sort and pagination stages in memory.
type TransactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         *PrometheusMetrics
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics *PrometheusMetrics,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Create records a new transaction. The submitted category name is
// resolved against the caller's categories of the matching type.
func (s *TransactionService) Create(userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	category, err := s.resolveCategory(userID, req.Category, req.Type)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, err)
	}

	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  category.ID,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Type:        req.Type,
		Date:        date,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	transaction.Category = *category
	if s.metrics != nil {
		s.metrics.RecordTransaction(req.Type)
	}

	response := toTransactionResponse(transaction)
	return &response, nil
}

// Get retrieves a single transaction owned by the caller
func (s *TransactionService) Get(userID, transactionID uuid.UUID) (*dto.TransactionResponse, error) {
	transaction, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	response := toTransactionResponse(transaction)
	return &response, nil
}

// List returns the caller's transactions after filtering, sorting and
// pagination. Malformed filter values are ignored rather than rejected.
func (s *TransactionService) List(userID uuid.UUID, query *dto.ListTransactionsQuery, now time.Time) (*dto.ListTransactionsResponse, error) {
	transactions, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	criteria := stats.Criteria{
		PeriodDays:  query.Period,
		StartDate:   query.StartDate,
		EndDate:     query.EndDate,
		Category:    query.Category,
		Type:        query.Type,
		Search:      query.Search,
		AmountRange: query.AmountRange,
	}

	filtered := stats.Filter(transactions, criteria, now)
	sorted := stats.SortTransactions(filtered, query.Sort)

	limit := query.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	page, pagination := stats.Paginate(sorted, query.Page, limit)

	return &dto.ListTransactionsResponse{
		Transactions: toTransactionResponses(page),
		Pagination:   pagination,
	}, nil
}

// Recent returns the caller's most recent transactions
func (s *TransactionService) Recent(userID uuid.UUID, limit int) ([]dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	transactions, err := s.transactionRepo.GetRecentByUserID(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent transactions: %w", err)
	}

	return toTransactionResponses(transactions), nil
}

// Update modifies a transaction. Absent fields keep their stored value;
// a type or category change re-resolves the category linkage.
func (s *TransactionService) Update(userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	transaction, err := s.transactionRepo.GetByIDForUser(transactionID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if req.Description != nil {
		transaction.Description = *req.Description
	}
	if req.Amount != nil {
		transaction.Amount = decimal.NewFromFloat(*req.Amount)
	}
	if req.Date != nil {
		date, err := time.Parse(models.DateLayout, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", *req.Date, err)
		}
		transaction.Date = date
	}

	newType := transaction.Type
	if req.Type != nil {
		newType = *req.Type
	}
	newCategoryName := transaction.CategoryLabel()
	if req.Category != nil {
		newCategoryName = *req.Category
	}

	if req.Type != nil || req.Category != nil {
		category, err := s.resolveCategory(userID, newCategoryName, newType)
		if err != nil {
			return nil, err
		}
		transaction.Type = newType
		transaction.CategoryID = category.ID
		transaction.Category = *category
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	response := toTransactionResponse(transaction)
	return &response, nil
}

// Delete removes a transaction owned by the caller
func (s *TransactionService) Delete(userID, transactionID uuid.UUID) error {
	if err := s.transactionRepo.Delete(transactionID, userID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// BulkDelete removes a set of transactions. The request is rejected as a
// whole when any ID is missing or owned by another user.
func (s *TransactionService) BulkDelete(userID uuid.UUID, req *dto.BulkDeleteRequest) (*dto.BulkDeleteResponse, error) {
	deleted, err := s.transactionRepo.DeleteBatch(req.IDs, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotAllTransactions) {
			return nil, ErrForeignTransactions
		}
		return nil, fmt.Errorf("failed to delete transactions: %w", err)
	}

	s.logger.Info("bulk delete", "user_id", userID, "deleted", deleted)

	return &dto.BulkDeleteResponse{Deleted: deleted}, nil
}

// Stats returns aggregate totals over the caller's transactions within
// an optional date/type window
func (s *TransactionService) Stats(userID uuid.UUID, query *dto.StatsQuery, now time.Time) (*dto.TransactionStatsResponse, error) {
	transactions, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	criteria := stats.Criteria{
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Type:      query.Type,
	}

	summary := stats.Summarize(stats.Filter(transactions, criteria, now))
	response := toStatsResponse(summary)
	return &response, nil
}

// Analytics computes the dashboard aggregate for a trailing window of
// periodDays days ending at now
func (s *TransactionService) Analytics(userID uuid.UUID, periodDays int, now time.Time) (*dto.AnalyticsResponse, error) {
	if periodDays <= 0 {
		periodDays = 30
	}

	transactions, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	criteria := stats.Criteria{PeriodDays: fmt.Sprintf("%d", periodDays)}
	windowed := stats.Filter(transactions, criteria, now)

	summary := stats.Summarize(windowed)
	deltas := stats.ComparePeriods(transactions, now, periodDays)

	return &dto.AnalyticsResponse{
		PeriodDays:         periodDays,
		Summary:            toStatsResponse(summary),
		Comparison:         dto.PeriodDeltasResponse(deltas),
		DailyBuckets:       toBucketResponses(stats.DailyBuckets(windowed, now, periodDays)),
		MonthlyBuckets:     toBucketResponses(stats.MonthlyBuckets(transactions)),
		TopCategories:      toCategoryTotalResponses(stats.TopExpenseCategories(windowed, stats.DefaultTopCategories)),
		TopSpendingWeekday: stats.TopSpendingWeekday(windowed),
	}, nil
}

func (s *TransactionService) resolveCategory(userID uuid.UUID, name, transactionType string) (*models.Category, error) {
	category, err := s.categoryRepo.FindByName(userID, name, transactionType)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrUnknownCategory
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}
