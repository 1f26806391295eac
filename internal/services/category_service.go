package services

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/stats"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category with this name and type already exists")
	ErrCategoryInUse     = errors.New("category is referenced by existing transactions")
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	logger          *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// Create adds a category for the caller. Name and type must be unique
// together within the account.
func (s *CategoryService) Create(userID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &models.Category{
		UserID: userID,
		Name:   req.Name,
		Type:   req.Type,
		Color:  req.Color,
		Icon:   req.Icon,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	response := toCategoryResponse(category)
	return &response, nil
}

// Get retrieves a single category owned by the caller
func (s *CategoryService) Get(userID, categoryID uuid.UUID) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByIDForUser(categoryID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	response := toCategoryResponse(category)
	return &response, nil
}

// List returns the caller's categories, optionally restricted to one type
func (s *CategoryService) List(userID uuid.UUID, categoryType string) ([]dto.CategoryResponse, error) {
	var (
		categories []models.Category
		err        error
	)

	if models.IsValidTransactionType(categoryType) {
		categories, err = s.categoryRepo.GetByUserIDAndType(userID, categoryType)
	} else {
		categories, err = s.categoryRepo.GetByUserID(userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	responses := make([]dto.CategoryResponse, len(categories))
	for i := range categories {
		responses[i] = toCategoryResponse(&categories[i])
	}
	return responses, nil
}

// Update renames or restyles a category. Its type is immutable and the
// transactions referencing it follow the rename through the ID linkage.
func (s *CategoryService) Update(userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByIDForUser(categoryID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}

	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	response := toCategoryResponse(category)
	return &response, nil
}

// Delete removes a category. Deletion is refused while transactions
// still reference it.
func (s *CategoryService) Delete(userID, categoryID uuid.UUID) error {
	if err := s.categoryRepo.Delete(categoryID, userID); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryInUse):
			return ErrCategoryInUse
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return ErrCategoryNotFound
		default:
			return fmt.Errorf("failed to delete category: %w", err)
		}
	}
	return nil
}

// Stats returns per-category totals and counts over an optional window,
// including categories no transaction references yet. The result is
// ordered by total descending.
func (s *CategoryService) Stats(userID uuid.UUID, query *dto.CategoryStatsQuery, now time.Time) ([]dto.CategoryStatsItem, error) {
	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	transactions, err := s.transactionRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	criteria := stats.Criteria{
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Type:      query.Type,
	}
	filtered := stats.Filter(transactions, criteria, now)

	// Keyed by category ID so same-named categories of both types stay
	// separate
	totals := make(map[uuid.UUID]decimal.Decimal)
	counts := make(map[uuid.UUID]int)
	for i := range filtered {
		tx := &filtered[i]
		totals[tx.CategoryID] = totals[tx.CategoryID].Add(tx.Amount)
		counts[tx.CategoryID]++
	}

	type rankedItem struct {
		item  dto.CategoryStatsItem
		total decimal.Decimal
	}

	ranked := make([]rankedItem, 0, len(categories))
	for i := range categories {
		category := &categories[i]
		if models.IsValidTransactionType(query.Type) && category.Type != query.Type {
			continue
		}

		ranked = append(ranked, rankedItem{
			item: dto.CategoryStatsItem{
				ID:               category.ID,
				Name:             category.Name,
				Type:             category.Type,
				Color:            category.Color,
				Icon:             category.Icon,
				Total:            totals[category.ID].String(),
				TransactionCount: counts[category.ID],
			},
			total: totals[category.ID],
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].total.GreaterThan(ranked[j].total)
	})

	items := make([]dto.CategoryStatsItem, len(ranked))
	for i := range ranked {
		items[i] = ranked[i].item
	}

	return items, nil
}
