package services

import (
	"log/slog"
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service TransactionServiceInterface
	user    *models.User
	food    *models.Category
	salary  *models.Category
	now     time.Time
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.user = database.CreateTestUser(s.T(), s.db, "owner@example.com")
	s.food = database.CreateTestCategory(s.T(), s.db, s.user.ID, "Food", models.TransactionTypeExpense)
	s.salary = database.CreateTestCategory(s.T(), s.db, s.user.ID, "Salary", models.TransactionTypeIncome)
	s.now = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	s.service = NewTransactionService(
		repositories.NewTransactionRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		nil,
		slog.Default(),
	)
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) create(description string, amount float64, txType, category, date string) *dto.TransactionResponse {
	resp, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Description: description,
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Date:        date,
	})
	s.Require().NoError(err)
	return resp
}

func (s *TransactionServiceTestSuite) TestCreate_ResolvesCategoryByName() {
	resp := s.create("Lunch", 12.50, models.TransactionTypeExpense, "Food", "2024-06-14")

	s.Equal("Food", resp.Category)
	s.Equal(s.food.ID, resp.CategoryID)
	s.Equal("12.5", resp.Amount)
	s.Equal("2024-06-14", resp.Date)
}

func (s *TransactionServiceTestSuite) TestCreate_UnknownCategory() {
	_, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Description: "Lunch",
		Amount:      12.50,
		Type:        models.TransactionTypeExpense,
		Category:    "Nonexistent",
		Date:        "2024-06-14",
	})
	s.Equal(ErrUnknownCategory, err)
}

func (s *TransactionServiceTestSuite) TestCreate_CategoryTypeMismatch() {
	// Food exists only as an expense category
	_, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Description: "Refund",
		Amount:      12.50,
		Type:        models.TransactionTypeIncome,
		Category:    "Food",
		Date:        "2024-06-14",
	})
	s.Equal(ErrUnknownCategory, err)
}

func (s *TransactionServiceTestSuite) TestList_FilterSortPaginate() {
	s.create("Coffee", 4.50, models.TransactionTypeExpense, "Food", "2024-06-14")
	s.create("Groceries", 82, models.TransactionTypeExpense, "Food", "2024-06-10")
	s.create("June salary", 3200, models.TransactionTypeIncome, "Salary", "2024-06-01")
	s.create("Old groceries", 60, models.TransactionTypeExpense, "Food", "2024-04-01")

	resp, err := s.service.List(s.user.ID, &dto.ListTransactionsQuery{
		Type: models.TransactionTypeExpense,
		Sort: "amount-desc",
	}, s.now)
	s.NoError(err)
	s.Len(resp.Transactions, 3)
	s.Equal("Groceries", resp.Transactions[0].Description)
	s.Equal("Old groceries", resp.Transactions[1].Description)
	s.Equal("Coffee", resp.Transactions[2].Description)
	s.EqualValues(3, resp.Pagination.Total)
	s.Equal(1, resp.Pagination.Page)
	s.Equal(25, resp.Pagination.Limit)
}

func (s *TransactionServiceTestSuite) TestList_PeriodWindow() {
	s.create("Recent", 10, models.TransactionTypeExpense, "Food", "2024-06-14")
	s.create("Stale", 10, models.TransactionTypeExpense, "Food", "2024-05-01")

	resp, err := s.service.List(s.user.ID, &dto.ListTransactionsQuery{Period: "7"}, s.now)
	s.NoError(err)
	s.Len(resp.Transactions, 1)
	s.Equal("Recent", resp.Transactions[0].Description)
}

func (s *TransactionServiceTestSuite) TestList_PageClamping() {
	for i := 0; i < 3; i++ {
		s.create("Item", 10, models.TransactionTypeExpense, "Food", "2024-06-14")
	}

	resp, err := s.service.List(s.user.ID, &dto.ListTransactionsQuery{Page: -5, Limit: 2}, s.now)
	s.NoError(err)
	s.Equal(1, resp.Pagination.Page)
	s.Len(resp.Transactions, 2)
	s.True(resp.Pagination.HasNext)
}

func (s *TransactionServiceTestSuite) TestRecent_DefaultLimit() {
	for i := 0; i < 8; i++ {
		s.create("Item", 10, models.TransactionTypeExpense, "Food", "2024-06-10")
	}

	recent, err := s.service.Recent(s.user.ID, 0)
	s.NoError(err)
	s.Len(recent, DefaultRecentLimit)
}

func (s *TransactionServiceTestSuite) TestUpdate_PartialFields() {
	created := s.create("Lunch", 12.50, models.TransactionTypeExpense, "Food", "2024-06-14")

	newDescription := "Team lunch"
	updated, err := s.service.Update(s.user.ID, created.ID, &dto.UpdateTransactionRequest{
		Description: &newDescription,
	})
	s.NoError(err)
	s.Equal("Team lunch", updated.Description)
	s.Equal("12.5", updated.Amount)
	s.Equal(s.food.ID, updated.CategoryID)
}

func (s *TransactionServiceTestSuite) TestUpdate_TypeChangeReResolvesCategory() {
	created := s.create("Lunch", 12.50, models.TransactionTypeExpense, "Food", "2024-06-14")

	newType := models.TransactionTypeIncome
	newCategory := "Salary"
	updated, err := s.service.Update(s.user.ID, created.ID, &dto.UpdateTransactionRequest{
		Type:     &newType,
		Category: &newCategory,
	})
	s.NoError(err)
	s.Equal(models.TransactionTypeIncome, updated.Type)
	s.Equal(s.salary.ID, updated.CategoryID)
}

func (s *TransactionServiceTestSuite) TestUpdate_TypeChangeWithoutMatchingCategory() {
	created := s.create("Lunch", 12.50, models.TransactionTypeExpense, "Food", "2024-06-14")

	newType := models.TransactionTypeIncome
	_, err := s.service.Update(s.user.ID, created.ID, &dto.UpdateTransactionRequest{
		Type: &newType,
	})
	// The stored category name "Food" has no income counterpart
	s.Equal(ErrUnknownCategory, err)
}

func (s *TransactionServiceTestSuite) TestUpdate_NotFound() {
	description := "Ghost"
	_, err := s.service.Update(s.user.ID, uuid.New(), &dto.UpdateTransactionRequest{
		Description: &description,
	})
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionServiceTestSuite) TestDelete() {
	created := s.create("Lunch", 12.50, models.TransactionTypeExpense, "Food", "2024-06-14")

	s.NoError(s.service.Delete(s.user.ID, created.ID))
	s.Equal(ErrTransactionNotFound, s.service.Delete(s.user.ID, created.ID))
}

func (s *TransactionServiceTestSuite) TestBulkDelete_AllOrNothing() {
	first := s.create("First", 10, models.TransactionTypeExpense, "Food", "2024-06-14")
	second := s.create("Second", 20, models.TransactionTypeExpense, "Food", "2024-06-14")

	_, err := s.service.BulkDelete(s.user.ID, &dto.BulkDeleteRequest{
		IDs: []uuid.UUID{first.ID, uuid.New()},
	})
	s.Equal(ErrForeignTransactions, err)

	resp, err := s.service.BulkDelete(s.user.ID, &dto.BulkDeleteRequest{
		IDs: []uuid.UUID{first.ID, second.ID},
	})
	s.NoError(err)
	s.EqualValues(2, resp.Deleted)
}

func (s *TransactionServiceTestSuite) TestStats_Scenario() {
	s.create("June salary", 200, models.TransactionTypeIncome, "Salary", "2024-06-01")
	s.create("Groceries", 150, models.TransactionTypeExpense, "Food", "2024-06-05")

	resp, err := s.service.Stats(s.user.ID, &dto.StatsQuery{}, s.now)
	s.NoError(err)
	s.Equal("200", resp.TotalIncome)
	s.Equal("150", resp.TotalExpense)
	s.Equal("50", resp.Balance)
	s.Equal(2, resp.TransactionCount)
	s.Equal("150", resp.Categories["Food"].Expense)
}

func (s *TransactionServiceTestSuite) TestStats_EmptyAccount() {
	resp, err := s.service.Stats(s.user.ID, &dto.StatsQuery{}, s.now)
	s.NoError(err)
	s.Equal("0", resp.TotalIncome)
	s.Equal("0", resp.TotalExpense)
	s.Equal(0, resp.TransactionCount)
	s.Empty(resp.Categories)
}

func (s *TransactionServiceTestSuite) TestAnalytics() {
	s.create("Salary", 3200, models.TransactionTypeIncome, "Salary", "2024-06-01")
	s.create("Groceries", 150, models.TransactionTypeExpense, "Food", "2024-06-10")
	s.create("Previous month", 100, models.TransactionTypeExpense, "Food", "2024-05-01")

	resp, err := s.service.Analytics(s.user.ID, 30, s.now)
	s.NoError(err)
	s.Equal(30, resp.PeriodDays)
	s.Len(resp.DailyBuckets, 30)
	s.Len(resp.MonthlyBuckets, 12)
	s.Equal("3200", resp.Summary.TotalIncome)
	s.Equal("150", resp.Summary.TotalExpense)
	s.Equal("Food", resp.TopCategories[0].Category)
	s.NotEmpty(resp.TopSpendingWeekday)
}

func (s *TransactionServiceTestSuite) TestAnalytics_DefaultPeriod() {
	resp, err := s.service.Analytics(s.user.ID, 0, s.now)
	s.NoError(err)
	s.Equal(30, resp.PeriodDays)
	s.Len(resp.DailyBuckets, 30)
}
