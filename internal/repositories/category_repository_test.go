package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestCategoryRepository(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

type CategoryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
	user *models.User
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "owner@example.com")
}

func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Create() {
	category := &models.Category{
		UserID: s.user.ID,
		Name:   "Groceries",
		Type:   models.TransactionTypeExpense,
	}

	err := s.repo.Create(category)
	s.NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
	s.Equal(models.DefaultCategoryColor, category.Color)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Create_DuplicateNameAndType() {
	category := &models.Category{
		UserID: s.user.ID,
		Name:   "Groceries",
		Type:   models.TransactionTypeExpense,
	}
	s.NoError(s.repo.Create(category))

	duplicate := &models.Category{
		UserID: s.user.ID,
		Name:   "Groceries",
		Type:   models.TransactionTypeExpense,
	}
	s.Equal(ErrCategoryAlreadyExists, s.repo.Create(duplicate))

	// Same name with the other type is a distinct category
	other := &models.Category{
		UserID: s.user.ID,
		Name:   "Groceries",
		Type:   models.TransactionTypeIncome,
	}
	s.NoError(s.repo.Create(other))
}

func (s *CategoryRepositorySuite) TestCategoryRepository_CreateBatch() {
	categories := models.DefaultCategories()
	for i := range categories {
		categories[i].UserID = s.user.ID
	}

	s.NoError(s.repo.CreateBatch(categories))

	stored, err := s.repo.GetByUserID(s.user.ID)
	s.NoError(err)
	s.Len(stored, 14)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetByIDForUser() {
	category := &models.Category{
		UserID: s.user.ID,
		Name:   "Groceries",
		Type:   models.TransactionTypeExpense,
	}
	s.NoError(s.repo.Create(category))

	found, err := s.repo.GetByIDForUser(category.ID, s.user.ID)
	s.NoError(err)
	s.Equal(category.ID, found.ID)

	// Another user cannot see it
	_, err = s.repo.GetByIDForUser(category.ID, uuid.New())
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetByUserIDAndType() {
	s.NoError(s.repo.Create(&models.Category{UserID: s.user.ID, Name: "Salary", Type: models.TransactionTypeIncome}))
	s.NoError(s.repo.Create(&models.Category{UserID: s.user.ID, Name: "Food", Type: models.TransactionTypeExpense}))
	s.NoError(s.repo.Create(&models.Category{UserID: s.user.ID, Name: "Bills", Type: models.TransactionTypeExpense}))

	expenses, err := s.repo.GetByUserIDAndType(s.user.ID, models.TransactionTypeExpense)
	s.NoError(err)
	s.Len(expenses, 2)
	s.Equal("Bills", expenses[0].Name)
	s.Equal("Food", expenses[1].Name)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_FindByName() {
	category := &models.Category{
		UserID: s.user.ID,
		Name:   "Food",
		Type:   models.TransactionTypeExpense,
	}
	s.NoError(s.repo.Create(category))

	found, err := s.repo.FindByName(s.user.ID, "Food", models.TransactionTypeExpense)
	s.NoError(err)
	s.Equal(category.ID, found.ID)

	_, err = s.repo.FindByName(s.user.ID, "Food", models.TransactionTypeIncome)
	s.Equal(ErrCategoryNotFound, err)

	_, err = s.repo.FindByName(uuid.New(), "Food", models.TransactionTypeExpense)
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Update() {
	category := &models.Category{
		UserID: s.user.ID,
		Name:   "Food",
		Type:   models.TransactionTypeExpense,
	}
	s.NoError(s.repo.Create(category))

	category.Name = "Dining"
	category.Color = "#123abc"
	s.NoError(s.repo.Update(category))

	updated, err := s.repo.GetByID(category.ID)
	s.NoError(err)
	s.Equal("Dining", updated.Name)
	s.Equal("#123abc", updated.Color)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Delete() {
	category := &models.Category{
		UserID: s.user.ID,
		Name:   "Food",
		Type:   models.TransactionTypeExpense,
	}
	s.NoError(s.repo.Create(category))

	s.NoError(s.repo.Delete(category.ID, s.user.ID))

	_, err := s.repo.GetByID(category.ID)
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Delete_BlockedWhileReferenced() {
	category := &models.Category{
		UserID: s.user.ID,
		Name:   "Food",
		Type:   models.TransactionTypeExpense,
	}
	s.NoError(s.repo.Create(category))

	database.CreateTestTransaction(s.T(), s.db, s.user.ID, category.ID,
		"Lunch", 12.50, models.TransactionTypeExpense, time.Now().UTC())

	err := s.repo.Delete(category.ID, s.user.ID)
	s.Equal(ErrCategoryInUse, err)

	// Category remains
	_, err = s.repo.GetByID(category.ID)
	s.NoError(err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Delete_WrongOwner() {
	category := &models.Category{
		UserID: s.user.ID,
		Name:   "Food",
		Type:   models.TransactionTypeExpense,
	}
	s.NoError(s.repo.Create(category))

	err := s.repo.Delete(category.ID, uuid.New())
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_CountTransactions() {
	category := &models.Category{
		UserID: s.user.ID,
		Name:   "Food",
		Type:   models.TransactionTypeExpense,
	}
	s.NoError(s.repo.Create(category))

	count, err := s.repo.CountTransactions(category.ID)
	s.NoError(err)
	s.EqualValues(0, count)

	database.CreateTestTransaction(s.T(), s.db, s.user.ID, category.ID,
		"Lunch", 12.50, models.TransactionTypeExpense, time.Now().UTC())
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, category.ID,
		"Dinner", 30, models.TransactionTypeExpense, time.Now().UTC())

	count, err = s.repo.CountTransactions(category.ID)
	s.NoError(err)
	s.EqualValues(2, count)
}
