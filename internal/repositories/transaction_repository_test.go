package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	user     *models.User
	category *models.Category
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "owner@example.com")
	s.category = database.CreateTestCategory(s.T(), s.db, s.user.ID, "Food", models.TransactionTypeExpense)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) newTransaction(description string, amount float64, date time.Time) *models.Transaction {
	return &models.Transaction{
		UserID:      s.user.ID,
		CategoryID:  s.category.ID,
		Description: description,
		Amount:      decimal.NewFromFloat(amount),
		Type:        models.TransactionTypeExpense,
		Date:        date,
	}
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Create() {
	tx := s.newTransaction("Lunch", 12.50, time.Now().UTC())

	err := s.repo.Create(tx)
	s.NoError(err)
	s.NotEqual(uuid.Nil, tx.ID)
	s.NotZero(tx.CreatedAt)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Create_InvalidAmount() {
	tx := s.newTransaction("Lunch", -5, time.Now().UTC())

	err := s.repo.Create(tx)
	s.Error(err)
	s.ErrorIs(err, models.ErrInvalidAmount)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByIDForUser() {
	tx := s.newTransaction("Lunch", 12.50, time.Now().UTC())
	s.NoError(s.repo.Create(tx))

	found, err := s.repo.GetByIDForUser(tx.ID, s.user.ID)
	s.NoError(err)
	s.Equal(tx.ID, found.ID)
	s.Equal("Food", found.Category.Name)

	_, err = s.repo.GetByIDForUser(tx.ID, uuid.New())
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByUserID_NewestFirst() {
	now := time.Now().UTC()
	old := s.newTransaction("Old", 10, now.AddDate(0, 0, -10))
	recent := s.newTransaction("Recent", 20, now)
	middle := s.newTransaction("Middle", 15, now.AddDate(0, 0, -5))

	s.NoError(s.repo.Create(old))
	s.NoError(s.repo.Create(recent))
	s.NoError(s.repo.Create(middle))

	transactions, err := s.repo.GetByUserID(s.user.ID)
	s.NoError(err)
	s.Len(transactions, 3)
	s.Equal("Recent", transactions[0].Description)
	s.Equal("Middle", transactions[1].Description)
	s.Equal("Old", transactions[2].Description)

	// Category preloaded for aggregation downstream
	s.Equal("Food", transactions[0].Category.Name)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetRecentByUserID() {
	now := time.Now().UTC()
	for i := 0; i < 8; i++ {
		tx := s.newTransaction("Item", 10, now.AddDate(0, 0, -i))
		s.NoError(s.repo.Create(tx))
	}

	recent, err := s.repo.GetRecentByUserID(s.user.ID, 5)
	s.NoError(err)
	s.Len(recent, 5)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Update() {
	tx := s.newTransaction("Lunch", 12.50, time.Now().UTC())
	s.NoError(s.repo.Create(tx))

	tx.Description = "Team lunch"
	tx.Amount = decimal.NewFromFloat(45)
	s.NoError(s.repo.Update(tx))

	updated, err := s.repo.GetByID(tx.ID)
	s.NoError(err)
	s.Equal("Team lunch", updated.Description)
	s.True(updated.Amount.Equal(decimal.NewFromFloat(45)))
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Delete() {
	tx := s.newTransaction("Lunch", 12.50, time.Now().UTC())
	s.NoError(s.repo.Create(tx))

	s.NoError(s.repo.Delete(tx.ID, s.user.ID))

	_, err := s.repo.GetByID(tx.ID)
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Delete_WrongOwner() {
	tx := s.newTransaction("Lunch", 12.50, time.Now().UTC())
	s.NoError(s.repo.Create(tx))

	err := s.repo.Delete(tx.ID, uuid.New())
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_DeleteBatch() {
	now := time.Now().UTC()
	first := s.newTransaction("First", 10, now)
	second := s.newTransaction("Second", 20, now)
	third := s.newTransaction("Third", 30, now)
	s.NoError(s.repo.Create(first))
	s.NoError(s.repo.Create(second))
	s.NoError(s.repo.Create(third))

	deleted, err := s.repo.DeleteBatch([]uuid.UUID{first.ID, second.ID}, s.user.ID)
	s.NoError(err)
	s.EqualValues(2, deleted)

	count, err := s.repo.CountByUserID(s.user.ID)
	s.NoError(err)
	s.EqualValues(1, count)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_DeleteBatch_RejectsForeignIDs() {
	tx := s.newTransaction("Mine", 10, time.Now().UTC())
	s.NoError(s.repo.Create(tx))

	// One owned ID plus one unknown ID rejects the whole batch
	deleted, err := s.repo.DeleteBatch([]uuid.UUID{tx.ID, uuid.New()}, s.user.ID)
	s.Equal(ErrNotAllTransactions, err)
	s.EqualValues(0, deleted)

	// Nothing was removed
	count, err := s.repo.CountByUserID(s.user.ID)
	s.NoError(err)
	s.EqualValues(1, count)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_DeleteBatch_Empty() {
	deleted, err := s.repo.DeleteBatch(nil, s.user.ID)
	s.NoError(err)
	s.EqualValues(0, deleted)
}
