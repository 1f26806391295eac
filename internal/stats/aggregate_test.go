package stats

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AggregateSuite struct {
	suite.Suite
	now time.Time
}

func TestAggregateSuite(t *testing.T) {
	suite.Run(t, new(AggregateSuite))
}

func (s *AggregateSuite) SetupTest() {
	// Fixed reference instant so window math is deterministic.
	s.now = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
}

func tx(typ, category string, amount float64, date time.Time) models.Transaction {
	return models.Transaction{
		Description: category + " purchase",
		Amount:      decimal.NewFromFloat(amount),
		Type:        typ,
		Date:        Day(date),
		Category:    models.Category{Name: category},
	}
}

func (s *AggregateSuite) TestSummarizeScenario() {
	day0 := s.now
	txs := []models.Transaction{
		tx(models.TransactionTypeExpense, "Food", 100, day0),
		tx(models.TransactionTypeExpense, "Food", 50, day0),
		tx(models.TransactionTypeIncome, "Salary", 200, day0),
	}

	summary := Summarize(txs)

	s.True(summary.TotalIncome.Equal(decimal.NewFromInt(200)))
	s.True(summary.TotalExpense.Equal(decimal.NewFromInt(150)))
	s.True(summary.Balance.Equal(decimal.NewFromInt(50)))
	s.Equal(3, summary.TransactionCount)
	s.True(summary.Categories["Food"].Expense.Equal(decimal.NewFromInt(150)))
	s.True(summary.Categories["Salary"].Income.Equal(decimal.NewFromInt(200)))
}

func (s *AggregateSuite) TestSummarizeEmptyInput() {
	summary := Summarize(nil)

	s.True(summary.TotalIncome.IsZero())
	s.True(summary.TotalExpense.IsZero())
	s.True(summary.Balance.IsZero())
	s.Equal(0, summary.TransactionCount)
	s.Empty(summary.Categories)
}

func (s *AggregateSuite) TestSummarizePartitionCompleteness() {
	// The sum of per-category expense totals must equal the total expense.
	txs := []models.Transaction{
		tx(models.TransactionTypeExpense, "Food", 12.5, s.now),
		tx(models.TransactionTypeExpense, "Transport", 47.25, s.now),
		tx(models.TransactionTypeExpense, "Food", 3.75, s.now.AddDate(0, 0, -2)),
		tx(models.TransactionTypeIncome, "Salary", 1000, s.now),
		tx(models.TransactionTypeExpense, "Bills", 88.1, s.now.AddDate(0, 0, -5)),
	}

	summary := Summarize(txs)

	expenseSum := decimal.Zero
	incomeSum := decimal.Zero
	for _, breakdown := range summary.Categories {
		expenseSum = expenseSum.Add(breakdown.Expense)
		incomeSum = incomeSum.Add(breakdown.Income)
	}
	s.True(expenseSum.Equal(summary.TotalExpense))
	s.True(incomeSum.Equal(summary.TotalIncome))
	s.True(summary.Balance.Equal(summary.TotalIncome.Sub(summary.TotalExpense)))
}

func (s *AggregateSuite) TestPercentChange() {
	testCases := []struct {
		name     string
		current  decimal.Decimal
		previous decimal.Decimal
		expected float64
	}{
		{"both zero", decimal.Zero, decimal.Zero, 0},
		{"growth from zero", decimal.NewFromInt(100), decimal.Zero, 100},
		{"fifty percent growth", decimal.NewFromInt(150), decimal.NewFromInt(100), 50.0},
		{"decline", decimal.NewFromInt(50), decimal.NewFromInt(100), -50.0},
		{"negative current from zero", decimal.NewFromInt(-10), decimal.Zero, 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.InDelta(tc.expected, PercentChange(tc.current, tc.previous), 1e-9)
		})
	}
}

func (s *AggregateSuite) TestDailyBucketsExactCount() {
	for _, days := range []int{1, 7, 30} {
		buckets := DailyBuckets(nil, s.now, days)
		s.Len(buckets, days, "window of %d days must yield %d buckets", days, days)
		for _, b := range buckets {
			s.True(b.Income.IsZero())
			s.True(b.Expense.IsZero())
		}
	}
}

func (s *AggregateSuite) TestDailyBucketsOrderingAndSums() {
	yesterday := s.now.AddDate(0, 0, -1)
	txs := []models.Transaction{
		tx(models.TransactionTypeExpense, "Food", 30, yesterday),
		tx(models.TransactionTypeExpense, "Food", 20, yesterday),
		tx(models.TransactionTypeIncome, "Salary", 500, s.now),
		// Outside the window, must not contribute anywhere.
		tx(models.TransactionTypeExpense, "Food", 999, s.now.AddDate(0, 0, -10)),
	}

	buckets := DailyBuckets(txs, s.now, 7)

	s.Len(buckets, 7)
	s.Equal(Day(s.now).AddDate(0, 0, -6).Format(models.DateLayout), buckets[0].Label)
	s.Equal(Day(s.now).Format(models.DateLayout), buckets[6].Label)
	s.True(buckets[5].Expense.Equal(decimal.NewFromInt(50)))
	s.True(buckets[6].Income.Equal(decimal.NewFromInt(500)))

	totalExpense := decimal.Zero
	for _, b := range buckets {
		totalExpense = totalExpense.Add(b.Expense)
	}
	s.True(totalExpense.Equal(decimal.NewFromInt(50)))
}

func (s *AggregateSuite) TestMonthlyBucketsIgnoreYear() {
	txs := []models.Transaction{
		tx(models.TransactionTypeExpense, "Bills", 40, time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC)),
		tx(models.TransactionTypeExpense, "Bills", 60, time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC)),
		tx(models.TransactionTypeIncome, "Salary", 100, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)),
	}

	buckets := MonthlyBuckets(txs)

	s.Len(buckets, 12)
	s.Equal("March", buckets[2].Label)
	s.True(buckets[2].Expense.Equal(decimal.NewFromInt(100)), "both March transactions accumulate regardless of year")
	s.True(buckets[11].Income.Equal(decimal.NewFromInt(100)))
}

func (s *AggregateSuite) TestTopExpenseCategories() {
	txs := []models.Transaction{
		tx(models.TransactionTypeExpense, "Food", 300, s.now),
		tx(models.TransactionTypeExpense, "Transport", 120, s.now),
		tx(models.TransactionTypeExpense, "Bills", 120, s.now),
		tx(models.TransactionTypeExpense, "Leisure", 80, s.now),
		tx(models.TransactionTypeIncome, "Salary", 5000, s.now),
	}

	ranked := TopExpenseCategories(txs, 3)

	s.Len(ranked, 3)
	s.Equal("Food", ranked[0].Category)
	// Transport and Bills tie at 120; first-encountered order wins.
	s.Equal("Transport", ranked[1].Category)
	s.Equal("Bills", ranked[2].Category)
}

func (s *AggregateSuite) TestTopExpenseCategoriesDefaultDepth() {
	var txs []models.Transaction
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	for i, name := range names {
		txs = append(txs, tx(models.TransactionTypeExpense, name, float64(100-i), s.now))
	}

	ranked := TopExpenseCategories(txs, 0)
	s.Len(ranked, DefaultTopCategories)
	s.Equal("A", ranked[0].Category)
}

func (s *AggregateSuite) TestComparePeriods() {
	current := s.now.AddDate(0, 0, -2)
	previous := s.now.AddDate(0, 0, -10)
	txs := []models.Transaction{
		tx(models.TransactionTypeExpense, "Food", 150, current),
		tx(models.TransactionTypeExpense, "Food", 100, previous),
		tx(models.TransactionTypeIncome, "Salary", 200, current),
	}

	deltas := ComparePeriods(txs, s.now, 7)

	s.InDelta(50.0, deltas.Expense, 1e-9)
	s.InDelta(100.0, deltas.Income, 1e-9)
}

func (s *AggregateSuite) TestTopSpendingWeekday() {
	monday := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	friday := time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx(models.TransactionTypeExpense, "Food", 10, monday),
		tx(models.TransactionTypeExpense, "Leisure", 90, friday),
		tx(models.TransactionTypeExpense, "Food", 15, monday),
		tx(models.TransactionTypeIncome, "Salary", 1000, monday),
	}

	s.Equal("Friday", TopSpendingWeekday(txs))
	s.Equal("", TopSpendingWeekday(nil))
}
