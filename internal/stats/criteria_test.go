package stats

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type CriteriaSuite struct {
	suite.Suite
	now time.Time
	txs []models.Transaction
}

func TestCriteriaSuite(t *testing.T) {
	suite.Run(t, new(CriteriaSuite))
}

func (s *CriteriaSuite) SetupTest() {
	s.now = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	s.txs = []models.Transaction{
		tx(models.TransactionTypeExpense, "Food", 45.50, s.now),
		tx(models.TransactionTypeExpense, "Transport", 12, s.now.AddDate(0, 0, -3)),
		tx(models.TransactionTypeIncome, "Salary", 3200, s.now.AddDate(0, 0, -14)),
		tx(models.TransactionTypeExpense, "Bills", 210, s.now.AddDate(0, 0, -45)),
		tx(models.TransactionTypeIncome, "Freelance", 600, s.now.AddDate(0, 0, -2)),
	}
}

func (s *CriteriaSuite) TestEmptyCriteriaKeepsEverything() {
	filtered := Filter(s.txs, Criteria{}, s.now)
	s.Len(filtered, len(s.txs))
	for i, t := range filtered {
		s.Equal(s.txs[i].Description, t.Description, "order must be preserved")
	}
}

func (s *CriteriaSuite) TestPeriodWindow() {
	filtered := Filter(s.txs, Criteria{PeriodDays: "7"}, s.now)

	s.Len(filtered, 3)
	cutoff := Day(s.now).AddDate(0, 0, -7)
	for _, t := range filtered {
		s.False(t.Date.Before(cutoff))
	}
}

func (s *CriteriaSuite) TestCustomPeriodWithoutDatesIsUnfiltered() {
	for _, period := range []string{"custom", "", "all-time"} {
		filtered := Filter(s.txs, Criteria{PeriodDays: period}, s.now)
		s.Len(filtered, len(s.txs), "period %q must not constrain dates", period)
	}
}

func (s *CriteriaSuite) TestExplicitDateRange() {
	start := Day(s.now).AddDate(0, 0, -15).Format(models.DateLayout)
	end := Day(s.now).AddDate(0, 0, -3).Format(models.DateLayout)

	filtered := Filter(s.txs, Criteria{StartDate: start, EndDate: end}, s.now)

	s.Len(filtered, 2)
	for _, t := range filtered {
		s.GreaterOrEqual(t.DateString(), start)
		s.LessOrEqual(t.DateString(), end)
	}
}

func (s *CriteriaSuite) TestMalformedDatesImposeNoConstraint() {
	filtered := Filter(s.txs, Criteria{StartDate: "not-a-date", EndDate: "15/06/2024"}, s.now)
	s.Len(filtered, len(s.txs))
}

func (s *CriteriaSuite) TestCategoryAndTypeAreANDed() {
	filtered := Filter(s.txs, Criteria{
		Category: "Food",
		Type:     models.TransactionTypeExpense,
	}, s.now)

	s.Len(filtered, 1)
	s.Equal("Food", filtered[0].CategoryLabel())
}

func (s *CriteriaSuite) TestSearchMatchesDescriptionOrCategory() {
	byDescription := Filter(s.txs, Criteria{Search: "SALARY purch"}, s.now)
	s.Len(byDescription, 1)

	byCategory := Filter(s.txs, Criteria{Search: "food"}, s.now)
	s.Len(byCategory, 1)
	s.Equal("Food", byCategory[0].CategoryLabel())

	s.Empty(Filter(s.txs, Criteria{Search: "restaurant"}, s.now))
}

func (s *CriteriaSuite) TestAmountRange() {
	filtered := Filter(s.txs, Criteria{AmountRange: "100-1000"}, s.now)
	s.Len(filtered, 2)
	for _, t := range filtered {
		s.True(t.Amount.GreaterThanOrEqual(decimal.NewFromInt(100)))
		s.True(t.Amount.LessThanOrEqual(decimal.NewFromInt(1000)))
	}

	unbounded := Filter(s.txs, Criteria{AmountRange: "500-+"}, s.now)
	s.Len(unbounded, 2)
}

func (s *CriteriaSuite) TestFilteredSetIsSubset() {
	byID := make(map[string]bool, len(s.txs))
	for _, t := range s.txs {
		byID[t.Description+t.DateString()] = true
	}

	filtered := Filter(s.txs, Criteria{
		PeriodDays: "30",
		Type:       models.TransactionTypeExpense,
		Search:     "purch",
	}, s.now)

	for _, t := range filtered {
		s.True(byID[t.Description+t.DateString()], "filtered element must come from the source set")
		s.Equal(models.TransactionTypeExpense, t.Type)
	}
}

func (s *CriteriaSuite) TestParseAmountRange() {
	testCases := []struct {
		name  string
		token string
		min   string
		max   string
	}{
		{"bounded", "100-500", "100", "500"},
		{"plus upper is unbounded", "500-+", "500", ""},
		{"missing upper is unbounded", "500", "500", ""},
		{"trailing plus on single token", "500+", "500", ""},
		{"empty token", "", "", ""},
		{"garbage lower", "abc-500", "", "500"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			min, max := ParseAmountRange(tc.token)
			if tc.min == "" {
				s.Nil(min)
			} else {
				s.NotNil(min)
				s.Equal(tc.min, min.String())
			}
			if tc.max == "" {
				s.Nil(max)
			} else {
				s.NotNil(max)
				s.Equal(tc.max, max.String())
			}
		})
	}
}
