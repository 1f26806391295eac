package stats

import (
	"sort"
	"strconv"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultTopCategories is the ranking depth used by the dashboard.
const DefaultTopCategories = 6

// CategoryBreakdown accumulates per-category income and expense.
type CategoryBreakdown struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Total   decimal.Decimal `json:"total"`
}

// Summary is the single-pass reduction of a filtered transaction set.
type Summary struct {
	TotalIncome      decimal.Decimal              `json:"total_income"`
	TotalExpense     decimal.Decimal              `json:"total_expense"`
	Balance          decimal.Decimal              `json:"balance"`
	TransactionCount int                          `json:"transaction_count"`
	Categories       map[string]CategoryBreakdown `json:"categories"`
}

// CategoryTotal is one entry of an expense ranking.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// Bucket is one unit of a time-bucketed series.
type Bucket struct {
	Label   string          `json:"label"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// PeriodDeltas carries signed percentage changes versus the immediately
// preceding window of equal length.
type PeriodDeltas struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// Summarize reduces txs into totals and a per-category breakdown in a single
// pass. Empty input yields zero-valued results, never an error.
func Summarize(txs []models.Transaction) Summary {
	s := Summary{
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
		Balance:          decimal.Zero,
		TransactionCount: len(txs),
		Categories:       make(map[string]CategoryBreakdown),
	}

	for _, t := range txs {
		name := t.CategoryLabel()
		breakdown := s.Categories[name]

		if t.IsIncome() {
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
			breakdown.Income = breakdown.Income.Add(t.Amount)
		} else {
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
			breakdown.Expense = breakdown.Expense.Add(t.Amount)
		}
		breakdown.Total = breakdown.Total.Add(t.Amount)
		s.Categories[name] = breakdown
	}

	s.Balance = s.TotalIncome.Sub(s.TotalExpense)
	return s
}

// TopExpenseCategories groups expense transactions by category name, sums
// each group and returns the k largest, descending. Ties keep
// first-encountered order; k <= 0 falls back to DefaultTopCategories.
func TopExpenseCategories(txs []models.Transaction, k int) []CategoryTotal {
	if k <= 0 {
		k = DefaultTopCategories
	}

	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0)
	for _, t := range txs {
		if !t.IsExpense() {
			continue
		}
		name := t.CategoryLabel()
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] = totals[name].Add(t.Amount)
	}

	ranked := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		ranked = append(ranked, CategoryTotal{Category: name, Amount: totals[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// DailyBuckets produces exactly days buckets for the window ending on now's
// calendar day, oldest first. A transaction contributes to the bucket whose
// label equals its calendar day; dates outside the window are ignored.
func DailyBuckets(txs []models.Transaction, now time.Time, days int) []Bucket {
	if days < 1 {
		return []Bucket{}
	}

	buckets := make([]Bucket, days)
	index := make(map[string]int, days)
	today := Day(now)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, -(days - 1 - i))
		label := day.Format(models.DateLayout)
		buckets[i] = Bucket{Label: label, Income: decimal.Zero, Expense: decimal.Zero}
		index[label] = i
	}

	for _, t := range txs {
		i, ok := index[t.DateString()]
		if !ok {
			continue
		}
		if t.IsIncome() {
			buckets[i].Income = buckets[i].Income.Add(t.Amount)
		} else {
			buckets[i].Expense = buckets[i].Expense.Add(t.Amount)
		}
	}
	return buckets
}

// MonthlyBuckets produces a fixed 12-bucket series indexed by calendar month.
// Every transaction contributes to its month's bucket regardless of year;
// callers wanting year scoping must pre-filter.
func MonthlyBuckets(txs []models.Transaction) []Bucket {
	buckets := make([]Bucket, 12)
	for i := range buckets {
		buckets[i] = Bucket{
			Label:   time.Month(i + 1).String(),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	for _, t := range txs {
		i := int(t.Date.Month()) - 1
		if t.IsIncome() {
			buckets[i].Income = buckets[i].Income.Add(t.Amount)
		} else {
			buckets[i].Expense = buckets[i].Expense.Add(t.Amount)
		}
	}
	return buckets
}

// PercentChange returns (current - previous) / previous * 100. A zero
// previous yields 100 when current is positive and 0 otherwise; the
// asymmetry is intentional and load-bearing for dashboard compatibility.
func PercentChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		if current.GreaterThan(decimal.Zero) {
			return 100
		}
		return 0
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

// ComparePeriods computes deltas between the window of `days` days ending at
// now and the equal-length window immediately preceding it.
func ComparePeriods(txs []models.Transaction, now time.Time, days int) PeriodDeltas {
	current := Summarize(Filter(txs, Criteria{PeriodDays: strconv.Itoa(days)}, now))

	previousEnd := Day(now).AddDate(0, 0, -days)
	previousStart := previousEnd.AddDate(0, 0, -days)
	previous := Summarize(filterWindow(txs, previousStart, previousEnd))

	return PeriodDeltas{
		Income:  PercentChange(current.TotalIncome, previous.TotalIncome),
		Expense: PercentChange(current.TotalExpense, previous.TotalExpense),
		Balance: PercentChange(current.Balance, previous.Balance),
	}
}

// TopSpendingWeekday returns the weekday with the highest expense sum. Ties
// keep the first-encountered weekday; an empty expense set returns "".
func TopSpendingWeekday(txs []models.Transaction) string {
	totals := make(map[string]decimal.Decimal)
	order := make([]string, 0, 7)
	for _, t := range txs {
		if !t.IsExpense() {
			continue
		}
		day := t.Date.Weekday().String()
		if _, seen := totals[day]; !seen {
			order = append(order, day)
		}
		totals[day] = totals[day].Add(t.Amount)
	}

	best := ""
	for _, day := range order {
		if best == "" || totals[day].GreaterThan(totals[best]) {
			best = day
		}
	}
	return best
}

// filterWindow keeps transactions with previousStart <= date < previousEnd,
// the half-open shape the comparison window uses so a day never lands in
// both windows.
func filterWindow(txs []models.Transaction, start, end time.Time) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.Date.Before(start) || !t.Date.Before(end) {
			continue
		}
		out = append(out, t)
	}
	return out
}
