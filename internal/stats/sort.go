package stats

import (
	"sort"

	"fintrack/internal/models"
)

// Sort modes accepted by SortTransactions.
const (
	SortDateDesc        = "date-desc"
	SortDateAsc         = "date-asc"
	SortAmountDesc      = "amount-desc"
	SortAmountAsc       = "amount-asc"
	SortDescriptionAsc  = "description-asc"
	SortDescriptionDesc = "description-desc"
)

// SortTransactions returns a new slice ordered by the given mode. The sort is
// stable so equal keys keep their original relative order; an unknown mode
// falls back to date-desc.
func SortTransactions(txs []models.Transaction, mode string) []models.Transaction {
	sorted := make([]models.Transaction, len(txs))
	copy(sorted, txs)

	var less func(a, b *models.Transaction) bool
	switch mode {
	case SortDateAsc:
		less = func(a, b *models.Transaction) bool { return a.Date.Before(b.Date) }
	case SortAmountDesc:
		less = func(a, b *models.Transaction) bool { return a.Amount.GreaterThan(b.Amount) }
	case SortAmountAsc:
		less = func(a, b *models.Transaction) bool { return a.Amount.LessThan(b.Amount) }
	case SortDescriptionAsc:
		less = func(a, b *models.Transaction) bool { return a.Description < b.Description }
	case SortDescriptionDesc:
		less = func(a, b *models.Transaction) bool { return a.Description > b.Description }
	case SortDateDesc:
		fallthrough
	default:
		less = func(a, b *models.Transaction) bool { return a.Date.After(b.Date) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(&sorted[i], &sorted[j])
	})
	return sorted
}
