package stats

import (
	"strconv"
	"strings"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Criteria describes an ephemeral filter over a transaction snapshot. Absent
// fields impose no constraint; provided fields are ANDed together.
//
// Malformed dates and amount tokens are deliberately treated as "no
// constraint" rather than errors. This mirrors the observed behavior of the
// reference dashboard and is documented as an open product question in
// DESIGN.md; do not tighten it here without confirming intended semantics.
type Criteria struct {
	// PeriodDays is a relative window: a numeric day-count string ("7",
	// "30", "90") meaning [now - N days, now]. Any non-numeric value
	// ("custom", "") leaves the date dimension to StartDate/EndDate.
	PeriodDays string

	// StartDate and EndDate are explicit YYYY-MM-DD bounds, inclusive.
	StartDate string
	EndDate   string

	Category string
	Type     string

	// Search matches case-insensitively against description or category
	// name (substring).
	Search string

	// AmountRange is a token like "100-500" or "500-+"; a "+" (or missing)
	// upper bound means unbounded.
	AmountRange string
}

// Filter returns the subset of txs satisfying every provided criterion,
// preserving input order. now anchors relative period windows.
func Filter(txs []models.Transaction, c Criteria, now time.Time) []models.Transaction {
	start, end := c.dateWindow(now)
	minAmount, maxAmount := ParseAmountRange(c.AmountRange)
	search := strings.ToLower(strings.TrimSpace(c.Search))

	filtered := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if start != nil && t.Date.Before(*start) {
			continue
		}
		if end != nil && t.Date.After(*end) {
			continue
		}
		if c.Category != "" && t.CategoryLabel() != c.Category {
			continue
		}
		if c.Type != "" && t.Type != c.Type {
			continue
		}
		if search != "" && !matchesSearch(&t, search) {
			continue
		}
		if minAmount != nil && t.Amount.LessThan(*minAmount) {
			continue
		}
		if maxAmount != nil && t.Amount.GreaterThan(*maxAmount) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// dateWindow resolves the effective inclusive [start, end] day bounds. A
// numeric PeriodDays wins over explicit dates; an unparseable period falls
// back to the explicit bounds, and malformed explicit dates are ignored.
func (c Criteria) dateWindow(now time.Time) (start, end *time.Time) {
	if days, err := strconv.Atoi(strings.TrimSpace(c.PeriodDays)); err == nil && days > 0 {
		today := Day(now)
		from := today.AddDate(0, 0, -days)
		return &from, &today
	}

	if t, err := time.Parse(models.DateLayout, c.StartDate); err == nil {
		start = &t
	}
	if t, err := time.Parse(models.DateLayout, c.EndDate); err == nil {
		end = &t
	}
	return start, end
}

// ParseAmountRange parses a "min-max" token. The upper token "+" (or a
// missing upper token) means unbounded. Malformed numeric tokens yield no
// constraint on that side.
func ParseAmountRange(token string) (min, max *decimal.Decimal) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}

	parts := strings.SplitN(token, "-", 2)

	if v, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(parts[0], "+"))); err == nil {
		min = &v
	}

	if len(parts) < 2 {
		return min, nil
	}

	upper := strings.TrimSpace(parts[1])
	if upper == "" || upper == "+" {
		return min, nil
	}
	if v, err := decimal.NewFromString(upper); err == nil {
		max = &v
	}
	return min, max
}

// Day truncates an instant to its calendar day in the instant's location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func matchesSearch(t *models.Transaction, loweredTerm string) bool {
	if strings.Contains(strings.ToLower(t.Description), loweredTerm) {
		return true
	}
	return strings.Contains(strings.ToLower(t.CategoryLabel()), loweredTerm)
}
