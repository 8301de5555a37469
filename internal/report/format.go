package report

import (
	"sort"

	"spendwise/internal/models"
)

// DefaultTopCategories is the dashboard's top-category slice size.
const DefaultTopCategories = 5

// Trend directions for month-over-month comparison. The first month in a
// trend has nothing to compare against and carries DirectionNone.
const (
	DirectionNone = "none"
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"
)

// CategoryEntry is one row of the category breakdown: the stored category
// key, its display metadata, and its share of total spending.
type CategoryEntry struct {
	Category   models.ExpenseCategory `json:"category"`
	Label      string                 `json:"label"`
	Icon       string                 `json:"icon"`
	Color      string                 `json:"color"`
	Amount     float64                `json:"amount"`
	Percentage float64                `json:"percentage"`
}

// TrendPoint is one month in the month-over-month trend. Delta and Direction
// compare against the previous point; the first point has Delta 0 and
// Direction "none".
type TrendPoint struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Label     string  `json:"label"`
	Total     float64 `json:"total"`
	Delta     float64 `json:"delta"`
	Direction string  `json:"direction"`
}

// CategoryBreakdown turns per-category totals into a display-ready list,
// sorted descending by amount (ties broken by category key for determinism)
// with each entry's percentage of the overall total. A zero total yields zero
// percentages for every entry, never NaN.
func CategoryBreakdown(totals map[models.ExpenseCategory]float64) []CategoryEntry {
	var overall float64
	for _, amount := range totals {
		overall += amount
	}

	entries := make([]CategoryEntry, 0, len(totals))
	for category, amount := range totals {
		info := CategoryDisplay(category)
		entry := CategoryEntry{
			Category: category,
			Label:    info.Label,
			Icon:     info.Icon,
			Color:    info.Color,
			Amount:   amount,
		}
		if overall > 0 {
			entry.Percentage = amount / overall * 100
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Amount != entries[j].Amount {
			return entries[i].Amount > entries[j].Amount
		}
		return entries[i].Category < entries[j].Category
	})

	return entries
}

// TopCategories returns the first n entries of a breakdown. n values below 1
// fall back to DefaultTopCategories.
func TopCategories(entries []CategoryEntry, n int) []CategoryEntry {
	if n < 1 {
		n = DefaultTopCategories
	}
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}

// MonthlyTrend annotates an ordered (oldest first) month series with signed
// deltas and direction indicators versus the preceding month.
func MonthlyTrend(months []MonthTotal) []TrendPoint {
	points := make([]TrendPoint, len(months))
	for i, m := range months {
		point := TrendPoint{
			Year:      m.Year,
			Month:     m.Month,
			Label:     m.Label,
			Total:     m.Total,
			Direction: DirectionNone,
		}
		if i > 0 {
			point.Delta = m.Total - months[i-1].Total
			switch {
			case point.Delta > 0:
				point.Direction = DirectionUp
			case point.Delta < 0:
				point.Direction = DirectionDown
			default:
				point.Direction = DirectionFlat
			}
		}
		points[i] = point
	}
	return points
}
