package report

import (
	"time"

	"spendwise/internal/models"
)

// DefaultMonthsBack is the trailing window for monthly aggregation.
const DefaultMonthsBack = 6

// MonthTotal is the summed spending for one calendar month.
type MonthTotal struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Label string  `json:"label"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

// TotalSpending sums the amounts of all expenses. The sum is defensive:
// invalid amounts are counted as stored, never rejected. Validation belongs
// to the write path.
func TotalSpending(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// AveragePerTransaction returns the mean expense amount, or 0 for an empty
// list.
func AveragePerTransaction(expenses []models.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	return TotalSpending(expenses) / float64(len(expenses))
}

// ByCategory sums spending per stored category key. Unrecognized categories
// keep their original key so every amount is counted exactly once; mapping
// them to the "Other" label happens at display time in CategoryDisplay.
func ByCategory(expenses []models.Expense) map[models.ExpenseCategory]float64 {
	totals := make(map[models.ExpenseCategory]float64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}

// ByMonth buckets spending into the trailing monthsBack calendar months
// ending at reference, ordered oldest first. Months with no expenses are
// zero-filled, so the result always has exactly monthsBack entries.
// Bucketing uses the (year, month) of each expense date in UTC, which keeps
// results independent of the server's timezone.
//
// monthsBack values below 1 fall back to DefaultMonthsBack.
func ByMonth(expenses []models.Expense, monthsBack int, reference time.Time) []MonthTotal {
	if monthsBack < 1 {
		monthsBack = DefaultMonthsBack
	}

	ref := reference.UTC()
	anchor := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)

	index := make(map[monthKey]int, monthsBack)
	result := make([]MonthTotal, monthsBack)
	for i := 0; i < monthsBack; i++ {
		m := anchor.AddDate(0, i-(monthsBack-1), 0)
		key := monthKey{m.Year(), int(m.Month())}
		index[key] = i
		result[i] = MonthTotal{
			Year:  key.year,
			Month: key.month,
			Label: m.Format("Jan 2006"),
		}
	}

	for _, e := range expenses {
		d := e.Date.UTC()
		if i, ok := index[monthKey{d.Year(), int(d.Month())}]; ok {
			result[i].Total += e.Amount
			result[i].Count++
		}
	}

	return result
}

// MonthlySpending sums expenses that fall in the given (year, month) pair,
// bucketed in UTC like ByMonth.
func MonthlySpending(expenses []models.Expense, year int, month time.Month) float64 {
	var total float64
	for _, e := range expenses {
		d := e.Date.UTC()
		if d.Year() == year && d.Month() == month {
			total += e.Amount
		}
	}
	return total
}

type monthKey struct {
	year  int
	month int
}
