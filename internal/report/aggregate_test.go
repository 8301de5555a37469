package report

import (
	"testing"
	"time"

	"spendwise/internal/models"
)

func expense(amount float64, category models.ExpenseCategory, date time.Time) models.Expense {
	return models.Expense{Amount: amount, Category: category, Date: date}
}

func TestTotalSpending(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := TotalSpending(nil); got != 0 {
			t.Errorf("expected 0 for empty list, got %v", got)
		}
	})

	t.Run("sums_all", func(t *testing.T) {
		expenses := []models.Expense{
			expense(10.50, models.CategoryFood, time.Now()),
			expense(20.25, models.CategoryTransport, time.Now()),
			expense(5, models.CategoryOther, time.Now()),
		}
		if got := TotalSpending(expenses); got != 35.75 {
			t.Errorf("expected 35.75, got %v", got)
		}
	})
}

func TestAveragePerTransaction(t *testing.T) {
	t.Run("empty_returns_zero", func(t *testing.T) {
		if got := AveragePerTransaction(nil); got != 0 {
			t.Errorf("expected 0 for empty list, got %v", got)
		}
	})

	t.Run("mean", func(t *testing.T) {
		expenses := []models.Expense{
			expense(10, models.CategoryFood, time.Now()),
			expense(20, models.CategoryFood, time.Now()),
		}
		if got := AveragePerTransaction(expenses); got != 15 {
			t.Errorf("expected 15, got %v", got)
		}
	})
}

func TestByCategory(t *testing.T) {
	t.Run("partitions_without_loss", func(t *testing.T) {
		expenses := []models.Expense{
			expense(10, models.CategoryFood, time.Now()),
			expense(15, models.CategoryFood, time.Now()),
			expense(30, models.CategoryTransport, time.Now()),
			expense(7, models.ExpenseCategory("legacy"), time.Now()),
		}

		totals := ByCategory(expenses)

		if totals[models.CategoryFood] != 25 {
			t.Errorf("expected food total 25, got %v", totals[models.CategoryFood])
		}
		if totals[models.CategoryTransport] != 30 {
			t.Errorf("expected transport total 30, got %v", totals[models.CategoryTransport])
		}
		// Unknown keys keep their own bucket so nothing is dropped.
		if totals[models.ExpenseCategory("legacy")] != 7 {
			t.Errorf("expected legacy total 7, got %v", totals["legacy"])
		}

		var sum float64
		for _, v := range totals {
			sum += v
		}
		if sum != TotalSpending(expenses) {
			t.Errorf("category totals %v do not add up to overall total %v", sum, TotalSpending(expenses))
		}
	})

	t.Run("empty", func(t *testing.T) {
		if totals := ByCategory(nil); len(totals) != 0 {
			t.Errorf("expected empty map, got %v", totals)
		}
	})
}

func TestByMonth(t *testing.T) {
	reference := time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("zero_fills_all_months", func(t *testing.T) {
		months := ByMonth(nil, 6, reference)

		if len(months) != 6 {
			t.Fatalf("expected 6 entries, got %d", len(months))
		}
		for _, m := range months {
			if m.Total != 0 || m.Count != 0 {
				t.Errorf("expected zero-filled month, got %+v", m)
			}
		}
	})

	t.Run("oldest_first", func(t *testing.T) {
		months := ByMonth(nil, 6, reference)

		if months[0].Year != 2025 || months[0].Month != 1 {
			t.Errorf("expected first entry Jan 2025, got %d-%d", months[0].Year, months[0].Month)
		}
		if months[5].Year != 2025 || months[5].Month != 6 {
			t.Errorf("expected last entry Jun 2025, got %d-%d", months[5].Year, months[5].Month)
		}
		if months[0].Label != "Jan 2025" {
			t.Errorf("expected label 'Jan 2025', got %q", months[0].Label)
		}
	})

	t.Run("buckets_by_utc_month", func(t *testing.T) {
		expenses := []models.Expense{
			expense(100, models.CategoryFood, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)),
			expense(50, models.CategoryFood, time.Date(2025, time.June, 30, 23, 59, 59, 0, time.UTC)),
			expense(25, models.CategoryFood, time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)),
			// Outside the window, must be ignored.
			expense(999, models.CategoryFood, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)),
		}

		months := ByMonth(expenses, 6, reference)

		june := months[5]
		if june.Total != 150 || june.Count != 2 {
			t.Errorf("expected June total 150 count 2, got %+v", june)
		}
		april := months[3]
		if april.Total != 25 || april.Count != 1 {
			t.Errorf("expected April total 25 count 1, got %+v", april)
		}
	})

	t.Run("crosses_year_boundary", func(t *testing.T) {
		ref := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
		months := ByMonth(nil, 6, ref)

		if months[0].Year != 2024 || months[0].Month != 9 {
			t.Errorf("expected first entry Sep 2024, got %d-%d", months[0].Year, months[0].Month)
		}
		if months[5].Year != 2025 || months[5].Month != 2 {
			t.Errorf("expected last entry Feb 2025, got %d-%d", months[5].Year, months[5].Month)
		}
	})

	t.Run("invalid_months_back_uses_default", func(t *testing.T) {
		months := ByMonth(nil, 0, reference)
		if len(months) != DefaultMonthsBack {
			t.Errorf("expected %d entries, got %d", DefaultMonthsBack, len(months))
		}
	})
}

func TestMonthlySpending(t *testing.T) {
	expenses := []models.Expense{
		expense(100, models.CategoryFood, time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC)),
		expense(40, models.CategoryFood, time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC)),
		expense(75, models.CategoryFood, time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC)),
	}

	if got := MonthlySpending(expenses, 2025, time.June); got != 140 {
		t.Errorf("expected June spending 140, got %v", got)
	}
	if got := MonthlySpending(expenses, 2025, time.May); got != 75 {
		t.Errorf("expected May spending 75, got %v", got)
	}
	if got := MonthlySpending(expenses, 2025, time.January); got != 0 {
		t.Errorf("expected January spending 0, got %v", got)
	}
}
