package services

import (
	"time"

	"spendwise/internal/report"
)

// reportService runs the dashboard reporting flow on top of the expense,
// budget, and settings services.
type reportService struct {
	expenses ExpenseServicer
	budgets  BudgetServicer
	settings SettingsServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(expenses ExpenseServicer, budgets BudgetServicer, settings SettingsServicer) ReportServicer {
	return &reportService{expenses: expenses, budgets: budgets, settings: settings}
}

// Dashboard builds the display-ready report for a user. The sequence is
// strictly fetch, aggregate, evaluate, format; no writes happen on this path,
// so it is idempotent and safe to retry.
func (s *reportService) Dashboard(userID string) (*Dashboard, error) {
	expenses, err := s.expenses.GetAllUserExpenses(userID)
	if err != nil {
		return nil, err
	}

	budget, err := s.budgets.GetBudget(userID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	monthlySpending := report.MonthlySpending(expenses, now.Year(), now.Month())

	byCategory := report.ByCategory(expenses)
	breakdown := report.CategoryBreakdown(byCategory)
	months := report.ByMonth(expenses, report.DefaultMonthsBack, now)

	recent := expenses
	if len(recent) > 5 {
		recent = recent[:5]
	}

	return &Dashboard{
		MonthlySpending:       monthlySpending,
		TotalSpending:         report.TotalSpending(expenses),
		ExpenseCount:          len(expenses),
		AveragePerTransaction: report.AveragePerTransaction(expenses),
		AverageDaily:          report.AverageDaily(monthlySpending, now.Day()),
		MonthlyBudget:         budget.MonthlyBudget,
		Budget:                report.Evaluate(monthlySpending, budget.MonthlyBudget),
		CategoryBreakdown:     breakdown,
		TopCategories:         report.TopCategories(breakdown, report.DefaultTopCategories),
		MonthlyTrend:          report.MonthlyTrend(months),
		RecentExpenses:        recent,
		CurrencySymbol:        report.CurrencySymbol(settings.Currency),
	}, nil
}
