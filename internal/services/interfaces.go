package services

import (
	"context"
	"time"

	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/report"
)

// GoogleProfile is the subset of a Google account the auth flow needs.
type GoogleProfile struct {
	GoogleID string
	Email    string
	Name     string
	Picture  string
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(name, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	UpdateProfile(userID string, name, profilePicture *string) (*models.User, error)
	FindOrCreateGoogleUser(profile GoogleProfile) (*models.User, error)
}

// ExpenseServicer defines the contract for expense-related business logic.
// All reads and writes are scoped to the owning user; there is no cross-user
// access outside the admin service.
type ExpenseServicer interface {
	CreateExpense(userID string, amount float64, description string, category models.ExpenseCategory, date time.Time) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	GetAllUserExpenses(userID string) ([]models.Expense, error)
	GetExpenseByID(userID, expenseID string) (*models.Expense, error)
	UpdateExpense(userID, expenseID string, amount *float64, description *string, category *models.ExpenseCategory, date *time.Time) (*models.Expense, error)
	DeleteExpense(userID, expenseID string) error
	GetExpensesByCategory(userID string, category models.ExpenseCategory) ([]models.Expense, error)
	GetExpensesByDateRange(userID string, start, end time.Time) ([]models.Expense, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	GetBudget(userID string) (*models.Budget, error)
	UpdateBudget(userID string, monthlyBudget float64) (*models.Budget, error)
}

// SettingsUpdate holds the optional fields of a settings update.
type SettingsUpdate struct {
	Theme         *models.Theme
	Currency      *models.Currency
	DateFormat    *string
	Notifications *bool
}

// SettingsServicer defines the contract for settings-related business logic.
type SettingsServicer interface {
	GetSettings(userID string) (*models.Settings, error)
	UpdateSettings(userID string, update SettingsUpdate) (*models.Settings, error)
}

// Dashboard is the display-ready report for a user's dashboard: current-month
// budget evaluation plus category and month aggregates over all expenses.
type Dashboard struct {
	MonthlySpending       float64                `json:"monthly_spending"`
	TotalSpending         float64                `json:"total_spending"`
	ExpenseCount          int                    `json:"expense_count"`
	AveragePerTransaction float64                `json:"average_per_transaction"`
	AverageDaily          float64                `json:"average_daily"`
	MonthlyBudget         float64                `json:"monthly_budget"`
	Budget                report.Evaluation      `json:"budget"`
	CategoryBreakdown     []report.CategoryEntry `json:"category_breakdown"`
	TopCategories         []report.CategoryEntry `json:"top_categories"`
	MonthlyTrend          []report.TrendPoint    `json:"monthly_trend"`
	RecentExpenses        []models.Expense       `json:"recent_expenses"`
	CurrencySymbol        string                 `json:"currency_symbol"`
}

// ReportServicer defines the contract for the dashboard reporting flow:
// fetch expenses, budget, and settings, then aggregate, evaluate, and format.
type ReportServicer interface {
	Dashboard(userID string) (*Dashboard, error)
}

// UserExpenseSummary is one row of the admin per-user spending statistics.
type UserExpenseSummary struct {
	UserID string  `json:"user_id"`
	Count  int64   `json:"count"`
	Total  float64 `json:"total"`
}

// AdminStats holds system-wide statistics for the admin panel.
type AdminStats struct {
	TotalUsers     int64                `json:"total_users"`
	TotalExpenses  int64                `json:"total_expenses"`
	TotalSpending  float64              `json:"total_spending"`
	ExpensesByUser []UserExpenseSummary `json:"expenses_by_user"`
}

// UserDetail is the admin view of a single user with their aggregates.
type UserDetail struct {
	User            models.User            `json:"user"`
	ExpenseCount    int                    `json:"expense_count"`
	TotalSpending   float64                `json:"total_spending"`
	ByCategory      []report.CategoryEntry `json:"by_category"`
	MonthlySpending []report.MonthTotal    `json:"monthly_spending"`
	Expenses        []models.Expense       `json:"expenses"`
}

// AdminServicer defines the contract for admin-only operations.
type AdminServicer interface {
	ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error)
	Stats() (*AdminStats, error)
	UserDetail(userID string) (*UserDetail, error)
	UserExpenses(userID string) ([]models.Expense, error)
	DeleteUser(adminID, userID string) error
	DeleteUserExpense(userID, expenseID string) error
}

// OAuthServicer defines the contract for the Google OAuth flow.
type OAuthServicer interface {
	Enabled() bool
	AuthURL(state string) (string, error)
	Exchange(ctx context.Context, code string) (*GoogleProfile, error)
	VerifyIDToken(ctx context.Context, idToken string) (*GoogleProfile, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
