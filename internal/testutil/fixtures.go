package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendwise/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Name:         fmt.Sprintf("Test User %d", nextID()),
		Email:        email,
		Password:     string(hash),
		AuthProvider: models.AuthProviderLocal,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestAdmin creates a user with the is_admin flag set.
func CreateTestAdmin(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := CreateTestUser(t, db)
	if err := db.Model(user).Update("is_admin", true).Error; err != nil {
		t.Fatalf("failed to promote test admin: %v", err)
	}
	user.IsAdmin = true
	return user
}

// CreateTestExpense creates an expense with the given amount, category, and date.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, amount float64, category models.ExpenseCategory, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Description: fmt.Sprintf("Test Expense %d", nextID()),
		Category:    category,
		Date:        date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestBudget creates a budget with the given monthly ceiling.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID string, monthlyBudget float64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:        userID,
		MonthlyBudget: monthlyBudget,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}

// CreateTestSettings creates default settings for the user.
func CreateTestSettings(t *testing.T, db *gorm.DB, userID string) *models.Settings {
	t.Helper()

	settings := &models.Settings{
		UserID:        userID,
		Theme:         models.ThemeLight,
		Currency:      models.CurrencyUSD,
		DateFormat:    "MM/DD/YYYY",
		Notifications: true,
	}
	if err := db.Create(settings).Error; err != nil {
		t.Fatalf("failed to create test settings: %v", err)
	}
	return settings
}
