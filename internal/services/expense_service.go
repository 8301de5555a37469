package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	db *gorm.DB
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db}
}

// CreateExpense records a new expense for the user. Amount must be positive,
// description non-empty, and category a member of the closed set.
func (s *expenseService) CreateExpense(userID string, amount float64, description string, category models.ExpenseCategory, date time.Time) (*models.Expense, error) {
	if amount <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please enter a description")
	}
	if !models.ValidCategory(category) {
		return nil, apperrors.ErrInvalidCategory
	}
	if date.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please select a date")
	}

	expense := &models.Expense{
		UserID:      userID,
		Amount:      amount,
		Description: description,
		Category:    category,
		Date:        date,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expense, nil
}

// GetUserExpenses returns a page of the user's expenses, most recent first.
func (s *expenseService) GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	base := s.db.Model(&models.Expense{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var expenses []models.Expense
	if err := base.Order("date DESC, created_at DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAllUserExpenses returns every expense for the user, most recent first.
// This feeds the reporting path, which aggregates in memory.
func (s *expenseService) GetAllUserExpenses(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Order("date DESC, created_at DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpenseByID returns an expense by ID if it belongs to the user.
func (s *expenseService) GetExpenseByID(userID, expenseID string) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// UpdateExpense updates an expense's fields. Updates are validated exactly
// like creation: a provided amount must be positive, a provided description
// non-empty, a provided category valid.
func (s *expenseService) UpdateExpense(userID, expenseID string, amount *float64, description *string, category *models.ExpenseCategory, date *time.Time) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if amount != nil {
		if *amount <= 0 {
			return nil, apperrors.ErrInvalidAmount
		}
		updates["amount"] = *amount
	}
	if description != nil {
		trimmed := strings.TrimSpace(*description)
		if trimmed == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please enter a description")
		}
		updates["description"] = trimmed
	}
	if category != nil {
		if !models.ValidCategory(*category) {
			return nil, apperrors.ErrInvalidCategory
		}
		updates["category"] = *category
	}
	if date != nil {
		updates["date"] = *date
	}

	if len(updates) > 0 {
		if err := s.db.Model(expense).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return expense, nil
}

// DeleteExpense soft-deletes an expense by id and owner match only.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	expense, err := s.GetExpenseByID(userID, expenseID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetExpensesByCategory returns the user's expenses in one category, most
// recent first.
func (s *expenseService) GetExpensesByCategory(userID string, category models.ExpenseCategory) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND category = ?", userID, category).Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpensesByDateRange returns the user's expenses between start and end
// inclusive, most recent first.
func (s *expenseService) GetExpensesByDateRange(userID string, start, end time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).Order("date DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}
