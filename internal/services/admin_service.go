package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/report"
)

// adminService handles admin-only operations.
type adminService struct {
	db *gorm.DB
}

// NewAdminService creates a new AdminServicer.
func NewAdminService(db *gorm.DB) AdminServicer {
	return &adminService{db: db}
}

// ListUsers returns a page of all users, newest first. Password hashes are
// excluded from JSON by the model, not here.
func (s *adminService) ListUsers(page pagination.PageRequest) (*pagination.PageResponse[models.User], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.User{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var users []models.User
	if err := s.db.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&users).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(users, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// Stats returns system-wide user and spending statistics.
func (s *adminService) Stats() (*AdminStats, error) {
	stats := &AdminStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(&models.Expense{}).Count(&stats.TotalExpenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := s.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalSpending).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var byUser []UserExpenseSummary
	if err := s.db.Model(&models.Expense{}).
		Select("user_id, COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total").
		Group("user_id").
		Scan(&byUser).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	stats.ExpensesByUser = byUser

	return stats, nil
}

// UserDetail returns a user with their expense aggregates for the admin
// panel: totals, category breakdown, and a 12-month spending history.
func (s *adminService) UserDetail(userID string) (*UserDetail, error) {
	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	expenses, err := s.UserExpenses(userID)
	if err != nil {
		return nil, err
	}

	return &UserDetail{
		User:            user,
		ExpenseCount:    len(expenses),
		TotalSpending:   report.TotalSpending(expenses),
		ByCategory:      report.CategoryBreakdown(report.ByCategory(expenses)),
		MonthlySpending: report.ByMonth(expenses, 12, time.Now().UTC()),
		Expenses:        expenses,
	}, nil
}

// UserExpenses returns every expense for the given user, most recent first.
func (s *adminService) UserExpenses(userID string) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Where("user_id = ?", userID).Order("date DESC, created_at DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// DeleteUser removes a non-admin user and everything they own. Admins cannot
// delete themselves or other admins.
func (s *adminService) DeleteUser(adminID, userID string) error {
	if adminID == userID {
		return apperrors.ErrSelfDeletion
	}

	var user models.User
	if err := s.db.Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if IsAdmin(&user) {
		return apperrors.ErrAdminNotDeletable
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Expense{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Budget{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Settings{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// DeleteUserExpense removes a specific expense belonging to the given user.
func (s *adminService) DeleteUserExpense(userID, expenseID string) error {
	var expense models.Expense
	if err := s.db.Where("id = ? AND user_id = ?", expenseID, userID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrExpenseNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Delete(&expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
