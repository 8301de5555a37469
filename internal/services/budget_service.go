package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// GetBudget returns the user's budget. Signup creates one for every account;
// the get-or-create here is an idempotent fallback that converges accounts
// predating that policy to the one-budget-per-user invariant.
func (s *budgetService) GetBudget(userID string) (*models.Budget, error) {
	var budget models.Budget
	err := s.db.Where("user_id = ?", userID).First(&budget).Error
	switch {
	case err == nil:
		return &budget, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		budget = models.Budget{UserID: userID, MonthlyBudget: models.DefaultMonthlyBudget}
		if err := s.db.Create(&budget).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &budget, nil
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// UpdateBudget sets the user's monthly ceiling. Negative values are rejected;
// zero is allowed and means "no budget", which the evaluator treats as a zero
// percentage rather than a division error.
func (s *budgetService) UpdateBudget(userID string, monthlyBudget float64) (*models.Budget, error) {
	if monthlyBudget < 0 {
		return nil, apperrors.ErrNegativeBudget
	}

	budget, err := s.GetBudget(userID)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(budget).Update("monthly_budget", monthlyBudget).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budget, nil
}
