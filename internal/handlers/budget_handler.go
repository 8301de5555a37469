package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/services"
)

// BudgetHandler handles budget-related requests
type BudgetHandler struct {
	budgetService services.BudgetServicer
	auditService  services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgetService services.BudgetServicer, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgetService: budgetService, auditService: auditService}
}

// UpdateBudgetRequest represents the budget update payload. Zero is a valid
// monthly budget; only negative values are rejected.
type UpdateBudgetRequest struct {
	MonthlyBudget *float64 `json:"monthly_budget" binding:"required"`
}

// Get returns the user's budget
// @Summary     Get budget
// @Description Get the authenticated user's monthly budget
// @Tags        budget
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Budget "Budget"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budget [get]
func (h *BudgetHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget, err := h.budgetService.GetBudget(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"budget": budget})
}

// Update sets the user's monthly budget
// @Summary     Update budget
// @Description Set the authenticated user's monthly budget
// @Tags        budget
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateBudgetRequest true "Budget data"
// @Success     200 {object} models.Budget "Budget updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budget [put]
func (h *BudgetHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	budget, err := h.budgetService.UpdateBudget(userID, *req.MonthlyBudget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_BUDGET", "budget", budget.ID, c.ClientIP(), map[string]interface{}{
		"monthly_budget": budget.MonthlyBudget,
	})

	c.JSON(http.StatusOK, gin.H{
		"message": "Budget updated successfully",
		"budget":  budget,
	})
}
