package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
)

// ExpenseHandler handles expense-related requests
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// CreateExpenseRequest represents the expense creation payload
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required,max=500"`
	Category    string  `json:"category" binding:"required,expense_category"`
	Date        string  `json:"date" binding:"required"`
}

// UpdateExpenseRequest represents the expense update payload. All fields are
// optional; provided fields are validated the same as on creation.
type UpdateExpenseRequest struct {
	Amount      *float64 `json:"amount" binding:"omitempty,gt=0"`
	Description *string  `json:"description" binding:"omitempty,max=500"`
	Category    *string  `json:"category" binding:"omitempty,expense_category"`
	Date        *string  `json:"date" binding:"omitempty"`
}

// parseExpenseDate accepts either a bare date or a full RFC 3339 timestamp.
func parseExpenseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid date format, expected YYYY-MM-DD")
	}
	return t, nil
}

// Create adds a new expense
// @Summary     Create expense
// @Description Record a new expense for the authenticated user
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateExpenseRequest true "Expense data"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseExpenseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(userID, req.Amount, req.Description, models.ExpenseCategory(req.Category), date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(), map[string]interface{}{
		"amount":   expense.Amount,
		"category": expense.Category,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense created successfully",
		"expense": expense,
	})
}

// List returns the user's expenses, newest first
// @Summary     List expenses
// @Description Get the authenticated user's expenses ordered by date, paginated
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number (default 1)"
// @Param       page_size query int false "Page size (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Expense] "Expenses"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	resp, err := h.expenseService.GetUserExpenses(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get returns a single expense
// @Summary     Get expense
// @Description Get one of the authenticated user's expenses by ID
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} models.Expense "Expense"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpenseByID(userID, expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense": expense})
}

// Update modifies an expense
// @Summary     Update expense
// @Description Update fields of one of the authenticated user's expenses
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Param       request body UpdateExpenseRequest true "Fields to update"
// @Success     200 {object} models.Expense "Expense updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := parseExpenseDate(*req.Date)
		if err != nil {
			respondWithError(c, err)
			return
		}
		date = &parsed
	}

	var category *models.ExpenseCategory
	if req.Category != nil {
		cat := models.ExpenseCategory(*req.Category)
		category = &cat
	}

	expense, err := h.expenseService.UpdateExpense(userID, expenseID, req.Amount, req.Description, category, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_EXPENSE", "expense", expense.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{
		"message": "Expense updated successfully",
		"expense": expense,
	})
}

// Delete removes an expense
// @Summary     Delete expense
// @Description Delete one of the authenticated user's expenses
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Expense ID"
// @Success     200 {object} map[string]string "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// ListByCategory returns the user's expenses in one category
// @Summary     List expenses by category
// @Description Get the authenticated user's expenses in a single category
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       category path string true "Expense category"
// @Success     200 {object} map[string][]models.Expense "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses/category/{category} [get]
func (h *ExpenseHandler) ListByCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	category := models.ExpenseCategory(c.Param("category"))
	if !models.ValidCategory(category) {
		respondWithError(c, apperrors.ErrInvalidCategory)
		return
	}

	expenses, err := h.expenseService.GetExpensesByCategory(userID, category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// ListByDateRange returns the user's expenses between two dates
// @Summary     List expenses by date range
// @Description Get the authenticated user's expenses between two dates, inclusive
// @Tags        expenses
// @Produce     json
// @Security    BearerAuth
// @Param       start path string true "Start date (YYYY-MM-DD)"
// @Param       end path string true "End date (YYYY-MM-DD)"
// @Success     200 {object} map[string][]models.Expense "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid date range"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /expenses/date-range/{start}/{end} [get]
func (h *ExpenseHandler) ListByDateRange(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	start, err := parseExpenseDate(c.Param("start"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := parseExpenseDate(c.Param("end"))
	if err != nil {
		respondWithError(c, err)
		return
	}
	if end.Before(start) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "End date must not precede start date"))
		return
	}

	expenses, err := h.expenseService.GetExpensesByDateRange(userID, start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}
