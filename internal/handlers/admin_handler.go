package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
)

// AdminHandler handles admin-only requests. Routes using it must sit behind
// both the auth and admin middlewares.
type AdminHandler struct {
	adminService services.AdminServicer
	auditService services.AuditServicer
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(adminService services.AdminServicer, auditService services.AuditServicer) *AdminHandler {
	return &AdminHandler{adminService: adminService, auditService: auditService}
}

// ListUsers returns all users
// @Summary     List users
// @Description Get all registered users, newest first, paginated
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number (default 1)"
// @Param       page_size query int false "Page size (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.User] "Users"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Router      /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	page.Defaults()

	resp, err := h.adminService.ListUsers(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Stats returns system-wide statistics
// @Summary     System statistics
// @Description Get user count, expense count, total spending, and per-user totals
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.AdminStats "Statistics"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Router      /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// GetUser returns a user with their spending aggregates
// @Summary     Get user detail
// @Description Get a single user with expense count, totals, and per-category and per-month aggregates
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} services.UserDetail "User detail"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *gin.Context) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	detail, err := h.adminService.UserDetail(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// GetUserExpenses returns all expenses of a user
// @Summary     Get user expenses
// @Description Get all expenses recorded by a single user
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} map[string][]models.Expense "Expenses"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /admin/users/{id}/expenses [get]
func (h *AdminHandler) GetUserExpenses(c *gin.Context) {
	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenses, err := h.adminService.UserExpenses(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// DeleteUser removes a user and all their data
// @Summary     Delete user
// @Description Delete a user together with their expenses, budget, and settings. Admin accounts and the requesting admin cannot be deleted.
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Success     200 {object} map[string]string "User deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID or self-deletion"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin access required or target is admin"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.adminService.DeleteUser(adminID, userID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(adminID, "ADMIN_DELETE_USER", "user", userID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "User and associated data deleted successfully"})
}

// DeleteUserExpense removes one expense of a user
// @Summary     Delete user expense
// @Description Delete a single expense belonging to a user
// @Tags        admin
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "User ID"
// @Param       expenseID path string true "Expense ID"
// @Success     200 {object} map[string]string "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Admin access required"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /admin/users/{id}/expenses/{expenseID} [delete]
func (h *AdminHandler) DeleteUserExpense(c *gin.Context) {
	adminID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expenseID, err := parsePathID(c, "expenseID")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.adminService.DeleteUserExpense(userID, expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(adminID, "ADMIN_DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
