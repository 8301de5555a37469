package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/services"
)

// SettingsHandler handles settings-related requests
type SettingsHandler struct {
	settingsService services.SettingsServicer
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsService services.SettingsServicer) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// UpdateSettingsRequest represents the settings update payload. All fields
// are optional; omitted fields keep their current values.
type UpdateSettingsRequest struct {
	Theme         *string `json:"theme" binding:"omitempty,theme"`
	Currency      *string `json:"currency" binding:"omitempty,currency_code"`
	DateFormat    *string `json:"date_format" binding:"omitempty,date_format"`
	Notifications *bool   `json:"notifications"`
}

// Get returns the user's settings
// @Summary     Get settings
// @Description Get the authenticated user's display preferences
// @Tags        settings
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Settings "Settings"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	settings, err := h.settingsService.GetSettings(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// Update modifies the user's settings
// @Summary     Update settings
// @Description Update the authenticated user's display preferences
// @Tags        settings
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateSettingsRequest true "Fields to update"
// @Success     200 {object} models.Settings "Settings updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.SettingsUpdate{
		DateFormat:    req.DateFormat,
		Notifications: req.Notifications,
	}
	if req.Theme != nil {
		theme := models.Theme(*req.Theme)
		update.Theme = &theme
	}
	if req.Currency != nil {
		currency := models.Currency(*req.Currency)
		update.Currency = &currency
	}

	settings, err := h.settingsService.UpdateSettings(userID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully",
		"settings": settings,
	})
}
