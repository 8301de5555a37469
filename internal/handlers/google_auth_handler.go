package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/config"
	apperrors "spendwise/internal/errors"
	"spendwise/internal/logger"
	"spendwise/internal/middleware"
	"spendwise/internal/services"
	"spendwise/internal/uuid"
)

// GoogleAuthHandler handles the Google OAuth flow.
type GoogleAuthHandler struct {
	oauthService services.OAuthServicer
	userService  services.UserServicer
	auditService services.AuditServicer
}

// NewGoogleAuthHandler creates a new GoogleAuthHandler.
func NewGoogleAuthHandler(oauthService services.OAuthServicer, userService services.UserServicer, auditService services.AuditServicer) *GoogleAuthHandler {
	return &GoogleAuthHandler{oauthService: oauthService, userService: userService, auditService: auditService}
}

// VerifyTokenRequest represents the ID-token verification payload.
type VerifyTokenRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// AuthURL returns the Google consent-screen URL
// @Summary     Get Google OAuth URL
// @Description Get the URL to redirect the user to for Google sign-in
// @Tags        auth
// @Produce     json
// @Success     200 {object} map[string]string "Auth URL"
// @Failure     500 {object} ErrorResponse "OAuth not configured"
// @Router      /auth/google [get]
func (h *GoogleAuthHandler) AuthURL(c *gin.Context) {
	authURL, err := h.oauthService.AuthURL(uuid.New())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"auth_url": authURL})
}

// Callback handles the Google OAuth redirect. On success it redirects to the
// frontend dashboard with a token; on failure it redirects to the login page
// with an error code, matching what the frontend expects.
// @Summary     Google OAuth callback
// @Description Exchange the authorization code and redirect to the frontend with a token
// @Tags        auth
// @Param       code query string true "Authorization code"
// @Success     302 "Redirect to frontend"
// @Router      /auth/google/callback [get]
func (h *GoogleAuthHandler) Callback(c *gin.Context) {
	frontendURL := config.Get().FrontendURL

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, frontendURL+"/login.html?error=no_code")
		return
	}

	profile, err := h.oauthService.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Get().Errorw("google oauth exchange failed", "error", err.Error())
		c.Redirect(http.StatusFound, frontendURL+"/login.html?error=oauth_failed")
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(*profile)
	if err != nil {
		logger.Get().Errorw("google user lookup failed", "error", err.Error())
		c.Redirect(http.StatusFound, frontendURL+"/login.html?error=oauth_failed")
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		logger.Get().Errorw("token generation failed", "error", err.Error())
		c.Redirect(http.StatusFound, frontendURL+"/login.html?error=oauth_failed")
		return
	}

	h.auditService.Log(user.ID, "GOOGLE_LOGIN", "user", user.ID, c.ClientIP(), nil)

	c.Redirect(http.StatusFound, frontendURL+"/dashboard.html?token="+token+"&googleAuth=true")
}

// VerifyToken authenticates a user from a Google ID token
// @Summary     Verify Google ID token
// @Description Verify a Google ID token and sign the user in
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body VerifyTokenRequest true "Google ID token"
// @Success     200 {object} AuthResponse "User authenticated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid Google token"
// @Router      /auth/google/verify [post]
func (h *GoogleAuthHandler) VerifyToken(c *gin.Context) {
	var req VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.oauthService.VerifyIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(*profile)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Google authentication successful",
		"token":   token,
		"user":    userResponse(user),
	})
}
