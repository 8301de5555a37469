package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/models"
)

// UserLookup is the minimal user access the admin gate needs. Satisfied by
// services.UserServicer.
type UserLookup interface {
	GetUserByID(id string) (*models.User, error)
}

// AdminCheck decides whether a user holds admin privileges. Kept as a
// parameter so the authorization policy stays in one place (services.IsAdmin).
type AdminCheck func(user *models.User) bool

// AdminMiddleware rejects requests from non-admin users. It must run after
// AuthMiddleware, which sets the user ID in the context.
func AdminMiddleware(users UserLookup, isAdmin AdminCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserIDKey)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		user, err := users.GetUserByID(userID.(string))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !isAdmin(user) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin privileges required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
