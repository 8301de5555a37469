package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

type stubUserLookup struct {
	user *models.User
	err  error
}

func (s *stubUserLookup) GetUserByID(_ string) (*models.User, error) {
	return s.user, s.err
}

func adminRouter(lookup UserLookup, isAdmin AdminCheck, authed bool) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{}
	if authed {
		handlers = append(handlers, func(c *gin.Context) {
			c.Set(ContextUserIDKey, "0190a6e2-6666-7000-8000-000000000006")
			c.Next()
		})
	}
	handlers = append(handlers, AdminMiddleware(lookup, isAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/admin", handlers...)
	return r
}

func TestAdminMiddleware(t *testing.T) {
	flagCheck := func(u *models.User) bool { return u.IsAdmin }

	t.Run("admin passes", func(t *testing.T) {
		lookup := &stubUserLookup{user: &models.User{IsAdmin: true}}
		req := httptest.NewRequest("GET", "/admin", nil)
		rec := httptest.NewRecorder()
		adminRouter(lookup, flagCheck, true).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("non-admin gets 403", func(t *testing.T) {
		lookup := &stubUserLookup{user: &models.User{}}
		req := httptest.NewRequest("GET", "/admin", nil)
		rec := httptest.NewRecorder()
		adminRouter(lookup, flagCheck, true).ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("unauthenticated gets 401", func(t *testing.T) {
		lookup := &stubUserLookup{user: &models.User{IsAdmin: true}}
		req := httptest.NewRequest("GET", "/admin", nil)
		rec := httptest.NewRecorder()
		adminRouter(lookup, flagCheck, false).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("unknown user gets 401", func(t *testing.T) {
		lookup := &stubUserLookup{err: apperrors.ErrUserNotFound}
		req := httptest.NewRequest("GET", "/admin", nil)
		rec := httptest.NewRecorder()
		adminRouter(lookup, flagCheck, true).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})
}
