package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"spendwise/internal/models"
	"spendwise/internal/services"
)

func setupSettingsRouter(handler *SettingsHandler) *gin.Engine {
	r := gin.New()
	r.GET("/settings", injectUserID(testUserID), handler.Get)
	r.PUT("/settings", injectUserID(testUserID), handler.Update)
	return r
}

func TestSettingsHandler_Get(t *testing.T) {
	handler := NewSettingsHandler(&mockSettingsService{})
	r := setupSettingsRouter(handler)

	rec := doRequest(r, "GET", "/settings", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	settings := result["settings"].(map[string]interface{})
	if settings["theme"] != "light" {
		t.Errorf("expected light theme, got %v", settings["theme"])
	}
}

func TestSettingsHandler_Update(t *testing.T) {
	t.Run("passes fields through", func(t *testing.T) {
		var got services.SettingsUpdate
		settingsSvc := &mockSettingsService{
			updateSettingsFn: func(userID string, update services.SettingsUpdate) (*models.Settings, error) {
				got = update
				return &models.Settings{UserID: userID}, nil
			},
		}
		handler := NewSettingsHandler(settingsSvc)
		r := setupSettingsRouter(handler)

		rec := doRequest(r, "PUT", "/settings",
			`{"theme":"dark","currency":"EUR","notifications":false}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Theme == nil || *got.Theme != models.ThemeDark {
			t.Errorf("expected dark theme passed through, got %v", got.Theme)
		}
		if got.Currency == nil || *got.Currency != models.CurrencyEUR {
			t.Errorf("expected EUR passed through, got %v", got.Currency)
		}
		if got.Notifications == nil || *got.Notifications {
			t.Errorf("expected notifications=false passed through, got %v", got.Notifications)
		}
		if got.DateFormat != nil {
			t.Errorf("expected untouched date format, got %v", *got.DateFormat)
		}
	})

	t.Run("invalid theme rejected at binding", func(t *testing.T) {
		handler := NewSettingsHandler(&mockSettingsService{})
		r := setupSettingsRouter(handler)

		rec := doRequest(r, "PUT", "/settings", `{"theme":"sepia"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid currency rejected at binding", func(t *testing.T) {
		handler := NewSettingsHandler(&mockSettingsService{})
		r := setupSettingsRouter(handler)

		rec := doRequest(r, "PUT", "/settings", `{"currency":"BTC"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid date format rejected at binding", func(t *testing.T) {
		handler := NewSettingsHandler(&mockSettingsService{})
		r := setupSettingsRouter(handler)

		rec := doRequest(r, "PUT", "/settings", `{"date_format":"whatever"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("valid date format accepted", func(t *testing.T) {
		handler := NewSettingsHandler(&mockSettingsService{})
		r := setupSettingsRouter(handler)

		rec := doRequest(r, "PUT", "/settings", `{"date_format":"DD/MM/YYYY"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}
