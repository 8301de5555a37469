package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// settingsService handles settings-related business logic.
type settingsService struct {
	db *gorm.DB
}

// NewSettingsService creates a new SettingsServicer.
func NewSettingsService(db *gorm.DB) SettingsServicer {
	return &settingsService{db: db}
}

// GetSettings returns the user's settings, materializing defaults for
// accounts that predate signup-time creation (same fallback as GetBudget).
func (s *settingsService) GetSettings(userID string) (*models.Settings, error) {
	var settings models.Settings
	err := s.db.Where("user_id = ?", userID).First(&settings).Error
	switch {
	case err == nil:
		return &settings, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		settings = models.Settings{
			UserID:        userID,
			Theme:         models.ThemeLight,
			Currency:      models.CurrencyUSD,
			DateFormat:    "MM/DD/YYYY",
			Notifications: true,
		}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return &settings, nil
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// UpdateSettings applies the provided fields. Theme and currency are
// validated against their closed sets; date format and notifications pass
// through.
func (s *settingsService) UpdateSettings(userID string, update SettingsUpdate) (*models.Settings, error) {
	settings, err := s.GetSettings(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Theme != nil {
		switch *update.Theme {
		case models.ThemeLight, models.ThemeDark:
			updates["theme"] = *update.Theme
		default:
			return nil, apperrors.ErrInvalidTheme
		}
	}
	if update.Currency != nil {
		if !models.ValidCurrency(*update.Currency) {
			return nil, apperrors.ErrInvalidCurrency
		}
		updates["currency"] = *update.Currency
	}
	if update.DateFormat != nil {
		updates["date_format"] = *update.DateFormat
	}
	if update.Notifications != nil {
		updates["notifications"] = *update.Notifications
	}

	if len(updates) > 0 {
		if err := s.db.Model(settings).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return settings, nil
}
