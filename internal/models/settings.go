package models

// Theme represents the UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Currency represents a supported display currency code.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyJPY Currency = "JPY"
	CurrencyCAD Currency = "CAD"
	CurrencyPHP Currency = "PHP"
)

// ValidCurrency reports whether code is a supported currency.
func ValidCurrency(code Currency) bool {
	switch code {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyJPY, CurrencyCAD, CurrencyPHP:
		return true
	}
	return false
}

// Settings represents per-user display preferences. Exactly one per user,
// created together with the account. The currency only picks a display
// symbol; amounts are never converted.
type Settings struct {
	Base
	UserID        string   `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Theme         Theme    `gorm:"default:light" json:"theme"`
	Currency      Currency `gorm:"default:USD" json:"currency"`
	DateFormat    string   `gorm:"default:MM/DD/YYYY" json:"date_format"`
	Notifications bool     `gorm:"default:true" json:"notifications"`
}
