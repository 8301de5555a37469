// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"spendwise/internal/models"
)

// dateFormatRegex accepts the handful of format strings the frontend offers
// (e.g. MM/DD/YYYY, DD-MM-YYYY, YYYY.MM.DD).
var dateFormatRegex = regexp.MustCompile(`^(MM|DD|YYYY)([/.-])(MM|DD|YYYY)([/.-])(MM|DD|YYYY)$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("currency_code", validateCurrencyCode)
		_ = v.RegisterValidation("theme", validateTheme)
		_ = v.RegisterValidation("date_format", validateDateFormat)
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.ValidCategory(models.ExpenseCategory(fl.Field().String()))
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return models.ValidCurrency(models.Currency(fl.Field().String()))
}

func validateTheme(fl validator.FieldLevel) bool {
	switch models.Theme(fl.Field().String()) {
	case models.ThemeLight, models.ThemeDark:
		return true
	}
	return false
}

func validateDateFormat(fl validator.FieldLevel) bool {
	return dateFormatRegex.MatchString(fl.Field().String())
}
