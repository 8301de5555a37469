package report

import "spendwise/internal/models"

// currencySymbols maps supported currency codes to their display symbols.
// Display-only; no conversion is performed anywhere in the system.
var currencySymbols = map[models.Currency]string{
	models.CurrencyUSD: "$",
	models.CurrencyEUR: "€",
	models.CurrencyGBP: "£",
	models.CurrencyJPY: "¥",
	models.CurrencyCAD: "C$",
	models.CurrencyPHP: "₱",
}

// CurrencySymbol returns the display symbol for a currency code, defaulting
// to "$" for anything unrecognized.
func CurrencySymbol(currency models.Currency) string {
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol
	}
	return "$"
}
