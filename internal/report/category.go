// Package report contains the pure aggregation, budget-evaluation, and
// formatting logic behind the dashboard and admin statistics. Everything in
// this package operates on in-memory slices, has no side effects, and is safe
// to call concurrently. Degenerate input (empty lists, zero budgets, unknown
// categories) degrades to zero values, never to an error or NaN.
package report

import "spendwise/internal/models"

// CategoryInfo holds the display metadata for an expense category.
type CategoryInfo struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var categoryInfo = map[models.ExpenseCategory]CategoryInfo{
	models.CategoryFood:          {Label: "Food & Dining", Icon: "🍔", Color: "#FF6B6B"},
	models.CategoryTransport:     {Label: "Transportation", Icon: "🚗", Color: "#4ECDC4"},
	models.CategoryEntertainment: {Label: "Entertainment", Icon: "🎬", Color: "#45B7D1"},
	models.CategoryUtilities:     {Label: "Utilities", Icon: "⚡", Color: "#FFA07A"},
	models.CategoryShopping:      {Label: "Shopping", Icon: "🛍️", Color: "#98D8C8"},
	models.CategoryHealthcare:    {Label: "Healthcare", Icon: "🏥", Color: "#F7DC6F"},
	models.CategoryEducation:     {Label: "Education", Icon: "📚", Color: "#BB8FCE"},
	models.CategoryOther:         {Label: "Other", Icon: "📋", Color: "#85C1E2"},
}

// CategoryDisplay returns the display metadata for a category. Unknown
// categories fall back to the "Other" entry so stale or imported data still
// renders instead of erroring.
func CategoryDisplay(category models.ExpenseCategory) CategoryInfo {
	if info, ok := categoryInfo[category]; ok {
		return info
	}
	return categoryInfo[models.CategoryOther]
}
