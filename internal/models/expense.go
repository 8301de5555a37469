package models

import "time"

// ExpenseCategory represents the closed set of expense categories.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "food"
	CategoryTransport     ExpenseCategory = "transport"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryUtilities     ExpenseCategory = "utilities"
	CategoryShopping      ExpenseCategory = "shopping"
	CategoryHealthcare    ExpenseCategory = "healthcare"
	CategoryEducation     ExpenseCategory = "education"
	CategoryOther         ExpenseCategory = "other"
)

// ValidCategory reports whether category is a member of the closed set.
func ValidCategory(category ExpenseCategory) bool {
	switch category {
	case CategoryFood, CategoryTransport, CategoryEntertainment, CategoryUtilities,
		CategoryShopping, CategoryHealthcare, CategoryEducation, CategoryOther:
		return true
	}
	return false
}

// Expense represents a single user-recorded spending transaction.
type Expense struct {
	Base
	UserID      string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount      float64         `gorm:"not null" json:"amount"`
	Description string          `gorm:"not null" json:"description"`
	Category    ExpenseCategory `gorm:"not null" json:"category"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
}
