package models

// DefaultMonthlyBudget is the ceiling assigned when a user has not set one.
const DefaultMonthlyBudget = 3000

// Budget represents a user's self-declared monthly spending ceiling.
// Exactly one per user, created together with the account.
type Budget struct {
	Base
	UserID        string  `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	MonthlyBudget float64 `gorm:"not null;default:3000" json:"monthly_budget"`
}
