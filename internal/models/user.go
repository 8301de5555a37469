package models

// AuthProvider identifies how an account authenticates.
type AuthProvider string

const (
	AuthProviderLocal  AuthProvider = "local"
	AuthProviderGoogle AuthProvider = "google"
)

// User represents the user model in the database. Password is empty for
// OAuth-only accounts.
type User struct {
	Base
	Name           string       `gorm:"not null" json:"name"`
	Email          string       `gorm:"uniqueIndex;not null" json:"email"`
	Password       string       `json:"-"`
	GoogleID       *string      `gorm:"index" json:"-"`
	AuthProvider   AuthProvider `gorm:"default:local" json:"auth_provider"`
	IsAdmin        bool         `gorm:"default:false" json:"is_admin"`
	ProfilePicture *string      `json:"profile_picture,omitempty"`

	Expenses []Expense `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Budget   *Budget   `gorm:"foreignKey:UserID" json:"budget,omitempty"`
	Settings *Settings `gorm:"foreignKey:UserID" json:"settings,omitempty"`
}
