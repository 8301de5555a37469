package services

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"spendwise/internal/config"
	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

var emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// IsAdmin reports whether a user holds admin privileges. The check is the
// is_admin flag OR a case-insensitive match on the reserved admin email.
//
// The email fallback is a compatibility shim for accounts created before the
// flag existed. Do not remove it without first running cmd/initadmin against
// every deployment, which promotes the reserved-email account to flag-admin.
func IsAdmin(user *models.User) bool {
	if user == nil {
		return false
	}
	return user.IsAdmin || strings.EqualFold(user.Email, config.Get().AdminEmail)
}

// userService handles user-related business logic.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// CreateUser registers a new user with a password. The user's default Budget
// and Settings rows are created in the same transaction, so every account
// satisfies the one-budget-one-settings invariant from the moment it exists.
func (s *userService) CreateUser(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if len(name) < 2 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Name must be at least 2 characters long")
	}
	if !emailRegex.MatchString(email) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Please provide a valid email address")
	}
	if len(password) < 6 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Password must be at least 6 characters long")
	}

	var count int64
	s.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Password:     string(hashedPassword),
		AuthProvider: models.AuthProviderLocal,
		IsAdmin:      strings.EqualFold(email, config.Get().AdminEmail),
	}

	if err := s.createWithDefaults(user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindOrCreateGoogleUser returns the account matching the Google profile by
// email or Google ID, linking and refreshing it as needed, or creates a new
// OAuth-only account with default Budget and Settings.
func (s *userService) FindOrCreateGoogleUser(profile GoogleProfile) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(profile.Email))
	if email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Google account has no email address")
	}

	var user models.User
	err := s.db.Where("email = ? OR google_id = ?", email, profile.GoogleID).First(&user).Error
	switch {
	case err == nil:
		updates := make(map[string]interface{})
		if user.GoogleID == nil {
			updates["google_id"] = profile.GoogleID
			updates["auth_provider"] = models.AuthProviderGoogle
		}
		if profile.Picture != "" {
			updates["profile_picture"] = profile.Picture
		}
		if len(updates) > 0 {
			if err := s.db.Model(&user).Updates(updates).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		name := strings.TrimSpace(profile.Name)
		if name == "" {
			name = "User"
		}
		googleID := profile.GoogleID
		newUser := &models.User{
			Name:         name,
			Email:        email,
			GoogleID:     &googleID,
			AuthProvider: models.AuthProviderGoogle,
			IsAdmin:      strings.EqualFold(email, config.Get().AdminEmail),
		}
		if profile.Picture != "" {
			picture := profile.Picture
			newUser.ProfilePicture = &picture
		}
		if err := s.createWithDefaults(newUser); err != nil {
			return nil, err
		}
		return newUser, nil
	default:
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
}

// createWithDefaults inserts a user plus default budget and settings rows
// atomically.
func (s *userService) createWithDefaults(user *models.User) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		budget := &models.Budget{UserID: user.ID, MonthlyBudget: models.DefaultMonthlyBudget}
		if err := tx.Create(budget).Error; err != nil {
			return err
		}
		settings := &models.Settings{
			UserID:        user.ID,
			Theme:         models.ThemeLight,
			Currency:      models.CurrencyUSD,
			DateFormat:    "MM/DD/YYYY",
			Notifications: true,
		}
		return tx.Create(settings).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetUserByEmail retrieves a user by email
func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// VerifyPassword checks if the provided password matches the stored hash.
// OAuth-only accounts have no hash and always fail.
func (s *userService) VerifyPassword(user *models.User, password string) bool {
	if user.Password == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password))
	return err == nil
}

// UpdateProfile updates the user's display name and/or profile picture.
func (s *userService) UpdateProfile(userID string, name, profilePicture *string) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if len(trimmed) < 2 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Display name must be at least 2 characters long")
		}
		updates["name"] = trimmed
	}
	if profilePicture != nil {
		updates["profile_picture"] = *profilePicture
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return user, nil
}
