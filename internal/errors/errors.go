// Package errors provides custom error types for the Spendwise API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrAdminRequired      = &AppError{Code: "ADMIN_REQUIRED", Message: "Admin privileges required", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound      = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail    = &AppError{Code: "DUPLICATE_EMAIL", Message: "An account with this email already exists", StatusCode: http.StatusConflict}
	ErrSelfDeletion      = &AppError{Code: "SELF_DELETION", Message: "Cannot delete your own account", StatusCode: http.StatusBadRequest}
	ErrAdminNotDeletable = &AppError{Code: "ADMIN_NOT_DELETABLE", Message: "Admin accounts cannot be deleted", StatusCode: http.StatusBadRequest}
)

// Expense errors.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrInvalidAmount   = &AppError{Code: "INVALID_AMOUNT", Message: "Please enter a valid amount", StatusCode: http.StatusBadRequest}
	ErrInvalidCategory = &AppError{Code: "INVALID_CATEGORY", Message: "Please select a valid category", StatusCode: http.StatusBadRequest}
)

// Budget & settings errors.
var (
	ErrNegativeBudget  = &AppError{Code: "NEGATIVE_BUDGET", Message: "Monthly budget must be a positive number", StatusCode: http.StatusBadRequest}
	ErrInvalidTheme    = &AppError{Code: "INVALID_THEME", Message: "Invalid theme value", StatusCode: http.StatusBadRequest}
	ErrInvalidCurrency = &AppError{Code: "INVALID_CURRENCY", Message: "Invalid currency value", StatusCode: http.StatusBadRequest}
)

// OAuth errors.
var (
	ErrOAuthNotConfigured = &AppError{Code: "OAUTH_NOT_CONFIGURED", Message: "Google OAuth is not configured", StatusCode: http.StatusInternalServerError}
	ErrOAuthExchange      = &AppError{Code: "OAUTH_EXCHANGE_FAILED", Message: "Google authentication failed", StatusCode: http.StatusUnauthorized}
	ErrInvalidIDToken     = &AppError{Code: "INVALID_ID_TOKEN", Message: "Invalid Google token", StatusCode: http.StatusUnauthorized}
)
