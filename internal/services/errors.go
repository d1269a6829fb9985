package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("record not found")
	ErrCoupleNotFound       = errors.New("couple not found")
	ErrCoupleExists         = errors.New("couple already exists")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrSubscriptionRequired = errors.New("subscription required")
	ErrDocumentFileCleanup  = errors.New("document file cleanup failed")
)

// Validation codes double as translation keys under "validation.".
const (
	CodeRequired = "required"
	CodeInvalid  = "invalid"
	CodeNegative = "negative"
	CodeTooLarge = "too_large"
	CodeTaken    = "taken"
	CodeWeak     = "weak"
)

type ValidationError struct {
	Field string
	Code  string
}

func (err *ValidationError) Error() string {
	return err.Field + " " + err.Code
}

func invalidField(field string, code string) error {
	return &ValidationError{Field: field, Code: code}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}

func normalizeNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
