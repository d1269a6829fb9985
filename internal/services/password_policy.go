package services

import (
	"errors"
	"unicode"
)

var ErrWeakPassword = errors.New("weak password")

const (
	MinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

// Every account password needs one character of each class.
var passwordCharacterClasses = []func(rune) bool{
	unicode.IsUpper,
	unicode.IsLower,
	unicode.IsDigit,
}

func ValidatePasswordStrength(password string) error {
	if len([]rune(password)) < MinPasswordLength || len(password) > maxPasswordBytes {
		return ErrWeakPassword
	}

	for _, inClass := range passwordCharacterClasses {
		if !containsRune(password, inClass) {
			return ErrWeakPassword
		}
	}
	return nil
}

func containsRune(value string, match func(rune) bool) bool {
	for _, char := range value {
		if match(char) {
			return true
		}
	}
	return false
}
