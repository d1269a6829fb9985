package services

import (
	"net/mail"
	"strings"
)

// Longest address an SMTP server has to accept.
const maxEmailLength = 254

// NormalizeAuthEmail lowercases and trims an address and returns "" when it
// cannot be used to sign in or to invite a partner.
func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" || len(email) > maxEmailLength {
		return ""
	}
	parsed, err := mail.ParseAddress(email)
	if err != nil || parsed.Address != email {
		return ""
	}
	return email
}

// NormalizeCredentialsInput never says which half of a login was wrong.
func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrInvalidCredentials
	}
	return email, password, nil
}

// normalizeRegistration checks a sign-up form field by field, in the order
// the form shows them.
func normalizeRegistration(input RegisterInput) (email string, name string, err error) {
	email = NormalizeAuthEmail(input.Email)
	if email == "" {
		return "", "", invalidField("email", CodeInvalid)
	}
	name = strings.Join(strings.Fields(input.Name), " ")
	if name == "" {
		return "", "", invalidField("name", CodeRequired)
	}
	if ValidatePasswordStrength(input.Password) != nil {
		return "", "", invalidField("password", CodeWeak)
	}
	return email, name, nil
}
