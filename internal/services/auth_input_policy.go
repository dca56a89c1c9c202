package services

import (
	"errors"
	"net/mail"
	"strings"
)

const MinPasswordLength = 6

var (
	ErrAuthEmailInvalid    = errors.New("invalid email address")
	ErrAuthPasswordTooWeak = errors.New("password must be at least 6 characters")
)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return "", "", ErrAuthEmailInvalid
	}
	password := strings.TrimSpace(passwordRaw)
	if len(password) < MinPasswordLength {
		return "", "", ErrAuthPasswordTooWeak
	}
	return email, password, nil
}
