package validator

import (
	"errors"
	"strings"
)

var (
	// ErrEmptyEmail indicates the email address is empty
	ErrEmptyEmail = errors.New("email address cannot be empty")

	// ErrInvalidEmail indicates the email address is not plausible
	ErrInvalidEmail = errors.New("email address must contain a local part and a domain")
)

// EmailValidator performs plausibility checks on email addresses.
// Deliverability is the email provider's problem; this only rejects
// input that cannot possibly be an address.
type EmailValidator struct{}

// NewEmailValidator creates a new email validator instance
func NewEmailValidator() *EmailValidator {
	return &EmailValidator{}
}

// Validate checks an email address and returns the sanitized form
func (v *EmailValidator) Validate(email string) (string, error) {
	sanitized := strings.TrimSpace(email)
	if sanitized == "" {
		return "", ErrEmptyEmail
	}

	at := strings.Index(sanitized, "@")
	if at <= 0 || at == len(sanitized)-1 {
		return "", ErrInvalidEmail
	}
	if strings.ContainsAny(sanitized, " \t\n") {
		return "", ErrInvalidEmail
	}

	return sanitized, nil
}
