package validator

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrEmptyPhone indicates the phone number is empty
	ErrEmptyPhone = errors.New("phone number cannot be empty")

	// ErrInvalidPhoneLength indicates the phone number length is implausible
	ErrInvalidPhoneLength = errors.New("phone number must have between 7 and 15 digits")

	// ErrInvalidPhoneFormat indicates the phone number contains invalid characters
	ErrInvalidPhoneFormat = errors.New("phone number can only contain digits and an optional leading +")
)

// phoneRegex matches an optional leading + followed by digits
var phoneRegex = regexp.MustCompile(`^\+?\d+$`)

// PhoneValidator performs loose international phone number checks.
// Customers book from anywhere, so only shape is validated.
type PhoneValidator struct{}

// NewPhoneValidator creates a new phone validator instance
func NewPhoneValidator() *PhoneValidator {
	return &PhoneValidator{}
}

// Validate checks a phone number and returns the sanitized form
// (separators removed, leading + preserved).
func (v *PhoneValidator) Validate(phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", ErrEmptyPhone
	}

	sanitized := v.Sanitize(phone)
	if !phoneRegex.MatchString(sanitized) {
		return "", ErrInvalidPhoneFormat
	}

	digits := strings.TrimPrefix(sanitized, "+")
	if len(digits) < 7 || len(digits) > 15 {
		return "", ErrInvalidPhoneLength
	}

	return sanitized, nil
}

// Sanitize removes common separators from a phone number
func (v *PhoneValidator) Sanitize(phone string) string {
	phone = strings.TrimSpace(phone)
	for _, sep := range []string{" ", "-", "(", ")", "."} {
		phone = strings.ReplaceAll(phone, sep, "")
	}
	return phone
}
