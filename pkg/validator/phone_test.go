package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhoneValidator(t *testing.T) {
	v := NewPhoneValidator()

	t.Run("Valid Numbers", func(t *testing.T) {
		tests := map[string]string{
			"+971501234567":    "+971501234567",
			"+1 (555) 123-456": "+1555123456",
			"0712345678":       "0712345678",
			"94.71.234.5678":   "94712345678",
		}
		for input, want := range tests {
			sanitized, err := v.Validate(input)
			require.NoError(t, err, "phone %q", input)
			assert.Equal(t, want, sanitized)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := v.Validate("  ")
		assert.ErrorIs(t, err, ErrEmptyPhone)
	})

	t.Run("Invalid Characters", func(t *testing.T) {
		_, err := v.Validate("call-me-maybe")
		assert.ErrorIs(t, err, ErrInvalidPhoneFormat)
	})

	t.Run("Length Bounds", func(t *testing.T) {
		_, err := v.Validate("+123456")
		assert.ErrorIs(t, err, ErrInvalidPhoneLength)

		_, err = v.Validate("+1234567890123456")
		assert.ErrorIs(t, err, ErrInvalidPhoneLength)
	})
}
