package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailValidator(t *testing.T) {
	v := NewEmailValidator()

	t.Run("Valid Addresses", func(t *testing.T) {
		for _, email := range []string{
			"jane@example.com",
			"jane.doe+tag@sub.example.co.uk",
			"  padded@example.com  ",
		} {
			sanitized, err := v.Validate(email)
			require.NoError(t, err, "email %q", email)
			assert.NotContains(t, sanitized, " ")
		}
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := v.Validate("   ")
		assert.ErrorIs(t, err, ErrEmptyEmail)
	})

	t.Run("Implausible Shapes", func(t *testing.T) {
		for _, email := range []string{
			"no-at-sign",
			"@missing-local.com",
			"missing-domain@",
			"spaces in@example.com",
		} {
			_, err := v.Validate(email)
			assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
		}
	})
}
