package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_GenerateOTP(t *testing.T) {
	gen := NewCodeGenerator()
	sixDigits := regexp.MustCompile(`^\d{6}$`)

	for range 100 {
		otp, err := gen.GenerateOTP()
		require.NoError(t, err)
		assert.Regexp(t, sixDigits, otp)
	}
}

func TestCodeGenerator_GenerateSecurityCode(t *testing.T) {
	gen := NewCodeGenerator()

	for range 100 {
		code, err := gen.GenerateSecurityCode()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, code, 10000)
		assert.LessOrEqual(t, code, 99999)
	}
}
