package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"sapphire/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	otpDigits       = 6
	securityCodeMin = 10000
	securityCodeMax = 99999
)

type randomCodeGenerator struct{}

// NewCodeGenerator returns a CodeGenerator backed by crypto/rand.
func NewCodeGenerator() service.CodeGenerator {
	return &randomCodeGenerator{}
}

// GenerateOTP returns a zero padded six digit code.
func (g *randomCodeGenerator) GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp")
	}

	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

// GenerateSecurityCode returns a code in [10000, 99999].
func (g *randomCodeGenerator) GenerateSecurityCode() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(securityCodeMax-securityCodeMin+1))
	if err != nil {
		return 0, errors.Wrap(err, "failed to generate security code")
	}

	return securityCodeMin + int(n.Int64()), nil
}
