package delivery

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// otpDigits is the length of a delivery confirmation code.
const otpDigits = 6

var otpMax = big.NewInt(1_000_000)

// generateOTP returns a zero-padded six digit confirmation code drawn from
// crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%0*d", otpDigits, n), nil
}
