package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// referenceAlphabet deliberately omits ambiguous characters (0/O, 1/I/L)
// because reference codes are read out over the phone and at pickup desks.
const referenceAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	referenceCodeLength = 6
	otpCodeLength       = 6
)

// NewReferenceCode returns a short human-shareable code claimants quote when
// following up on a claim. Codes are random and collision-tolerant; they
// identify a claim only together with its contact details.
func NewReferenceCode() (string, error) {
	code := make([]byte, referenceCodeLength)
	max := big.NewInt(int64(len(referenceAlphabet)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("error generating reference code: %w", err)
		}
		code[i] = referenceAlphabet[n.Int64()]
	}

	return string(code), nil
}

// NewOTPCode returns a numeric one-time code for out-of-band contact
// verification.
func NewOTPCode() (string, error) {
	max := big.NewInt(10)
	code := make([]byte, otpCodeLength)

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("error generating one-time code: %w", err)
		}
		code[i] = '0' + byte(n.Int64())
	}

	return string(code), nil
}
