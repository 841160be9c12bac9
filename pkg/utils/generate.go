package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// OTPLength is the width of every issued code. The otps table and the
// verify request both assume it.
const OTPLength = 6

var ten = big.NewInt(10)

// GenerateOTP returns a fixed-width numeric code. Every digit is drawn
// independently from crypto/rand, so leading zeros are expected.
func GenerateOTP(length int) (string, error) {
	if length <= 0 {
		length = OTPLength
	}

	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", fmt.Errorf("generate otp digit: %w", err)
		}
		sb.WriteByte(byte('0' + n.Int64()))
	}

	return sb.String(), nil
}
