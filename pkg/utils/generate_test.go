package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP(t *testing.T) {
	seen := make(map[byte]bool)
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP(6)
		require.NoError(t, err)
		require.Len(t, code, 6)
		for j := 0; j < len(code); j++ {
			c := code[j]
			require.True(t, c >= '0' && c <= '9', "non-digit in %q", code)
			seen[c] = true
		}
	}
	// 1200 uniform draws leave no digit unseen in practice
	assert.Len(t, seen, 10)
}

func TestGenerateOTP_DefaultLength(t *testing.T) {
	code, err := GenerateOTP(0)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	code, err = GenerateOTP(8)
	require.NoError(t, err)
	assert.Len(t, code, 8)
}
