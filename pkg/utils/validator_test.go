package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(sample{Email: "a@x.com", OTP: "012345"}))

	errs := ValidateStruct(&sample{Email: "nope", OTP: "12ab"})
	assert.Equal(t, "Invalid email format", errs["email"])
	assert.Equal(t, "Must be exactly 6 characters", errs["otp"])

	errs = ValidateStruct(sample{Email: "a@x.com", OTP: "12345a"})
	assert.Equal(t, "Must contain digits only", errs["otp"])
}

type secret struct {
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

func TestValidateStruct_MaxBytesCountsBytes(t *testing.T) {
	// 40 runes, 80 bytes
	errs := ValidateStruct(secret{Password: strings.Repeat("é", 40)})
	assert.Equal(t, "Maximum size is 72 bytes", errs["password"])

	// 36 runes, 72 bytes
	assert.Nil(t, ValidateStruct(secret{Password: strings.Repeat("é", 36)}))
	assert.Nil(t, ValidateStruct(secret{Password: strings.Repeat("a", 72)}))

	errs = ValidateStruct(secret{Password: strings.Repeat("a", 73)})
	assert.Equal(t, "Maximum size is 72 bytes", errs["password"])
}

func TestFormatValidationErrors_Sorted(t *testing.T) {
	got := FormatValidationErrors(map[string]string{"b": "two", "a": "one"})
	assert.Equal(t, "a: one; b: two", got)
}
