package usecase

import "errors"

// Errors returned by AuthService. The adapter sends these messages to the
// client as-is.
var (
	ErrDuplicateAccount    = errors.New("user with this email already exists")
	ErrInvalidOrExpiredOTP = errors.New("invalid or expired OTP")
	ErrAccountNotFound     = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailNotVerified    = errors.New("please verify your email first")
	ErrOTPDeliveryFailed   = errors.New("failed to send OTP")
	ErrUnauthenticated     = errors.New("invalid or expired token")
	ErrInternal            = errors.New("internal server error")
)

func isInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}
