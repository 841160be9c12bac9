package entity

import (
	"time"
)

// OTP is a single-use code sent to Email. It can be consumed once, and only
// while IsUsed is false and the current time is before ExpiresAt.
type OTP struct {
	BaseSimple
	Email     string    `db:"email"`
	OTPCode   string    `db:"otp_code"`
	ExpiresAt time.Time `db:"expires_at"`
	IsUsed    bool      `db:"is_used"`
}

// Consumable reports whether the code may still be redeemed at now.
func (o *OTP) Consumable(now time.Time) bool {
	return !o.IsUsed && now.Before(o.ExpiresAt)
}
