package entity

// User is a registered account. It starts unverified and becomes verified
// once the owner proves control of Email with a one-time passcode.
type User struct {
	Base
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	Name         string `db:"name"`
	IsVerified   bool   `db:"is_verified"`
}
