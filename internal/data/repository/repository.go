package repository

import (
	"errors"

	"yatri-auth/pkg/database"

	"go.uber.org/zap"
)

// ErrDuplicateEmail is returned by UserRepository.Create when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

type Repository struct {
	User UserRepository
	OTP  OTPRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User: NewUserRepository(db, log),
		OTP:  NewOTPRepository(db, log),
	}
}
