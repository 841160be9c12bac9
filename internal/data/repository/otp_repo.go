package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yatri-auth/internal/data/entity"
	"yatri-auth/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	Create(ctx context.Context, otp *entity.OTP) error
	Consume(ctx context.Context, email, otpCode string, now time.Time) (*entity.OTP, error)
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Create(ctx context.Context, otp *entity.OTP) error {
	query := `
		INSERT INTO otps (id, email, otp_code, expires_at, is_used, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		otp.ID,
		otp.Email,
		otp.OTPCode,
		otp.ExpiresAt,
		otp.IsUsed,
		otp.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create OTP",
			zap.Error(err),
			zap.String("email", otp.Email),
		)
		return fmt.Errorf("create OTP for %s: %w", otp.Email, err)
	}

	return nil
}

// Consume marks the newest matching, unused, unexpired code as used and
// returns it. The lookup and the write are one statement, so two concurrent
// callers can never both redeem the same record. It returns nil, nil when
// nothing matched.
func (r *otpRepository) Consume(ctx context.Context, email, otpCode string, now time.Time) (*entity.OTP, error) {
	query := `
		UPDATE otps
		SET is_used = true
		WHERE id = (
			SELECT id FROM otps
			WHERE email = $1
			  AND otp_code = $2
			  AND is_used = false
			  AND expires_at > $3
			ORDER BY created_at DESC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		)
		  AND is_used = false
		RETURNING id, email, otp_code, expires_at, is_used, created_at
	`

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, email, otpCode, now).Scan(
		&otp.ID,
		&otp.Email,
		&otp.OTPCode,
		&otp.ExpiresAt,
		&otp.IsUsed,
		&otp.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to consume OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("consume OTP for %s: %w", email, err)
	}

	return &otp, nil
}
