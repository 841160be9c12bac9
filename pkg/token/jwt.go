// Package token issues and verifies the HS256 bearer tokens handed out after
// a successful login or email verification. Tokens are self-contained; there
// is no server-side session or revocation list.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrMissingSecret is returned by NewIssuer when no signing secret is configured.
	ErrMissingSecret = errors.New("token: signing secret is required")
	// ErrInvalidToken covers every verification failure: bad signature,
	// malformed input, unexpected algorithm and expiry.
	ErrInvalidToken = errors.New("token: invalid or expired")
)

// Claims is the identity carried by an access token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Issuer signs and verifies access tokens with a single process-wide secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer returns an Issuer. now may be nil, in which case time.Now is used.
func NewIssuer(secret string, ttl time.Duration, now func() time.Time) (*Issuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token: ttl must be positive, got %s", ttl)
	}
	if now == nil {
		now = time.Now
	}

	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}, nil
}

// Issue mints a token for the account and returns it with its expiry.
func (i *Issuer) Issue(userID uuid.UUID, email string) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID.String(),
		Email:  email,
	})

	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks signature and expiry. Every failure is reported as ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// AccountID returns the account id carried by the claims.
func (c *Claims) AccountID() uuid.UUID {
	id, _ := uuid.Parse(c.UserID)
	return id
}
