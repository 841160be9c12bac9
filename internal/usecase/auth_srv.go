package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"yatri-auth/internal/data/entity"
	"yatri-auth/internal/data/repository"
	"yatri-auth/internal/dto/request"
	"yatri-auth/internal/dto/response"
	"yatri-auth/pkg/mailer"
	"yatri-auth/pkg/token"
	"yatri-auth/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	registerMessage = "Registration successful! Please check your email for verification code."
	otpSentMessage  = "OTP sent to your email"
	otpResentMsg    = "OTP sent successfully"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.AuthResponse, error)
	LoginWithPassword(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	LoginWithOTP(ctx context.Context, email string) (*response.MessageResponse, error)
	GetCurrentUser(ctx context.Context, accessToken string) (*response.UserResponse, error)
	ResendOTP(ctx context.Context, email string) (*response.MessageResponse, error)
}

type authService struct {
	repo   *repository.Repository // grouping userRepo & otpRepo
	sender mailer.Sender
	issuer *token.Issuer
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

// AuthOption customizes an AuthService.
type AuthOption func(*authService)

// WithClock replaces time.Now, mainly for expiry tests.
func WithClock(now func() time.Time) AuthOption {
	return func(s *authService) {
		s.now = now
	}
}

func NewAuthService(
	repo *repository.Repository,
	sender mailer.Sender,
	issuer *token.Issuer,
	config *utils.Config,
	log *zap.Logger,
	opts ...AuthOption,
) AuthService {
	s := &authService{
		repo:   repo,
		sender: sender,
		issuer: issuer,
		config: config,
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (resp *response.RegisterResponse, err error) {
	defer func() { recordFlow("register", err) }()

	// 1. Email must be free
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", ErrInternal)
	}
	if existingUser != nil {
		return nil, ErrDuplicateAccount
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", ErrInternal)
	}

	// 3. Save unverified user
	now := s.now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		IsVerified:   false,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration for the same email
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateAccount
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", ErrInternal)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	// 4. Send verification code. The account exists now, so the outcome is
	// only logged and never fails the registration.
	delivered, err := s.sendOTP(ctx, user.Email)
	switch {
	case err != nil:
		s.log.Error("Verification OTP not issued after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	case !delivered:
		s.log.Warn("Verification OTP delivery failed after register",
			zap.String("user_id", user.ID.String()))
	}

	return &response.RegisterResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		Name:       user.Name,
		IsVerified: user.IsVerified,
		Message:    registerMessage,
	}, nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (resp *response.AuthResponse, err error) {
	defer func() { recordFlow("verify_otp", err) }()

	// 1. Redeem the code. Wrong, used and expired all look the same.
	otp, err := s.repo.OTP.Consume(ctx, req.Email, req.OTP, s.now())
	if err != nil {
		s.log.Error("Failed to consume OTP", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("consume otp: %w", ErrInternal)
	}
	if otp == nil {
		s.log.Warn("OTP rejected", zap.String("email", req.Email))
		return nil, ErrInvalidOrExpiredOTP
	}

	// 2. Mark the account verified
	user, err := s.repo.User.MarkVerified(ctx, req.Email, s.now())
	if err != nil {
		s.log.Error("Failed to update user verification", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("mark verified: %w", ErrInternal)
	}
	if user == nil {
		s.log.Error("User not found for verification",
			zap.String("email", req.Email),
			zap.String("otp_id", otp.ID.String()))
		return nil, ErrAccountNotFound
	}

	// 3. Issue token
	accessToken, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("Email verified",
		zap.String("email", req.Email),
		zap.String("user_id", user.ID.String()))

	return response.AuthToResponse(user, accessToken), nil
}

func (s *authService) LoginWithPassword(ctx context.Context, req *request.LoginRequest) (resp *response.AuthResponse, err error) {
	defer func() { recordFlow("login_password", err) }()

	// 1. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", ErrInternal)
	}

	// 2. Unknown email and wrong password are indistinguishable to the caller
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// 3. Must be verified
	if !user.IsVerified {
		s.log.Warn("Unverified user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrEmailNotVerified
	}

	// 4. Issue token
	accessToken, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return response.AuthToResponse(user, accessToken), nil
}

func (s *authService) LoginWithOTP(ctx context.Context, email string) (resp *response.MessageResponse, err error) {
	defer func() { recordFlow("login_otp", err) }()

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for OTP", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", ErrInternal)
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}
	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}

	delivered, err := s.sendOTP(ctx, email)
	if err != nil {
		return nil, err
	}
	if !delivered {
		return nil, ErrOTPDeliveryFailed
	}

	return response.Success(otpSentMessage), nil
}

func (s *authService) GetCurrentUser(ctx context.Context, accessToken string) (resp *response.UserResponse, err error) {
	defer func() { recordFlow("current_user", err) }()

	claims, err := s.issuer.Verify(accessToken)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.repo.User.FindByID(ctx, claims.AccountID())
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", claims.UserID))
		return nil, fmt.Errorf("find user: %w", ErrInternal)
	}
	if user == nil {
		s.log.Warn("Token references missing user", zap.String("user_id", claims.UserID))
		return nil, ErrAccountNotFound
	}

	profile := response.UserToResponse(user)
	return &profile, nil
}

// ResendOTP issues a fresh code without checking that the email belongs to
// an account, matching the behaviour clients already depend on.
func (s *authService) ResendOTP(ctx context.Context, email string) (resp *response.MessageResponse, err error) {
	defer func() { recordFlow("resend_otp", err) }()

	user, err := s.repo.User.FindByEmail(ctx, email)
	switch {
	case err != nil:
		s.log.Error("Failed to look up user for OTP resend, resending anyway",
			zap.Error(err), zap.String("email", email))
	case user == nil:
		s.log.Warn("Resending OTP to email without account", zap.String("email", email))
	}

	delivered, err := s.sendOTP(ctx, email)
	if err != nil {
		return nil, err
	}
	if !delivered {
		return nil, ErrOTPDeliveryFailed
	}

	return response.Success(otpResentMsg), nil
}

// ==================== HELPER METHODS ====================

// sendOTP stores a new code for email and tries to deliver it. Earlier codes
// stay valid until their own expiry. err is set only when the code could not
// be generated or stored; delivery problems are reported through delivered.
func (s *authService) sendOTP(ctx context.Context, email string) (delivered bool, err error) {
	// 1. Generate OTP
	otpCode, err := utils.GenerateOTP(utils.OTPLength)
	if err != nil {
		s.log.Error("Failed to generate OTP", zap.Error(err))
		return false, fmt.Errorf("generate otp: %w", ErrInternal)
	}

	now := s.now()
	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Email:     email,
		OTPCode:   otpCode,
		ExpiresAt: now.Add(s.config.OTP.TTL()),
		IsUsed:    false,
	}

	// 2. Save OTP
	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("email", email))
		return false, fmt.Errorf("store otp: %w", ErrInternal)
	}

	// 3. Deliver
	msg, err := mailer.OTPMessage(email, otpCode, s.config.OTP.TTL())
	if err != nil {
		s.log.Error("Failed to render OTP email", zap.Error(err))
		recordDelivery(false)
		return false, nil
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		s.log.Warn("Failed to deliver OTP", zap.Error(err), zap.String("email", email))
		recordDelivery(false)
		return false, nil
	}

	recordDelivery(true)
	s.log.Info("OTP sent",
		zap.String("email", email),
		zap.String("otp_id", otp.ID.String()),
		zap.Time("expires_at", otp.ExpiresAt),
	)

	return true, nil
}

func (s *authService) issueToken(user *entity.User) (string, error) {
	accessToken, _, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", fmt.Errorf("issue token: %w", ErrInternal)
	}
	return accessToken, nil
}
