package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"yatri-auth/internal/dto/request"
	"yatri-auth/internal/dto/response"
	"yatri-auth/internal/usecase"
	"yatri-auth/pkg/utils"

	"go.uber.org/zap"
)

// clientErrors are the orchestrator errors whose message may be shown to the caller.
var clientErrors = []error{
	usecase.ErrDuplicateAccount,
	usecase.ErrInvalidOrExpiredOTP,
	usecase.ErrAccountNotFound,
	usecase.ErrInvalidCredentials,
	usecase.ErrEmailNotVerified,
	usecase.ErrOTPDeliveryFailed,
	usecase.ErrUnauthenticated,
}

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "register", http.StatusBadRequest)
		return
	}

	utils.ResponseSuccess(w, resp)
}

// VerifyEmail handles POST /api/auth/verify-email
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	h.verifyOTP(w, r, "verify email")
}

// VerifyOTP handles POST /api/auth/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	h.verifyOTP(w, r, "verify OTP")
}

func (h *AuthHandler) verifyOTP(w http.ResponseWriter, r *http.Request, operation string) {
	var req request.VerifyOTPRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, operation, http.StatusBadRequest)
		return
	}

	utils.ResponseSuccess(w, resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.LoginWithPassword(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login", http.StatusUnauthorized)
		return
	}

	utils.ResponseSuccess(w, resp)
}

// SendOTP handles POST /api/auth/send-otp (passwordless login)
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.OTPRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.LoginWithOTP(r.Context(), req.Email)
	if err != nil {
		h.handleServiceError(w, err, "send OTP", http.StatusBadRequest)
		return
	}

	utils.ResponseSuccess(w, resp)
}

// ResendOTP handles POST /api/auth/resend-otp
func (h *AuthHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.OTPRequest
	if !h.decode(w, r, &req) {
		return
	}

	resp, err := h.service.ResendOTP(r.Context(), req.Email)
	if err != nil {
		h.handleServiceError(w, err, "resend OTP", http.StatusInternalServerError)
		return
	}

	utils.ResponseSuccess(w, resp)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	// Token set by middleware.BearerToken
	accessToken, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	profile, err := h.service.GetCurrentUser(r.Context(), accessToken)
	if err != nil {
		h.handleServiceError(w, err, "get current user", http.StatusUnauthorized)
		return
	}

	utils.ResponseSuccess(w, profile)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so the client
// simply discards its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, response.Success("Logged out successfully"))
}

// decode reads and validates a JSON body, writing the error response itself
// when it returns false.
func (h *AuthHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseUnprocessable(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		h.log.Debug("Request validation failed",
			zap.String("path", r.URL.Path),
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return false
	}

	return true
}

// handleServiceError maps orchestrator errors to a response. Known business
// errors use the route's client status; anything else is a 500 with no detail.
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string, clientStatus int) {
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			h.log.Warn(operation+" rejected", zap.Error(err))
			switch clientStatus {
			case http.StatusUnauthorized:
				utils.ResponseUnauthorized(w, known.Error())
			case http.StatusBadRequest:
				utils.ResponseBadRequest(w, known.Error())
			default:
				utils.ResponseError(w, clientStatus, known.Error(), nil)
			}
			return
		}
	}

	h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
	utils.ResponseInternalError(w, "Internal server error")
}
