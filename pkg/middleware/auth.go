package middleware

import (
	"net/http"
	"strings"

	"yatri-auth/pkg/utils"

	"go.uber.org/zap"
)

// BearerToken requires an "Authorization: Bearer <token>" header and stores
// the raw token on the request context. Verifying it is left to the handler.
func BearerToken(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Not authenticated")
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			token = strings.TrimSpace(token)
			if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
				logger.Debug("Malformed authorization header", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid authentication credentials")
				return
			}

			ctx := utils.SetTokenContext(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
