// Package auth provides optional bearer-token authentication for the HTTP
// surface, validating JWTs against a configured JWKS endpoint.
package auth

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/kyc-middleware/pkg/app/errors"
	apphttp "github.com/chainsafe/kyc-middleware/pkg/app/http"
)

// Middleware returns a chi-compatible middleware enforcing bearer-token
// authentication against the validator's JWKS. A nil or unconfigured
// validator disables the gate and requests pass through untouched.
func Middleware(validator *JWTValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if validator == nil || !validator.IsConfigured() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "missing bearer token"))
				return
			}

			claims, err := validator.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				logger.Debug("Token validation failed", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid bearer token"))
				return
			}

			if sub, err := claims.GetSubject(); err == nil && sub != "" {
				r = r.WithContext(WithSubject(r.Context(), sub))
			}

			next.ServeHTTP(w, r)
		})
	}
}
