package http

import (
	"net/http"

	"github.com/MKhiriev/go-key-keeper/internal/logger"
	"github.com/MKhiriev/go-key-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the account described by
// the token claims in the request context with [utils.WithCaller].
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent ([ErrEmptyAuthorizationHeader]), is not a bearer header
// ([ErrInvalidAuthorizationHeader]) or the token is expired or invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		caller := token.Caller()
		callerLogger := logger.FromContext(ctx).With().Str("caller", caller.Username).Logger()
		ctx = callerLogger.WithContext(utils.WithCaller(ctx, caller))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly must run after auth. The role comes from the token, so an account
// demoted after login keeps its role until the token expires.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := utils.GetCallerFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrNoCaller)
			return
		}
		if !caller.IsAdmin() {
			writeError(w, r, ErrAdminRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
