package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/logger"
	"bicirent-backend/internal/security"
)

type contextKey string

const claimsKey contextKey = "claims"

// claimsFrom pulls the authenticated user's claims out of the request
// context. The auth middleware guarantees they are present on protected
// routes.
func claimsFrom(r *http.Request) *security.UserClaims {
	claims, _ := r.Context().Value(claimsKey).(*security.UserClaims)
	return claims
}

func isAdmin(r *http.Request) bool {
	claims := claimsFrom(r)
	return claims != nil && claims.Role == string(domain.UserRoleAdmin)
}

// AuthMiddleware validates the bearer token and stashes its claims in the
// request context.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Error: "missing bearer token"})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondError(w, err)
				return
			}
			if claims.Type != security.TokenTypeAccess {
				writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Error: security.ErrWrongTokenType.Error()})
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin guards admin-only endpoints. It runs after AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAdmin(r) {
			writeJSON(w, http.StatusForbidden, apiResponse{Success: false, Error: "admin access required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// LoggingMiddleware logs every request with its duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
