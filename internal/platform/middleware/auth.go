package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	id "platerra/pkg/domain"
)

// TokenValidator defines the interface for validating bearer tokens.
// Token issuance lives in the external identity provider; this service only
// verifies and decodes what it receives.
type TokenValidator interface {
	ValidateToken(tokenString string) (*TokenClaims, error)
}

// TokenClaims represents the claims we expect from the token validator.
type TokenClaims struct {
	UserID string
}

type contextKeyUserID struct{}

// GetUserID retrieves the authenticated user ID from the context.
// Returns the nil UserID when the request was not authenticated.
func GetUserID(ctx context.Context) id.UserID {
	userID, ok := ctx.Value(contextKeyUserID{}).(id.UserID)
	if !ok {
		return id.UserID{}
	}
	return userID
}

// WithUserID injects a user ID into the context. Exported for handler tests.
func WithUserID(ctx context.Context, userID id.UserID) context.Context {
	return context.WithValue(ctx, contextKeyUserID{}, userID)
}

// RequireAuth enforces a valid bearer token and injects the caller's UserID
// into the request context.
func RequireAuth(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := GetRequestID(ctx)

			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				writeUnauthorized(w, "Missing bearer token")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestID,
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			userID, err := id.ParseUserID(claims.UserID)
			if err != nil || userID.IsNil() {
				logger.WarnContext(ctx, "unauthorized access - malformed subject",
					"request_id", requestID,
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(ctx, userID)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
