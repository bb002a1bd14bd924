package middleware

import (
	"log/slog"
	"net/http"

	"platerra/pkg/secrets"
)

// RequireAdminKey guards operational endpoints with a pre-shared admin key.
// The expected bcrypt hash comes from configuration; an empty hash disables
// the surface entirely (404 keeps the route invisible).
func RequireAdminKey(keyHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if keyHash == "" {
				http.NotFound(w, r)
				return
			}

			key := r.Header.Get("X-Admin-Key")
			if key == "" {
				writeUnauthorized(w, "Missing admin key")
				return
			}

			if err := secrets.Verify(key, keyHash); err != nil {
				logger.WarnContext(r.Context(), "admin key rejected",
					"request_id", GetRequestID(r.Context()),
					"remote_addr", r.RemoteAddr,
				)
				writeUnauthorized(w, "Invalid admin key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
