package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mssola/useragent"
)

type deviceKey struct{}

// Device classifies the calling client from its User-Agent and stores a short
// label ("android", "ios", browser name, or "unknown") in the context. The
// consumers of this API are mobile apps, so the label shows up in request logs
// and audit events to separate app traffic from everything else.
func Device(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		label := classifyUserAgent(r.Header.Get("User-Agent"))
		next.ServeHTTP(w, r.WithContext(WithDevice(r.Context(), label)))
	})
}

// WithDevice injects a device label into the context. Exported for tests.
func WithDevice(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, deviceKey{}, label)
}

// GetDevice retrieves the device label from the context.
func GetDevice(ctx context.Context) string {
	if label, ok := ctx.Value(deviceKey{}).(string); ok {
		return label
	}
	return ""
}

func classifyUserAgent(raw string) string {
	if raw == "" {
		return "unknown"
	}
	ua := useragent.New(raw)
	if ua.Mobile() {
		if strings.HasPrefix(ua.OS(), "Android") {
			return "android"
		}
		if ua.Platform() == "iPhone" || ua.Platform() == "iPad" {
			return "ios"
		}
		return "mobile"
	}
	if ua.Bot() {
		return "bot"
	}
	if name, _ := ua.Browser(); name != "" {
		return name
	}
	return "unknown"
}
