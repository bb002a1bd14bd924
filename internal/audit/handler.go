package audit

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"platerra/internal/platform/middleware"
	dErrors "platerra/pkg/domain-errors"
	"platerra/pkg/platform/httputil"
)

// Handler exposes the authenticated audit history endpoint. Sinks that do not
// support reads (the Kafka store) answer with not-found.
type Handler struct {
	publisher *Publisher
	logger    *slog.Logger
}

// NewHandler creates an audit Handler.
func NewHandler(p *Publisher, logger *slog.Logger) *Handler {
	return &Handler{publisher: p, logger: logger}
}

// Register registers the audit routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/audit", h.handleList)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID.IsNil() {
		h.logger.ErrorContext(ctx, "userID missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	events, err := h.publisher.List(ctx, userID.String())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"events": events})
}
