package restriction

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"platerra/internal/ownership/validate"
	"platerra/internal/platform/metrics"
	dErrors "platerra/pkg/domain-errors"
	"platerra/pkg/platform/httputil"
)

// Handler exposes the Pico y Placa check endpoint.
type Handler struct {
	checker *Checker
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewHandler creates a restriction Handler. metrics may be nil.
func NewHandler(checker *Checker, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{checker: checker, logger: logger, metrics: m}
}

// Register registers the restriction routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/restrictions", h.handleCheck)
	r.Get("/restrictions/cities", h.handleCities)
}

func (h *Handler) handleCities(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"cities": h.checker.Cities(),
	})
}

func (h *Handler) handleCheck(w http.ResponseWriter, r *http.Request) {
	plate := r.URL.Query().Get("plate")
	if !validate.IsValidPlate(plate) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "invalid plate"))
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		city = "bogota"
	}

	at := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "date must be RFC 3339"))
			return
		}
		at = parsed
	}

	status := h.checker.Check(plate, city, at)
	if h.metrics != nil {
		h.metrics.IncrementRestrictionChecks(status.City)
	}
	httputil.WriteJSON(w, http.StatusOK, status)
}
