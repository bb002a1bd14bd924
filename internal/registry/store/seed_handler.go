package store

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"platerra/internal/registry/models"
	dErrors "platerra/pkg/domain-errors"
	"platerra/pkg/platform/httputil"
)

// SeedHandler returns an admin endpoint that loads registry fixtures into the
// in-memory registry. Only useful in dev mode, where no real registry exists.
func (m *Memory) SeedHandler(logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var records []models.Record
		if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
			return
		}
		m.Seed(records)
		logger.InfoContext(r.Context(), "registry fixtures loaded",
			"count", len(records),
			"total", m.Len(),
		)
		httputil.WriteJSON(w, http.StatusOK, map[string]int{
			"loaded": len(records),
			"total":  m.Len(),
		})
	})
}
