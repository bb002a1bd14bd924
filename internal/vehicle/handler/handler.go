// Package handler exposes the vehicle endpoints: ownership validation,
// registration, listing and removal.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	ownmodels "platerra/internal/ownership/models"
	"platerra/internal/platform/middleware"
	"platerra/internal/vehicle/models"
	id "platerra/pkg/domain"
	dErrors "platerra/pkg/domain-errors"
	"platerra/pkg/platform/httputil"
)

// Service defines the vehicle operations the handler needs.
type Service interface {
	Validate(ctx context.Context, userID id.UserID, plate string) (ownmodels.ReconciliationResult, error)
	Register(ctx context.Context, userID id.UserID, plate string) (*models.Vehicle, ownmodels.ReconciliationResult, error)
	List(ctx context.Context, userID id.UserID) ([]*models.Vehicle, error)
	Get(ctx context.Context, userID id.UserID, vehicleID id.VehicleID) (*models.Vehicle, error)
	Delete(ctx context.Context, userID id.UserID, vehicleID id.VehicleID) error
}

// Handler handles vehicle endpoints.
type Handler struct {
	logger   *slog.Logger
	vehicles Service
}

// New creates a vehicle Handler.
func New(vehicles Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, vehicles: vehicles}
}

// Register registers the vehicle routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/vehicles/validate", h.handleValidate)
	r.Post("/vehicles", h.handleRegister)
	r.Get("/vehicles", h.handleList)
	r.Get("/vehicles/{vehicleID}", h.handleGet)
	r.Delete("/vehicles/{vehicleID}", h.handleDelete)
}

type plateRequest struct {
	Plate string `json:"plate"`
}

func (r *plateRequest) Normalize() {
	r.Plate = strings.TrimSpace(r.Plate)
}

type registerResponse struct {
	ownmodels.ReconciliationResult
	Vehicle *models.Vehicle `json:"vehicle,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	req, ok := h.decodePlate(w, r)
	if !ok {
		return
	}

	result, err := h.vehicles.Validate(ctx, userID, req.Plate)
	if err != nil {
		h.logger.WarnContext(ctx, "vehicle validation failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	// The verdict is the answer, not a transport error, so it is always 200.
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	req, ok := h.decodePlate(w, r)
	if !ok {
		return
	}

	vehicle, result, err := h.vehicles.Register(ctx, userID, req.Plate)
	if err != nil {
		h.logger.WarnContext(ctx, "vehicle registration failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if !result.Valid() {
		httputil.WriteJSON(w, http.StatusOK, registerResponse{ReconciliationResult: result})
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, registerResponse{
		ReconciliationResult: result,
		Vehicle:              vehicle,
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	vehicles, err := h.vehicles.List(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"vehicles": vehicles})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	vehicleID, err := id.ParseVehicleID(chi.URLParam(r, "vehicleID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	vehicle, err := h.vehicles.Get(ctx, userID, vehicleID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, vehicle)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.authenticatedUser(w, r)
	if !ok {
		return
	}

	vehicleID, err := id.ParseVehicleID(chi.URLParam(r, "vehicleID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.vehicles.Delete(ctx, userID, vehicleID); err != nil {
		httputil.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) authenticatedUser(w http.ResponseWriter, r *http.Request) (id.UserID, bool) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID.IsNil() {
		h.logger.ErrorContext(ctx, "userID missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return id.UserID{}, false
	}
	return userID, true
}

func (h *Handler) decodePlate(w http.ResponseWriter, r *http.Request) (*plateRequest, bool) {
	ctx := r.Context()
	return httputil.DecodeAndPrepare[plateRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
}
