// Package handler exposes the profile endpoints.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"platerra/internal/platform/middleware"
	"platerra/internal/profile/models"
	"platerra/internal/profile/service"
	id "platerra/pkg/domain"
	dErrors "platerra/pkg/domain-errors"
	"platerra/pkg/platform/httputil"
)

// Service defines the profile operations the handler needs.
type Service interface {
	Get(ctx context.Context, userID id.UserID) (*models.Profile, error)
	Update(ctx context.Context, userID id.UserID, input service.UpdateInput) (*models.Profile, error)
}

// Handler handles profile endpoints.
type Handler struct {
	logger  *slog.Logger
	profile Service
}

// New creates a profile Handler.
func New(profile Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, profile: profile}
}

// Register registers the profile routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/profile", h.handleGetProfile)
	r.Put("/profile", h.handleUpdateProfile)
}

type updateProfileRequest struct {
	FullName       string `json:"full_name"`
	DocumentType   string `json:"document_type"`
	DocumentNumber string `json:"document_number"`
	City           string `json:"city"`
}

func (r *updateProfileRequest) Normalize() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.DocumentType = strings.ToUpper(strings.TrimSpace(r.DocumentType))
	r.DocumentNumber = strings.TrimSpace(r.DocumentNumber)
	r.City = strings.ToLower(strings.TrimSpace(r.City))
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID.IsNil() {
		h.logger.ErrorContext(ctx, "userID missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	profile, err := h.profile.Get(ctx, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	userID := middleware.GetUserID(ctx)
	if userID.IsNil() {
		h.logger.ErrorContext(ctx, "userID missing from context despite auth middleware",
			"request_id", requestID,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	req, ok := httputil.DecodeAndPrepare[updateProfileRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	profile, err := h.profile.Update(ctx, userID, service.UpdateInput{
		FullName:       req.FullName,
		DocumentType:   id.DocumentType(req.DocumentType),
		DocumentNumber: req.DocumentNumber,
		City:           req.City,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "profile update rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}
