// Package service implements profile reads and updates.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"platerra/internal/audit"
	"platerra/internal/ownership/validate"
	"platerra/internal/platform/metrics"
	"platerra/internal/profile/models"
	"platerra/internal/profile/store"
	"platerra/internal/sentinel"
	id "platerra/pkg/domain"
	dErrors "platerra/pkg/domain-errors"
)

// UpdateInput carries the profile fields a user may change.
type UpdateInput struct {
	FullName       string
	DocumentType   id.DocumentType
	DocumentNumber string
	City           string
}

// AuditPublisher records profile changes for the audit trail.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service manages user profiles.
type Service struct {
	store   store.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	auditor AuditPublisher
}

// Option configures the Service.
type Option func(*Service)

// WithMetrics injects the application metrics. Nil disables instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAuditPublisher injects the audit publisher. Nil disables auditing.
func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = p
	}
}

// New creates a profile service.
func New(st store.Store, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{store: st, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the user's profile.
func (s *Service) Get(ctx context.Context, userID id.UserID) (*models.Profile, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "user ID is required")
	}
	profile, err := s.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "profile not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load profile")
	}
	return profile, nil
}

// Update validates and stores the user's profile fields. The document number
// is kept exactly as entered; only its shape is checked here.
func (s *Service) Update(ctx context.Context, userID id.UserID, input UpdateInput) (*models.Profile, error) {
	if userID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "user ID is required")
	}
	if strings.TrimSpace(input.FullName) == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "full name is required")
	}
	if !input.DocumentType.Known() {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown document type")
	}
	if !validate.IsValidDocumentNumber(input.DocumentNumber) {
		return nil, dErrors.New(dErrors.CodeValidation, "document number must be 6 to 12 digits")
	}

	now := time.Now().UTC()
	profile := &models.Profile{
		UserID:         userID,
		FullName:       input.FullName,
		DocumentType:   input.DocumentType,
		DocumentNumber: input.DocumentNumber,
		City:           input.City,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if existing, err := s.store.Get(ctx, userID); err == nil {
		profile.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load profile")
	}

	if err := s.store.Upsert(ctx, profile); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "store profile")
	}

	if s.metrics != nil {
		s.metrics.IncrementProfileUpdates()
	}
	if s.auditor != nil {
		if err := s.auditor.Emit(ctx, audit.Event{
			UserID: userID.String(),
			Action: audit.ActionProfileUpdated,
		}); err != nil {
			s.logger.WarnContext(ctx, "audit emit failed",
				slog.String("action", audit.ActionProfileUpdated),
				slog.String("error", err.Error()),
			)
		}
	}
	s.logger.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()),
		slog.String("document_type", string(profile.DocumentType)),
	)
	return profile, nil
}
