// Package service orchestrates vehicle registration: it ties the user's
// profile, the ownership reconciler, and the vehicle store together.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"platerra/internal/audit"
	ownmodels "platerra/internal/ownership/models"
	"platerra/internal/ownership/validate"
	"platerra/internal/platform/metrics"
	profilemodels "platerra/internal/profile/models"
	"platerra/internal/sentinel"
	"platerra/internal/vehicle/models"
	"platerra/internal/vehicle/store"
	id "platerra/pkg/domain"
	dErrors "platerra/pkg/domain-errors"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks VehicleStore,ProfileReader,Reconciler,AuditPublisher

// VehicleStore is the persistence port used by the service.
type VehicleStore interface {
	store.Store
}

// ProfileReader supplies the requester's identity for ownership checks.
type ProfileReader interface {
	Get(ctx context.Context, userID id.UserID) (*profilemodels.Profile, error)
}

// Reconciler decides whether the requester owns the vehicle with the given
// plate. It never returns an error.
type Reconciler interface {
	Reconcile(ctx context.Context, req ownmodels.ReconciliationRequest) ownmodels.ReconciliationResult
}

// AuditPublisher captures domain events for the audit trail.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Service implements vehicle registration and management.
type Service struct {
	store      VehicleStore
	profiles   ProfileReader
	reconciler Reconciler
	auditor    AuditPublisher
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

// Option configures the Service.
type Option func(*Service)

// WithAuditPublisher injects the audit trail publisher. Nil disables auditing.
func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = p
	}
}

// WithMetrics injects the application metrics. Nil disables instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New creates a vehicle service.
func New(st VehicleStore, profiles ProfileReader, reconciler Reconciler, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:      st,
		profiles:   profiles,
		reconciler: reconciler,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate runs a dry-run ownership check for the plate without persisting
// anything. The caller's profile supplies the requester identity.
func (s *Service) Validate(ctx context.Context, userID id.UserID, plate string) (ownmodels.ReconciliationResult, error) {
	profile, err := s.loadCompleteProfile(ctx, userID)
	if err != nil {
		return ownmodels.ReconciliationResult{}, err
	}

	result := s.reconciler.Reconcile(ctx, ownmodels.ReconciliationRequest{
		Plate:                   plate,
		RequesterDocumentType:   profile.DocumentType,
		RequesterDocumentNumber: profile.DocumentNumber,
		RequesterFullName:       profile.FullName,
	})

	s.emit(ctx, audit.Event{
		UserID:  userID.String(),
		Action:  audit.ActionOwnershipChecked,
		Plate:   validate.CanonicalPlate(plate),
		Verdict: string(result.Verdict),
		Reason:  string(result.ReasonCode),
	})
	return result, nil
}

// Register runs the ownership check and, only on a Valid verdict, persists
// the vehicle for the user. Invalid verdicts come back untouched with a nil
// vehicle and a nil error: a failed check is an answer, not a failure.
func (s *Service) Register(ctx context.Context, userID id.UserID, plate string) (*models.Vehicle, ownmodels.ReconciliationResult, error) {
	// A plate the user already holds is rejected before the ownership check,
	// which may involve an external registry call and a verification delay.
	if validate.IsValidPlate(plate) {
		_, err := s.store.FindByPlate(ctx, userID, validate.CanonicalPlate(plate))
		switch {
		case err == nil:
			return nil, ownmodels.ReconciliationResult{}, dErrors.New(dErrors.CodeConflict, "vehicle already registered")
		case !errors.Is(err, sentinel.ErrNotFound):
			return nil, ownmodels.ReconciliationResult{}, dErrors.Wrap(err, dErrors.CodeInternal, "check existing vehicle")
		}
	}

	result, err := s.Validate(ctx, userID, plate)
	if err != nil {
		return nil, ownmodels.ReconciliationResult{}, err
	}
	if !result.Valid() {
		return nil, result, nil
	}

	vehicle := &models.Vehicle{
		ID:        id.NewVehicleID(),
		UserID:    userID,
		Plate:     validate.CanonicalPlate(plate),
		Brand:     result.VehicleData.Brand,
		Model:     result.VehicleData.Model,
		Year:      result.VehicleData.Year,
		Color:     result.VehicleData.Color,
		TypeID:    result.VehicleData.TypeID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, vehicle); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, result, dErrors.New(dErrors.CodeConflict, "vehicle already registered")
		}
		return nil, result, dErrors.Wrap(err, dErrors.CodeInternal, "store vehicle")
	}

	if s.metrics != nil {
		s.metrics.IncrementVehiclesRegistered()
	}
	s.emit(ctx, audit.Event{
		UserID: userID.String(),
		Action: audit.ActionVehicleRegistered,
		Plate:  vehicle.Plate,
	})
	s.logger.InfoContext(ctx, "vehicle registered",
		slog.String("user_id", userID.String()),
		slog.String("vehicle_id", vehicle.ID.String()),
	)
	return vehicle, result, nil
}

// List returns the user's vehicles ordered by registration time.
func (s *Service) List(ctx context.Context, userID id.UserID) ([]*models.Vehicle, error) {
	vehicles, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "list vehicles")
	}
	return vehicles, nil
}

// Get returns one of the user's vehicles by id.
func (s *Service) Get(ctx context.Context, userID id.UserID, vehicleID id.VehicleID) (*models.Vehicle, error) {
	vehicle, err := s.store.FindByID(ctx, userID, vehicleID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "vehicle not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load vehicle")
	}
	return vehicle, nil
}

// Delete removes one of the user's vehicles.
func (s *Service) Delete(ctx context.Context, userID id.UserID, vehicleID id.VehicleID) error {
	if err := s.store.Delete(ctx, userID, vehicleID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "vehicle not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "delete vehicle")
	}
	if s.metrics != nil {
		s.metrics.IncrementVehiclesRemoved()
	}
	s.emit(ctx, audit.Event{
		UserID: userID.String(),
		Action: audit.ActionVehicleRemoved,
	})
	return nil
}

// loadCompleteProfile returns the caller's profile, requiring every field the
// ownership check uses to be present.
func (s *Service) loadCompleteProfile(ctx context.Context, userID id.UserID) (*profilemodels.Profile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return nil, dErrors.New(dErrors.CodeValidation, "complete your profile before checking a vehicle")
		}
		return nil, err
	}
	if !profile.Complete() {
		return nil, dErrors.New(dErrors.CodeValidation, "complete your profile before checking a vehicle")
	}
	return profile, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	if err := s.auditor.Emit(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "audit emit failed",
			slog.String("action", event.Action),
			slog.String("error", err.Error()),
		)
	}
}
