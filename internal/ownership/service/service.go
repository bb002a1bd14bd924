// Package service implements the ownership reconciliation flow: it decides
// whether the person asking to register a vehicle is the owner the national
// registry has on file for that plate.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"platerra/internal/ownership/metrics"
	"platerra/internal/ownership/models"
	"platerra/internal/ownership/names"
	"platerra/internal/ownership/tracer"
	"platerra/internal/ownership/validate"
	"platerra/internal/registry"
	regmodels "platerra/internal/registry/models"
	id "platerra/pkg/domain"
)

// Service reconciles a requester's claimed ownership against the vehicle
// registry. It never returns an error: every failure mode is mapped to an
// invalid verdict with a reason code.
type Service struct {
	lookup  registry.Lookup
	logger  *slog.Logger
	tracer  tracer.Tracer
	metrics *metrics.Metrics

	// verificationDelay is an artificial pause applied before the registry
	// lookup so the mobile client can show its verification animation.
	verificationDelay time.Duration
}

// Option configures the Service.
type Option func(*Service)

// WithVerificationDelay sets the artificial delay applied to each
// reconciliation before the registry lookup. Zero disables it.
func WithVerificationDelay(d time.Duration) Option {
	return func(s *Service) {
		s.verificationDelay = d
	}
}

// WithTracer injects a tracer. Defaults to a noop tracer.
func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

// WithMetrics injects the ownership collectors. Nil disables metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New creates an ownership reconciliation service.
func New(lookup registry.Lookup, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		lookup: lookup,
		logger: logger,
		tracer: tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reconcile checks the requester's claim of ownership over the vehicle with
// the given plate.
//
// The flow is strictly ordered: plate format, document format, registry
// lookup, document type policy, document number equality, name comparison.
// Format failures short-circuit before any registry call. Any panic raised
// below this call is recovered and reported as a system error; callers can
// rely on always receiving a result.
func (s *Service) Reconcile(ctx context.Context, req models.ReconciliationRequest) (result models.ReconciliationResult) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanReconcile,
		tracer.String("plate_hash", tracer.HashPlate(validate.CanonicalPlate(req.Plate))),
	)

	defer func() {
		if r := recover(); r != nil {
			s.logger.ErrorContext(ctx, "panic recovered during reconciliation",
				slog.Any("panic", r),
			)
			s.metrics.RecordPanic()
			result = models.Invalid(models.ReasonSystemError)
		}
		s.metrics.RecordVerdict(string(result.Verdict), string(result.ReasonCode))
		s.metrics.ObserveReconcile(time.Since(start).Seconds())
		span.AddEvent(tracer.EventVerdict,
			tracer.String("verdict", string(result.Verdict)),
			tracer.String("reason", string(result.ReasonCode)),
		)
		span.End(nil)
	}()

	if !validate.IsValidPlate(req.Plate) {
		s.logger.InfoContext(ctx, "reconciliation rejected: malformed plate")
		return models.Invalid(models.ReasonInvalidPlateFormat)
	}
	if !validate.IsValidDocumentNumber(req.RequesterDocumentNumber) {
		s.logger.InfoContext(ctx, "reconciliation rejected: malformed document number")
		return models.Invalid(models.ReasonInvalidDocumentFormat)
	}

	if err := s.applyDelay(ctx); err != nil {
		s.logger.WarnContext(ctx, "reconciliation cancelled during verification delay",
			slog.String("error", err.Error()),
		)
		return models.Invalid(models.ReasonSystemError)
	}

	plate := validate.CanonicalPlate(req.Plate)
	record, err := s.findRecord(ctx, plate)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			s.logger.InfoContext(ctx, "vehicle not found in registry",
				slog.String("plate_hash", tracer.HashPlate(plate)),
			)
			return models.Invalid(models.ReasonVehicleNotFound)
		}
		s.logger.ErrorContext(ctx, "registry lookup failed",
			slog.String("plate_hash", tracer.HashPlate(plate)),
			slog.String("category", string(registry.GetCategory(err))),
			slog.String("error", err.Error()),
		)
		return models.Invalid(models.ReasonSystemError)
	}

	if !s.ownerMatches(ctx, record, req) {
		return models.Invalid(models.ReasonOwnerMismatch)
	}

	s.logger.InfoContext(ctx, "ownership reconciled",
		slog.String("plate_hash", tracer.HashPlate(plate)),
	)
	return models.Matched(projectVehicleData(record))
}

// applyDelay blocks for the configured verification delay, honoring context
// cancellation.
func (s *Service) applyDelay(ctx context.Context) error {
	if s.verificationDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.verificationDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) findRecord(ctx context.Context, plate string) (*regmodels.Record, error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanRegistryLookup,
		tracer.String("plate_hash", tracer.HashPlate(plate)),
	)
	record, err := s.lookup.Find(ctx, plate)
	if errors.Is(err, registry.ErrNotFound) {
		span.End(nil)
	} else {
		span.End(err)
	}
	return record, err
}

// ownerMatches applies the ownership policy: both the requester and the
// registry record must carry the national citizen ID document type, the
// document numbers must be byte-for-byte equal, and the claimed name must
// match the registered owner name.
func (s *Service) ownerMatches(ctx context.Context, record *regmodels.Record, req models.ReconciliationRequest) bool {
	if req.RequesterDocumentType != id.DocumentTypeCitizenID {
		s.logger.InfoContext(ctx, "owner mismatch: unsupported requester document type",
			slog.String("document_type", string(req.RequesterDocumentType)),
		)
		return false
	}
	if record.OwnerDocumentType != id.DocumentTypeCitizenID {
		s.logger.InfoContext(ctx, "owner mismatch: unsupported registry document type",
			slog.String("document_type", string(record.OwnerDocumentType)),
		)
		return false
	}
	if record.OwnerDocumentNumber != req.RequesterDocumentNumber {
		s.logger.InfoContext(ctx, "owner mismatch: document number differs",
			slog.String("requester_document", redactDocument(req.RequesterDocumentNumber)),
		)
		return false
	}
	if !names.Match(record.OwnerFullName, req.RequesterFullName) {
		s.logger.InfoContext(ctx, "owner mismatch: name comparison failed")
		return false
	}
	return true
}

// projectVehicleData maps a registry record to the vehicle data returned to
// clients, translating the registry's Spanish type label to an internal id.
func projectVehicleData(record *regmodels.Record) *models.VehicleData {
	return &models.VehicleData{
		Brand:  record.VehicleBrand,
		Model:  record.VehicleModel,
		Year:   record.VehicleYear,
		Color:  record.VehicleColor,
		TypeID: models.MapVehicleTypeLabel(record.VehicleTypeLabel),
	}
}

// redactDocument hides all but the last four digits of a document number.
func redactDocument(doc string) string {
	if len(doc) <= 4 {
		return strings.Repeat("*", len(doc))
	}
	return strings.Repeat("*", len(doc)-4) + doc[len(doc)-4:]
}
