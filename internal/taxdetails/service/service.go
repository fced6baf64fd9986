package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"bemyrider/internal/fiscalcode"
	"bemyrider/internal/taxdetails/metrics"
	"bemyrider/internal/taxdetails/models"
	"bemyrider/internal/taxdetails/store"
	id "bemyrider/pkg/domain"
	dErrors "bemyrider/pkg/domain-errors"
	audit "bemyrider/pkg/platform/audit"
	"bemyrider/pkg/platform/circuit"
	txcontext "bemyrider/pkg/platform/tx"
	"bemyrider/pkg/requestcontext"
)

// Store is the source of truth for tax-detail records.
type Store interface {
	UpsertRider(ctx context.Context, details *models.RiderTaxDetails) error
	FindRider(ctx context.Context, riderID id.RiderID) (*models.RiderTaxDetails, error)
	UpsertMerchant(ctx context.Context, details *models.MerchantTaxDetails) error
	FindMerchant(ctx context.Context, merchantID id.MerchantID) (*models.MerchantTaxDetails, error)
}

// Cache is an optional read-through cache. Misses return store.ErrNotFound.
type Cache interface {
	GetRider(ctx context.Context, riderID id.RiderID) (*models.RiderTaxDetails, error)
	SetRider(ctx context.Context, details *models.RiderTaxDetails) error
	DeleteRider(ctx context.Context, riderID id.RiderID) error
	GetMerchant(ctx context.Context, merchantID id.MerchantID) (*models.MerchantTaxDetails, error)
	SetMerchant(ctx context.Context, details *models.MerchantTaxDetails) error
	DeleteMerchant(ctx context.Context, merchantID id.MerchantID) error
}

// AuditPublisher records fiscal record changes. Emit failing must fail the
// save.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// OpsTracker records routine activity without blocking.
type OpsTracker interface {
	Track(ctx context.Context, event audit.Event)
}

// Service owns fiscal code calculation and the rider/merchant tax records.
type Service struct {
	calculator *fiscalcode.Calculator
	store      Store
	tx         txcontext.Runner
	cache      Cache
	breaker    *circuit.Breaker
	auditor    AuditPublisher
	tracker    OpsTracker
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithCache enables the read-through cache.
func WithCache(c Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithTxRunner makes record writes and their compliance audit atomic.
func WithTxRunner(r txcontext.Runner) Option {
	return func(s *Service) {
		if r != nil {
			s.tx = r
		}
	}
}

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.auditor = p
	}
}

func WithOpsTracker(t OpsTracker) Option {
	return func(s *Service) {
		s.tracker = t
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(s *Service) {
		if t != nil {
			s.tracer = t
		}
	}
}

func New(calculator *fiscalcode.Calculator, st Store, opts ...Option) (*Service, error) {
	if calculator == nil {
		return nil, errors.New("calculator is required")
	}
	if st == nil {
		return nil, errors.New("store is required")
	}
	s := &Service{
		calculator: calculator,
		store:      st,
		tx:         txcontext.NoopRunner{},
		breaker:    circuit.New("taxdetails-cache"),
		logger:     slog.Default(),
		tracer:     otel.Tracer("bemyrider/taxdetails"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// CacheDegraded reports whether the cache circuit is open.
func (s *Service) CacheDegraded() bool {
	return s.cache != nil && s.breaker.IsOpen()
}

// CalculateFiscalCode derives the codice fiscale for in.
//
// Errors: CodeValidation for missing or unusable fields and an invalid sex;
// CodeUnresolvablePlace when the birth place has no cadastral code.
func (s *Service) CalculateFiscalCode(ctx context.Context, in fiscalcode.Input) (fiscalcode.Code, error) {
	ctx, span := s.tracer.Start(ctx, "taxdetails.CalculateFiscalCode")
	defer span.End()

	start := time.Now()
	res, err := s.calculator.Derive(in)
	s.metrics.ObserveCalculateLatency(time.Since(start))
	if err != nil {
		outcome := calculationOutcome(err)
		s.metrics.IncrementCalculation(outcome)
		span.SetStatus(codes.Error, outcome)
		s.track(ctx, audit.Event{
			Subject: "fiscal-code",
			Action:  string(audit.EventFiscalCodeRejected),
			Reason:  outcome,
		})
		return "", translateCalculationError(err)
	}

	outcome := "ok"
	if res.FallbackPlace {
		outcome = "fallback_place"
		s.logger.WarnContext(ctx, "birth place replaced by fallback code",
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	s.metrics.IncrementCalculation(outcome)
	span.SetAttributes(attribute.String("fiscalcode.outcome", outcome))
	s.track(ctx, audit.Event{
		Subject:       "fiscal-code",
		Action:        string(audit.EventFiscalCodeCalculated),
		Reason:        outcome,
		SubjectIDHash: audit.HashSubjectID(res.Code.String()),
	})
	return res.Code, nil
}

// ValidateFiscalCode runs the form pattern and the checksum against code.
// A wrong code is a result, not an error; only a blank input fails.
func (s *Service) ValidateFiscalCode(ctx context.Context, code string) (*models.ValidationResult, error) {
	_, span := s.tracer.Start(ctx, "taxdetails.ValidateFiscalCode")
	defer span.End()

	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "fiscal_code is required")
	}
	result := &models.ValidationResult{
		FiscalCode:    normalized,
		ValidFormat:   fiscalcode.ValidFormat(normalized),
		ChecksumValid: fiscalcode.Verify(normalized),
	}
	switch {
	case !result.ValidFormat:
		s.metrics.IncrementValidation("bad_format")
	case !result.ChecksumValid:
		s.metrics.IncrementValidation("bad_checksum")
	default:
		s.metrics.IncrementValidation("valid")
	}
	return result, nil
}

// SaveRiderTaxDetails validates and upserts a rider's fiscal data, then
// records a compliance audit event in the same unit of work.
func (s *Service) SaveRiderTaxDetails(ctx context.Context, details *models.RiderTaxDetails) (*models.RiderTaxDetails, error) {
	ctx, span := s.tracer.Start(ctx, "taxdetails.SaveRiderTaxDetails")
	defer span.End()

	if details == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "rider tax details are required")
	}
	record := *details
	if err := prepareRider(&record); err != nil {
		return nil, err
	}
	record.UpdatedAt = requestcontext.Now(ctx)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.UpsertRider(ctx, &record); err != nil {
			return err
		}
		return s.emit(ctx, audit.Event{
			Subject:       "rider:" + record.RiderID.String(),
			Action:        string(audit.EventRiderTaxDetailsSaved),
			SubjectIDHash: audit.HashSubjectID(record.FiscalCode),
		})
	})
	if err != nil {
		span.SetStatus(codes.Error, "save failed")
		return nil, s.internal(ctx, err, "failed to save rider tax details")
	}

	if s.cache != nil {
		s.recordCache(ctx, s.cache.DeleteRider(ctx, record.RiderID))
	}
	s.metrics.IncrementSaved("rider")
	s.logger.InfoContext(ctx, "rider tax details saved",
		"request_id", requestcontext.RequestID(ctx),
		"rider_id", record.RiderID.String(),
	)
	return &record, nil
}

// GetRiderTaxDetails returns the stored record, reading through the cache.
//
// Errors: CodeNotFound when the rider has no record.
func (s *Service) GetRiderTaxDetails(ctx context.Context, riderID id.RiderID) (*models.RiderTaxDetails, error) {
	ctx, span := s.tracer.Start(ctx, "taxdetails.GetRiderTaxDetails")
	defer span.End()

	if s.cache != nil {
		cached, err := s.cache.GetRider(ctx, riderID)
		s.recordCache(ctx, err)
		if err == nil {
			s.metrics.IncrementCacheLookup("rider", "hit")
			return cached, nil
		}
		s.metrics.IncrementCacheLookup("rider", lookupResult(err))
	}

	record, err := s.store.FindRider(ctx, riderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "rider tax details not found")
		}
		return nil, s.internal(ctx, err, "failed to load rider tax details")
	}

	if s.cache != nil {
		s.recordCache(ctx, s.cache.SetRider(ctx, record))
	}
	return record, nil
}

// SaveMerchantTaxDetails validates and upserts a merchant's fiscal data.
func (s *Service) SaveMerchantTaxDetails(ctx context.Context, details *models.MerchantTaxDetails) (*models.MerchantTaxDetails, error) {
	ctx, span := s.tracer.Start(ctx, "taxdetails.SaveMerchantTaxDetails")
	defer span.End()

	if details == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "merchant tax details are required")
	}
	record := *details
	if err := prepareMerchant(&record); err != nil {
		return nil, err
	}
	record.UpdatedAt = requestcontext.Now(ctx)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.UpsertMerchant(ctx, &record); err != nil {
			return err
		}
		return s.emit(ctx, audit.Event{
			Subject:       "merchant:" + record.MerchantID.String(),
			Action:        string(audit.EventMerchantTaxDetailsSaved),
			SubjectIDHash: audit.HashSubjectID(record.VATNumber),
		})
	})
	if err != nil {
		span.SetStatus(codes.Error, "save failed")
		return nil, s.internal(ctx, err, "failed to save merchant tax details")
	}

	if s.cache != nil {
		s.recordCache(ctx, s.cache.DeleteMerchant(ctx, record.MerchantID))
	}
	s.metrics.IncrementSaved("merchant")
	s.logger.InfoContext(ctx, "merchant tax details saved",
		"request_id", requestcontext.RequestID(ctx),
		"merchant_id", record.MerchantID.String(),
	)
	return &record, nil
}

// GetMerchantTaxDetails returns the stored record, reading through the cache.
//
// Errors: CodeNotFound when the merchant has no record.
func (s *Service) GetMerchantTaxDetails(ctx context.Context, merchantID id.MerchantID) (*models.MerchantTaxDetails, error) {
	ctx, span := s.tracer.Start(ctx, "taxdetails.GetMerchantTaxDetails")
	defer span.End()

	if s.cache != nil {
		cached, err := s.cache.GetMerchant(ctx, merchantID)
		s.recordCache(ctx, err)
		if err == nil {
			s.metrics.IncrementCacheLookup("merchant", "hit")
			return cached, nil
		}
		s.metrics.IncrementCacheLookup("merchant", lookupResult(err))
	}

	record, err := s.store.FindMerchant(ctx, merchantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "merchant tax details not found")
		}
		return nil, s.internal(ctx, err, "failed to load merchant tax details")
	}

	if s.cache != nil {
		s.recordCache(ctx, s.cache.SetMerchant(ctx, record))
	}
	return record, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) error {
	if s.auditor == nil {
		return nil
	}
	event.RequestID = requestcontext.RequestID(ctx)
	event.Timestamp = requestcontext.Now(ctx)
	return s.auditor.Emit(ctx, event)
}

func (s *Service) track(ctx context.Context, event audit.Event) {
	if s.tracker == nil {
		return
	}
	event.RequestID = requestcontext.RequestID(ctx)
	s.tracker.Track(ctx, event)
}

// recordCache feeds a cache call outcome into the breaker. Misses count as
// success; the cache answered.
func (s *Service) recordCache(ctx context.Context, err error) {
	if err == nil || errors.Is(err, store.ErrNotFound) {
		if _, change := s.breaker.RecordSuccess(); change.Closed {
			s.logger.InfoContext(ctx, "tax details cache recovered")
		}
		return
	}
	if _, change := s.breaker.RecordFailure(); change.Opened {
		s.logger.WarnContext(ctx, "tax details cache degraded, serving from store",
			"error", err,
		)
	}
}

// internal passes coded errors through and hides everything else behind
// CodeInternal.
func (s *Service) internal(ctx context.Context, err error, message string) error {
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	s.logger.ErrorContext(ctx, message,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
	return dErrors.Wrap(err, dErrors.CodeInternal, message)
}

func lookupResult(err error) string {
	if errors.Is(err, store.ErrNotFound) {
		return "miss"
	}
	return "error"
}
