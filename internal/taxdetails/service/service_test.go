package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"bemyrider/internal/fiscalcode"
	"bemyrider/internal/taxdetails/metrics"
	"bemyrider/internal/taxdetails/models"
	"bemyrider/internal/taxdetails/service/mocks"
	"bemyrider/internal/taxdetails/store"
	id "bemyrider/pkg/domain"
	dErrors "bemyrider/pkg/domain-errors"
	audit "bemyrider/pkg/platform/audit"
	"bemyrider/pkg/platform/audit/publishers/compliance"
	auditmemory "bemyrider/pkg/platform/audit/store/memory"
	"bemyrider/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctx        context.Context
	now        time.Time
	store      *store.InMemoryStore
	auditStore *auditmemory.InMemoryStore
	metrics    *metrics.Metrics
	service    *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.now = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(requestcontext.WithRequestID(context.Background(), "req-123"), s.now)
	s.store = store.NewInMemoryStore()
	s.auditStore = auditmemory.NewInMemoryStore()
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.service = s.newService()
}

func (s *ServiceSuite) newService(opts ...Option) *Service {
	calc, err := fiscalcode.New()
	s.Require().NoError(err)
	base := []Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
		WithAuditPublisher(compliance.New(s.auditStore)),
	}
	svc, err := New(calc, s.store, append(base, opts...)...)
	s.Require().NoError(err)
	return svc
}

func validRider(riderID id.RiderID) *models.RiderTaxDetails {
	return &models.RiderTaxDetails{
		RiderID:          riderID,
		FirstName:        " Mario ",
		LastName:         "Rossi",
		FiscalCode:       " rssmra85m01h501q ",
		BirthPlace:       "Roma",
		BirthDate:        time.Date(1985, 8, 1, 15, 4, 0, 0, time.UTC),
		ResidenceAddress: "Via del Corso 1",
		ResidenceCity:    "Roma",
	}
}

func (s *ServiceSuite) TestNewRequiresDependencies() {
	calc, err := fiscalcode.New()
	s.Require().NoError(err)

	_, err = New(nil, s.store)
	s.Error(err)
	_, err = New(calc, nil)
	s.Error(err)
}

func (s *ServiceSuite) TestCalculateFiscalCode() {
	s.Run("known person", func() {
		code, err := s.service.CalculateFiscalCode(s.ctx, fiscalcode.Input{
			FirstName:  "Mario",
			LastName:   "Rossi",
			BirthDate:  time.Date(1985, 8, 1, 0, 0, 0, 0, time.UTC),
			BirthPlace: "Roma",
		})
		s.Require().NoError(err)
		s.Equal(fiscalcode.Code("RSSMRA85M01H501Q"), code)
		s.InDelta(1, testutil.ToFloat64(s.metrics.Calculations.WithLabelValues("ok")), 0)
	})

	s.Run("missing first name maps to validation error", func() {
		_, err := s.service.CalculateFiscalCode(s.ctx, fiscalcode.Input{
			LastName:   "Rossi",
			BirthDate:  time.Date(1985, 8, 1, 0, 0, 0, 0, time.UTC),
			BirthPlace: "Roma",
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.ErrorIs(err, fiscalcode.ErrMissingField)
		s.Contains(err.Error(), "first_name is required")
	})

	s.Run("unknown place maps to unresolvable code", func() {
		_, err := s.service.CalculateFiscalCode(s.ctx, fiscalcode.Input{
			FirstName:  "Mario",
			LastName:   "Rossi",
			BirthDate:  time.Date(1985, 8, 1, 0, 0, 0, 0, time.UTC),
			BirthPlace: "Atlantis",
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeUnresolvablePlace))
		s.InDelta(1, testutil.ToFloat64(s.metrics.Calculations.WithLabelValues("unresolvable_place")), 0)
	})

	s.Run("invalid sex maps to validation error", func() {
		_, err := s.service.CalculateFiscalCode(s.ctx, fiscalcode.Input{
			FirstName:  "Mario",
			LastName:   "Rossi",
			BirthDate:  time.Date(1985, 8, 1, 0, 0, 0, 0, time.UTC),
			BirthPlace: "Roma",
			Sex:        "X",
		})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestCalculateFiscalCode_FallbackPlaceCounted() {
	calc, err := fiscalcode.New(fiscalcode.WithFallbackPlace("Z999"))
	s.Require().NoError(err)
	svc, err := New(calc, s.store, WithMetrics(s.metrics), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)

	code, err := svc.CalculateFiscalCode(s.ctx, fiscalcode.Input{
		FirstName:  "Mario",
		LastName:   "Rossi",
		BirthDate:  time.Date(1985, 8, 1, 0, 0, 0, 0, time.UTC),
		BirthPlace: "Atlantis",
	})
	s.Require().NoError(err)
	s.Equal("Z999", string(code[11:15]))
	s.InDelta(1, testutil.ToFloat64(s.metrics.Calculations.WithLabelValues("fallback_place")), 0)
}

func (s *ServiceSuite) TestCalculateFiscalCode_ResolvedPlaceWithFallbackConfiguredCountsOK() {
	calc, err := fiscalcode.New(fiscalcode.WithFallbackPlace("Z999"))
	s.Require().NoError(err)
	svc, err := New(calc, s.store, WithMetrics(s.metrics), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	s.Require().NoError(err)

	code, err := svc.CalculateFiscalCode(s.ctx, fiscalcode.Input{
		FirstName:  "Mario",
		LastName:   "Rossi",
		BirthDate:  time.Date(1985, 8, 1, 0, 0, 0, 0, time.UTC),
		BirthPlace: "Bari Sardo (NU)",
	})
	s.Require().NoError(err)
	s.Equal("F979", string(code[11:15]))
	s.InDelta(1, testutil.ToFloat64(s.metrics.Calculations.WithLabelValues("ok")), 0)
	s.InDelta(0, testutil.ToFloat64(s.metrics.Calculations.WithLabelValues("fallback_place")), 0)
}

func (s *ServiceSuite) TestCalculateFiscalCode_TracksOpsEvents() {
	ctrl := gomock.NewController(s.T())
	tracker := mocks.NewMockOpsTracker(ctrl)
	svc := s.newService(WithOpsTracker(tracker))

	tracker.EXPECT().Track(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev audit.Event) {
		s.Equal(string(audit.EventFiscalCodeCalculated), ev.Action)
		s.Equal("req-123", ev.RequestID)
		s.Equal(audit.HashSubjectID("RSSMRA85M01H501Q"), ev.SubjectIDHash)
	})

	_, err := svc.CalculateFiscalCode(s.ctx, fiscalcode.Input{
		FirstName:  "Mario",
		LastName:   "Rossi",
		BirthDate:  time.Date(1985, 8, 1, 0, 0, 0, 0, time.UTC),
		BirthPlace: "Roma",
	})
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestValidateFiscalCode() {
	tests := []struct {
		name     string
		code     string
		format   bool
		checksum bool
	}{
		{"valid", "RSSMRA85M01H501Q", true, true},
		{"lowercase is accepted", "rssmra85m01h501q", true, true},
		{"wrong control letter", "RSSMRA85M01H501A", true, false},
		{"bad shape", "RSSMRA85", false, false},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			result, err := s.service.ValidateFiscalCode(s.ctx, tt.code)
			s.Require().NoError(err)
			s.Equal(tt.format, result.ValidFormat)
			s.Equal(tt.checksum, result.ChecksumValid)
		})
	}

	_, err := s.service.ValidateFiscalCode(s.ctx, "   ")
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *ServiceSuite) TestSaveRiderTaxDetails() {
	riderID := id.RiderID(uuid.New())

	saved, err := s.service.SaveRiderTaxDetails(s.ctx, validRider(riderID))
	s.Require().NoError(err)
	s.Equal("RSSMRA85M01H501Q", saved.FiscalCode)
	s.Equal("Mario", saved.FirstName)
	s.Equal(time.Date(1985, 8, 1, 0, 0, 0, 0, time.UTC), saved.BirthDate)
	s.Equal(s.now, saved.UpdatedAt)

	stored, err := s.service.GetRiderTaxDetails(s.ctx, riderID)
	s.Require().NoError(err)
	s.Equal(saved, stored)

	events, err := s.auditStore.ListBySubject(s.ctx, "rider:"+riderID.String())
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal(string(audit.EventRiderTaxDetailsSaved), events[0].Action)
	s.Equal(audit.HashSubjectID("RSSMRA85M01H501Q"), events[0].SubjectIDHash)
	s.Equal("req-123", events[0].RequestID)
	s.InDelta(1, testutil.ToFloat64(s.metrics.RecordsSaved.WithLabelValues("rider")), 0)
}

func (s *ServiceSuite) TestSaveRiderTaxDetails_Validation() {
	riderID := id.RiderID(uuid.New())
	tests := []struct {
		name   string
		mutate func(d *models.RiderTaxDetails)
		msg    string
	}{
		{"missing fiscal code", func(d *models.RiderTaxDetails) { d.FiscalCode = " " }, "fiscal_code is required"},
		{"malformed fiscal code", func(d *models.RiderTaxDetails) { d.FiscalCode = "RSSMRA85M01H501" }, "invalid format"},
		{"missing birth place", func(d *models.RiderTaxDetails) { d.BirthPlace = "" }, "birth_place is required"},
		{"missing birth date", func(d *models.RiderTaxDetails) { d.BirthDate = time.Time{} }, "birth_date is required"},
		{"missing address", func(d *models.RiderTaxDetails) { d.ResidenceAddress = "\t" }, "residence_address is required"},
		{"missing city", func(d *models.RiderTaxDetails) { d.ResidenceCity = "" }, "residence_city is required"},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			d := validRider(riderID)
			tt.mutate(d)
			_, err := s.service.SaveRiderTaxDetails(s.ctx, d)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation))
			s.Contains(err.Error(), tt.msg)
		})
	}

	_, err := s.service.GetRiderTaxDetails(s.ctx, riderID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.service.SaveRiderTaxDetails(s.ctx, validRider(id.RiderID{}))
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func (s *ServiceSuite) TestSaveRiderTaxDetails_AuditFailureFailsSave() {
	ctrl := gomock.NewController(s.T())
	auditor := mocks.NewMockAuditPublisher(ctrl)
	svc := s.newService(WithAuditPublisher(auditor))

	auditor.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	_, err := svc.SaveRiderTaxDetails(s.ctx, validRider(id.RiderID(uuid.New())))
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceSuite) TestGetRiderTaxDetails_ReadsThroughCache() {
	ctrl := gomock.NewController(s.T())
	cache := mocks.NewMockCache(ctrl)
	svc := s.newService(WithCache(cache))
	riderID := id.RiderID(uuid.New())

	cache.EXPECT().DeleteRider(gomock.Any(), riderID).Return(nil)
	saved, err := svc.SaveRiderTaxDetails(s.ctx, validRider(riderID))
	s.Require().NoError(err)

	gomock.InOrder(
		cache.EXPECT().GetRider(gomock.Any(), riderID).Return(nil, store.ErrNotFound),
		cache.EXPECT().SetRider(gomock.Any(), saved).Return(nil),
		cache.EXPECT().GetRider(gomock.Any(), riderID).Return(saved, nil),
	)

	first, err := svc.GetRiderTaxDetails(s.ctx, riderID)
	s.Require().NoError(err)
	s.Equal(saved, first)

	second, err := svc.GetRiderTaxDetails(s.ctx, riderID)
	s.Require().NoError(err)
	s.Equal(saved, second)

	s.InDelta(1, testutil.ToFloat64(s.metrics.CacheLookups.WithLabelValues("rider", "miss")), 0)
	s.InDelta(1, testutil.ToFloat64(s.metrics.CacheLookups.WithLabelValues("rider", "hit")), 0)
}

func (s *ServiceSuite) TestGetRiderTaxDetails_CacheOutageFallsBackToStore() {
	ctrl := gomock.NewController(s.T())
	cache := mocks.NewMockCache(ctrl)
	svc := s.newService(WithCache(cache))
	riderID := id.RiderID(uuid.New())
	s.Require().NoError(s.store.UpsertRider(s.ctx, &models.RiderTaxDetails{RiderID: riderID, FiscalCode: "RSSMRA85M01H501Q"}))

	cacheErr := errors.New("connection refused")
	cache.EXPECT().GetRider(gomock.Any(), riderID).Return(nil, cacheErr).Times(5)
	cache.EXPECT().SetRider(gomock.Any(), gomock.Any()).Return(cacheErr).Times(5)

	for range 5 {
		record, err := svc.GetRiderTaxDetails(s.ctx, riderID)
		s.Require().NoError(err)
		s.Equal("RSSMRA85M01H501Q", record.FiscalCode)
	}
	s.True(svc.CacheDegraded())
}

func (s *ServiceSuite) TestSaveMerchantTaxDetails() {
	merchantID := id.MerchantID(uuid.New())

	saved, err := s.service.SaveMerchantTaxDetails(s.ctx, &models.MerchantTaxDetails{
		MerchantID:  merchantID,
		CompanyName: " Pizzeria da Mario srl ",
		VATNumber:   "123 456 789 01",
		Address:     "Via Roma 10",
		City:        "Napoli",
	})
	s.Require().NoError(err)
	s.Equal("Pizzeria da Mario srl", saved.CompanyName)
	s.Equal("12345678901", saved.VATNumber)

	got, err := s.service.GetMerchantTaxDetails(s.ctx, merchantID)
	s.Require().NoError(err)
	s.Equal(saved, got)

	events, err := s.auditStore.ListBySubject(s.ctx, "merchant:"+merchantID.String())
	s.Require().NoError(err)
	s.Len(events, 1)
}

func (s *ServiceSuite) TestSaveMerchantTaxDetails_Validation() {
	merchantID := id.MerchantID(uuid.New())

	_, err := s.service.SaveMerchantTaxDetails(s.ctx, &models.MerchantTaxDetails{MerchantID: merchantID, CompanyName: "  "})
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))

	_, err = s.service.SaveMerchantTaxDetails(s.ctx, &models.MerchantTaxDetails{MerchantID: merchantID, CompanyName: "Acme", VATNumber: "1234"})
	s.Require().Error(err)
	s.Contains(err.Error(), "vat_number must be 11 digits")

	saved, err := s.service.SaveMerchantTaxDetails(s.ctx, &models.MerchantTaxDetails{MerchantID: merchantID, CompanyName: "Acme"})
	s.Require().NoError(err)
	s.Empty(saved.VATNumber)

	_, err = s.service.GetMerchantTaxDetails(s.ctx, id.MerchantID(uuid.New()))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}
