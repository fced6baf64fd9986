//go:build integration

package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"bemyrider/internal/taxdetails/models"
	"bemyrider/internal/taxdetails/store"
	id "bemyrider/pkg/domain"
	audit "bemyrider/pkg/platform/audit"
	auditpostgres "bemyrider/pkg/platform/audit/store/postgres"
	txcontext "bemyrider/pkg/platform/tx"
	"bemyrider/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = store.NewPostgresStore(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	err := s.postgres.TruncateTables(context.Background(), "rider_tax_details", "merchant_tax_details", "audit_events")
	s.Require().NoError(err)
}

func (s *PostgresStoreSuite) TestRiderRoundTrip() {
	ctx := context.Background()
	riderID := id.RiderID(uuid.New())
	record := &models.RiderTaxDetails{
		RiderID:          riderID,
		FirstName:        "Mario",
		LastName:         "Rossi",
		FiscalCode:       "RSSMRA85M01H501Q",
		BirthPlace:       "Roma",
		BirthDate:        time.Date(1985, 8, 1, 0, 0, 0, 0, time.UTC),
		ResidenceAddress: "Via del Corso 1",
		ResidenceCity:    "Roma",
		UpdatedAt:        time.Now().UTC().Truncate(time.Microsecond),
	}
	s.Require().NoError(s.store.UpsertRider(ctx, record))

	found, err := s.store.FindRider(ctx, riderID)
	s.Require().NoError(err)
	s.Equal(record.FiscalCode, found.FiscalCode)
	s.Equal(record.ResidenceAddress, found.ResidenceAddress)
	s.True(record.BirthDate.Equal(found.BirthDate))
	s.True(record.UpdatedAt.Equal(found.UpdatedAt))

	record.ResidenceCity = "Milano"
	s.Require().NoError(s.store.UpsertRider(ctx, record))
	found, err = s.store.FindRider(ctx, riderID)
	s.Require().NoError(err)
	s.Equal("Milano", found.ResidenceCity)
}

func (s *PostgresStoreSuite) TestMerchantNullableVAT() {
	ctx := context.Background()
	merchantID := id.MerchantID(uuid.New())

	s.Require().NoError(s.store.UpsertMerchant(ctx, &models.MerchantTaxDetails{
		MerchantID:  merchantID,
		CompanyName: "Acme",
		UpdatedAt:   time.Now(),
	}))
	found, err := s.store.FindMerchant(ctx, merchantID)
	s.Require().NoError(err)
	s.Empty(found.VATNumber)

	var isNull bool
	err = s.postgres.DB.QueryRowContext(ctx,
		`SELECT vat_number IS NULL FROM merchant_tax_details WHERE merchant_id = $1`, uuid.UUID(merchantID),
	).Scan(&isNull)
	s.Require().NoError(err)
	s.True(isNull)
}

func (s *PostgresStoreSuite) TestFindMissingReturnsNotFound() {
	_, err := s.store.FindRider(context.Background(), id.RiderID(uuid.New()))
	s.ErrorIs(err, store.ErrNotFound)
	_, err = s.store.FindMerchant(context.Background(), id.MerchantID(uuid.New()))
	s.ErrorIs(err, store.ErrNotFound)
}

// TestRollbackDiscardsRecordAndAudit verifies that a record write and its
// audit row share the transaction from the context.
func (s *PostgresStoreSuite) TestRollbackDiscardsRecordAndAudit() {
	ctx := context.Background()
	runner := txcontext.NewPostgresRunner(s.postgres.DB)
	auditStore := auditpostgres.New(s.postgres.DB)
	riderID := id.RiderID(uuid.New())

	err := runner.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.store.UpsertRider(ctx, &models.RiderTaxDetails{
			RiderID: riderID, FiscalCode: "RSSMRA85M01H501Q", BirthPlace: "Roma",
			BirthDate: time.Date(1985, 8, 1, 0, 0, 0, 0, time.UTC), ResidenceAddress: "x", ResidenceCity: "y",
			UpdatedAt: time.Now(),
		}); err != nil {
			return err
		}
		if err := auditStore.Append(ctx, audit.Event{Subject: "rider:" + riderID.String(), Action: string(audit.EventRiderTaxDetailsSaved)}); err != nil {
			return err
		}
		return context.Canceled
	})
	s.Require().ErrorIs(err, context.Canceled)

	_, err = s.store.FindRider(ctx, riderID)
	s.ErrorIs(err, store.ErrNotFound)
	events, err := auditStore.ListBySubject(ctx, "rider:"+riderID.String())
	s.Require().NoError(err)
	s.Empty(events)
}

// TestConcurrentRiderUpsert verifies last-write-wins without errors.
func (s *PostgresStoreSuite) TestConcurrentRiderUpsert() {
	ctx := context.Background()
	riderID := id.RiderID(uuid.New())

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			err := s.store.UpsertRider(ctx, &models.RiderTaxDetails{
				RiderID: riderID, FiscalCode: "RSSMRA85M01H501Q", BirthPlace: "Roma",
				BirthDate: time.Date(1985, 8, 1, 0, 0, 0, 0, time.UTC), ResidenceAddress: "x", ResidenceCity: "y",
				UpdatedAt: time.Now(),
			})
			s.NoError(err)
		})
	}
	wg.Wait()

	var count int
	s.Require().NoError(s.postgres.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM rider_tax_details WHERE rider_id = $1`, uuid.UUID(riderID)).Scan(&count))
	s.Equal(1, count)
}
