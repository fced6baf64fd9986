package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bemyrider/internal/taxdetails/models"
	id "bemyrider/pkg/domain"
)

func TestInMemoryStore_RiderUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	riderID := id.RiderID(uuid.New())

	_, err := s.FindRider(ctx, riderID)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.UpsertRider(ctx, &models.RiderTaxDetails{RiderID: riderID, ResidenceCity: "Roma"}))
	require.NoError(t, s.UpsertRider(ctx, &models.RiderTaxDetails{RiderID: riderID, ResidenceCity: "Milano"}))

	got, err := s.FindRider(ctx, riderID)
	require.NoError(t, err)
	assert.Equal(t, "Milano", got.ResidenceCity)
}

func TestInMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	merchantID := id.MerchantID(uuid.New())
	require.NoError(t, s.UpsertMerchant(ctx, &models.MerchantTaxDetails{MerchantID: merchantID, CompanyName: "Acme"}))

	got, err := s.FindMerchant(ctx, merchantID)
	require.NoError(t, err)
	got.CompanyName = "mutated"

	again, err := s.FindMerchant(ctx, merchantID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", again.CompanyName)

	_, err = s.FindMerchant(ctx, id.MerchantID(uuid.New()))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryStore_ConcurrentUpserts(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	riderID := id.RiderID(uuid.New())

	var wg sync.WaitGroup
	for range 50 {
		wg.Go(func() {
			_ = s.UpsertRider(ctx, &models.RiderTaxDetails{RiderID: riderID, UpdatedAt: time.Now()})
			_, _ = s.FindRider(ctx, riderID)
		})
	}
	wg.Wait()

	_, err := s.FindRider(ctx, riderID)
	assert.NoError(t, err)
}
