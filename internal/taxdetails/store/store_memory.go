package store

import (
	"context"
	"sync"

	"bemyrider/internal/taxdetails/models"
	id "bemyrider/pkg/domain"
)

type InMemoryStore struct {
	mu        sync.RWMutex
	riders    map[id.RiderID]models.RiderTaxDetails
	merchants map[id.MerchantID]models.MerchantTaxDetails
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		riders:    make(map[id.RiderID]models.RiderTaxDetails),
		merchants: make(map[id.MerchantID]models.MerchantTaxDetails),
	}
}

// UpsertRider replaces the record for details.RiderID.
func (s *InMemoryStore) UpsertRider(_ context.Context, details *models.RiderTaxDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.riders[details.RiderID] = *details
	return nil
}

func (s *InMemoryStore) FindRider(_ context.Context, riderID id.RiderID) (*models.RiderTaxDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.riders[riderID]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (s *InMemoryStore) UpsertMerchant(_ context.Context, details *models.MerchantTaxDetails) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merchants[details.MerchantID] = *details
	return nil
}

func (s *InMemoryStore) FindMerchant(_ context.Context, merchantID id.MerchantID) (*models.MerchantTaxDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.merchants[merchantID]
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}
