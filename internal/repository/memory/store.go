// Package memory is an in-process data provider for demos and tests.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"freightdesk/internal/domain"
)

// Store holds every entity behind one lock so that invoice creation can
// bill consignments atomically.
type Store struct {
	mu           sync.RWMutex
	consignments map[uuid.UUID]domain.Consignment
	invoices     map[uuid.UUID]domain.Invoice
	sequences    map[int]int
	ewayBills    map[uuid.UUID]domain.EwayBill
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		consignments: make(map[uuid.UUID]domain.Consignment),
		invoices:     make(map[uuid.UUID]domain.Invoice),
		sequences:    make(map[int]int),
		ewayBills:    make(map[uuid.UUID]domain.EwayBill),
	}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// AddConsignment inserts or replaces a consignment.
func (s *Store) AddConsignment(c domain.Consignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	s.consignments[c.ID] = c
}

// AddEwayBill inserts or replaces an e-way bill.
func (s *Store) AddEwayBill(b domain.EwayBill) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	s.ewayBills[b.ID] = b
}
