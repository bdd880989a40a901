package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"freightdesk/internal/domain"
	"freightdesk/internal/port"
)

type ewayBillRepo struct {
	s *Store
}

// NewEwayBillRepo creates an EwayBillRepository over the store.
func NewEwayBillRepo(s *Store) port.EwayBillRepository {
	return &ewayBillRepo{s: s}
}

func (r *ewayBillRepo) List(_ context.Context) ([]domain.EwayBill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	bills := lo.Values(r.s.ewayBills)
	sort.Slice(bills, func(i, j int) bool { return bills[i].ExpiresAt.Before(bills[j].ExpiresAt) })
	return bills, nil
}

func (r *ewayBillRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.EwayBill, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.ewayBills[id]
	if !ok {
		return nil, domain.ErrEwayBillNotFound
	}
	return &b, nil
}

func (r *ewayBillRepo) Create(_ context.Context, b *domain.EwayBill) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	dup := lo.ContainsBy(lo.Values(r.s.ewayBills), func(existing domain.EwayBill) bool {
		return existing.EwayBillNumber == b.EwayBillNumber
	})
	if dup {
		return domain.ErrDuplicateEwayBill
	}
	b.CreatedAt = time.Now().UTC()
	r.s.ewayBills[b.ID] = *b
	return nil
}
