package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"freightdesk/internal/domain"
	"freightdesk/internal/port"
)

type consignmentRepo struct {
	s *Store
}

// NewConsignmentRepo creates a ConsignmentRepository over the store.
func NewConsignmentRepo(s *Store) port.ConsignmentRepository {
	return &consignmentRepo{s: s}
}

func (r *consignmentRepo) List(_ context.Context, filter domain.ConsignmentFilter) ([]domain.Consignment, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	gstin := strings.ToUpper(filter.CustomerGSTIN)
	matched := lo.Filter(lo.Values(r.s.consignments), func(c domain.Consignment, _ int) bool {
		if filter.Status != "" && c.Status != filter.Status {
			return false
		}
		return gstin == "" || c.ConsignorGSTIN == gstin
	})
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].BookedAt.Equal(matched[j].BookedAt) {
			return matched[i].BookedAt.After(matched[j].BookedAt)
		}
		return matched[i].LRNumber < matched[j].LRNumber
	})
	return page(matched, filter.Offset, filter.Limit), len(matched), nil
}

func (r *consignmentRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]domain.Consignment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	found := lo.FilterMap(lo.Uniq(ids), func(id uuid.UUID, _ int) (domain.Consignment, bool) {
		c, ok := r.s.consignments[id]
		return c, ok
	})
	sort.Slice(found, func(i, j int) bool { return found[i].LRNumber < found[j].LRNumber })
	return found, nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = len(items)
	}
	return lo.Subset(items, offset, uint(limit))
}
