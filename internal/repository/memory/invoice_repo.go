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

type invoiceRepo struct {
	s *Store
}

// NewInvoiceRepo creates an InvoiceRepository over the store.
func NewInvoiceRepo(s *Store) port.InvoiceRepository {
	return &invoiceRepo{s: s}
}

func (r *invoiceRepo) Create(_ context.Context, inv *domain.Invoice, consignmentIDs []uuid.UUID, numbering domain.InvoiceNumbering) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, id := range consignmentIDs {
		c, ok := r.s.consignments[id]
		if !ok {
			return domain.ErrConsignmentNotFound
		}
		if c.Billed() {
			return domain.ErrConsignmentAlreadyBilled
		}
	}

	taken := lo.SliceToMap(lo.Values(r.s.invoices), func(i domain.Invoice) (string, bool) {
		return i.InvoiceNumber, true
	})
	seq := r.s.sequences[numbering.Year] + 1
	for taken[numbering.Number(seq)] {
		seq++
	}
	r.s.sequences[numbering.Year] = seq
	inv.InvoiceNumber = numbering.Number(seq)

	now := time.Now().UTC()
	inv.CreatedAt = now
	for i := range inv.Lines {
		inv.Lines[i].InvoiceID = inv.ID
	}
	for i := range inv.Taxes {
		inv.Taxes[i].InvoiceID = inv.ID
	}

	invoiceID := inv.ID
	for _, id := range consignmentIDs {
		c := r.s.consignments[id]
		c.Status = domain.DispatchStatusBilled
		c.InvoiceID = &invoiceID
		c.UpdatedAt = now
		r.s.consignments[id] = c
	}
	r.s.invoices[inv.ID] = cloneInvoice(*inv)
	return nil
}

func (r *invoiceRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, domain.ErrInvoiceNotFound
	}
	out := cloneInvoice(inv)
	return &out, nil
}

func (r *invoiceRepo) List(_ context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	all := lo.MapToSlice(r.s.invoices, func(_ uuid.UUID, inv domain.Invoice) domain.Invoice {
		inv.Lines, inv.Taxes = nil, nil
		return inv
	})
	sort.Slice(all, func(i, j int) bool {
		if !all[i].InvoiceDate.Equal(all[j].InvoiceDate) {
			return all[i].InvoiceDate.After(all[j].InvoiceDate)
		}
		return all[i].InvoiceNumber > all[j].InvoiceNumber
	})
	return page(all, offset, limit), len(all), nil
}

func cloneInvoice(inv domain.Invoice) domain.Invoice {
	inv.Lines = append([]domain.InvoiceLine(nil), inv.Lines...)
	inv.Taxes = append([]domain.InvoiceTax(nil), inv.Taxes...)
	return inv
}
