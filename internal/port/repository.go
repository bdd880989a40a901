package port

import (
	"context"

	"github.com/google/uuid"

	"freightdesk/internal/domain"
)

// ConsignmentRepository is the data provider for booked LRs.
type ConsignmentRepository interface {
	List(ctx context.Context, filter domain.ConsignmentFilter) ([]domain.Consignment, int, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Consignment, error)
}

// InvoiceRepository persists invoices.
type InvoiceRepository interface {
	// Create takes the next serial of the numbering series, stores the
	// invoice with its lines and taxes and marks the billed consignments in
	// one transaction. A failed create releases the serial. Serials already
	// used by a stored invoice are skipped. It fails with
	// domain.ErrConsignmentAlreadyBilled if any consignment was billed meanwhile.
	Create(ctx context.Context, inv *domain.Invoice, consignmentIDs []uuid.UUID, numbering domain.InvoiceNumbering) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
}

// EwayBillRepository is the data provider for e-way bills.
type EwayBillRepository interface {
	List(ctx context.Context) ([]domain.EwayBill, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.EwayBill, error)
	Create(ctx context.Context, bill *domain.EwayBill) error
}

// HealthChecker reports whether the data provider is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
