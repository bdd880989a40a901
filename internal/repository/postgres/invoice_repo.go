package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"freightdesk/internal/domain"
	"freightdesk/internal/port"
)

// maxNumberAttempts bounds how many taken serials Create skips before
// giving up with domain.ErrDuplicateInvoiceNumber.
const maxNumberAttempts = 3

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice, consignmentIDs []uuid.UUID, numbering domain.InvoiceNumbering) error {
	now := time.Now().UTC()
	inv.CreatedAt = now

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := insertNumbered(ctx, tx, inv, numbering); err != nil {
			return err
		}

		if len(consignmentIDs) > 0 {
			query, args, err := sqlx.In(
				`UPDATE consignments SET status = ?, invoice_id = ?, updated_at = ?
				 WHERE id IN (?) AND invoice_id IS NULL AND status <> ?`,
				domain.DispatchStatusBilled, inv.ID, now, consignmentIDs, domain.DispatchStatusBilled)
			if err != nil {
				return err
			}
			result, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
			if err != nil {
				return err
			}
			rows, _ := result.RowsAffected()
			if rows != int64(len(consignmentIDs)) {
				return domain.ErrConsignmentAlreadyBilled
			}
		}

		for i := range inv.Lines {
			inv.Lines[i].InvoiceID = inv.ID
		}
		if len(inv.Lines) > 0 {
			if _, err := tx.NamedExecContext(ctx,
				`INSERT INTO invoice_lines (invoice_id, position, kind, consignment_id, description, amount)
				 VALUES (:invoice_id, :position, :kind, :consignment_id, :description, :amount)`,
				inv.Lines); err != nil {
				return err
			}
		}

		for i := range inv.Taxes {
			inv.Taxes[i].InvoiceID = inv.ID
		}
		if len(inv.Taxes) > 0 {
			if _, err := tx.NamedExecContext(ctx,
				`INSERT INTO invoice_taxes (invoice_id, position, name, rate_percent, amount)
				 VALUES (:invoice_id, :position, :name, :rate_percent, :amount)`,
				inv.Taxes); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateInvoiceNumber) || errors.Is(err, domain.ErrConsignmentAlreadyBilled) {
			return err
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv, "SELECT * FROM invoices WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}

	if err := r.db.SelectContext(ctx, &inv.Lines,
		"SELECT * FROM invoice_lines WHERE invoice_id = $1 ORDER BY position", id); err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID lines: %w", err)
	}
	if err := r.db.SelectContext(ctx, &inv.Taxes,
		"SELECT * FROM invoice_taxes WHERE invoice_id = $1 ORDER BY position", id); err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID taxes: %w", err)
	}
	return &inv, nil
}

// List returns invoice headers only; lines and taxes are loaded by GetByID.
func (r *invoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM invoices"); err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List count: %w", err)
	}

	var invoices []domain.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices ORDER BY invoice_date DESC, invoice_number DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("invoiceRepo.List: %w", err)
	}
	return invoices, total, nil
}

// insertNumbered bumps the year's serial and inserts the invoice header
// under it. The sequence row stays locked until the transaction ends, so
// concurrent creates are serialized and a rollback hands the serial back.
func insertNumbered(ctx context.Context, tx *sqlx.Tx, inv *domain.Invoice, numbering domain.InvoiceNumbering) error {
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		var seq int
		if err := tx.GetContext(ctx, &seq,
			`INSERT INTO invoice_sequences (year, last_value) VALUES ($1, 1)
			 ON CONFLICT (year) DO UPDATE SET last_value = invoice_sequences.last_value + 1
			 RETURNING last_value`, numbering.Year); err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		inv.InvoiceNumber = numbering.Number(seq)

		result, err := tx.NamedExecContext(ctx,
			`INSERT INTO invoices (id, invoice_number, invoice_date, customer_name, customer_address,
				customer_gstin, supplier_gstin, sac_code, supply_type, subtotal, total_tax, total, created_at)
			 VALUES (:id, :invoice_number, :invoice_date, :customer_name, :customer_address,
				:customer_gstin, :supplier_gstin, :sac_code, :supply_type, :subtotal, :total_tax, :total, :created_at)
			 ON CONFLICT (invoice_number) DO NOTHING`,
			inv)
		if err != nil {
			return err
		}
		if n, _ := result.RowsAffected(); n == 1 {
			return nil
		}
	}
	return domain.ErrDuplicateInvoiceNumber
}
