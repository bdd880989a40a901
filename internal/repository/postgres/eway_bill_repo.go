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

type ewayBillRepo struct {
	db *sqlx.DB
}

// NewEwayBillRepo creates a new PostgreSQL-backed EwayBillRepository.
func NewEwayBillRepo(db *sqlx.DB) port.EwayBillRepository {
	return &ewayBillRepo{db: db}
}

func (r *ewayBillRepo) List(ctx context.Context) ([]domain.EwayBill, error) {
	var bills []domain.EwayBill
	if err := r.db.SelectContext(ctx, &bills, "SELECT * FROM eway_bills ORDER BY expires_at"); err != nil {
		return nil, fmt.Errorf("ewayBillRepo.List: %w", err)
	}
	return bills, nil
}

func (r *ewayBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EwayBill, error) {
	var b domain.EwayBill
	err := r.db.GetContext(ctx, &b, "SELECT * FROM eway_bills WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEwayBillNotFound
		}
		return nil, fmt.Errorf("ewayBillRepo.GetByID: %w", err)
	}
	return &b, nil
}

func (r *ewayBillRepo) Create(ctx context.Context, b *domain.EwayBill) error {
	b.CreatedAt = time.Now().UTC()

	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO eway_bills (id, lr_number, eway_bill_number, vehicle_number, consignor, consignee,
			origin, destination, distance_km, generated_at, validity_hours, expires_at,
			driver_name, driver_phone, current_location, created_at)
		 VALUES (:id, :lr_number, :eway_bill_number, :vehicle_number, :consignor, :consignee,
			:origin, :destination, :distance_km, :generated_at, :validity_hours, :expires_at,
			:driver_name, :driver_phone, :current_location, :created_at)`, b)
	if err != nil {
		if isUniqueViolation(err, "eway_bills_eway_bill_number_key") {
			return domain.ErrDuplicateEwayBill
		}
		return fmt.Errorf("ewayBillRepo.Create: %w", err)
	}
	return nil
}
