package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"freightdesk/internal/domain"
	"freightdesk/internal/port"
)

type consignmentRepo struct {
	db *sqlx.DB
}

// NewConsignmentRepo creates a new PostgreSQL-backed ConsignmentRepository.
func NewConsignmentRepo(db *sqlx.DB) port.ConsignmentRepository {
	return &consignmentRepo{db: db}
}

func (r *consignmentRepo) List(ctx context.Context, filter domain.ConsignmentFilter) ([]domain.Consignment, int, error) {
	var (
		conds []string
		args  []interface{}
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.CustomerGSTIN != "" {
		args = append(args, strings.ToUpper(filter.CustomerGSTIN))
		conds = append(conds, fmt.Sprintf("consignor_gstin = $%d", len(args)))
	}
	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM consignments"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("consignmentRepo.List count: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf("SELECT * FROM consignments%s ORDER BY booked_at DESC, lr_number LIMIT $%d OFFSET $%d",
		where, len(args)-1, len(args))

	var consignments []domain.Consignment
	if err := r.db.SelectContext(ctx, &consignments, query, args...); err != nil {
		return nil, 0, fmt.Errorf("consignmentRepo.List: %w", err)
	}
	return consignments, total, nil
}

func (r *consignmentRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Consignment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In("SELECT * FROM consignments WHERE id IN (?) ORDER BY lr_number", ids)
	if err != nil {
		return nil, fmt.Errorf("consignmentRepo.GetByIDs: %w", err)
	}

	var consignments []domain.Consignment
	if err := r.db.SelectContext(ctx, &consignments, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("consignmentRepo.GetByIDs: %w", err)
	}
	return consignments, nil
}
