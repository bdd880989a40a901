package service

import (
	"context"
	"strings"

	"freightdesk/internal/domain"
	"freightdesk/internal/port"
)

// ConsignmentService lists the LR register.
type ConsignmentService interface {
	List(ctx context.Context, filter domain.ConsignmentFilter) ([]domain.Consignment, int, error)
}

type consignmentService struct {
	repo port.ConsignmentRepository
}

// NewConsignmentService creates a new ConsignmentService implementation.
func NewConsignmentService(repo port.ConsignmentRepository) ConsignmentService {
	return &consignmentService{repo: repo}
}

func (s *consignmentService) List(ctx context.Context, filter domain.ConsignmentFilter) ([]domain.Consignment, int, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, domain.ErrInvalidStatusFilter
	}
	filter.CustomerGSTIN = strings.ToUpper(strings.TrimSpace(filter.CustomerGSTIN))
	return s.repo.List(ctx, filter)
}
