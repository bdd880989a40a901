package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"freightdesk/internal/domain"
)

// MockConsignmentRepo is a mock implementation of port.ConsignmentRepository.
type MockConsignmentRepo struct {
	mock.Mock
}

func (m *MockConsignmentRepo) List(ctx context.Context, filter domain.ConsignmentFilter) ([]domain.Consignment, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Consignment), args.Int(1), args.Error(2)
}

func (m *MockConsignmentRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Consignment, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Consignment), args.Error(1)
}

// MockInvoiceRepo is a mock implementation of port.InvoiceRepository.
type MockInvoiceRepo struct {
	mock.Mock
}

func (m *MockInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice, consignmentIDs []uuid.UUID, numbering domain.InvoiceNumbering) error {
	args := m.Called(ctx, inv, consignmentIDs, numbering)
	return args.Error(0)
}

func (m *MockInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepo) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

// MockEwayBillRepo is a mock implementation of port.EwayBillRepository.
type MockEwayBillRepo struct {
	mock.Mock
}

func (m *MockEwayBillRepo) List(ctx context.Context) ([]domain.EwayBill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EwayBill), args.Error(1)
}

func (m *MockEwayBillRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.EwayBill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EwayBill), args.Error(1)
}

func (m *MockEwayBillRepo) Create(ctx context.Context, bill *domain.EwayBill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}

// MockHealthChecker is a mock implementation of port.HealthChecker.
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
