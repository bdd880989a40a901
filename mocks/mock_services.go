package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"freightdesk/internal/domain"
	"freightdesk/internal/freight"
	"freightdesk/internal/service"
)

// MockFreightService is a mock implementation of service.FreightService.
type MockFreightService struct {
	mock.Mock
}

func (m *MockFreightService) Quote(form freight.ChargeForm) freight.FreightTotals {
	args := m.Called(form)
	return args.Get(0).(freight.FreightTotals)
}

func (m *MockFreightService) ApplyTax(input *service.TaxInput) (*freight.FreightTotals, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*freight.FreightTotals), args.Error(1)
}

// MockConsignmentService is a mock implementation of service.ConsignmentService.
type MockConsignmentService struct {
	mock.Mock
}

func (m *MockConsignmentService) List(ctx context.Context, filter domain.ConsignmentFilter) ([]domain.Consignment, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Consignment), args.Int(1), args.Error(2)
}

// MockInvoiceService is a mock implementation of service.InvoiceService.
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) Preview(ctx context.Context, input *service.ComposeInput) (*service.InvoicePreview, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoicePreview), args.Error(1)
}

func (m *MockInvoiceService) Create(ctx context.Context, input *service.ComposeInput) (*domain.Invoice, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Int(1), args.Error(2)
}

func (m *MockInvoiceService) Export(ctx context.Context, id uuid.UUID) (*service.InvoiceExport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.InvoiceExport), args.Error(1)
}

// MockEwayBillService is a mock implementation of service.EwayBillService.
type MockEwayBillService struct {
	mock.Mock
}

func (m *MockEwayBillService) List(ctx context.Context, filter domain.EwayBillFilter) ([]domain.EwayBillStatus, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EwayBillStatus), args.Error(1)
}

func (m *MockEwayBillService) Summary(ctx context.Context) (*freight.ExpirySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*freight.ExpirySummary), args.Error(1)
}

func (m *MockEwayBillService) Register(ctx context.Context, input *service.RegisterEwayBillInput) (*domain.EwayBillStatus, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EwayBillStatus), args.Error(1)
}

func (m *MockEwayBillService) ExportReport(ctx context.Context, filter domain.EwayBillFilter, format domain.ExportFormat, w io.Writer) error {
	args := m.Called(ctx, filter, format, w)
	if fn, ok := args.Get(0).(func(io.Writer) error); ok {
		return fn(w)
	}
	return args.Error(0)
}
