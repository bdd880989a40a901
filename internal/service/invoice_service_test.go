package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"freightdesk/internal/domain"
	"freightdesk/internal/freight"
	"freightdesk/internal/port"
	"freightdesk/internal/service"
	"freightdesk/mocks"
)

var fixedNow = time.Date(2025, 11, 18, 6, 0, 0, 0, time.UTC)

type invoiceFixture struct {
	consignments *mocks.MockConsignmentRepo
	invoices     *mocks.MockInvoiceRepo
	storage      *mocks.MockObjectStorage
	svc          service.InvoiceService
}

func newInvoiceFixture() *invoiceFixture {
	f := &invoiceFixture{
		consignments: new(mocks.MockConsignmentRepo),
		invoices:     new(mocks.MockInvoiceRepo),
		storage:      new(mocks.MockObjectStorage),
	}
	f.svc = service.NewInvoiceService(f.consignments, f.invoices, f.storage, service.InvoiceConfig{
		NumberPrefix:     "INV",
		SupplierGSTIN:    "27AAACF1234A1Z5",
		GSTRate:          decimal.NewFromInt(5),
		DefaultUnloading: decimal.NewFromInt(5000),
		DefaultDetention: decimal.NewFromInt(2000),
		PresignExpiry:    time.Hour,
	}, func() time.Time { return fixedNow }, zap.NewNop())
	return f
}

func abcConsignments() []domain.Consignment {
	mk := func(lr string, amount int64) domain.Consignment {
		return domain.Consignment{
			ID:             uuid.New(),
			LRNumber:       lr,
			ConsignorName:  "ABC Industries",
			ConsignorGSTIN: "27AABCU9603R1ZM",
			Origin:         "Mumbai",
			Destination:    "Pune",
			FreightAmount:  decimal.NewFromInt(amount),
			Status:         domain.DispatchStatusDelivered,
		}
	}
	return []domain.Consignment{mk("LR001", 15000), mk("LR002", 12000), mk("LR003", 18000)}
}

func idsOf(cs []domain.Consignment) []uuid.UUID {
	ids := make([]uuid.UUID, len(cs))
	for i := range cs {
		ids[i] = cs[i].ID
	}
	return ids
}

func TestInvoiceService_Preview_DefaultExtrasIntraState(t *testing.T) {
	f := newInvoiceFixture()
	cs := abcConsignments()
	f.consignments.On("GetByIDs", mock.Anything, idsOf(cs)).Return(cs, nil)

	p, err := f.svc.Preview(context.Background(), &service.ComposeInput{ConsignmentIDs: idsOf(cs)})
	require.NoError(t, err)

	assert.Equal(t, domain.SupplyTypeIntra, p.SupplyType)
	assert.Len(t, p.Consignments, 3)
	assert.Len(t, p.ExtraCharges, 2)
	assert.Equal(t, "52000.00", p.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "1300.00", p.Totals.Tax(freight.TaxCGST).StringFixed(2))
	assert.Equal(t, "1300.00", p.Totals.Tax(freight.TaxSGST).StringFixed(2))
	assert.Equal(t, "54600.00", p.Totals.Total.StringFixed(2))
	f.consignments.AssertExpectations(t)
}

func TestInvoiceService_Preview_EmptySelectionIsZero(t *testing.T) {
	f := newInvoiceFixture()

	p, err := f.svc.Preview(context.Background(), &service.ComposeInput{ExtraCharges: []freight.ChargeLineItem{}})
	require.NoError(t, err)
	assert.True(t, p.Totals.Total.IsZero())
	assert.Empty(t, p.Consignments)
	f.consignments.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestInvoiceService_Preview_InterStateCustomer(t *testing.T) {
	f := newInvoiceFixture()
	cs := abcConsignments()[:1]
	f.consignments.On("GetByIDs", mock.Anything, idsOf(cs)).Return(cs, nil)

	p, err := f.svc.Preview(context.Background(), &service.ComposeInput{
		ConsignmentIDs: idsOf(cs),
		ExtraCharges:   []freight.ChargeLineItem{},
		CustomerGSTIN:  "29aadcd4521k1zq",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SupplyTypeInter, p.SupplyType)
	assert.Equal(t, "750.00", p.Totals.Tax(freight.TaxIGST).StringFixed(2))
	assert.Equal(t, "15750.00", p.Totals.Total.StringFixed(2))
}

func TestInvoiceService_Preview_MissingConsignment(t *testing.T) {
	f := newInvoiceFixture()
	cs := abcConsignments()
	ids := append(idsOf(cs), uuid.New())
	f.consignments.On("GetByIDs", mock.Anything, ids).Return(cs, nil)

	_, err := f.svc.Preview(context.Background(), &service.ComposeInput{ConsignmentIDs: ids})
	assert.ErrorIs(t, err, domain.ErrConsignmentNotFound)
}

func TestInvoiceService_Preview_RejectsUnknownChargeKind(t *testing.T) {
	f := newInvoiceFixture()

	_, err := f.svc.Preview(context.Background(), &service.ComposeInput{
		ExtraCharges: []freight.ChargeLineItem{{Kind: "toll", Amount: decimal.NewFromInt(100)}},
	})
	var vErr *freight.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "extra_charges[0].kind", vErr.Field)
}

func TestInvoiceService_Preview_RejectsOutOfRangeExtraCharge(t *testing.T) {
	f := newInvoiceFixture()

	_, err := f.svc.Preview(context.Background(), &service.ComposeInput{
		ExtraCharges: []freight.ChargeLineItem{
			{Kind: freight.ChargeUnloading, Amount: decimal.NewFromInt(5000)},
			{Kind: freight.ChargeDetention, Amount: decimal.RequireFromString("1e5000000")},
		},
	})
	var vErr *freight.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "extra_charges[1].amount", vErr.Field)
	f.consignments.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestInvoiceService_Preview_RejectsOutOfRangeGSTRate(t *testing.T) {
	f := newInvoiceFixture()
	huge := decimal.RequireFromString("1e400")

	_, err := f.svc.Preview(context.Background(), &service.ComposeInput{ExtraCharges: []freight.ChargeLineItem{}, GSTRate: &huge})
	var vErr *freight.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "gst_rate", vErr.Field)
}

func TestInvoiceService_Preview_RejectsMalformedCustomerGSTIN(t *testing.T) {
	f := newInvoiceFixture()

	_, err := f.svc.Preview(context.Background(), &service.ComposeInput{
		ConsignmentIDs: []uuid.UUID{uuid.New()},
		CustomerGSTIN:  "29AADCD4521",
	})
	var vErr *freight.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "customer_gstin", vErr.Field)
	f.consignments.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
}

func TestInvoiceService_Create(t *testing.T) {
	f := newInvoiceFixture()
	cs := abcConsignments()
	ids := idsOf(cs)
	f.consignments.On("GetByIDs", mock.Anything, ids).Return(cs, nil)
	f.invoices.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice"), ids, domain.InvoiceNumbering{Prefix: "INV", Year: 2025}).
		Run(assignNumber(46)).Return(nil)

	inv, err := f.svc.Create(context.Background(), &service.ComposeInput{ConsignmentIDs: ids})
	require.NoError(t, err)

	assert.Equal(t, "INV-2025-0046", inv.InvoiceNumber)
	assert.Equal(t, "ABC Industries", inv.CustomerName)
	assert.Equal(t, "27AABCU9603R1ZM", inv.CustomerGSTIN)
	assert.Equal(t, domain.SupplyTypeIntra, inv.SupplyType)
	assert.Equal(t, domain.DefaultSACCode, inv.SACCode)
	assert.True(t, inv.InvoiceDate.Equal(fixedNow))
	assert.Equal(t, "54600.00", inv.Total.StringFixed(2))
	assert.Equal(t, "2600.00", inv.TotalTax.StringFixed(2))

	require.Len(t, inv.Lines, 5)
	assert.Equal(t, "LR001 Mumbai - Pune", inv.Lines[0].Description)
	require.NotNil(t, inv.Lines[0].ConsignmentID)
	assert.Equal(t, cs[0].ID, *inv.Lines[0].ConsignmentID)
	assert.Equal(t, freight.ChargeDetention, inv.Lines[4].Kind)
	assert.Equal(t, 5, inv.Lines[4].Position)
	require.Len(t, inv.Taxes, 2)
	assert.Equal(t, "CGST", inv.Taxes[0].Name)

	f.invoices.AssertExpectations(t)
}

// assignNumber stands in for the repository taking serial seq of the series.
func assignNumber(seq int) func(mock.Arguments) {
	return func(args mock.Arguments) {
		inv := args.Get(1).(*domain.Invoice)
		inv.InvoiceNumber = args.Get(3).(domain.InvoiceNumbering).Number(seq)
	}
}

func TestInvoiceService_Create_SeriesFollowsISTYear(t *testing.T) {
	f := newInvoiceFixture()
	cs := abcConsignments()[:1]
	ids := idsOf(cs)
	f.consignments.On("GetByIDs", mock.Anything, ids).Return(cs, nil)
	f.invoices.On("Create", mock.Anything, mock.Anything, ids, domain.InvoiceNumbering{Prefix: "INV", Year: 2026}).
		Run(assignNumber(1)).Return(nil).Once()

	// 20:00 UTC on 31 Dec is already 1 Jan in India.
	date := time.Date(2025, 12, 31, 20, 0, 0, 0, time.UTC)
	inv, err := f.svc.Create(context.Background(), &service.ComposeInput{ConsignmentIDs: ids, InvoiceDate: date})
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-0001", inv.InvoiceNumber)
	f.invoices.AssertExpectations(t)
}

func TestInvoiceService_Create_RepositoryErrorPassesThrough(t *testing.T) {
	f := newInvoiceFixture()
	cs := abcConsignments()[:1]
	ids := idsOf(cs)
	f.consignments.On("GetByIDs", mock.Anything, ids).Return(cs, nil)
	f.invoices.On("Create", mock.Anything, mock.Anything, ids, mock.Anything).Return(domain.ErrDuplicateInvoiceNumber).Once()

	inv, err := f.svc.Create(context.Background(), &service.ComposeInput{ConsignmentIDs: ids})
	assert.Nil(t, inv)
	assert.ErrorIs(t, err, domain.ErrDuplicateInvoiceNumber)
	f.invoices.AssertNumberOfCalls(t, "Create", 1)
}

func TestInvoiceService_Create_EmptySelection(t *testing.T) {
	f := newInvoiceFixture()
	_, err := f.svc.Create(context.Background(), &service.ComposeInput{})
	assert.ErrorIs(t, err, domain.ErrEmptySelection)
	f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_Create_AlreadyBilled(t *testing.T) {
	f := newInvoiceFixture()
	cs := abcConsignments()
	cs[1].Status = domain.DispatchStatusBilled
	f.consignments.On("GetByIDs", mock.Anything, idsOf(cs)).Return(cs, nil)

	_, err := f.svc.Create(context.Background(), &service.ComposeInput{ConsignmentIDs: idsOf(cs)})
	assert.ErrorIs(t, err, domain.ErrConsignmentAlreadyBilled)
	f.invoices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_Export(t *testing.T) {
	f := newInvoiceFixture()
	inv := &domain.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-2025-0046",
		InvoiceDate:   fixedNow,
		Subtotal:      decimal.NewFromInt(100),
		Total:         decimal.NewFromInt(105),
	}
	key := "invoices/2025/INV-2025-0046.csv"
	f.invoices.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	f.storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Key == key && in.ContentType == "text/csv"
	})).Return(&port.UploadOutput{Key: key}, nil)
	f.storage.On("PresignedURL", mock.Anything, key, time.Hour).Return("https://s3.example/"+key, nil)

	out, err := f.svc.Export(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, key, out.Key)
	assert.Equal(t, "https://s3.example/"+key, out.URL)
	assert.True(t, out.ExpiresAt.Equal(fixedNow.Add(time.Hour)))
	f.storage.AssertExpectations(t)
}

func TestInvoiceService_Export_UploadFailure(t *testing.T) {
	f := newInvoiceFixture()
	inv := &domain.Invoice{ID: uuid.New(), InvoiceNumber: "INV-2025-0001", InvoiceDate: fixedNow}
	f.invoices.On("GetByID", mock.Anything, inv.ID).Return(inv, nil)
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	_, err := f.svc.Export(context.Background(), inv.ID)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	f.storage.AssertNotCalled(t, "PresignedURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestInvoiceService_Get_NotFound(t *testing.T) {
	f := newInvoiceFixture()
	id := uuid.New()
	f.invoices.On("GetByID", mock.Anything, id).Return(nil, domain.ErrInvoiceNotFound)

	_, err := f.svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}
