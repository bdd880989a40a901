package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"freightdesk/internal/domain"
	"freightdesk/internal/export"
	"freightdesk/internal/freight"
	"freightdesk/internal/service"
	"freightdesk/mocks"
)

// billExpiringIn returns a 24h bill generated so that it expires d after fixedNow.
func billExpiringIn(number, lr, vehicle string, d time.Duration) domain.EwayBill {
	expires := fixedNow.Add(d)
	return domain.EwayBill{
		ID:             uuid.New(),
		LRNumber:       lr,
		EwayBillNumber: number,
		VehicleNumber:  vehicle,
		Consignor:      "ABC Industries",
		Consignee:      "XYZ Traders",
		GeneratedAt:    expires.Add(-24 * time.Hour),
		ValidityHours:  24,
		ExpiresAt:      expires,
	}
}

func sampleBills() []domain.EwayBill {
	return []domain.EwayBill{
		billExpiringIn("331000000004", "LR004", "MH12AB1234", 30*time.Hour),
		billExpiringIn("331000000001", "LR001", "MH04CD5678", -2*time.Hour),
		billExpiringIn("331000000003", "LR003", "KA01EF9012", 18*time.Hour),
		billExpiringIn("331000000002", "LR002", "MH14GH3456", 6*time.Hour),
	}
}

func newEwayBillService(repo *mocks.MockEwayBillRepo) service.EwayBillService {
	return service.NewEwayBillService(repo, func() time.Time { return fixedNow }, zap.NewNop())
}

func TestEwayBillService_List_ClassifiesAndSorts(t *testing.T) {
	repo := new(mocks.MockEwayBillRepo)
	repo.On("List", mock.Anything).Return(sampleBills(), nil)

	out, err := newEwayBillService(repo).List(context.Background(), domain.EwayBillFilter{})
	require.NoError(t, err)
	require.Len(t, out, 4)

	assert.Equal(t, "331000000001", out[0].EwayBillNumber)
	assert.Equal(t, freight.SeverityExpired, out[0].Status)
	assert.Equal(t, -2, out[0].HoursRemaining)
	assert.Equal(t, freight.SeverityCritical, out[1].Status)
	assert.Equal(t, 6, out[1].HoursRemaining)
	assert.Equal(t, freight.SeverityWarning, out[2].Status)
	assert.Equal(t, freight.SeverityActive, out[3].Status)
}

func TestEwayBillService_List_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.EwayBillFilter
		want   []string
	}{
		{"status", domain.EwayBillFilter{Status: freight.SeverityCritical}, []string{"331000000002"}},
		{"query_lr", domain.EwayBillFilter{Query: "lr003"}, []string{"331000000003"}},
		{"query_vehicle", domain.EwayBillFilter{Query: " MH1 "}, []string{"331000000002", "331000000004"}},
		{"query_and_status", domain.EwayBillFilter{Query: "MH", Status: freight.SeverityExpired}, []string{"331000000001"}},
		{"no_match", domain.EwayBillFilter{Query: "nothing"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockEwayBillRepo)
			repo.On("List", mock.Anything).Return(sampleBills(), nil)

			out, err := newEwayBillService(repo).List(context.Background(), tt.filter)
			require.NoError(t, err)
			got := make([]string, 0, len(out))
			for i := range out {
				got = append(got, out[i].EwayBillNumber)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEwayBillService_List_InvalidStatus(t *testing.T) {
	repo := new(mocks.MockEwayBillRepo)
	_, err := newEwayBillService(repo).List(context.Background(), domain.EwayBillFilter{Status: "overdue"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatusFilter)
	repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestEwayBillService_List_SkipsInconsistentBill(t *testing.T) {
	bad := billExpiringIn("331000000009", "LR009", "MH01ZZ0001", time.Hour)
	bad.ExpiresAt = bad.GeneratedAt.Add(-time.Hour)
	bills := append(sampleBills(), bad)

	repo := new(mocks.MockEwayBillRepo)
	repo.On("List", mock.Anything).Return(bills, nil)

	out, err := newEwayBillService(repo).List(context.Background(), domain.EwayBillFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 4)
}

func TestEwayBillService_Summary(t *testing.T) {
	repo := new(mocks.MockEwayBillRepo)
	repo.On("List", mock.Anything).Return(sampleBills(), nil)

	sum, err := newEwayBillService(repo).Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, freight.ExpirySummary{Total: 4, Expired: 1, Critical: 1, Warning: 1, Active: 1}, *sum)
}

func TestEwayBillService_Summary_RepoError(t *testing.T) {
	repo := new(mocks.MockEwayBillRepo)
	repo.On("List", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := newEwayBillService(repo).Summary(context.Background())
	assert.Error(t, err)
}

func TestEwayBillService_Register(t *testing.T) {
	repo := new(mocks.MockEwayBillRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.EwayBill")).Return(nil)

	out, err := newEwayBillService(repo).Register(context.Background(), &service.RegisterEwayBillInput{
		LRNumber:       " LR010 ",
		EwayBillNumber: "331000000010",
		VehicleNumber:  "mh 12 ab 1234",
		GeneratedAt:    fixedNow.Add(-time.Minute),
		ValidityHours:  24,
	})
	require.NoError(t, err)

	assert.Equal(t, "LR010", out.LRNumber)
	assert.Equal(t, "MH12AB1234", out.VehicleNumber)
	assert.True(t, out.ExpiresAt.Equal(fixedNow.Add(24*time.Hour-time.Minute)))
	assert.Equal(t, freight.SeverityWarning, out.Status)
	assert.Equal(t, 23, out.HoursRemaining)
	repo.AssertExpectations(t)
}

func TestEwayBillService_Register_FromExpiresAt(t *testing.T) {
	repo := new(mocks.MockEwayBillRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	out, err := newEwayBillService(repo).Register(context.Background(), &service.RegisterEwayBillInput{
		EwayBillNumber: "331000000011",
		VehicleNumber:  "KA01EF9012",
		GeneratedAt:    fixedNow,
		ExpiresAt:      fixedNow.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, 48, out.ValidityHours)
	assert.Equal(t, freight.SeverityActive, out.Status)
}

func TestEwayBillService_Register_Validation(t *testing.T) {
	valid := func() service.RegisterEwayBillInput {
		return service.RegisterEwayBillInput{
			EwayBillNumber: "331000000012",
			VehicleNumber:  "MH12AB1234",
			GeneratedAt:    fixedNow,
			ValidityHours:  24,
		}
	}
	tests := []struct {
		name   string
		mutate func(*service.RegisterEwayBillInput)
		field  string
	}{
		{"short_number", func(in *service.RegisterEwayBillInput) { in.EwayBillNumber = "12345" }, "eway_bill_number"},
		{"alpha_number", func(in *service.RegisterEwayBillInput) { in.EwayBillNumber = "33100000001A" }, "eway_bill_number"},
		{"missing_vehicle", func(in *service.RegisterEwayBillInput) { in.VehicleNumber = "  " }, "vehicle_number"},
		{"negative_validity", func(in *service.RegisterEwayBillInput) { in.ValidityHours = -1 }, "validity_hours"},
		{"validity_over_a_year", func(in *service.RegisterEwayBillInput) { in.ValidityHours = 8761 }, "validity_hours"},
		{"validity_overflowing_duration", func(in *service.RegisterEwayBillInput) { in.ValidityHours = 2_562_048 }, "validity_hours"},
		{"validity_wrapping_to_whole_hours", func(in *service.RegisterEwayBillInput) { in.ValidityHours = math.MaxInt64 / 1000 }, "validity_hours"},
		{"expiry_over_a_year", func(in *service.RegisterEwayBillInput) {
			in.ValidityHours = 0
			in.ExpiresAt = fixedNow.Add(8761 * time.Hour)
		}, "expires_at"},
		{"missing_generated_at", func(in *service.RegisterEwayBillInput) { in.GeneratedAt = time.Time{} }, "generated_at"},
		{"no_validity", func(in *service.RegisterEwayBillInput) { in.ValidityHours = 0 }, "validity"},
		{"mismatched_expiry", func(in *service.RegisterEwayBillInput) { in.ExpiresAt = fixedNow.Add(10 * time.Hour) }, "expires_at"},
		{"fractional_hours", func(in *service.RegisterEwayBillInput) {
			in.ValidityHours = 0
			in.ExpiresAt = fixedNow.Add(90 * time.Minute)
		}, "expires_at"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockEwayBillRepo)
			in := valid()
			tt.mutate(&in)

			_, err := newEwayBillService(repo).Register(context.Background(), &in)
			var vErr *freight.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, tt.field, vErr.Field)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestEwayBillService_Register_OneYearValidityAccepted(t *testing.T) {
	repo := new(mocks.MockEwayBillRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.EwayBill")).Return(nil)

	got, err := newEwayBillService(repo).Register(context.Background(), &service.RegisterEwayBillInput{
		EwayBillNumber: "331000000012",
		VehicleNumber:  "MH12AB1234",
		GeneratedAt:    fixedNow,
		ValidityHours:  8760,
	})
	require.NoError(t, err)
	assert.Equal(t, 8760, got.ValidityHours)
	assert.True(t, got.ExpiresAt.Equal(fixedNow.Add(8760*time.Hour)))
}

func TestEwayBillService_Register_Duplicate(t *testing.T) {
	repo := new(mocks.MockEwayBillRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEwayBill)

	_, err := newEwayBillService(repo).Register(context.Background(), &service.RegisterEwayBillInput{
		EwayBillNumber: "331000000001",
		VehicleNumber:  "MH12AB1234",
		GeneratedAt:    fixedNow,
		ValidityHours:  24,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEwayBill)
}

func TestEwayBillService_ExportReport_CSV(t *testing.T) {
	repo := new(mocks.MockEwayBillRepo)
	repo.On("List", mock.Anything).Return(sampleBills(), nil)

	var buf bytes.Buffer
	err := newEwayBillService(repo).ExportReport(context.Background(),
		domain.EwayBillFilter{Status: freight.SeverityExpired}, domain.ExportFormatCSV, &buf)
	require.NoError(t, err)

	data := bytes.TrimPrefix(buf.Bytes(), export.BOM)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Contains(t, rows[1], "331000000001")
}

func TestEwayBillService_ExportReport_UnsupportedFormat(t *testing.T) {
	repo := new(mocks.MockEwayBillRepo)
	var buf bytes.Buffer
	err := newEwayBillService(repo).ExportReport(context.Background(), domain.EwayBillFilter{}, "pdf", &buf)
	assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
	assert.Zero(t, buf.Len())
}
