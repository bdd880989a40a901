package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"freightdesk/internal/domain"
	"freightdesk/internal/export"
	"freightdesk/internal/freight"
)

func sampleBills() []domain.EwayBillStatus {
	gen := time.Date(2025, 11, 17, 4, 30, 0, 0, time.UTC) // 10:00 IST
	return []domain.EwayBillStatus{
		{
			EwayBill: domain.EwayBill{
				ID:             uuid.New(),
				LRNumber:       "LR-2025-002",
				EwayBillNumber: "381234567891",
				VehicleNumber:  "MH12CD5678",
				Consignor:      "DEF Traders",
				Consignee:      "GHI Logistics",
				Origin:         "Bangalore",
				Destination:    "Chennai",
				DistanceKm:     350,
				GeneratedAt:    gen,
				ValidityHours:  24,
				ExpiresAt:      gen.Add(24 * time.Hour),
				DriverName:     "Suresh Patil",
				DriverPhone:    "9876543211",
			},
			Classification: freight.Classification{HoursRemaining: -2, Status: freight.SeverityExpired},
		},
		{
			EwayBill: domain.EwayBill{
				EwayBillNumber: "381234567893",
				GeneratedAt:    gen,
				ValidityHours:  72,
				ExpiresAt:      gen.Add(72 * time.Hour),
			},
			Classification: freight.Classification{HoursRemaining: 46, Status: freight.SeverityActive},
		},
	}
}

func TestWriteEwayBillCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteEwayBillCSV(&buf, sampleBills()))

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, export.BOM))

	rows, err := csv.NewReader(bytes.NewReader(raw[len(export.BOM):])).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "E-way Bill No", rows[0][0])
	assert.Len(t, rows[0], 16)

	first := rows[1]
	assert.Equal(t, "381234567891", first[0])
	assert.Equal(t, "17/11/2025 10:00", first[8])
	assert.Equal(t, "18/11/2025 10:00", first[10])
	assert.Equal(t, "-2", first[11])
	assert.Equal(t, "Expired", first[12])
	assert.Equal(t, "Active", rows[2][12])
}

func TestWriteEwayBillXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteEwayBillXLSX(&buf, sampleBills()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("E-way Bills")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Status", rows[0][12])
	assert.Equal(t, "LR-2025-002", rows[1][1])
	assert.Equal(t, "350", rows[1][7])
	assert.Equal(t, "Expired", rows[1][12])
}

func TestWriteInvoiceCSV(t *testing.T) {
	consignment := uuid.New()
	inv := &domain.Invoice{
		InvoiceNumber: "INV-2025-0046",
		InvoiceDate:   time.Date(2025, 11, 17, 20, 0, 0, 0, time.UTC), // 18 Nov IST
		CustomerName:  "ABC Industries",
		CustomerGSTIN: "27AABCU9603R1ZM",
		SACCode:       domain.DefaultSACCode,
		Subtotal:      decimal.NewFromInt(52000),
		Total:         decimal.NewFromInt(54600),
		Lines: []domain.InvoiceLine{
			{Position: 1, Kind: freight.ChargeBaseFreight, ConsignmentID: &consignment, Description: "LR001 Mumbai-Pune", Amount: decimal.NewFromInt(15000)},
			{Position: 2, Kind: freight.ChargeUnloading, Description: "Unloading charges", Amount: decimal.NewFromInt(5000)},
		},
		Taxes: []domain.InvoiceTax{
			{Position: 1, Name: "CGST", RatePercent: decimal.RequireFromString("2.5"), Amount: decimal.NewFromInt(1300)},
			{Position: 2, Name: "SGST", RatePercent: decimal.RequireFromString("2.5"), Amount: decimal.NewFromInt(1300)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteInvoiceCSV(&buf, inv))

	r := csv.NewReader(bytes.NewReader(buf.Bytes()[len(export.BOM):]))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Invoice No", "INV-2025-0046"}, rows[1])
	assert.Equal(t, []string{"Invoice Date", "18/11/2025"}, rows[2])
	assert.Contains(t, rows, []string{"1", "base_freight", "LR001 Mumbai-Pune", "15000.00"})
	assert.Contains(t, rows, []string{"CGST", "2.5%", "", "1300.00"})
	assert.Equal(t, []string{"Total", "", "", "54600.00"}, rows[len(rows)-1])
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "41300.00", export.FormatMoney(decimal.NewFromInt(41300)))
	assert.Equal(t, "1312.50", export.FormatMoney(decimal.RequireFromString("1312.5")))
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"E-way bill report", "E-way_bill_report"},
		{"INV/2025/0046", "INV_2025_0046"},
		{"  spaced  ", "spaced"},
		{"a___b", "a_b"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, export.SanitizeFilename(tt.input))
	}
}

func TestBuildFilename_UsesISTDate(t *testing.T) {
	late := time.Date(2025, 11, 17, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "eway_bills_2025-11-18.xlsx", export.BuildFilename("eway bills", "xlsx", late))
}
