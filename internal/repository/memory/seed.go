package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"freightdesk/internal/domain"
)

const (
	gstinABCIndustries = "27AABCU9603R1ZM"
	gstinDEFExports    = "29AADCD4521K1ZQ"
)

// Seed fills the store with a demo LR register and e-way bills whose
// validity windows are laid out around now so every severity shows up.
func Seed(s *Store, now time.Time) {
	now = now.UTC()
	booked := now.Add(-72 * time.Hour)

	lrs := []struct {
		lr, consignor, consignorGSTIN, consignee, from, to string
		weight                                             float64
		freight                                            int64
		status                                             domain.DispatchStatus
	}{
		{"LR001", "ABC Industries", gstinABCIndustries, "XYZ Retail Ltd", "Mumbai", "Pune", 5000, 15000, domain.DispatchStatusDelivered},
		{"LR002", "ABC Industries", gstinABCIndustries, "XYZ Retail Ltd", "Mumbai", "Pune", 3500, 12000, domain.DispatchStatusDelivered},
		{"LR003", "ABC Industries", gstinABCIndustries, "PQR Distributors", "Mumbai", "Nashik", 4200, 18000, domain.DispatchStatusDelivered},
		{"LR004", "DEF Exports", gstinDEFExports, "LMN Imports", "Bangalore", "Chennai", 6000, 22000, domain.DispatchStatusInTransit},
		{"LR005", "DEF Exports", gstinDEFExports, "LMN Imports", "Bangalore", "Chennai", 2800, 9500, domain.DispatchStatusPending},
	}
	for i, l := range lrs {
		s.AddConsignment(domain.Consignment{
			ID:             uuid.New(),
			LRNumber:       l.lr,
			ConsignorName:  l.consignor,
			ConsignorGSTIN: l.consignorGSTIN,
			ConsigneeName:  l.consignee,
			Origin:         l.from,
			Destination:    l.to,
			WeightKg:       l.weight,
			FreightAmount:  decimal.NewFromInt(l.freight),
			Status:         l.status,
			BookedAt:       booked.Add(time.Duration(i) * time.Hour),
			CreatedAt:      booked,
			UpdatedAt:      booked,
		})
	}

	bills := []struct {
		lr, number, vehicle, consignor, consignee, from, to string
		distance                                            int
		age                                                 time.Duration
		validity                                            int
		driver, phone, location                             string
	}{
		{"LR-2025-001", "381234567890", "MH12AB1234", "ABC Industries", "XYZ Corp", "Mumbai", "Delhi", 1450, 62 * time.Hour, 72, "Ramesh Kumar", "9876543210", "Ahmedabad"},
		{"LR-2025-002", "381234567891", "MH12CD5678", "DEF Traders", "GHI Logistics", "Bangalore", "Chennai", 350, 26 * time.Hour, 24, "Suresh Patil", "9876543211", "Bangalore Outskirts"},
		{"LR-2025-003", "381234567892", "DL13EF9012", "JKL Enterprises", "MNO Industries", "Mumbai", "Pune", 150, 4 * time.Hour, 24, "Vijay Singh", "9876543212", "Lonavala"},
		{"LR-2025-004", "381234567893", "GJ01GH3456", "PQR Corp", "STU Traders", "Ahmedabad", "Surat", 280, 20 * time.Hour, 72, "Rajesh Sharma", "9876543213", "Bharuch"},
		{"LR-2025-005", "381234567894", "KA03IJ7890", "VWX Industries", "YZA Logistics", "Bangalore", "Hyderabad", 570, 50 * time.Hour, 48, "Anil Reddy", "9876543214", "Kurnool"},
	}
	for _, b := range bills {
		generated := now.Add(-b.age)
		s.AddEwayBill(domain.EwayBill{
			ID:              uuid.New(),
			LRNumber:        b.lr,
			EwayBillNumber:  b.number,
			VehicleNumber:   b.vehicle,
			Consignor:       b.consignor,
			Consignee:       b.consignee,
			Origin:          b.from,
			Destination:     b.to,
			DistanceKm:      b.distance,
			GeneratedAt:     generated,
			ValidityHours:   b.validity,
			ExpiresAt:       generated.Add(time.Duration(b.validity) * time.Hour),
			DriverName:      b.driver,
			DriverPhone:     b.phone,
			CurrentLocation: b.location,
			CreatedAt:       generated,
		})
	}
}
