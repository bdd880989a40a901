package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"freightdesk/internal/domain"
	"freightdesk/internal/freight"
	"freightdesk/internal/service"
)

// Request and documentation types for the HTTP API. Decimal fields are
// documented as strings because that is how they travel in JSON.

// --- Request Types ---

// ApplyTaxRequest is the body of POST /freight/tax. Rate, when given, wins
// over supply_type and gst_rate.
type ApplyTaxRequest struct {
	Subtotal       decimal.Decimal   `json:"subtotal" swaggertype:"string" example:"35000"`
	Rate           *freight.TaxRate  `json:"rate,omitempty"`
	SupplyType     domain.SupplyType `json:"supply_type" example:"auto"`
	GSTRate        *decimal.Decimal  `json:"gst_rate,omitempty" swaggertype:"string" example:"5"`
	SupplierGSTIN  string            `json:"supplier_gstin" example:"27AAACF1234A1Z5"`
	RecipientGSTIN string            `json:"recipient_gstin" example:"29AADCD4521K1ZQ"`
}

// ComposeInvoiceRequest is the body of POST /invoices and /invoices/preview.
// Omitting extra_charges applies the default unloading and detention
// charges; an empty array bills none.
type ComposeInvoiceRequest struct {
	ConsignmentIDs  []uuid.UUID              `json:"consignment_ids" example:"550e8400-e29b-41d4-a716-446655440000"`
	ExtraCharges    []freight.ChargeLineItem `json:"extra_charges"`
	SupplyType      domain.SupplyType        `json:"supply_type" example:"auto"`
	GSTRate         *decimal.Decimal         `json:"gst_rate,omitempty" swaggertype:"string" example:"5"`
	CustomerName    string                   `json:"customer_name" example:"ABC Industries"`
	CustomerAddress string                   `json:"customer_address" example:"Plot 12, MIDC Andheri East, Mumbai"`
	CustomerGSTIN   string                   `json:"customer_gstin" example:"27AABCU9603R1ZM"`
	InvoiceDate     *time.Time               `json:"invoice_date,omitempty" example:"2025-11-18T10:00:00Z"`
}

func (r *ComposeInvoiceRequest) toInput() *service.ComposeInput {
	in := &service.ComposeInput{
		ConsignmentIDs:  r.ConsignmentIDs,
		ExtraCharges:    r.ExtraCharges,
		SupplyType:      r.SupplyType,
		GSTRate:         r.GSTRate,
		CustomerName:    r.CustomerName,
		CustomerAddress: r.CustomerAddress,
		CustomerGSTIN:   r.CustomerGSTIN,
	}
	if r.InvoiceDate != nil {
		in.InvoiceDate = *r.InvoiceDate
	}
	return in
}

// RegisterEwayBillRequest is the body of POST /eway-bills. Give either
// validity_hours or expires_at, or both when they agree.
type RegisterEwayBillRequest struct {
	LRNumber        string     `json:"lr_number" example:"LR001"`
	EwayBillNumber  string     `json:"eway_bill_number" binding:"required" example:"331000000001"`
	VehicleNumber   string     `json:"vehicle_number" binding:"required" example:"MH12AB1234"`
	Consignor       string     `json:"consignor" example:"ABC Industries"`
	Consignee       string     `json:"consignee" example:"XYZ Traders"`
	Origin          string     `json:"origin" example:"Mumbai"`
	Destination     string     `json:"destination" example:"Pune"`
	DistanceKm      int        `json:"distance_km" example:"150"`
	GeneratedAt     time.Time  `json:"generated_at" example:"2025-11-18T04:30:00Z"`
	ValidityHours   int        `json:"validity_hours" example:"24"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty" example:"2025-11-19T04:30:00Z"`
	DriverName      string     `json:"driver_name" example:"Ramesh Patil"`
	DriverPhone     string     `json:"driver_phone" example:"+91 98765 43210"`
	CurrentLocation string     `json:"current_location" example:"Lonavala"`
}

func (r *RegisterEwayBillRequest) toInput() *service.RegisterEwayBillInput {
	in := &service.RegisterEwayBillInput{
		LRNumber:        r.LRNumber,
		EwayBillNumber:  r.EwayBillNumber,
		VehicleNumber:   r.VehicleNumber,
		Consignor:       r.Consignor,
		Consignee:       r.Consignee,
		Origin:          r.Origin,
		Destination:     r.Destination,
		DistanceKm:      r.DistanceKm,
		GeneratedAt:     r.GeneratedAt,
		ValidityHours:   r.ValidityHours,
		DriverName:      r.DriverName,
		DriverPhone:     r.DriverPhone,
		CurrentLocation: r.CurrentLocation,
	}
	if r.ExpiresAt != nil {
		in.ExpiresAt = *r.ExpiresAt
	}
	return in
}

// --- Response Types ---

// ErrorResponseBody is the envelope returned for every error.
type ErrorResponseBody struct {
	Success bool     `json:"success" example:"false"`
	Error   APIError `json:"error"`
}

// TaxLineBody documents freight.TaxLine.
type TaxLineBody struct {
	Name        string `json:"name" example:"CGST"`
	RatePercent string `json:"rate_percent" example:"2.5"`
	Amount      string `json:"amount" example:"1300"`
}

// FreightTotalsBody documents freight.FreightTotals.
type FreightTotalsBody struct {
	Subtotal string        `json:"subtotal" example:"52000"`
	Taxes    []TaxLineBody `json:"taxes"`
	Total    string        `json:"total" example:"54600"`
}

// EwayBillStatusBody documents domain.EwayBillStatus.
type EwayBillStatusBody struct {
	domain.EwayBill
	HoursRemaining int    `json:"hours_remaining" example:"11"`
	Status         string `json:"status" example:"critical" enums:"expired,critical,warning,active"`
}
