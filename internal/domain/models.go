package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"freightdesk/internal/freight"
)

// Consignment is a booked lorry receipt (LR).
type Consignment struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	LRNumber       string          `db:"lr_number" json:"lr_number"`
	ConsignorName  string          `db:"consignor_name" json:"consignor_name"`
	ConsignorGSTIN string          `db:"consignor_gstin" json:"consignor_gstin"`
	ConsigneeName  string          `db:"consignee_name" json:"consignee_name"`
	ConsigneeGSTIN string          `db:"consignee_gstin" json:"consignee_gstin"`
	Origin         string          `db:"origin" json:"origin"`
	Destination    string          `db:"destination" json:"destination"`
	WeightKg       float64         `db:"weight_kg" json:"weight_kg"`
	FreightAmount  decimal.Decimal `db:"freight_amount" json:"freight_amount"`
	Status         DispatchStatus  `db:"status" json:"status"`
	InvoiceID      *uuid.UUID      `db:"invoice_id" json:"invoice_id,omitempty"`
	BookedAt       time.Time       `db:"booked_at" json:"booked_at"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// ToRecord converts the consignment into the engine's billing record.
func (c *Consignment) ToRecord(selected bool) freight.ConsignmentRecord {
	return freight.ConsignmentRecord{
		Identifier:    c.LRNumber,
		Origin:        c.Origin,
		Destination:   c.Destination,
		WeightKg:      c.WeightKg,
		FreightAmount: c.FreightAmount,
		Selected:      selected,
	}
}

// Billed reports whether the consignment is already on an invoice.
func (c *Consignment) Billed() bool {
	return c.Status == DispatchStatusBilled || c.InvoiceID != nil
}

// ConsignmentFilter narrows a consignment listing.
type ConsignmentFilter struct {
	Status        DispatchStatus
	CustomerGSTIN string
	Offset        int
	Limit         int
}

// Invoice is a stored freight invoice.
type Invoice struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	InvoiceNumber   string          `db:"invoice_number" json:"invoice_number"`
	InvoiceDate     time.Time       `db:"invoice_date" json:"invoice_date"`
	CustomerName    string          `db:"customer_name" json:"customer_name"`
	CustomerAddress string          `db:"customer_address" json:"customer_address"`
	CustomerGSTIN   string          `db:"customer_gstin" json:"customer_gstin"`
	SupplierGSTIN   string          `db:"supplier_gstin" json:"supplier_gstin"`
	SACCode         string          `db:"sac_code" json:"sac_code"`
	SupplyType      SupplyType      `db:"supply_type" json:"supply_type"`
	Subtotal        decimal.Decimal `db:"subtotal" json:"subtotal"`
	TotalTax        decimal.Decimal `db:"total_tax" json:"total_tax"`
	Total           decimal.Decimal `db:"total" json:"total"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	Lines           []InvoiceLine   `db:"-" json:"lines"`
	Taxes           []InvoiceTax    `db:"-" json:"taxes"`
}

// InvoiceNumbering is one yearly invoice series, rendered as
// <prefix>-<year>-<serial>.
type InvoiceNumbering struct {
	Prefix string
	Year   int
}

// Number renders serial seq of the series.
func (n InvoiceNumbering) Number(seq int) string {
	return fmt.Sprintf("%s-%d-%04d", n.Prefix, n.Year, seq)
}

// Totals rebuilds the engine totals from the stored rows.
func (inv *Invoice) Totals() freight.FreightTotals {
	t := freight.FreightTotals{Subtotal: inv.Subtotal, Total: inv.Total}
	for _, tx := range inv.Taxes {
		t.Taxes = append(t.Taxes, freight.TaxLine{Name: tx.Name, RatePercent: tx.RatePercent, Amount: tx.Amount})
	}
	return t
}

// InvoiceLine is one billed charge. Consignment lines carry the LR they bill.
type InvoiceLine struct {
	InvoiceID     uuid.UUID          `db:"invoice_id" json:"-"`
	Position      int                `db:"position" json:"position"`
	Kind          freight.ChargeKind `db:"kind" json:"kind"`
	ConsignmentID *uuid.UUID         `db:"consignment_id" json:"consignment_id,omitempty"`
	Description   string             `db:"description" json:"description"`
	Amount        decimal.Decimal    `db:"amount" json:"amount"`
}

// InvoiceTax is one tax component as printed on the invoice.
type InvoiceTax struct {
	InvoiceID   uuid.UUID       `db:"invoice_id" json:"-"`
	Position    int             `db:"position" json:"position"`
	Name        string          `db:"name" json:"name"`
	RatePercent decimal.Decimal `db:"rate_percent" json:"rate_percent"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
}

// EwayBill is a GST e-way bill attached to a consignment in transit.
type EwayBill struct {
	ID              uuid.UUID `db:"id" json:"id"`
	LRNumber        string    `db:"lr_number" json:"lr_number"`
	EwayBillNumber  string    `db:"eway_bill_number" json:"eway_bill_number"`
	VehicleNumber   string    `db:"vehicle_number" json:"vehicle_number"`
	Consignor       string    `db:"consignor" json:"consignor"`
	Consignee       string    `db:"consignee" json:"consignee"`
	Origin          string    `db:"origin" json:"origin"`
	Destination     string    `db:"destination" json:"destination"`
	DistanceKm      int       `db:"distance_km" json:"distance_km"`
	GeneratedAt     time.Time `db:"generated_at" json:"generated_at"`
	ValidityHours   int       `db:"validity_hours" json:"validity_hours"`
	ExpiresAt       time.Time `db:"expires_at" json:"expires_at"`
	DriverName      string    `db:"driver_name" json:"driver_name"`
	DriverPhone     string    `db:"driver_phone" json:"driver_phone"`
	CurrentLocation string    `db:"current_location" json:"current_location,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Document returns the bill's validity window for classification.
func (b *EwayBill) Document() (freight.ExpiryDocument, error) {
	return freight.ExpiryDocumentFrom(b.GeneratedAt, time.Duration(b.ValidityHours)*time.Hour, b.ExpiresAt)
}

// EwayBillStatus is an e-way bill classified at a point in time.
type EwayBillStatus struct {
	EwayBill
	freight.Classification
}

// EwayBillFilter narrows an e-way bill listing.
type EwayBillFilter struct {
	Query  string
	Status freight.Severity
}

// ExpiryAlert is one bill in an expiry alert digest.
type ExpiryAlert struct {
	EwayBillNumber string           `json:"eway_bill_number"`
	LRNumber       string           `json:"lr_number"`
	VehicleNumber  string           `json:"vehicle_number"`
	DriverName     string           `json:"driver_name"`
	DriverPhone    string           `json:"driver_phone"`
	ExpiresAt      time.Time        `json:"expires_at"`
	HoursRemaining int              `json:"hours_remaining"`
	Status         freight.Severity `json:"status"`
}
