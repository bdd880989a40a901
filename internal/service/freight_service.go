package service

import (
	"github.com/shopspring/decimal"

	"freightdesk/internal/domain"
	"freightdesk/internal/freight"
)

// TaxInput is the DTO for an ad-hoc tax calculation. Either Rate is given
// explicitly, or the rate is derived from SupplyType and GSTRate.
type TaxInput struct {
	Subtotal       decimal.Decimal
	Rate           *freight.TaxRate
	SupplyType     domain.SupplyType
	GSTRate        *decimal.Decimal
	SupplierGSTIN  string
	RecipientGSTIN string
}

// TaxDefaults holds the configured GST rates.
type TaxDefaults struct {
	LRGSTRate      decimal.Decimal
	FreightGSTRate decimal.Decimal
	SupplierGSTIN  string
}

// FreightService exposes the freight calculators to the HTTP layer.
type FreightService interface {
	Quote(form freight.ChargeForm) freight.FreightTotals
	ApplyTax(input *TaxInput) (*freight.FreightTotals, error)
}

type freightService struct {
	defaults TaxDefaults
}

// NewFreightService creates a new FreightService implementation.
func NewFreightService(defaults TaxDefaults) FreightService {
	return &freightService{defaults: defaults}
}

func (s *freightService) Quote(form freight.ChargeForm) freight.FreightTotals {
	return form.Quote(s.defaults.LRGSTRate)
}

func (s *freightService) ApplyTax(input *TaxInput) (*freight.FreightTotals, error) {
	if err := freight.CheckAmount("subtotal", input.Subtotal); err != nil {
		return nil, err
	}
	if input.Subtotal.IsNegative() {
		return nil, &freight.ValidationError{Field: "subtotal", Message: "must not be negative"}
	}

	var rate freight.TaxRate
	if input.Rate != nil {
		if err := input.Rate.Validate(); err != nil {
			return nil, err
		}
		rate = *input.Rate
	} else {
		pct := s.defaults.FreightGSTRate
		if input.GSTRate != nil {
			pct = *input.GSTRate
		}
		supplier := freight.NormalizeGSTIN(input.SupplierGSTIN)
		if supplier == "" {
			supplier = s.defaults.SupplierGSTIN
		} else if err := freight.ValidateGSTIN("supplier_gstin", supplier); err != nil {
			return nil, err
		}
		recipient := freight.NormalizeGSTIN(input.RecipientGSTIN)
		if recipient != "" {
			if err := freight.ValidateGSTIN("recipient_gstin", recipient); err != nil {
				return nil, err
			}
		}
		var err error
		if rate, _, err = resolveRate(input.SupplyType, pct, supplier, recipient); err != nil {
			return nil, err
		}
	}

	totals := freight.ApplyTax(input.Subtotal, rate)
	return &totals, nil
}

// resolveRate turns a supply type and total GST percentage into a concrete
// rate. Auto (or empty) compares the GSTIN state codes.
func resolveRate(supply domain.SupplyType, pct decimal.Decimal, supplierGSTIN, recipientGSTIN string) (freight.TaxRate, domain.SupplyType, error) {
	if err := freight.CheckAmount("gst_rate", pct); err != nil {
		return freight.TaxRate{}, "", err
	}
	if pct.IsNegative() {
		return freight.TaxRate{}, "", &freight.ValidationError{Field: "gst_rate", Message: "must not be negative"}
	}
	if supply == "" {
		supply = domain.SupplyTypeAuto
	}
	if !supply.Valid() {
		return freight.TaxRate{}, "", domain.ErrInvalidSupplyType
	}
	if supply == domain.SupplyTypeAuto {
		supply = domain.SupplyTypeIntra
		if freight.IsInterState(supplierGSTIN, recipientGSTIN) {
			supply = domain.SupplyTypeInter
		}
	}
	if supply == domain.SupplyTypeInter {
		return freight.InterStateGST(pct), supply, nil
	}
	return freight.IntraStateGST(pct), supply, nil
}
