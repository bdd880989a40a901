package freight

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TaxMode selects how a TaxRate is applied.
type TaxMode string

const (
	TaxModeFlat  TaxMode = "flat"
	TaxModeSplit TaxMode = "split"
)

// Component names used on GST invoices.
const (
	TaxGST  = "GST"
	TaxCGST = "CGST"
	TaxSGST = "SGST"
	TaxIGST = "IGST"
)

// TaxComponent is one named sub-rate of a split tax.
type TaxComponent struct {
	Name        string          `json:"name"`
	RatePercent decimal.Decimal `json:"rate_percent"`
}

// TaxRate is either a single flat percentage or a split of named
// components whose sum is the effective rate.
type TaxRate struct {
	Mode        TaxMode         `json:"mode"`
	Name        string          `json:"name,omitempty"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	Components  []TaxComponent  `json:"components,omitempty"`
}

// FlatRate returns a single-component GST rate.
func FlatRate(ratePercent decimal.Decimal) TaxRate {
	return TaxRate{Mode: TaxModeFlat, Name: TaxGST, RatePercent: ratePercent}
}

// SplitRate returns a rate made of the given components.
func SplitRate(components ...TaxComponent) TaxRate {
	return TaxRate{Mode: TaxModeSplit, Components: components}
}

// IntraStateGST splits the total GST rate equally into CGST and SGST.
func IntraStateGST(totalPercent decimal.Decimal) TaxRate {
	half := totalPercent.Div(decimal.NewFromInt(2))
	return SplitRate(
		TaxComponent{Name: TaxCGST, RatePercent: half},
		TaxComponent{Name: TaxSGST, RatePercent: half},
	)
}

// InterStateGST charges the whole GST rate as IGST.
func InterStateGST(totalPercent decimal.Decimal) TaxRate {
	return TaxRate{Mode: TaxModeFlat, Name: TaxIGST, RatePercent: totalPercent}
}

// EffectiveRate is the total percentage charged.
func (r TaxRate) EffectiveRate() decimal.Decimal {
	sum := decimal.Zero
	for _, c := range r.components() {
		sum = sum.Add(c.RatePercent)
	}
	return sum
}

// Validate checks the structural invariants of the rate: a known mode,
// non-negative, in-range components and unique, non-empty component names.
func (r TaxRate) Validate() error {
	switch r.mode() {
	case TaxModeFlat:
		if r.RatePercent.IsNegative() {
			return invalid("rate_percent", "must not be negative")
		}
		if err := CheckAmount("rate_percent", r.RatePercent); err != nil {
			return err
		}
	case TaxModeSplit:
		if len(r.Components) == 0 {
			return invalid("components", "split rate needs at least one component")
		}
		seen := make(map[string]bool, len(r.Components))
		for _, c := range r.Components {
			name := strings.ToUpper(strings.TrimSpace(c.Name))
			if name == "" {
				return invalid("components", "component name is required")
			}
			if seen[name] {
				return invalid("components", "duplicate component %q", c.Name)
			}
			seen[name] = true
			if c.RatePercent.IsNegative() {
				return invalid("components", "%s rate must not be negative", c.Name)
			}
			if !AmountInRange(c.RatePercent) {
				return invalid("components", "%s rate is out of range", c.Name)
			}
		}
	default:
		return invalid("mode", "unknown tax mode %q", r.Mode)
	}
	return nil
}

func (r TaxRate) mode() TaxMode {
	if r.Mode == "" {
		if len(r.Components) > 0 {
			return TaxModeSplit
		}
		return TaxModeFlat
	}
	return r.Mode
}

func (r TaxRate) components() []TaxComponent {
	if r.mode() == TaxModeSplit {
		return r.Components
	}
	name := r.Name
	if name == "" {
		name = TaxGST
	}
	return []TaxComponent{{Name: name, RatePercent: r.RatePercent}}
}

// TaxLine is one computed tax component.
type TaxLine struct {
	Name        string          `json:"name"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	Amount      decimal.Decimal `json:"amount"`
}

// FreightTotals is the result of a freight calculation.
// Total always equals Subtotal plus the sum of the Taxes amounts.
type FreightTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Taxes    []TaxLine       `json:"taxes"`
	Total    decimal.Decimal `json:"total"`
}

// TaxBreakdown maps component name to computed amount.
func (t FreightTotals) TaxBreakdown() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(t.Taxes))
	for _, l := range t.Taxes {
		m[l.Name] = l.Amount
	}
	return m
}

// TotalTax is the sum of all tax components.
func (t FreightTotals) TotalTax() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range t.Taxes {
		sum = sum.Add(l.Amount)
	}
	return sum
}

// Tax returns the amount of the named component, or zero.
func (t FreightTotals) Tax(name string) decimal.Decimal {
	for _, l := range t.Taxes {
		if strings.EqualFold(l.Name, name) {
			return l.Amount
		}
	}
	return decimal.Zero
}

// ApplyTax computes every component of rate on subtotal and adds them up.
// Components are rounded to paise one by one before summing; the printed
// per-line amounts therefore always add up to the printed total.
// Negative component rates are treated as zero.
func ApplyTax(subtotal decimal.Decimal, rate TaxRate) FreightTotals {
	subtotal = RoundCurrency(subtotal)
	comps := rate.components()

	totals := FreightTotals{
		Subtotal: subtotal,
		Taxes:    make([]TaxLine, 0, len(comps)),
		Total:    subtotal,
	}
	for _, c := range comps {
		pct := nonNegative(c.RatePercent)
		amount := RoundCurrency(subtotal.Mul(pct).Div(hundred))
		totals.Taxes = append(totals.Taxes, TaxLine{Name: c.Name, RatePercent: pct, Amount: amount})
		totals.Total = totals.Total.Add(amount)
	}
	return totals
}
