package freight

import "github.com/shopspring/decimal"

// ChargeKind identifies a component of a shipment's cost.
type ChargeKind string

const (
	ChargeBaseFreight  ChargeKind = "base_freight"
	ChargeLoading      ChargeKind = "loading"
	ChargeUnloading    ChargeKind = "unloading"
	ChargeDoorDelivery ChargeKind = "door_delivery"
	ChargeDetention    ChargeKind = "detention"
	ChargeOther        ChargeKind = "other"
)

var validChargeKinds = map[ChargeKind]bool{
	ChargeBaseFreight:  true,
	ChargeLoading:      true,
	ChargeUnloading:    true,
	ChargeDoorDelivery: true,
	ChargeDetention:    true,
	ChargeOther:        true,
}

// Valid reports whether k is a recognized charge kind.
func (k ChargeKind) Valid() bool {
	return validChargeKinds[k]
}

// ChargeLineItem is one itemized charge. Label is free text shown next to
// the amount (an LR number, "Detention - 2 days").
type ChargeLineItem struct {
	Kind   ChargeKind      `json:"kind"`
	Label  string          `json:"label,omitempty"`
	Amount decimal.Decimal `json:"amount"`
}

// Billable is the amount that counts toward the subtotal: negative and
// out-of-range amounts become zero and the rest is rounded to paise.
func (i ChargeLineItem) Billable() decimal.Decimal {
	if !AmountInRange(i.Amount) {
		return decimal.Zero
	}
	return RoundCurrency(nonNegative(i.Amount))
}

// Aggregate sums the line items into a subtotal in paise precision.
// Each amount is rounded before it is added, so splitting a list in two and
// adding the partial subtotals always gives the same result.
func Aggregate(items []ChargeLineItem) decimal.Decimal {
	sum := decimal.Zero
	for i := range items {
		sum = sum.Add(items[i].Billable())
	}
	return sum
}
