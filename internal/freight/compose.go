package freight

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// ConsignmentRecord is a billable consignment as seen by the invoice screen.
type ConsignmentRecord struct {
	Identifier    string          `json:"identifier"`
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	WeightKg      float64         `json:"weight_kg"`
	FreightAmount decimal.Decimal `json:"freight_amount"`
	Selected      bool            `json:"selected"`
}

// ChargeLine returns the record's freight as a base freight line item.
func (r ConsignmentRecord) ChargeLine() ChargeLineItem {
	return ChargeLineItem{Kind: ChargeBaseFreight, Label: r.Identifier, Amount: r.FreightAmount}
}

// SelectedRecords keeps the records the user ticked.
func SelectedRecords(records []ConsignmentRecord) []ConsignmentRecord {
	return lo.Filter(records, func(r ConsignmentRecord, _ int) bool { return r.Selected })
}

// Compose totals an invoice over the given records plus extra charges.
// It does not look at Selected; callers pass exactly the records to bill.
// An empty input yields all-zero totals.
func Compose(selected []ConsignmentRecord, extraCharges []ChargeLineItem, rate TaxRate) FreightTotals {
	items := make([]ChargeLineItem, 0, len(selected)+len(extraCharges))
	for i := range selected {
		items = append(items, selected[i].ChargeLine())
	}
	items = append(items, extraCharges...)
	return ApplyTax(Aggregate(items), rate)
}
