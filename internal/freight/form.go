package freight

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultLRGSTRate is the GST percentage pre-filled on the LR capture form.
var DefaultLRGSTRate = decimal.NewFromInt(18)

// ChargeForm holds the raw charge fields of the LR capture screen.
// Every field is the string the user typed; blanks and garbage count as zero.
type ChargeForm struct {
	BaseFreight         string `json:"base_freight"`
	LoadingCharges      string `json:"loading_charges"`
	UnloadingCharges    string `json:"unloading_charges"`
	DoorDeliveryCharges string `json:"door_delivery_charges"`
	OtherCharges        string `json:"other_charges"`
	GSTRate             string `json:"gst_rate"`
}

// LineItems converts the form into the five LR charge lines.
func (f ChargeForm) LineItems() []ChargeLineItem {
	return []ChargeLineItem{
		{Kind: ChargeBaseFreight, Amount: ParseAmount(f.BaseFreight)},
		{Kind: ChargeLoading, Amount: ParseAmount(f.LoadingCharges)},
		{Kind: ChargeUnloading, Amount: ParseAmount(f.UnloadingCharges)},
		{Kind: ChargeDoorDelivery, Amount: ParseAmount(f.DoorDeliveryCharges)},
		{Kind: ChargeOther, Amount: ParseAmount(f.OtherCharges)},
	}
}

// TaxRate is a flat GST rate from the form, or defaultRate when left blank.
func (f ChargeForm) TaxRate(defaultRate decimal.Decimal) TaxRate {
	if strings.TrimSpace(f.GSTRate) == "" {
		return FlatRate(defaultRate)
	}
	return FlatRate(ParseAmount(f.GSTRate))
}

// Quote computes the LR totals shown under the charges section.
func (f ChargeForm) Quote(defaultRate decimal.Decimal) FreightTotals {
	return ApplyTax(Aggregate(f.LineItems()), f.TaxRate(defaultRate))
}
