package freight_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/internal/freight"
)

func TestApplyTax_Flat(t *testing.T) {
	totals := freight.ApplyTax(dec("35000"), freight.FlatRate(dec("18")))

	assert.Equal(t, "35000.00", totals.Subtotal.StringFixed(2))
	require.Len(t, totals.Taxes, 1)
	assert.Equal(t, freight.TaxGST, totals.Taxes[0].Name)
	assert.Equal(t, "6300.00", totals.Tax(freight.TaxGST).StringFixed(2))
	assert.Equal(t, "41300.00", totals.Total.StringFixed(2))
}

func TestApplyTax_ZeroRateIsIdentity(t *testing.T) {
	for _, s := range []string{"0", "0.01", "999.99", "35000", "123456789.12"} {
		totals := freight.ApplyTax(dec(s), freight.FlatRate(decimal.Zero))
		assert.True(t, totals.Total.Equal(dec(s)), "subtotal %s", s)
		assert.True(t, totals.TotalTax().IsZero())
	}
}

func TestApplyTax_SplitRoundsEachComponent(t *testing.T) {
	totals := freight.ApplyTax(dec("1000"), freight.IntraStateGST(dec("5")))

	breakdown := totals.TaxBreakdown()
	require.Len(t, breakdown, 2)
	assert.Equal(t, "25.00", breakdown[freight.TaxCGST].StringFixed(2))
	assert.Equal(t, "25.00", breakdown[freight.TaxSGST].StringFixed(2))
	assert.Equal(t, "1050.00", totals.Total.StringFixed(2))
}

func TestApplyTax_RoundBeforeSum(t *testing.T) {
	// 0.0025 per component rounds to zero; the unrounded sum 0.005 would not.
	totals := freight.ApplyTax(dec("0.10"), freight.IntraStateGST(dec("5")))
	assert.Equal(t, "0.00", totals.Tax(freight.TaxCGST).StringFixed(2))
	assert.Equal(t, "0.00", totals.Tax(freight.TaxSGST).StringFixed(2))
	assert.Equal(t, "0.10", totals.Total.StringFixed(2))
}

func TestApplyTax_TotalInvariant(t *testing.T) {
	rates := []freight.TaxRate{
		freight.FlatRate(dec("18")),
		freight.IntraStateGST(dec("5")),
		freight.InterStateGST(dec("12")),
		freight.SplitRate(
			freight.TaxComponent{Name: "CGST", RatePercent: dec("9")},
			freight.TaxComponent{Name: "SGST", RatePercent: dec("9")},
			freight.TaxComponent{Name: "CESS", RatePercent: dec("1.333")},
		),
	}
	for _, r := range rates {
		for _, s := range []string{"0", "1", "17.17", "52000", "99999.99"} {
			totals := freight.ApplyTax(dec(s), r)
			assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.TotalTax())))
		}
	}
}

func TestApplyTax_Idempotent(t *testing.T) {
	r := freight.IntraStateGST(dec("5"))
	a := freight.ApplyTax(dec("12345.67"), r)
	b := freight.ApplyTax(dec("12345.67"), r)
	assert.True(t, a.Total.Equal(b.Total))
	assert.Equal(t, a.TaxBreakdown()[freight.TaxCGST].String(), b.TaxBreakdown()[freight.TaxCGST].String())
}

func TestApplyTax_NegativeComponentTreatedAsZero(t *testing.T) {
	totals := freight.ApplyTax(dec("1000"), freight.FlatRate(dec("-5")))
	assert.Equal(t, "1000.00", totals.Total.StringFixed(2))
}

func TestInterStateGST(t *testing.T) {
	totals := freight.ApplyTax(dec("52000"), freight.InterStateGST(dec("5")))
	assert.Equal(t, "2600.00", totals.Tax(freight.TaxIGST).StringFixed(2))
	assert.Equal(t, "54600.00", totals.Total.StringFixed(2))
}

func TestTaxRate_EffectiveRate(t *testing.T) {
	assert.Equal(t, "5", freight.IntraStateGST(dec("5")).EffectiveRate().String())
	assert.Equal(t, "18", freight.FlatRate(dec("18")).EffectiveRate().String())
}

func TestTaxRate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		rate    freight.TaxRate
		wantErr bool
	}{
		{"flat", freight.FlatRate(dec("18")), false},
		{"flat_zero", freight.FlatRate(decimal.Zero), false},
		{"split", freight.IntraStateGST(dec("5")), false},
		{"implicit_split", freight.TaxRate{Components: []freight.TaxComponent{{Name: "IGST", RatePercent: dec("5")}}}, false},
		{"flat_negative", freight.FlatRate(dec("-1")), true},
		{"split_empty", freight.TaxRate{Mode: freight.TaxModeSplit}, true},
		{"split_negative", freight.SplitRate(freight.TaxComponent{Name: "CGST", RatePercent: dec("-2.5")}), true},
		{"split_unnamed", freight.SplitRate(freight.TaxComponent{RatePercent: dec("2.5")}), true},
		{"split_duplicate", freight.SplitRate(
			freight.TaxComponent{Name: "CGST", RatePercent: dec("2.5")},
			freight.TaxComponent{Name: "cgst", RatePercent: dec("2.5")},
		), true},
		{"unknown_mode", freight.TaxRate{Mode: "compound"}, true},
		{"flat_huge_exponent", freight.FlatRate(dec("1e5000000")), true},
		{"split_huge_exponent", freight.SplitRate(freight.TaxComponent{Name: "CGST", RatePercent: dec("1e400")}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rate.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, freight.ErrValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGSTForSupply(t *testing.T) {
	t.Run("same_state", func(t *testing.T) {
		r := freight.GSTForSupply("27AABCU9603R1ZM", "27AAFCJ8239F1ZB", dec("5"))
		assert.Equal(t, freight.TaxModeSplit, r.Mode)
		totals := freight.ApplyTax(dec("1000"), r)
		assert.Equal(t, "25.00", totals.Tax(freight.TaxCGST).StringFixed(2))
	})

	t.Run("different_state", func(t *testing.T) {
		r := freight.GSTForSupply("27AABCU9603R1ZM", "29AADCB2230M1ZT", dec("5"))
		totals := freight.ApplyTax(dec("1000"), r)
		assert.Equal(t, "50.00", totals.Tax(freight.TaxIGST).StringFixed(2))
		assert.True(t, totals.Tax(freight.TaxCGST).IsZero())
	})

	t.Run("unknown_recipient_defaults_intra", func(t *testing.T) {
		assert.False(t, freight.IsInterState("27AABCU9603R1ZM", ""))
		assert.False(t, freight.IsInterState("27AABCU9603R1ZM", "URP"))
	})
}

func TestStateCode(t *testing.T) {
	assert.Equal(t, "27", freight.StateCode("27AABCU9603R1ZM"))
	assert.Equal(t, "09", freight.StateCode(" 09AAECP8923Q1Z5"))
	assert.Equal(t, "", freight.StateCode("X"))
	assert.Equal(t, "", freight.StateCode("AB1234"))
}
