package freight

import (
	"strings"

	"github.com/shopspring/decimal"
)

// StateCode returns the two-digit state code that prefixes a GSTIN,
// or "" when the GSTIN is missing or malformed.
func StateCode(gstin string) string {
	g := strings.TrimSpace(gstin)
	if len(g) < 2 {
		return ""
	}
	code := g[:2]
	if code[0] < '0' || code[0] > '9' || code[1] < '0' || code[1] > '9' {
		return ""
	}
	return code
}

// IsInterState reports whether supplier and recipient are registered in
// different states. Unknown state codes count as intra-state.
func IsInterState(supplierGSTIN, recipientGSTIN string) bool {
	s, r := StateCode(supplierGSTIN), StateCode(recipientGSTIN)
	return s != "" && r != "" && s != r
}

// GSTForSupply picks IGST for inter-state supplies and CGST+SGST otherwise.
func GSTForSupply(supplierGSTIN, recipientGSTIN string, totalPercent decimal.Decimal) TaxRate {
	if IsInterState(supplierGSTIN, recipientGSTIN) {
		return InterStateGST(totalPercent)
	}
	return IntraStateGST(totalPercent)
}
