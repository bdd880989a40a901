package freight

import (
	"regexp"
	"strconv"
	"strings"
)

// 2-digit state code, 10-character PAN, entity number, 'Z', check character.
var gstinPattern = regexp.MustCompile(`^\d{2}[A-Z]{5}\d{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

const (
	minStateCode = 1
	maxStateCode = 38
)

// NormalizeGSTIN trims and upper-cases a GSTIN.
func NormalizeGSTIN(gstin string) string {
	return strings.ToUpper(strings.TrimSpace(gstin))
}

// ValidateGSTIN checks the 15-character layout and that the state code is
// in 01-38. field names the offending input in the returned error.
func ValidateGSTIN(field, gstin string) error {
	if !gstinPattern.MatchString(gstin) {
		return invalid(field, "%q is not a valid GSTIN", gstin)
	}
	code, _ := strconv.Atoi(gstin[:2])
	if code < minStateCode || code > maxStateCode {
		return invalid(field, "state code %s is not in 01-38", gstin[:2])
	}
	return nil
}
