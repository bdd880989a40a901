// Package export renders invoices and e-way bill reports for download.
// All times are shown in Indian Standard Time.
package export

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BOM is the UTF-8 byte order mark Excel on Windows needs to detect UTF-8 CSV.
var BOM = []byte{0xEF, 0xBB, 0xBF}

const displayLayout = "02/01/2006 15:04"

// DisplayZone is the timezone used for every rendered timestamp.
var DisplayZone = loadDisplayZone()

func loadDisplayZone() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*60*60+30*60)
	}
	return loc
}

// FormatTime renders t in IST as dd/mm/yyyy hh:mm.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(DisplayZone).Format(displayLayout)
}

// importLayouts are accepted by ParseTime, rendered layout first.
var importLayouts = []string{displayLayout, "02/01/2006 15:04:05", "2006-01-02 15:04", "2006-01-02 15:04:05"}

// ParseTime reads a timestamp written by FormatTime. Layouts without a zone
// are taken as IST; RFC 3339 values keep their own offset.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	for _, layout := range importLayouts {
		if t, err := time.ParseInLocation(layout, s, DisplayZone); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

// FormatDate renders the IST calendar date of t.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(DisplayZone).Format("02/01/2006")
}

// FormatMoney renders an amount with exactly two decimals.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)
	multiUnderscore = regexp.MustCompile(`_{2,}`)
)

// SanitizeFilename keeps letters, digits, hyphens and underscores, collapses
// runs of underscores and truncates to 100 characters.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns {sanitized name}_{YYYY-MM-DD}.{ext} using the IST date of now.
func BuildFilename(name, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", SanitizeFilename(name), now.In(DisplayZone).Format("2006-01-02"), ext)
}
