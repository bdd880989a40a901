// Package email renders expiry alert digests shared by the alert senders.
package email

import (
	"fmt"
	"html"
	"strings"

	"freightdesk/internal/domain"
	"freightdesk/internal/export"
	"freightdesk/internal/freight"
)

// Digest is a rendered alert email.
type Digest struct {
	Subject string
	Text    string
	HTML    string
}

// BuildExpiryDigest renders one email listing every alert, expired bills first.
func BuildExpiryDigest(alerts []domain.ExpiryAlert) Digest {
	expired := 0
	for _, a := range alerts {
		if a.Status == freight.SeverityExpired {
			expired++
		}
	}
	subject := fmt.Sprintf("E-way bill alert: %d expired, %d expiring within 12h", expired, len(alerts)-expired)

	var text, rows strings.Builder
	text.WriteString("The following e-way bills need attention:\n\n")
	for _, a := range ordered(alerts) {
		fmt.Fprintf(&text, "- %s (LR %s, vehicle %s): %s, %s, expires %s IST. Driver %s %s\n",
			a.EwayBillNumber, a.LRNumber, a.VehicleNumber, strings.ToUpper(string(a.Status)),
			hoursPhrase(a.HoursRemaining), export.FormatTime(a.ExpiresAt), a.DriverName, a.DriverPhone)

		fmt.Fprintf(&rows, "<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td></tr>",
			html.EscapeString(a.EwayBillNumber), html.EscapeString(a.LRNumber), html.EscapeString(a.VehicleNumber),
			strings.ToUpper(string(a.Status)), hoursPhrase(a.HoursRemaining),
			export.FormatTime(a.ExpiresAt), html.EscapeString(a.DriverName+" "+a.DriverPhone))
	}
	text.WriteString("\nExtend or regenerate these bills before the vehicles move further.\n")

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 720px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #B42318;">E-way bills need attention</h2>
  <table style="border-collapse: collapse; width: 100%%;" border="1" cellpadding="6">
    <tr><th>E-way Bill</th><th>LR</th><th>Vehicle</th><th>Status</th><th>Remaining</th><th>Expires (IST)</th><th>Driver</th></tr>
    %s
  </table>
</body>
</html>`, rows.String())

	return Digest{Subject: subject, Text: text.String(), HTML: body}
}

func ordered(alerts []domain.ExpiryAlert) []domain.ExpiryAlert {
	out := make([]domain.ExpiryAlert, 0, len(alerts))
	for _, a := range alerts {
		if a.Status == freight.SeverityExpired {
			out = append(out, a)
		}
	}
	for _, a := range alerts {
		if a.Status != freight.SeverityExpired {
			out = append(out, a)
		}
	}
	return out
}

func hoursPhrase(h int) string {
	if h < 0 {
		return fmt.Sprintf("expired %dh ago", -h)
	}
	return fmt.Sprintf("%dh left", h)
}
