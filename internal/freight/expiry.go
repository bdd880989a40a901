package freight

import "time"

// Severity buckets an expiry document by time remaining.
type Severity string

const (
	SeverityExpired  Severity = "expired"
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityActive   Severity = "active"
)

var validSeverities = map[Severity]bool{
	SeverityExpired:  true,
	SeverityCritical: true,
	SeverityWarning:  true,
	SeverityActive:   true,
}

// Valid reports whether s is a recognized severity.
func (s Severity) Valid() bool {
	return validSeverities[s]
}

// Inclusive upper bounds of the critical and warning buckets.
const (
	CriticalWindow = 12 * time.Hour
	WarningWindow  = 24 * time.Hour
)

// ExpiryDocument is a time-bound document such as an e-way bill.
// Values are only produced by the constructors, which guarantee
// ExpiresAt > GeneratedAt.
type ExpiryDocument struct {
	generatedAt time.Time
	validity    time.Duration
	expiresAt   time.Time
}

// NewExpiryDocument builds a document valid for the given duration.
func NewExpiryDocument(generatedAt time.Time, validity time.Duration) (ExpiryDocument, error) {
	return ExpiryDocumentFrom(generatedAt, validity, time.Time{})
}

// ExpiryDocumentFrom builds a document from any combination of validity and
// explicit expiry. A zero value means "not supplied"; when both are given
// they must agree.
func ExpiryDocumentFrom(generatedAt time.Time, validity time.Duration, expiresAt time.Time) (ExpiryDocument, error) {
	if generatedAt.IsZero() {
		return ExpiryDocument{}, invalid("generated_at", "is required")
	}
	switch {
	case validity == 0 && expiresAt.IsZero():
		return ExpiryDocument{}, invalid("validity", "validity or expiry time is required")
	case expiresAt.IsZero():
		expiresAt = generatedAt.Add(validity)
	case validity == 0:
		validity = expiresAt.Sub(generatedAt)
	case !generatedAt.Add(validity).Equal(expiresAt):
		return ExpiryDocument{}, invalid("expires_at", "does not match generated_at + validity (%s)", validity)
	}
	if !expiresAt.After(generatedAt) {
		return ExpiryDocument{}, invalid("expires_at", "must be after generated_at")
	}
	return ExpiryDocument{
		generatedAt: generatedAt.UTC(),
		validity:    validity,
		expiresAt:   expiresAt.UTC(),
	}, nil
}

func (d ExpiryDocument) GeneratedAt() time.Time  { return d.generatedAt }
func (d ExpiryDocument) Validity() time.Duration { return d.validity }
func (d ExpiryDocument) ExpiresAt() time.Time    { return d.expiresAt }

// Classification is the status of a document at a given instant.
type Classification struct {
	HoursRemaining int      `json:"hours_remaining"`
	Status         Severity `json:"status"`
}

// Classify reports whole hours remaining (floored, negative once expired)
// and the severity bucket at now. Bucket boundaries are applied to the exact
// remaining duration: 12h00m is critical, 12h01m is warning.
func Classify(doc ExpiryDocument, now time.Time) Classification {
	remaining := doc.expiresAt.Sub(now)
	return Classification{
		HoursRemaining: floorHours(remaining),
		Status:         severityOf(remaining),
	}
}

func severityOf(remaining time.Duration) Severity {
	switch {
	case remaining < 0:
		return SeverityExpired
	case remaining <= CriticalWindow:
		return SeverityCritical
	case remaining <= WarningWindow:
		return SeverityWarning
	default:
		return SeverityActive
	}
}

func floorHours(d time.Duration) int {
	h := d / time.Hour
	if d%time.Hour < 0 {
		h--
	}
	return int(h)
}

// ExpirySummary counts documents per severity.
type ExpirySummary struct {
	Total    int `json:"total"`
	Expired  int `json:"expired"`
	Critical int `json:"critical"`
	Warning  int `json:"warning"`
	Active   int `json:"active"`
}

// Add counts one document of severity s.
func (s *ExpirySummary) Add(sev Severity) {
	s.Total++
	switch sev {
	case SeverityExpired:
		s.Expired++
	case SeverityCritical:
		s.Critical++
	case SeverityWarning:
		s.Warning++
	case SeverityActive:
		s.Active++
	}
}

// Summarize classifies every document at now and counts the buckets.
func Summarize(docs []ExpiryDocument, now time.Time) ExpirySummary {
	var s ExpirySummary
	for i := range docs {
		s.Add(Classify(docs[i], now).Status)
	}
	return s
}
