package service

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"freightdesk/internal/domain"
	"freightdesk/internal/export"
	"freightdesk/internal/freight"
	"freightdesk/internal/port"
)

var ewayBillNumberPattern = regexp.MustCompile(`^\d{12}$`)

// maxValidityHours caps the validity of a registered e-way bill at one year.
const maxValidityHours = 365 * 24

// RegisterEwayBillInput is the DTO for registering an e-way bill.
// At least one of ValidityHours and ExpiresAt must be set.
type RegisterEwayBillInput struct {
	LRNumber        string
	EwayBillNumber  string
	VehicleNumber   string
	Consignor       string
	Consignee       string
	Origin          string
	Destination     string
	DistanceKm      int
	GeneratedAt     time.Time
	ValidityHours   int
	ExpiresAt       time.Time
	DriverName      string
	DriverPhone     string
	CurrentLocation string
}

// EwayBillService lists, classifies and registers e-way bills.
type EwayBillService interface {
	List(ctx context.Context, filter domain.EwayBillFilter) ([]domain.EwayBillStatus, error)
	Summary(ctx context.Context) (*freight.ExpirySummary, error)
	Register(ctx context.Context, input *RegisterEwayBillInput) (*domain.EwayBillStatus, error)
	ExportReport(ctx context.Context, filter domain.EwayBillFilter, format domain.ExportFormat, w io.Writer) error
}

type ewayBillService struct {
	repo port.EwayBillRepository
	now  func() time.Time
	log  *zap.Logger
}

// NewEwayBillService creates a new EwayBillService. now is read once per call
// so every bill in a listing is classified against the same instant.
func NewEwayBillService(repo port.EwayBillRepository, now func() time.Time, log *zap.Logger) EwayBillService {
	return &ewayBillService{repo: repo, now: now, log: log}
}

func (s *ewayBillService) List(ctx context.Context, filter domain.EwayBillFilter) ([]domain.EwayBillStatus, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.ErrInvalidStatusFilter
	}
	classified, err := s.classifyAll(ctx, s.now())
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := lo.Filter(classified, func(b domain.EwayBillStatus, _ int) bool {
		if filter.Status != "" && b.Status != filter.Status {
			return false
		}
		return q == "" || matchesQuery(&b.EwayBill, q)
	})
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ExpiresAt.Equal(out[j].ExpiresAt) {
			return out[i].ExpiresAt.Before(out[j].ExpiresAt)
		}
		return out[i].EwayBillNumber < out[j].EwayBillNumber
	})
	return out, nil
}

func matchesQuery(b *domain.EwayBill, q string) bool {
	for _, field := range []string{b.LRNumber, b.EwayBillNumber, b.VehicleNumber, b.Consignor, b.Consignee} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (s *ewayBillService) classifyAll(ctx context.Context, now time.Time) ([]domain.EwayBillStatus, error) {
	bills, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.EwayBillStatus, 0, len(bills))
	for i := range bills {
		doc, err := bills[i].Document()
		if err != nil {
			s.log.Warn("skipping e-way bill with inconsistent validity",
				zap.String("eway_bill_number", bills[i].EwayBillNumber), zap.Error(err))
			continue
		}
		out = append(out, domain.EwayBillStatus{EwayBill: bills[i], Classification: freight.Classify(doc, now)})
	}
	return out, nil
}

func (s *ewayBillService) Summary(ctx context.Context) (*freight.ExpirySummary, error) {
	classified, err := s.classifyAll(ctx, s.now())
	if err != nil {
		return nil, err
	}
	var sum freight.ExpirySummary
	for i := range classified {
		sum.Add(classified[i].Status)
	}
	return &sum, nil
}

func (s *ewayBillService) Register(ctx context.Context, input *RegisterEwayBillInput) (*domain.EwayBillStatus, error) {
	number := strings.TrimSpace(input.EwayBillNumber)
	if !ewayBillNumberPattern.MatchString(number) {
		return nil, &freight.ValidationError{Field: "eway_bill_number", Message: "must be 12 digits"}
	}
	vehicle := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(input.VehicleNumber), " ", ""))
	if vehicle == "" {
		return nil, &freight.ValidationError{Field: "vehicle_number", Message: "is required"}
	}
	if input.ValidityHours < 0 {
		return nil, &freight.ValidationError{Field: "validity_hours", Message: "must be positive"}
	}
	if input.ValidityHours > maxValidityHours {
		return nil, &freight.ValidationError{Field: "validity_hours", Message: fmt.Sprintf("must be at most %d", maxValidityHours)}
	}

	doc, err := freight.ExpiryDocumentFrom(input.GeneratedAt, time.Duration(input.ValidityHours)*time.Hour, input.ExpiresAt)
	if err != nil {
		return nil, err
	}
	if doc.Validity()%time.Hour != 0 {
		return nil, &freight.ValidationError{Field: "expires_at", Message: "validity must be a whole number of hours"}
	}
	if doc.Validity() > maxValidityHours*time.Hour {
		return nil, &freight.ValidationError{Field: "expires_at", Message: fmt.Sprintf("validity must be at most %d hours", maxValidityHours)}
	}

	bill := &domain.EwayBill{
		ID:              uuid.New(),
		LRNumber:        strings.TrimSpace(input.LRNumber),
		EwayBillNumber:  number,
		VehicleNumber:   vehicle,
		Consignor:       strings.TrimSpace(input.Consignor),
		Consignee:       strings.TrimSpace(input.Consignee),
		Origin:          strings.TrimSpace(input.Origin),
		Destination:     strings.TrimSpace(input.Destination),
		DistanceKm:      input.DistanceKm,
		GeneratedAt:     doc.GeneratedAt(),
		ValidityHours:   int(doc.Validity() / time.Hour),
		ExpiresAt:       doc.ExpiresAt(),
		DriverName:      strings.TrimSpace(input.DriverName),
		DriverPhone:     strings.TrimSpace(input.DriverPhone),
		CurrentLocation: strings.TrimSpace(input.CurrentLocation),
	}
	if err := s.repo.Create(ctx, bill); err != nil {
		return nil, err
	}

	status := &domain.EwayBillStatus{EwayBill: *bill, Classification: freight.Classify(doc, s.now())}
	s.log.Info("e-way bill registered",
		zap.String("eway_bill_number", bill.EwayBillNumber),
		zap.Time("expires_at", bill.ExpiresAt),
		zap.String("status", string(status.Status)),
	)
	return status, nil
}

func (s *ewayBillService) ExportReport(ctx context.Context, filter domain.EwayBillFilter, format domain.ExportFormat, w io.Writer) error {
	if _, ok := domain.ExportContentTypes[format]; !ok {
		return domain.ErrUnsupportedExportFormat
	}
	bills, err := s.List(ctx, filter)
	if err != nil {
		return err
	}

	switch format {
	case domain.ExportFormatXLSX:
		err = export.WriteEwayBillXLSX(w, bills)
	default:
		err = export.WriteEwayBillCSV(w, bills)
	}
	if err != nil {
		return fmt.Errorf("writing %s report: %w", format, err)
	}
	return nil
}
