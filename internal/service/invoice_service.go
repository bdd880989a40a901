package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"freightdesk/internal/domain"
	"freightdesk/internal/export"
	"freightdesk/internal/freight"
	"freightdesk/internal/port"
)

// ComposeInput is the DTO for previewing or creating an invoice.
// A nil ExtraCharges means "use the configured defaults"; an empty slice
// means no extra charges.
type ComposeInput struct {
	ConsignmentIDs  []uuid.UUID
	ExtraCharges    []freight.ChargeLineItem
	SupplyType      domain.SupplyType
	GSTRate         *decimal.Decimal
	CustomerName    string
	CustomerAddress string
	CustomerGSTIN   string
	InvoiceDate     time.Time
}

// InvoicePreview is the computed invoice before it is stored.
type InvoicePreview struct {
	Consignments []freight.ConsignmentRecord `json:"consignments"`
	ExtraCharges []freight.ChargeLineItem    `json:"extra_charges"`
	SupplyType   domain.SupplyType           `json:"supply_type"`
	Rate         freight.TaxRate             `json:"rate"`
	Totals       freight.FreightTotals       `json:"totals"`
}

// InvoiceExport points at an uploaded invoice file.
type InvoiceExport struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// InvoiceConfig holds invoice numbering, tax and default charge settings.
type InvoiceConfig struct {
	NumberPrefix     string
	SupplierGSTIN    string
	GSTRate          decimal.Decimal
	DefaultUnloading decimal.Decimal
	DefaultDetention decimal.Decimal
	PresignExpiry    time.Duration
}

// InvoiceService composes, stores and exports freight invoices.
type InvoiceService interface {
	Preview(ctx context.Context, input *ComposeInput) (*InvoicePreview, error)
	Create(ctx context.Context, input *ComposeInput) (*domain.Invoice, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error)
	Export(ctx context.Context, id uuid.UUID) (*InvoiceExport, error)
}

type invoiceService struct {
	consignments port.ConsignmentRepository
	invoices     port.InvoiceRepository
	storage      port.ObjectStorage
	cfg          InvoiceConfig
	now          func() time.Time
	log          *zap.Logger
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	consignments port.ConsignmentRepository,
	invoices port.InvoiceRepository,
	storage port.ObjectStorage,
	cfg InvoiceConfig,
	now func() time.Time,
	log *zap.Logger,
) InvoiceService {
	return &invoiceService{
		consignments: consignments,
		invoices:     invoices,
		storage:      storage,
		cfg:          cfg,
		now:          now,
		log:          log,
	}
}

func (s *invoiceService) Preview(ctx context.Context, input *ComposeInput) (*InvoicePreview, error) {
	preview, _, err := s.compose(ctx, input)
	return preview, err
}

func (s *invoiceService) compose(ctx context.Context, input *ComposeInput) (*InvoicePreview, []domain.Consignment, error) {
	for i, c := range input.ExtraCharges {
		if !c.Kind.Valid() {
			return nil, nil, &freight.ValidationError{
				Field:   fmt.Sprintf("extra_charges[%d].kind", i),
				Message: fmt.Sprintf("unknown charge kind %q", c.Kind),
			}
		}
		if err := freight.CheckAmount(fmt.Sprintf("extra_charges[%d].amount", i), c.Amount); err != nil {
			return nil, nil, err
		}
	}

	if g := freight.NormalizeGSTIN(input.CustomerGSTIN); g != "" {
		if err := freight.ValidateGSTIN("customer_gstin", g); err != nil {
			return nil, nil, err
		}
	}

	consignments, err := s.loadConsignments(ctx, input.ConsignmentIDs)
	if err != nil {
		return nil, nil, err
	}

	pct := s.cfg.GSTRate
	if input.GSTRate != nil {
		pct = *input.GSTRate
	}
	rate, supply, err := resolveRate(input.SupplyType, pct, s.cfg.SupplierGSTIN, customerGSTIN(input, consignments))
	if err != nil {
		return nil, nil, err
	}

	records := lo.Map(consignments, func(c domain.Consignment, _ int) freight.ConsignmentRecord {
		return c.ToRecord(true)
	})
	extras := input.ExtraCharges
	if extras == nil {
		extras = s.defaultExtras()
	}

	return &InvoicePreview{
		Consignments: records,
		ExtraCharges: extras,
		SupplyType:   supply,
		Rate:         rate,
		Totals:       freight.Compose(records, extras, rate),
	}, consignments, nil
}

func (s *invoiceService) loadConsignments(ctx context.Context, ids []uuid.UUID) ([]domain.Consignment, error) {
	ids = lo.Uniq(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.consignments.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, domain.ErrConsignmentNotFound
	}
	return found, nil
}

func (s *invoiceService) defaultExtras() []freight.ChargeLineItem {
	extras := make([]freight.ChargeLineItem, 0, 2)
	if s.cfg.DefaultUnloading.IsPositive() {
		extras = append(extras, freight.ChargeLineItem{Kind: freight.ChargeUnloading, Label: "Unloading charges", Amount: s.cfg.DefaultUnloading})
	}
	if s.cfg.DefaultDetention.IsPositive() {
		extras = append(extras, freight.ChargeLineItem{Kind: freight.ChargeDetention, Label: "Detention charges", Amount: s.cfg.DefaultDetention})
	}
	return extras
}

// customerGSTIN falls back to the consignor of the first LR, who is the
// party billed for freight.
func customerGSTIN(input *ComposeInput, consignments []domain.Consignment) string {
	if g := freight.NormalizeGSTIN(input.CustomerGSTIN); g != "" {
		return g
	}
	if len(consignments) > 0 {
		return consignments[0].ConsignorGSTIN
	}
	return ""
}

func (s *invoiceService) Create(ctx context.Context, input *ComposeInput) (*domain.Invoice, error) {
	if len(input.ConsignmentIDs) == 0 {
		return nil, domain.ErrEmptySelection
	}

	preview, consignments, err := s.compose(ctx, input)
	if err != nil {
		return nil, err
	}
	if lo.ContainsBy(consignments, func(c domain.Consignment) bool { return c.Billed() }) {
		return nil, domain.ErrConsignmentAlreadyBilled
	}

	date := input.InvoiceDate
	if date.IsZero() {
		date = s.now()
	}
	inv := s.buildInvoice(input, preview, consignments, date.UTC())
	ids := lo.Map(consignments, func(c domain.Consignment, _ int) uuid.UUID { return c.ID })

	numbering := domain.InvoiceNumbering{Prefix: s.cfg.NumberPrefix, Year: date.In(export.DisplayZone).Year()}
	if err := s.invoices.Create(ctx, inv, ids, numbering); err != nil {
		return nil, err
	}

	s.log.Info("invoice created",
		zap.String("invoice_id", inv.ID.String()),
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.Int("consignments", len(ids)),
		zap.String("total", inv.Total.StringFixed(2)),
	)
	return inv, nil
}

func (s *invoiceService) buildInvoice(input *ComposeInput, p *InvoicePreview, consignments []domain.Consignment, date time.Time) *domain.Invoice {
	inv := &domain.Invoice{
		ID:              uuid.New(),
		InvoiceDate:     date,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerAddress: strings.TrimSpace(input.CustomerAddress),
		CustomerGSTIN:   customerGSTIN(input, consignments),
		SupplierGSTIN:   s.cfg.SupplierGSTIN,
		SACCode:         domain.DefaultSACCode,
		SupplyType:      p.SupplyType,
		Subtotal:        p.Totals.Subtotal,
		TotalTax:        p.Totals.TotalTax(),
		Total:           p.Totals.Total,
	}
	if inv.CustomerName == "" {
		inv.CustomerName = consignments[0].ConsignorName
	}

	pos := 0
	for i := range consignments {
		c := &consignments[i]
		pos++
		id := c.ID
		inv.Lines = append(inv.Lines, domain.InvoiceLine{
			Position:      pos,
			Kind:          freight.ChargeBaseFreight,
			ConsignmentID: &id,
			Description:   fmt.Sprintf("%s %s - %s", c.LRNumber, c.Origin, c.Destination),
			Amount:        c.ToRecord(true).ChargeLine().Billable(),
		})
	}
	for _, e := range p.ExtraCharges {
		pos++
		desc := e.Label
		if desc == "" {
			desc = string(e.Kind)
		}
		inv.Lines = append(inv.Lines, domain.InvoiceLine{
			Position:    pos,
			Kind:        e.Kind,
			Description: desc,
			Amount:      e.Billable(),
		})
	}
	for i, tx := range p.Totals.Taxes {
		inv.Taxes = append(inv.Taxes, domain.InvoiceTax{
			Position:    i + 1,
			Name:        tx.Name,
			RatePercent: tx.RatePercent,
			Amount:      tx.Amount,
		})
	}
	return inv
}

func (s *invoiceService) Get(ctx context.Context, id uuid.UUID) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *invoiceService) List(ctx context.Context, offset, limit int) ([]domain.Invoice, int, error) {
	return s.invoices.List(ctx, offset, limit)
}

func (s *invoiceService) Export(ctx context.Context, id uuid.UUID) (*InvoiceExport, error) {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := export.WriteInvoiceCSV(&buf, inv); err != nil {
		return nil, fmt.Errorf("rendering invoice %s: %w", inv.InvoiceNumber, err)
	}

	filename := export.SanitizeFilename(inv.InvoiceNumber) + ".csv"
	key := fmt.Sprintf("invoices/%d/%s", inv.InvoiceDate.In(export.DisplayZone).Year(), filename)
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Key:                key,
		Body:               &buf,
		ContentType:        domain.ExportContentTypes[domain.ExportFormatCSV],
		ContentDisposition: fmt.Sprintf(`attachment; filename="%s"`, filename),
	}); err != nil {
		s.log.Error("invoice export upload failed", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	url, err := s.storage.PresignedURL(ctx, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, err
	}
	return &InvoiceExport{Key: key, URL: url, ExpiresAt: s.now().Add(s.cfg.PresignExpiry)}, nil
}
