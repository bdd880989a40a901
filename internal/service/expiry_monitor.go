package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"freightdesk/internal/domain"
	"freightdesk/internal/freight"
	"freightdesk/internal/port"
)

// ExpiryMonitorConfig holds settings for the expiry monitor.
type ExpiryMonitorConfig struct {
	Interval   time.Duration
	Recipients []string
}

// ExpiryMonitor periodically classifies e-way bills and mails a digest of
// bills that have just become critical or expired.
type ExpiryMonitor struct {
	bills  EwayBillService
	sender port.AlertSender
	cfg    ExpiryMonitorConfig
	log    *zap.Logger

	mu       sync.Mutex
	notified map[uuid.UUID]freight.Severity
}

// NewExpiryMonitor creates a new ExpiryMonitor.
func NewExpiryMonitor(bills EwayBillService, sender port.AlertSender, cfg ExpiryMonitorConfig, log *zap.Logger) *ExpiryMonitor {
	return &ExpiryMonitor{
		bills:    bills,
		sender:   sender,
		cfg:      cfg,
		log:      log,
		notified: make(map[uuid.UUID]freight.Severity),
	}
}

// Start runs one pass immediately and then one per interval until ctx is canceled.
func (m *ExpiryMonitor) Start(ctx context.Context) {
	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	m.log.Info("expiry monitor started",
		zap.Duration("interval", m.cfg.Interval),
		zap.Int("recipients", len(m.cfg.Recipients)))

	m.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			m.log.Info("expiry monitor stopped")
			return
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

func (m *ExpiryMonitor) tick(ctx context.Context) {
	if _, err := m.RunOnce(ctx); err != nil && ctx.Err() == nil {
		m.log.Error("expiry monitor pass failed", zap.Error(err))
	}
}

// RunOnce classifies every bill and sends one digest for the bills whose
// severity reached critical or expired since they were last notified.
// It returns the number of bills in the digest. A failed send leaves the
// bills pending so the next pass retries them.
func (m *ExpiryMonitor) RunOnce(ctx context.Context) (int, error) {
	bills, err := m.bills.List(ctx, domain.EwayBillFilter{})
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	seen := make(map[uuid.UUID]bool, len(bills))
	var (
		alerts  []domain.ExpiryAlert
		pending = make(map[uuid.UUID]freight.Severity)
	)
	for i := range bills {
		b := &bills[i]
		seen[b.ID] = true
		if b.Status != freight.SeverityCritical && b.Status != freight.SeverityExpired {
			continue
		}
		if m.notified[b.ID] == b.Status {
			continue
		}
		pending[b.ID] = b.Status
		alerts = append(alerts, domain.ExpiryAlert{
			EwayBillNumber: b.EwayBillNumber,
			LRNumber:       b.LRNumber,
			VehicleNumber:  b.VehicleNumber,
			DriverName:     b.DriverName,
			DriverPhone:    b.DriverPhone,
			ExpiresAt:      b.ExpiresAt,
			HoursRemaining: b.HoursRemaining,
			Status:         b.Status,
		})
	}

	for id := range m.notified {
		if !seen[id] {
			delete(m.notified, id)
		}
	}
	if len(alerts) == 0 {
		return 0, nil
	}

	if err := m.sender.SendExpiryAlert(ctx, m.cfg.Recipients, alerts); err != nil {
		return 0, err
	}
	for id, sev := range pending {
		m.notified[id] = sev
	}
	m.log.Info("expiry alert sent", zap.Int("bills", len(alerts)))
	return len(alerts), nil
}
