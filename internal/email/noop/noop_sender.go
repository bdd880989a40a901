package noop

import (
	"context"

	"go.uber.org/zap"

	"freightdesk/internal/domain"
	"freightdesk/internal/email"
	"freightdesk/internal/port"
)

type noopSender struct {
	log *zap.Logger
}

// NewNoopSender creates an AlertSender that only logs the digest.
func NewNoopSender(log *zap.Logger) port.AlertSender {
	return &noopSender{log: log}
}

func (s *noopSender) SendExpiryAlert(_ context.Context, recipients []string, alerts []domain.ExpiryAlert) error {
	d := email.BuildExpiryDigest(alerts)
	s.log.Info("expiry alert (noop email)",
		zap.Strings("recipients", recipients),
		zap.String("subject", d.Subject),
		zap.Int("bills", len(alerts)),
	)
	return nil
}
