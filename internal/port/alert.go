package port

import (
	"context"

	"freightdesk/internal/domain"
)

// AlertSender delivers e-way bill expiry digests.
type AlertSender interface {
	SendExpiryAlert(ctx context.Context, recipients []string, alerts []domain.ExpiryAlert) error
}
