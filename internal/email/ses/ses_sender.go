package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"freightdesk/internal/config"
	"freightdesk/internal/domain"
	"freightdesk/internal/email"
	"freightdesk/internal/port"
)

type sesSender struct {
	client *sesv2.Client
	from   string
}

// NewSESSender creates an SES-backed AlertSender.
func NewSESSender(ctx context.Context, cfg *config.EmailConfig) (port.AlertSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client: sesv2.NewFromConfig(awsCfg),
		from:   fmt.Sprintf("%s <%s>", cfg.FromName, cfg.FromAddress),
	}, nil
}

func (s *sesSender) SendExpiryAlert(ctx context.Context, recipients []string, alerts []domain.ExpiryAlert) error {
	if len(recipients) == 0 || len(alerts) == 0 {
		return nil
	}
	d := email.BuildExpiryDigest(alerts)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &s.from,
		Destination: &types.Destination{
			ToAddresses: recipients,
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &d.Subject},
				Body: &types.Body{
					Html: &types.Content{Data: &d.HTML},
					Text: &types.Content{Data: &d.Text},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}
