package mailer

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESMailer implements Mailer over AWS SES raw email, which is the only
// SES mode that supports attachments.
type SESMailer struct {
	client *ses.Client
	from   string
}

// creates a SES-backed mailer for the given region and sender
func NewSESMailer(ctx context.Context, region, from string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESMailer{
		client: ses.NewFromConfig(cfg),
		from:   from,
	}, nil
}

func (m *SESMailer) Send(ctx context.Context, msg Message) error {
	raw, err := buildMIME(m.from, msg)
	if err != nil {
		return fmt.Errorf("failed to build MIME message: %w", err)
	}

	_, err = m.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		RawMessage: &types.RawMessage{Data: raw},
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
