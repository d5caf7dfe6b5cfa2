package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog/log"
)

// ResendSender sends emails using the Resend API.
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a new Resend email sender.
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// newResendSenderWithClient is used by tests to point the SDK at a fake API.
func newResendSenderWithClient(client *resend.Client) *ResendSender {
	return &ResendSender{client: client}
}

func (s *ResendSender) Name() string { return "resend" }

// Send sends an email using the Resend API. The SDK encodes the attachment
// bytes as a JSON array of byte values.
func (s *ResendSender) Send(ctx context.Context, msg *Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		Headers: msg.Headers,
		Attachments: []*resend.Attachment{
			{
				Filename:    msg.Attachment.Filename,
				Content:     msg.Attachment.Content,
				ContentType: msg.Attachment.ContentType,
			},
		},
	}

	resp, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return &ProviderError{Provider: s.Name(), Err: fmt.Errorf("failed to send email: %w", err)}
	}

	log.Debug().
		Str("provider", s.Name()).
		Str("resend_id", resp.Id).
		Msg("email accepted by provider")

	return nil
}
