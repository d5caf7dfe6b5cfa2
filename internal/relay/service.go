package relay

import (
	"context"
	"fmt"

	"phone2mail/internal/mailer"
)

const (
	Subject  = "Your Photo from Phone to Email App"
	BodyText = "Here is the photo you uploaded. You can now forward this email to anyone!"
	BodyHTML = "<p>" + BodyText + "</p>"

	// Gmail threads messages sharing a subject unless this header differs.
	entityRefHeader = "X-Entity-Ref-ID"
)

// Service turns an upload into one outbound email.
type Service struct {
	sender mailer.Sender
	from   string
}

func NewService(sender mailer.Sender, from string) *Service {
	return &Service{
		sender: sender,
		from:   from,
	}
}

// Provider returns the name of the configured email provider.
func (s *Service) Provider() string {
	return s.sender.Name()
}

// Send mails the photo to the recipient. It makes exactly one provider call
// and blocks until it returns.
func (s *Service) Send(ctx context.Context, req *UploadRequest, relayID string) error {
	if err := req.Validate(); err != nil {
		return err
	}

	msg := &mailer.Message{
		From:    s.from,
		To:      req.RecipientEmail,
		Subject: Subject,
		Text:    BodyText,
		HTML:    BodyHTML,
		Attachment: mailer.Attachment{
			Filename:    req.Photo.Filename,
			ContentType: req.Photo.MimeType,
			Content:     req.Photo.Bytes,
		},
		Headers: map[string]string{entityRefHeader: relayID},
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending photo %q: %w", req.Photo.Filename, err)
	}
	return nil
}
