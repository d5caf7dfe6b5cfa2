package mailer

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
)

// LogSender logs emails instead of sending them.
// Useful for development and testing.
type LogSender struct{}

// NewLogSender creates a new log-based email sender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Name() string { return "log" }

// Send logs the email details.
func (s *LogSender) Send(ctx context.Context, msg *Message) error {
	log.Info().
		Str("provider", s.Name()).
		Str("from", msg.From).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Str("text", msg.Text).
		Str("attachment", msg.Attachment.Filename).
		Str("content_type", msg.Attachment.ContentType).
		Str("size", humanize.Bytes(uint64(len(msg.Attachment.Content)))).
		Interface("headers", msg.Headers).
		Msg("EMAIL (dev mode - not actually sent)")
	return nil
}
