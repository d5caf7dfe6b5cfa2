// Package mailer delivers a single outbound email with one attachment
// through a pluggable provider.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"phone2mail/internal/config"
)

// ErrUnknownProvider is returned by New for an unsupported provider name.
var ErrUnknownProvider = errors.New("unknown email provider")

// Attachment is a file carried by a Message. Content holds raw bytes;
// each provider applies the transfer encoding its API expects.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is a provider-neutral outbound email.
type Message struct {
	From       string
	To         string
	Subject    string
	Text       string
	HTML       string
	Attachment Attachment
	Headers    map[string]string
}

// Sender is implemented by every email provider.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
	Name() string
}

// Verifier is implemented by providers that can check connectivity and
// credentials without sending anything.
type Verifier interface {
	Verify(ctx context.Context) error
}

// ProviderError wraps any failure reported by a provider. Its message may
// contain provider internals and must not be shown to clients.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// New creates the sender selected by cfg.Provider.
func New(cfg config.EmailConfig) (Sender, error) {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			TLS:      cfg.SMTPTLS,
		})
	case "resend":
		return NewResendSender(cfg.ResendAPIKey), nil
	case "log":
		return NewLogSender(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Provider)
	}
}
