package mailer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPConfig for sending via Gmail or any other SMTP relay
type SMTPConfig struct {
	Host     string
	Port     int
	Username string // empty disables SMTP AUTH
	Password string
	TLS      string // "mandatory", "opportunistic" or "none"
}

// SMTPSender delivers messages over SMTP. A go-mail Client holds a single
// session, so each Send and Verify dials with its own client.
type SMTPSender struct {
	host string
	opts []mail.Option
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithTLSPortPolicy(tlsPolicy(cfg.TLS)),
		mail.WithPort(cfg.Port),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	// fail fast on bad options instead of on the first upload
	if _, err := mail.NewClient(cfg.Host, opts...); err != nil {
		return nil, fmt.Errorf("smtp: failed to create client: %w", err)
	}

	return &SMTPSender{host: cfg.Host, opts: opts}, nil
}

func (s *SMTPSender) newClient() (*mail.Client, error) {
	client, err := mail.NewClient(s.host, s.opts...)
	if err != nil {
		return nil, &ProviderError{Provider: s.Name(), Err: fmt.Errorf("create client: %w", err)}
	}
	return client, nil
}

func tlsPolicy(name string) mail.TLSPolicy {
	switch name {
	case "none":
		return mail.NoTLS
	case "opportunistic":
		return mail.TLSOpportunistic
	default:
		return mail.TLSMandatory
	}
}

func (s *SMTPSender) Name() string { return "smtp" }

// Send builds a multipart/mixed message with a text body, an HTML
// alternative and the attachment, then delivers it in one SMTP session.
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		return &ProviderError{Provider: s.Name(), Err: err}
	}

	client, err := s.newClient()
	if err != nil {
		return err
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return &ProviderError{Provider: s.Name(), Err: fmt.Errorf("send failed: %w", err)}
	}
	return nil
}

// Verify dials the server and authenticates without sending.
func (s *SMTPSender) Verify(ctx context.Context) error {
	client, err := s.newClient()
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return &ProviderError{Provider: s.Name(), Err: fmt.Errorf("dial failed: %w", err)}
	}
	return client.Close()
}

func buildMsg(msg *Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetDate()
	m.SetMessageID()
	for k, v := range msg.Headers {
		m.SetGenHeader(mail.Header(k), v)
	}

	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	var opts []mail.FileOption
	if msg.Attachment.ContentType != "" {
		opts = append(opts, mail.WithFileContentType(mail.ContentType(msg.Attachment.ContentType)))
	}
	if err := m.AttachReader(msg.Attachment.Filename, bytes.NewReader(msg.Attachment.Content), opts...); err != nil {
		return nil, fmt.Errorf("attach %q: %w", msg.Attachment.Filename, err)
	}

	return m, nil
}
