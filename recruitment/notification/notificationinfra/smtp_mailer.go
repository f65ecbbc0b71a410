package notificationinfra

import (
	"bytes"
	"context"

	"github.com/Abraxas-365/crewdesk/pkg/config"
	"github.com/Abraxas-365/crewdesk/recruitment/notification"
	"github.com/wneessen/go-mail"
)

// SMTPMailer implements notification.Mailer over an SMTP relay
type SMTPMailer struct {
	client   *mail.Client
	fromAddr string
	fromName string
}

var _ notification.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer builds a client from config. Authentication is only
// configured when a username is set.
func NewSMTPMailer(cfg config.EmailConfig) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(cfg.SMTPPassword),
		)
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, notification.ErrSendFailed(err).WithDetail("operation", "new_client")
	}

	return &SMTPMailer{
		client:   client,
		fromAddr: cfg.FromAddress,
		fromName: cfg.FromName,
	}, nil
}

// Send opens a connection and delivers one message
func (m *SMTPMailer) Send(ctx context.Context, msg notification.Message) error {
	email, err := m.build(msg)
	if err != nil {
		return err
	}

	if err := m.client.DialAndSendWithContext(ctx, email); err != nil {
		return notification.ErrSendFailed(err).WithDetail("to", msg.To.String())
	}
	return nil
}

func (m *SMTPMailer) build(msg notification.Message) (*mail.Msg, error) {
	email := mail.NewMsg()

	if err := email.FromFormat(m.fromName, m.fromAddr); err != nil {
		return nil, notification.ErrInvalidMessage().WithDetail("from", m.fromAddr)
	}
	if err := email.AddToFormat(msg.ToName, msg.To.String()); err != nil {
		return nil, notification.ErrInvalidMessage().WithDetail("to", msg.To.String())
	}
	if msg.ReplyTo != "" {
		if err := email.ReplyTo(msg.ReplyTo.String()); err != nil {
			return nil, notification.ErrInvalidMessage().WithDetail("reply_to", msg.ReplyTo.String())
		}
	}

	email.Subject(msg.Subject)
	email.SetBodyString(mail.TypeTextPlain, msg.Body)

	if a := msg.Attachment; a != nil {
		email.AttachReadSeeker(a.Filename, bytes.NewReader(a.Data), mail.WithFileContentType(mail.ContentType(a.ContentType)))
	}

	return email, nil
}
