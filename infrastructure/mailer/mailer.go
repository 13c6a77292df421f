package mailer

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/mko-api/internal/config"
	"github.com/vfg2006/mko-api/pkg/log"
	"gopkg.in/mail.v2"
)

//go:generate mockgen -source=mailer.go -destination=mocks/mailer_mock.go -package=mocks

// ErrNotConfigured é retornado quando faltam SMTP_HOST, SMTP_USER ou SMTP_PASS
var ErrNotConfigured = errors.New("SMTP não configurado")

const defaultSendTimeout = 15 * time.Second

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Configured() bool
	Send(ctx context.Context, msg Message) error
}

type SMTPMailer struct {
	dialer     *mail.Dialer
	from       string
	configured bool
}

func NewSMTPMailer(cfg config.Mail) *SMTPMailer {
	dialer := mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	dialer.SSL = cfg.SMTPSecure
	dialer.Timeout = defaultSendTimeout
	dialer.TLSConfig = &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12}

	from := cfg.From
	if from == "" {
		from = "no-reply@example.com"
	}

	return &SMTPMailer{
		dialer:     dialer,
		from:       from,
		configured: cfg.Configured(),
	}
}

func (m *SMTPMailer) Configured() bool {
	return m.configured
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if !m.configured {
		log.ForContext(ctx).Warn("SMTP não configurado, e-mail descartado")
		return ErrNotConfigured
	}

	message := mail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		message.AddAlternative("text/html", msg.HTML)
	}

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(message)
	}()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "envio de e-mail cancelado")
	case err := <-done:
		if err != nil {
			log.ForContext(ctx).WithError(err).Errorf("Falha ao enviar e-mail para %s", MaskEmail(msg.To))
			return errors.Wrap(err, "erro ao enviar e-mail")
		}
	}

	log.ForContext(ctx).Infof("E-mail enviado para %s", MaskEmail(msg.To))
	return nil
}
