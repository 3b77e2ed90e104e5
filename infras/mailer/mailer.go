package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecoparking/config"
	"ecoparking/infras/otel"
	"ecoparking/shared/constant"

	"github.com/mailersend/mailersend-go"
	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout  = 5 * time.Second
	headerMessageID = "X-Message-Id"
)

var ErrNoRecipient = errors.New("message has no recipient")

type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
	HTML    bool
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type mailersendImpl struct {
	client  *mailersend.Mailersend
	from    mailersend.From
	timeout time.Duration
	otel    otel.Otel
}

// New returns a MailerSend client, or a sink that only logs when mail is disabled.
func New(cfg *config.Config, ot otel.Otel) Mailer {
	if !cfg.Mail.Enable || cfg.Mail.APIKey == "" {
		log.Debug().Msg("Mail disabled, notifications are logged only")

		return &logMailer{}
	}

	timeout := time.Duration(cfg.Mail.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &mailersendImpl{
		client: mailersend.NewMailersend(cfg.Mail.APIKey),
		from: mailersend.From{
			Name:  cfg.Mail.FromName,
			Email: cfg.Mail.FromEmail,
		},
		timeout: timeout,
		otel:    ot,
	}
}

func (m *mailersendImpl) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.EndWithError(&err)

	if msg.To == "" {
		return ErrNoRecipient
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	message := m.client.Email.NewMessage()
	message.SetFrom(m.from)
	message.SetRecipients([]mailersend.Recipient{
		{
			Name:  msg.ToName,
			Email: msg.To,
		},
	})
	message.SetSubject(msg.Subject)

	if msg.HTML {
		message.SetHTML(msg.Body)
	} else {
		message.SetText(msg.Body)
	}

	res, err := m.client.Email.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("subject", msg.Subject).Str("message_id", res.Header.Get(headerMessageID)).Msg("Email sent")

	return nil
}

type logMailer struct{}

func (l *logMailer) Send(_ context.Context, msg Message) error {
	if msg.To == "" {
		return ErrNoRecipient
	}

	log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("Email not sent, mail is disabled")

	return nil
}
