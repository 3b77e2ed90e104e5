// Package notification renders customer emails and hands them to the mailer. Delivery problems
// are logged and never reach the caller: a lost email must not undo a payment.
package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmlTemplate "html/template"
	"text/template"
	"time"

	"ecoparking/infras/mailer"
	"ecoparking/infras/otel"
	"ecoparking/internal/domains/fee"
	"ecoparking/shared/constant"
	"ecoparking/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	subjectReceipt  = "Payment receipt - EcoParking"
	subjectReward   = "Loyalty discount applied - EcoParking"
	subjectCitation = "Citation for exceeded parking time - EcoParking"
	subjectInvoice  = "Citation payment invoice - EcoParking"
)

//go:embed templates/*
var templateFS embed.FS

var funcs = map[string]any{
	"money": fee.Display,
	"date":  func(t time.Time) string { return timezone.Format(t, constant.DisplayFormat) },
	"day":   func(t time.Time) string { return timezone.Format(t, constant.DateOnlyFormat) },
	"clock": func(t time.Time) string { return timezone.Format(t, constant.HourFormat) },
}

var (
	htmlTemplates = htmlTemplate.Must(htmlTemplate.New("html").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
	textTemplates = template.Must(template.New("text").Funcs(funcs).ParseFS(templateFS, "templates/*.txt"))
)

type Recipient struct {
	Name  string
	Email string
}

type Receipt struct {
	To            Recipient
	Location      string
	Method        string
	Amount        decimal.Decimal
	Discount      decimal.Decimal
	PaidAt        time.Time
	TransactionID string
}

type Reward struct {
	To       Recipient
	Every    int
	Tier     string
	Original decimal.Decimal
	Discount decimal.Decimal
	Final    decimal.Decimal
}

func (Reward) Percent() string {
	return fee.DiscountRate.Shift(2).String()
}

type Citation struct {
	To            Recipient
	VehicleType   string
	Location      string
	Code          string
	Start         time.Time
	ScheduledEnd  time.Time
	ActualEnd     time.Time
	ExcessMinutes int
	HourlyRate    decimal.Decimal
	Reason        string
	Penalty       decimal.Decimal
}

func (Citation) Percent() string {
	return fee.PenaltyRate.Shift(2).String()
}

type Invoice struct {
	To            Recipient
	Cedula        string
	InvoiceNumber string
	IssuedAt      time.Time
	VehicleType   string
	Code          string
	Reason        string
	ExcessMinutes int
	OffenceDate   time.Time
	Totals        fee.Invoice
	TransactionID string
}

func (Invoice) TaxPercent() string {
	return fee.TaxRate.Shift(2).String()
}

type Notifier interface {
	Receipt(ctx context.Context, data Receipt)
	LoyaltyReward(ctx context.Context, data Reward)
	Citation(ctx context.Context, data Citation)
	CitationInvoice(ctx context.Context, data Invoice)
}

type notifierImpl struct {
	mailer mailer.Mailer
	otel   otel.Otel
}

func New(mail mailer.Mailer, ot otel.Otel) Notifier {
	return &notifierImpl{
		mailer: mail,
		otel:   ot,
	}
}

func (n *notifierImpl) Receipt(ctx context.Context, data Receipt) {
	n.send(ctx, data.To, subjectReceipt, "receipt.html", data)
}

func (n *notifierImpl) LoyaltyReward(ctx context.Context, data Reward) {
	n.send(ctx, data.To, subjectReward, "reward.html", data)
}

func (n *notifierImpl) Citation(ctx context.Context, data Citation) {
	n.send(ctx, data.To, subjectCitation, "citation.txt", data)
}

func (n *notifierImpl) CitationInvoice(ctx context.Context, data Invoice) {
	n.send(ctx, data.To, subjectInvoice, "invoice.txt", data)
}

func (n *notifierImpl) send(ctx context.Context, to Recipient, subject, name string, data any) {
	var err error

	ctx, scope := n.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Notify")
	defer scope.EndWithError(&err)

	body, isHTML, err := Render(name, data)
	if err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to render notification")

		return
	}

	err = n.mailer.Send(ctx, mailer.Message{
		To:      to.Email,
		ToName:  to.Name,
		Subject: subject,
		Body:    body,
		HTML:    isHTML,
	})
	if err != nil {
		log.Error().Err(err).Str("to", to.Email).Str("subject", subject).Msg("failed to send notification")
	}
}

// Render executes the named template and reports whether the result is HTML.
func Render(name string, data any) (string, bool, error) {
	var buf bytes.Buffer

	if tmpl := htmlTemplates.Lookup(name); tmpl != nil {
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", true, fmt.Errorf("failed to render %s: %w", name, err)
		}

		return buf.String(), true, nil
	}

	tmpl := textTemplates.Lookup(name)
	if tmpl == nil {
		return "", false, fmt.Errorf("unknown template %s", name)
	}

	if err := tmpl.Execute(&buf, data); err != nil {
		return "", false, fmt.Errorf("failed to render %s: %w", name, err)
	}

	return buf.String(), false, nil
}
