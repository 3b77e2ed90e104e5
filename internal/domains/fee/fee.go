// Package fee holds the money rules of the parking lot. Every function is pure and keeps full
// decimal precision; callers round with Round2 only when persisting or displaying.
package fee

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	// PenaltyRate is the share of the reserved value charged on a citation.
	PenaltyRate = decimal.RequireFromString("0.40")
	// DiscountRate is the loyalty reward applied every DiscountEvery reservations.
	DiscountRate = decimal.RequireFromString("0.20")
	// TaxRate is the VAT added to citation invoices.
	TaxRate = decimal.RequireFromString("0.12")

	secondsPerHour = decimal.NewFromInt(int64(time.Hour / time.Second))
)

// Invoice itemises a taxed charge.
type Invoice struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ReservationCost is duration × rate per hour. The product is taken before the division
// so whole-minute durations stay exact.
func ReservationCost(rate decimal.Decimal, duration time.Duration) decimal.Decimal {
	seconds := decimal.NewFromInt(int64(duration / time.Second))

	return rate.Mul(seconds).Div(secondsPerHour)
}

// HoursCost prices a whole or fractional number of hours.
func HoursCost(rate, hours decimal.Decimal) decimal.Decimal {
	return rate.Mul(hours)
}

// CitationPenalty charges PenaltyRate of what the reserved window is worth.
func CitationPenalty(rate decimal.Decimal, reserved time.Duration) decimal.Decimal {
	return PenaltyRate.Mul(ReservationCost(rate, reserved))
}

// LoyaltyDiscount returns the amount left to pay and the discount taken from it.
func LoyaltyDiscount(amount decimal.Decimal) (discounted, discount decimal.Decimal) {
	discount = amount.Mul(DiscountRate)

	return amount.Sub(discount), discount
}

func InvoiceTotals(subtotal decimal.Decimal) Invoice {
	tax := Round2(subtotal.Mul(TaxRate))
	subtotal = Round2(subtotal)

	return Invoice{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Round2 rounds half away from zero to cents.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// Display formats an amount as "$1.50".
func Display(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
