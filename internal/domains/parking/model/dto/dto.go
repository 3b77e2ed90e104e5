package dto

import (
	"time"

	citationDto "ecoparking/internal/domains/citation/model/dto"
	"ecoparking/shared/constant"
	"ecoparking/shared/timezone"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPaid    = "Paid"
	PaymentStatusPending = "Pending"
	PaymentStatusNone    = "No active reservation"
)

var secondsPerHour = decimal.NewFromInt(int64(time.Hour / time.Second))

// ReserveRequest books one unit for a whole or fractional number of hours (0.5 is half an hour).
type ReserveRequest struct {
	SpaceID int64           `json:"space_id" validate:"required,gt=0"`
	Hours   decimal.Decimal `json:"hours"    validate:"decimal_gt=0,decimal_lte=24"`
}

// Duration is the reserved window length, to the second.
func (r *ReserveRequest) Duration() time.Duration {
	return hoursToDuration(r.Hours)
}

type ReserveResponse struct {
	ReservationID int64           `json:"reservation_id"`
	SpaceID       int64           `json:"space_id"`
	Location      string          `json:"location"`
	VehicleType   string          `json:"vehicle_type"`
	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	Hours         decimal.Decimal `json:"hours"`
	Start         time.Time       `json:"start"`
	End           time.Time       `json:"end"`
	MaskedCode    string          `json:"masked_code"`
}

// ScheduledExit is the end of the window in display form.
func (r ReserveResponse) ScheduledExit() string {
	return timezone.Format(r.End, constant.DisplayFormat)
}

// CheckoutRequest pays for the active reservation on a space. Nothing happens unless Confirm is set.
type CheckoutRequest struct {
	SpaceID   int64           `json:"space_id"   validate:"required,gt=0"`
	Method    string          `json:"method"     validate:"required,oneof=card cash"`
	PaidHours decimal.Decimal `json:"paid_hours" validate:"decimal_gt=0,decimal_lte=24"`
	Confirm   bool            `json:"confirm"`
}

// PaidDuration is the paid time, to the second.
func (r *CheckoutRequest) PaidDuration() time.Duration {
	return hoursToDuration(r.PaidHours)
}

// PaidMinutes is the paid time rounded to the nearest minute.
func (r *CheckoutRequest) PaidMinutes() int {
	return int(r.PaidDuration().Round(time.Minute) / time.Minute)
}

func hoursToDuration(hours decimal.Decimal) time.Duration {
	return time.Duration(hours.Mul(secondsPerHour).Round(0).IntPart()) * time.Second
}

type ReceiptResponse struct {
	ReservationID   int64                         `json:"reservation_id"`
	SpaceID         int64                         `json:"space_id"`
	Location        string                        `json:"location"`
	VehicleType     string                        `json:"vehicle_type"`
	Method          string                        `json:"method"`
	PaidHours       decimal.Decimal               `json:"paid_hours"`
	Amount          decimal.Decimal               `json:"amount"`
	Discount        decimal.Decimal               `json:"discount"`
	Total           decimal.Decimal               `json:"total"`
	DiscountApplied bool                          `json:"discount_applied"`
	Tier            string                        `json:"tier"`
	TransactionID   string                        `json:"transaction_id"`
	PaidAt          time.Time                     `json:"paid_at"`
	Citation        *citationDto.CitationResponse `json:"citation,omitempty"`
}

type StatusResponse struct {
	SpaceID int64  `json:"space_id"`
	Status  string `json:"status"`
}
