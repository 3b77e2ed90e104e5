package model

import (
	"fmt"
	"math/rand/v2"
	"time"

	"ecoparking/shared/constant"
	"ecoparking/shared/failure"
	"ecoparking/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "parking_spaces"
	EntityName = "parking_space"

	FieldID               = "id"
	FieldLocation         = "location"
	FieldVehicleType      = "vehicle_type"
	FieldAvailableCount   = "available_count"
	FieldHourlyRate       = "hourly_rate"
	FieldReservationStart = "reservation_start"
	FieldReservationEnd   = "reservation_end"
	FieldReservationCode  = "reservation_code"
	FieldPaymentCompleted = "payment_completed"
)

const (
	StateIdle     = "Idle"
	StateReserved = "Reserved"
	StatePaid     = "Paid"
)

const (
	codePrefix      = "EP"
	codeSuffixRange = 10000
	maskPrefix      = "**"
	maskVisible     = 3
)

type ParkingSpace struct {
	ID               int64           `db:"id"                insert:"-"`
	Location         string          `db:"location"`
	VehicleType      string          `db:"vehicle_type"`
	AvailableCount   int             `db:"available_count"`
	HourlyRate       decimal.Decimal `db:"hourly_rate"`
	ReservationStart *time.Time      `db:"reservation_start"`
	ReservationEnd   *time.Time      `db:"reservation_end"`
	ReservationCode  string          `db:"reservation_code"`
	PaymentCompleted bool            `db:"payment_completed"`
	model.Metadata
}

// State places the space in its lifecycle: Idle -> Reserved -> Paid -> Idle.
func (p ParkingSpace) State() string {
	switch {
	case p.PaymentCompleted:
		return StatePaid
	case p.ReservationStart != nil:
		return StateReserved
	default:
		return StateIdle
	}
}

// Check reports stored values that no write path can produce.
func (p ParkingSpace) Check() error {
	if p.AvailableCount < 0 {
		return failure.Corrupted(fmt.Sprintf("parking space %d has a negative available count", p.ID))
	}

	if !p.HourlyRate.IsPositive() {
		return failure.Corrupted(fmt.Sprintf("parking space %d has a non-positive hourly rate", p.ID))
	}

	return nil
}

// NewReservationCode is "EP" + yyyyMMddHHmmss + four random digits. Codes are not guaranteed unique.
func NewReservationCode(now time.Time) string {
	return fmt.Sprintf("%s%s%04d", codePrefix, now.Format(constant.TransStampFormat), rand.IntN(codeSuffixRange)) //nolint:gosec
}

// MaskCode hides all but the last three characters.
func MaskCode(code string) string {
	if code == constant.Empty {
		return constant.Empty
	}

	runes := []rune(code)
	if len(runes) <= maskVisible {
		return maskPrefix + code
	}

	return maskPrefix + string(runes[len(runes)-maskVisible:])
}
