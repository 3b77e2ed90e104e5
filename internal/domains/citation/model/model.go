package model

import (
	"fmt"
	"time"

	"ecoparking/internal/domains/fee"
	"ecoparking/shared/constant"
	"ecoparking/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "citations"
	EntityName = "citation"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldUserName        = "user_name"
	FieldEmail           = "email"
	FieldVehicleType     = "vehicle_type"
	FieldLocation        = "location"
	FieldReservationCode = "reservation_code"
	FieldHourlyRate      = "hourly_rate"
	FieldScheduledEnd    = "scheduled_end"
	FieldActualEnd       = "actual_end"
	FieldReservedMinutes = "reserved_minutes"
	FieldPaidMinutes     = "paid_minutes"
	FieldExcessMinutes   = "excess_minutes"
	FieldPenalty         = "penalty"
	FieldReason          = "reason"
	FieldPaid            = "paid"
	FieldPaidAt          = "paid_at"
	FieldInvoiceNumber   = "invoice_number"
)

const (
	invoiceFormat     = "MULTA-%04d"
	transactionPrefix = "TRANS-"
	reasonFormat      = "Parking time exceeded: %d minutes"
)

type Citation struct {
	ID              int64           `db:"id"               insert:"-"`
	UserID          int64           `db:"user_id"`
	UserName        string          `db:"user_name"`
	Email           string          `db:"email"`
	VehicleType     string          `db:"vehicle_type"`
	Location        string          `db:"location"`
	ReservationCode string          `db:"reservation_code"`
	HourlyRate      decimal.Decimal `db:"hourly_rate"`
	ScheduledEnd    time.Time       `db:"scheduled_end"`
	ActualEnd       time.Time       `db:"actual_end"`
	ReservedMinutes int             `db:"reserved_minutes"`
	PaidMinutes     int             `db:"paid_minutes"`
	ExcessMinutes   int             `db:"excess_minutes"`
	Penalty         decimal.Decimal `db:"penalty"`
	Reason          string          `db:"reason"`
	Paid            bool            `db:"paid"`
	PaidAt          *time.Time      `db:"paid_at"`
	InvoiceNumber   string          `db:"invoice_number"`
	model.Metadata
}

// Assessment is the outcome of comparing the reserved window with the time paid for.
type Assessment struct {
	Triggered     bool
	ExcessMinutes int
	Penalty       decimal.Decimal
}

// Evaluate fines a customer who paid for less time than reserved: the excess is the unpaid
// minutes and the penalty is PenaltyRate of the whole reserved value.
func Evaluate(reservedMinutes, paidMinutes int, rate decimal.Decimal) Assessment {
	if paidMinutes >= reservedMinutes {
		return Assessment{Penalty: decimal.Zero}
	}

	return Assessment{
		Triggered:     true,
		ExcessMinutes: reservedMinutes - paidMinutes,
		Penalty:       fee.CitationPenalty(rate, time.Duration(reservedMinutes)*time.Minute),
	}
}

func Reason(excessMinutes int) string {
	return fmt.Sprintf(reasonFormat, excessMinutes)
}

func InvoiceNumber(id int64) string {
	return fmt.Sprintf(invoiceFormat, id)
}

func TransactionID(now time.Time) string {
	return transactionPrefix + now.Format(constant.TransStampFormat)
}
