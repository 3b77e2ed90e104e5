package model

import (
	"time"

	"ecoparking/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldSpaceID         = "space_id"
	FieldUserName        = "user_name"
	FieldCode            = "code"
	FieldLocation        = "location"
	FieldVehicleType     = "vehicle_type"
	FieldHourlyRate      = "hourly_rate"
	FieldReservedMinutes = "reserved_minutes"
	FieldPaidMinutes     = "paid_minutes"
	FieldStartAt         = "start_at"
	FieldEndAt           = "end_at"
	FieldStatus          = "status"
)

const (
	StatusActive   = "active"
	StatusPaid     = "paid"
	StatusReleased = "released"
)

// Reservation is one reserve call on a space: who holds which window at which rate.
type Reservation struct {
	ID              int64           `db:"id"               insert:"-"`
	UserID          int64           `db:"user_id"`
	SpaceID         int64           `db:"space_id"`
	UserName        string          `db:"user_name"`
	Code            string          `db:"code"`
	Location        string          `db:"location"`
	VehicleType     string          `db:"vehicle_type"`
	HourlyRate      decimal.Decimal `db:"hourly_rate"`
	ReservedMinutes int             `db:"reserved_minutes"`
	PaidMinutes     int             `db:"paid_minutes"`
	StartAt         time.Time       `db:"start_at"`
	EndAt           time.Time       `db:"end_at"`
	Status          string          `db:"status"`
	model.Metadata
}
