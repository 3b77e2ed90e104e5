package model

import (
	"time"

	"ecoparking/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "earnings"
	EntityName = "earning"

	FieldID            = "id"
	FieldConcept       = "concept"
	FieldAmount        = "amount"
	FieldPaidAt        = "paid_at"
	FieldPaymentMethod = "payment_method"
	FieldLocation      = "location"
	FieldVehicleType   = "vehicle_type"
	FieldUserName      = "user_name"
)

const conceptPrefix = "Pago parqueo - "

type Earning struct {
	ID            int64           `db:"id"             insert:"-"`
	Concept       string          `db:"concept"`
	Amount        decimal.Decimal `db:"amount"`
	PaidAt        time.Time       `db:"paid_at"`
	PaymentMethod string          `db:"payment_method"`
	Location      string          `db:"location"`
	VehicleType   string          `db:"vehicle_type"`
	UserName      string          `db:"user_name"`
	model.Metadata
}

// ParkingConcept labels a parking payment at location.
func ParkingConcept(location string) string {
	return conceptPrefix + location
}
