package dto

import (
	"time"

	"ecoparking/internal/domains/reservation/model"
	gModel "ecoparking/shared/model"

	"github.com/shopspring/decimal"
)

type CreateRequest struct {
	UserID      int64           `json:"user_id"      validate:"required,gt=0"`
	UserName    string          `json:"user_name"    validate:"required,max=100"`
	SpaceID     int64           `json:"space_id"     validate:"required,gt=0"`
	Code        string          `json:"code"         validate:"required,max=50"`
	Location    string          `json:"location"     validate:"required,max=100"`
	VehicleType string          `json:"vehicle_type" validate:"required,max=50"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"  validate:"decimal_gt=0"`
	Start       time.Time       `json:"start"        validate:"required"`
	End         time.Time       `json:"end"          validate:"required,gtfield=Start"`
}

func (r *CreateRequest) ToModel(actor string) model.Reservation {
	return model.Reservation{
		UserID:          r.UserID,
		SpaceID:         r.SpaceID,
		UserName:        r.UserName,
		Code:            r.Code,
		Location:        r.Location,
		VehicleType:     r.VehicleType,
		HourlyRate:      r.HourlyRate,
		ReservedMinutes: int(r.End.Sub(r.Start).Round(time.Minute) / time.Minute),
		StartAt:         r.Start,
		EndAt:           r.End,
		Status:          model.StatusActive,
		Metadata:        gModel.NewMetadata(actor),
	}
}

type ReservationResponse struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	SpaceID         int64           `json:"space_id"`
	UserName        string          `json:"user_name"`
	Code            string          `json:"-"`
	Location        string          `json:"location"`
	VehicleType     string          `json:"vehicle_type"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	ReservedMinutes int             `json:"reserved_minutes"`
	PaidMinutes     int             `json:"paid_minutes"`
	Start           time.Time       `json:"start"`
	End             time.Time       `json:"end"`
	Status          string          `json:"status"`
}

func (r *ReservationResponse) FromModel(m model.Reservation) {
	r.ID = m.ID
	r.UserID = m.UserID
	r.SpaceID = m.SpaceID
	r.UserName = m.UserName
	r.Code = m.Code
	r.Location = m.Location
	r.VehicleType = m.VehicleType
	r.HourlyRate = m.HourlyRate
	r.ReservedMinutes = m.ReservedMinutes
	r.PaidMinutes = m.PaidMinutes
	r.Start = m.StartAt
	r.End = m.EndAt
	r.Status = m.Status
}

func (r ReservationResponse) Reserved() time.Duration {
	return time.Duration(r.ReservedMinutes) * time.Minute
}
