package dto

import (
	"time"

	"ecoparking/internal/domains/space/model"
	gDto "ecoparking/shared/dto"
	gModel "ecoparking/shared/model"

	"github.com/shopspring/decimal"
)

type CreateSpaceRequest struct {
	Location       string          `json:"location"         validate:"required,max=100"`
	VehicleType    string          `json:"vehicle_type"     validate:"required,max=50"`
	AvailableCount int             `json:"available_count"  validate:"gte=0"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"      validate:"decimal_gt=0"`
	Code           string          `json:"reservation_code" validate:"omitempty,max=50"`
}

func (c *CreateSpaceRequest) ToModel(user string) model.ParkingSpace {
	return model.ParkingSpace{
		Location:        c.Location,
		VehicleType:     c.VehicleType,
		AvailableCount:  c.AvailableCount,
		HourlyRate:      c.HourlyRate,
		ReservationCode: c.Code,
		Metadata:        gModel.NewMetadata(user),
	}
}

type ChangeAvailabilityRequest struct {
	AvailableCount int `json:"available_count" validate:"gte=0"`
}

type UpdateRateRequest struct {
	HourlyRate decimal.Decimal `json:"hourly_rate" validate:"decimal_gt=0"`
}

// ChangeCodeRequest replaces the reservation code. Location must match the space exactly.
type ChangeCodeRequest struct {
	Location string `json:"location" validate:"required,max=100"`
	Code     string `json:"code"     validate:"required,max=50"`
}

type SpaceResponse struct {
	ID               int64           `json:"id"`
	Location         string          `json:"location"`
	VehicleType      string          `json:"vehicle_type"`
	AvailableCount   int             `json:"available_count"`
	HourlyRate       decimal.Decimal `json:"hourly_rate"`
	ReservationStart *time.Time      `json:"reservation_start,omitempty"`
	ReservationEnd   *time.Time      `json:"reservation_end,omitempty"`
	MaskedCode       string          `json:"reservation_code"`
	PaymentCompleted bool            `json:"payment_completed"`
	State            string          `json:"state"`
	Code             string          `json:"-"`
	gDto.Metadata
}

func (r *SpaceResponse) FromModel(m model.ParkingSpace) {
	r.ID = m.ID
	r.Location = m.Location
	r.VehicleType = m.VehicleType
	r.AvailableCount = m.AvailableCount
	r.HourlyRate = m.HourlyRate
	r.ReservationStart = m.ReservationStart
	r.ReservationEnd = m.ReservationEnd
	r.MaskedCode = model.MaskCode(m.ReservationCode)
	r.PaymentCompleted = m.PaymentCompleted
	r.State = m.State()
	r.Code = m.ReservationCode
	r.Metadata.FromModel(m.Metadata)
}

func (r *SpaceResponse) Available() bool {
	return r.AvailableCount > 0
}

type GetSpacesResponse struct {
	Spaces    []SpaceResponse `json:"spaces"`
	TotalData int             `json:"total_data"`
}

func (r *GetSpacesResponse) FromModels(models []model.ParkingSpace) {
	r.TotalData = len(models)

	r.Spaces = make([]SpaceResponse, len(models))
	for i, mod := range models {
		r.Spaces[i].FromModel(mod)
	}
}

// ReserveResponse describes the window stamped on a space by a reservation.
type ReserveResponse struct {
	SpaceID     int64           `json:"space_id"`
	Location    string          `json:"location"`
	VehicleType string          `json:"vehicle_type"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	MaskedCode  string          `json:"reservation_code"`
	Code        string          `json:"-"`
}
