package dto

import (
	"time"

	"ecoparking/internal/domains/citation/model"
	"ecoparking/internal/domains/fee"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gModel "ecoparking/shared/model"
	"ecoparking/shared/timezone"

	"github.com/shopspring/decimal"
)

// IssueRequest describes a finished reservation that may deserve a citation.
type IssueRequest struct {
	UserID          int64           `json:"user_id"          validate:"required,gt=0"`
	UserName        string          `json:"user_name"        validate:"required,max=100"`
	Email           string          `json:"email"            validate:"required,email,max=100"`
	VehicleType     string          `json:"vehicle_type"     validate:"required,max=50"`
	Location        string          `json:"location"         validate:"required,max=100"`
	Code            string          `json:"code"             validate:"max=50"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"      validate:"decimal_gt=0"`
	Start           time.Time       `json:"start"            validate:"required"`
	ScheduledEnd    time.Time       `json:"scheduled_end"    validate:"required,gtfield=Start"`
	ReservedMinutes int             `json:"reserved_minutes" validate:"gt=0"`
	PaidMinutes     int             `json:"paid_minutes"     validate:"gte=0"`
}

// ActualEnd is when the time paid for ran out.
func (r *IssueRequest) ActualEnd() time.Time {
	return r.Start.Add(time.Duration(r.PaidMinutes) * time.Minute)
}

func (r *IssueRequest) ToModel(actor string, assessment model.Assessment) model.Citation {
	return model.Citation{
		UserID:          r.UserID,
		UserName:        r.UserName,
		Email:           r.Email,
		VehicleType:     r.VehicleType,
		Location:        r.Location,
		ReservationCode: r.Code,
		HourlyRate:      r.HourlyRate,
		ScheduledEnd:    r.ScheduledEnd,
		ActualEnd:       r.ActualEnd(),
		ReservedMinutes: r.ReservedMinutes,
		PaidMinutes:     r.PaidMinutes,
		ExcessMinutes:   assessment.ExcessMinutes,
		Penalty:         fee.Round2(assessment.Penalty),
		Reason:          model.Reason(assessment.ExcessMinutes),
		Metadata:        gModel.NewMetadata(actor),
	}
}

// PayRequest settles a citation. A non-zero UserID restricts payment to the citation's owner.
type PayRequest struct {
	CitationID int64 `json:"citation_id" validate:"required,gt=0"`
	UserID     int64 `json:"user_id"     validate:"gte=0"`
}

type CitationResponse struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	UserName        string          `json:"user_name"`
	Email           string          `json:"email"`
	VehicleType     string          `json:"vehicle_type"`
	Location        string          `json:"location"`
	ReservationCode string          `json:"reservation_code"`
	HourlyRate      decimal.Decimal `json:"hourly_rate"`
	ScheduledEnd    string          `json:"scheduled_end"`
	ActualEnd       string          `json:"actual_end"`
	ExcessMinutes   int             `json:"excess_minutes"`
	Penalty         decimal.Decimal `json:"penalty"`
	Reason          string          `json:"reason"`
	Paid            bool            `json:"paid"`
	PaidAt          string          `json:"paid_at,omitempty"`
	InvoiceNumber   string          `json:"invoice_number,omitempty"`
	IssuedAt        string          `json:"issued_at"`
}

func (r *CitationResponse) FromModel(m model.Citation) {
	r.ID = m.ID
	r.UserID = m.UserID
	r.UserName = m.UserName
	r.Email = m.Email
	r.VehicleType = m.VehicleType
	r.Location = m.Location
	r.ReservationCode = m.ReservationCode
	r.HourlyRate = m.HourlyRate
	r.ScheduledEnd = timezone.Format(m.ScheduledEnd, constant.DisplayFormat)
	r.ActualEnd = timezone.Format(m.ActualEnd, constant.DisplayFormat)
	r.ExcessMinutes = m.ExcessMinutes
	r.Penalty = m.Penalty
	r.Reason = m.Reason
	r.Paid = m.Paid
	r.InvoiceNumber = m.InvoiceNumber
	r.IssuedAt = timezone.Format(m.CreatedAt, constant.DisplayFormat)

	if m.PaidAt != nil {
		r.PaidAt = timezone.Format(*m.PaidAt, constant.DisplayFormat)
	}
}

type PayResponse struct {
	CitationID    int64           `json:"citation_id"`
	InvoiceNumber string          `json:"invoice_number"`
	TransactionID string          `json:"transaction_id"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	PaidAt        string          `json:"paid_at"`
}

type GetCitationsResponse struct {
	Citations []CitationResponse `json:"citations"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCitationsResponse) FromModels(models []model.Citation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Citations = make([]CitationResponse, len(models))
	for i, m := range models {
		r.Citations[i].FromModel(m)
	}
}
