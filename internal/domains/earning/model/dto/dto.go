package dto

import (
	"time"

	"ecoparking/internal/domains/earning/model"
	"ecoparking/internal/domains/fee"
	"ecoparking/internal/domains/report"
	"ecoparking/shared/constant"
	gDto "ecoparking/shared/dto"
	gModel "ecoparking/shared/model"
	"ecoparking/shared/timezone"

	"github.com/shopspring/decimal"
)

// CSVHeader is the first row of an exported earnings report.
var CSVHeader = []string{"Date", "Concept", "Amount", "PaymentMethod", "Location", "VehicleType", "User"}

type RecordRequest struct {
	Concept       string          `json:"concept"        validate:"required,max=100"`
	Amount        decimal.Decimal `json:"amount"         validate:"decimal_gte=0"`
	PaymentMethod string          `json:"payment_method" validate:"required,max=50"`
	Location      string          `json:"location"       validate:"max=100"`
	VehicleType   string          `json:"vehicle_type"   validate:"max=50"`
	UserName      string          `json:"user_name"      validate:"max=100"`
}

func (r *RecordRequest) ToModel(actor string, at time.Time) model.Earning {
	return model.Earning{
		Concept:       r.Concept,
		Amount:        fee.Round2(r.Amount),
		PaidAt:        at,
		PaymentMethod: r.PaymentMethod,
		Location:      r.Location,
		VehicleType:   r.VehicleType,
		UserName:      r.UserName,
		Metadata:      gModel.NewMetadata(actor),
	}
}

type EarningResponse struct {
	ID            int64           `json:"id"`
	Concept       string          `json:"concept"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        string          `json:"paid_at"`
	PaymentMethod string          `json:"payment_method"`
	Location      string          `json:"location"`
	VehicleType   string          `json:"vehicle_type"`
	UserName      string          `json:"user_name"`
}

func (r *EarningResponse) FromModel(m model.Earning) {
	r.ID = m.ID
	r.Concept = m.Concept
	r.Amount = m.Amount
	r.PaidAt = timezone.Format(m.PaidAt, constant.DisplayFormat)
	r.PaymentMethod = m.PaymentMethod
	r.Location = m.Location
	r.VehicleType = m.VehicleType
	r.UserName = m.UserName
}

// CSVRecord is the row written for m under CSVHeader.
func CSVRecord(m model.Earning) []string {
	return []string{
		timezone.Format(m.PaidAt, constant.DisplayFormat),
		m.Concept,
		m.Amount.StringFixed(2),
		m.PaymentMethod,
		m.Location,
		m.VehicleType,
		m.UserName,
	}
}

type RangeResponse struct {
	From     string            `json:"from"`
	To       string            `json:"to"`
	Total    decimal.Decimal   `json:"total"`
	Count    int               `json:"count"`
	Earnings []EarningResponse `json:"earnings"`
}

func (r *RangeResponse) FromModels(rng gDto.DateRange, models []model.Earning) {
	r.From = timezone.Format(rng.From, constant.DateOnlyFormat)
	r.To = timezone.Format(rng.To, constant.DateOnlyFormat)
	r.Count = len(models)
	r.Total = decimal.Zero

	r.Earnings = make([]EarningResponse, len(models))
	for i, m := range models {
		r.Earnings[i].FromModel(m)
		r.Total = r.Total.Add(m.Amount)
	}
}

type ExportResponse struct {
	FileName string `json:"file_name"`
	Path     string `json:"path"`
	URL      string `json:"url,omitempty"`
	Rows     int    `json:"rows"`
}

func ToPayments(models []model.Earning) []report.Payment {
	res := make([]report.Payment, len(models))
	for i, m := range models {
		res[i] = report.Payment{
			Amount:      m.Amount,
			Method:      m.PaymentMethod,
			Location:    m.Location,
			VehicleType: m.VehicleType,
			At:          m.PaidAt,
		}
	}

	return res
}
