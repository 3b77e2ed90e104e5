package dto

import (
	"time"

	"ecoparking/internal/domains/loyalty/model"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gModel "ecoparking/shared/model"
	"ecoparking/shared/timezone"

	"github.com/shopspring/decimal"
)

// Member identifies the customer a loyalty operation runs for.
type Member struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Name   string `json:"name"    validate:"required,max=100"`
	Email  string `json:"email"   validate:"required,email,max=100"`
}

func (m *Member) ToModel(actor string) model.LoyaltyRecord {
	return model.LoyaltyRecord{
		UserID:   m.UserID,
		UserName: m.Name,
		Email:    m.Email,
		Tier:     model.TierNew,
		Metadata: gModel.NewMetadata(actor),
	}
}

type StatsResponse struct {
	UserID             int64           `json:"user_id"`
	Name               string          `json:"name"`
	Email              string          `json:"email"`
	ReservationCount   int             `json:"reservation_count"`
	Tier               string          `json:"tier"`
	CumulativeDiscount decimal.Decimal `json:"cumulative_discount"`
	LastDiscount       decimal.Decimal `json:"last_discount"`
	UntilNextDiscount  int             `json:"until_next_discount"`
	LastReservationAt  string          `json:"last_reservation_at,omitempty"`
	LastDiscountAt     string          `json:"last_discount_at,omitempty"`
}

func (r *StatsResponse) FromModel(m model.LoyaltyRecord) {
	r.UserID = m.UserID
	r.Name = m.UserName
	r.Email = m.Email
	r.ReservationCount = m.ReservationCount
	r.Tier = m.Tier
	r.CumulativeDiscount = m.CumulativeDiscount
	r.LastDiscount = m.LastDiscountAmount
	r.UntilNextDiscount = m.UntilNextDiscount()
	r.LastReservationAt = formatOptional(m.LastReservationAt)
	r.LastDiscountAt = formatOptional(m.LastDiscountAt)

	if r.Tier == constant.Empty {
		r.Tier = model.TierNew
	}
}

// DiscountResponse reports what ApplyDiscount did to an amount.
type DiscountResponse struct {
	Applied  bool            `json:"applied"`
	Original decimal.Decimal `json:"original"`
	Discount decimal.Decimal `json:"discount"`
	Final    decimal.Decimal `json:"final"`
	Tier     string          `json:"tier"`
}

type GetRecordsResponse struct {
	Records   []StatsResponse `json:"records"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetRecordsResponse) FromModels(models []model.LoyaltyRecord, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Records = make([]StatsResponse, len(models))
	for i, m := range models {
		r.Records[i].FromModel(m)
	}
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return constant.Empty
	}

	return timezone.Format(*t, constant.DisplayFormat)
}
