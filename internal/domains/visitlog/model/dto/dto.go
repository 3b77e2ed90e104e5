package dto

import (
	"time"

	"ecoparking/internal/domains/report"
	"ecoparking/internal/domains/visitlog/model"
	"ecoparking/shared"
	"ecoparking/shared/constant"
	gModel "ecoparking/shared/model"
	"ecoparking/shared/timezone"
)

type RecordRequest struct {
	PersonName string `json:"person_name" validate:"required,max=100"`
	AccessType string `json:"access_type" validate:"required,oneof=User Admin"`
}

func (r *RecordRequest) ToModel(actor string, at time.Time) model.VisitLog {
	return model.VisitLog{
		PersonName: r.PersonName,
		AccessType: r.AccessType,
		EnteredAt:  at,
		Metadata:   gModel.NewMetadata(actor),
	}
}

type VisitResponse struct {
	ID         int64  `json:"id"`
	PersonName string `json:"person_name"`
	AccessType string `json:"access_type"`
	EnteredAt  string `json:"entered_at"`
}

func (r *VisitResponse) FromModel(m model.VisitLog) {
	r.ID = m.ID
	r.PersonName = m.PersonName
	r.AccessType = m.AccessType
	r.EnteredAt = timezone.Format(m.EnteredAt, constant.DisplayFormat)
}

type GetVisitsResponse struct {
	Visits    []VisitResponse `json:"visits"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetVisitsResponse) FromModels(models []model.VisitLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Visits = make([]VisitResponse, len(models))
	for i, m := range models {
		r.Visits[i].FromModel(m)
	}
}

func ToVisits(models []model.VisitLog) []report.Visit {
	res := make([]report.Visit, len(models))
	for i, m := range models {
		res[i] = report.Visit{AccessType: m.AccessType, At: m.EnteredAt}
	}

	return res
}
