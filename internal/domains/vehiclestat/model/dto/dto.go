package dto

import (
	"ecoparking/internal/domains/vehiclestat/model"
	"ecoparking/shared/constant"
	"ecoparking/shared/timezone"

	"github.com/shopspring/decimal"
)

type StatResponse struct {
	VehicleType    string          `json:"vehicle_type"`
	UseCount       int             `json:"use_count"`
	TotalCollected decimal.Decimal `json:"total_collected"`
	WeeklyUses     int             `json:"weekly_uses"`
	MonthlyUses    int             `json:"monthly_uses"`
	LastUsedAt     string          `json:"last_used_at,omitempty"`
}

func (r *StatResponse) FromModel(m model.VehicleStat, weekly, monthly int) {
	r.VehicleType = m.VehicleType
	r.UseCount = m.UseCount
	r.TotalCollected = m.TotalCollected
	r.WeeklyUses = weekly
	r.MonthlyUses = monthly

	if m.LastUsedAt != nil {
		r.LastUsedAt = timezone.Format(*m.LastUsedAt, constant.DisplayFormat)
	}
}

type StatsResponse struct {
	Vehicles       []StatResponse  `json:"vehicles"`
	TotalUses      int             `json:"total_uses"`
	TotalCollected decimal.Decimal `json:"total_collected"`
}

func (r *StatsResponse) FromModels(models []model.VehicleStat, weekly, monthly map[string]int) {
	r.TotalCollected = decimal.Zero

	r.Vehicles = make([]StatResponse, len(models))
	for i, m := range models {
		r.Vehicles[i].FromModel(m, weekly[m.VehicleType], monthly[m.VehicleType])
		r.TotalUses += m.UseCount
		r.TotalCollected = r.TotalCollected.Add(m.TotalCollected)
	}
}
