package model

import (
	"time"

	"ecoparking/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "vehicle_stats"
	EntityName = "vehicle_stat"

	FieldID             = "id"
	FieldVehicleType    = "vehicle_type"
	FieldUseCount       = "use_count"
	FieldTotalCollected = "total_collected"
	FieldLastUsedAt     = "last_used_at"
)

type VehicleStat struct {
	ID             int64           `db:"id"              insert:"-"`
	VehicleType    string          `db:"vehicle_type"`
	UseCount       int             `db:"use_count"`
	TotalCollected decimal.Decimal `db:"total_collected"`
	LastUsedAt     *time.Time      `db:"last_used_at"`
	model.Metadata
}
