package model

import (
	"time"

	"ecoparking/shared/model"
)

const (
	TableName  = "visit_logs"
	EntityName = "visit_log"

	FieldID         = "id"
	FieldPersonName = "person_name"
	FieldAccessType = "access_type"
	FieldEnteredAt  = "entered_at"
)

type VisitLog struct {
	ID         int64     `db:"id"          insert:"-"`
	PersonName string    `db:"person_name"`
	AccessType string    `db:"access_type"`
	EnteredAt  time.Time `db:"entered_at"`
	model.Metadata
}
