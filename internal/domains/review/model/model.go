package model

import (
	"time"

	"ecoparking/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldSpace      = "space"
	FieldUserName   = "user_name"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldReviewedAt = "reviewed_at"
)

type Review struct {
	ID         int64     `db:"id"          insert:"-"`
	Space      string    `db:"space"`
	UserName   string    `db:"user_name"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	ReviewedAt time.Time `db:"reviewed_at"`
	model.Metadata
}
