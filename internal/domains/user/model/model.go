package model

import "ecoparking/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID     = "id"
	FieldName   = "name"
	FieldCedula = "cedula"
	FieldEmail  = "email"
	FieldPhone  = "phone"
)

type User struct {
	ID     int64  `db:"id"     insert:"-"`
	Name   string `db:"name"`
	Cedula string `db:"cedula"`
	Email  string `db:"email"`
	Phone  string `db:"phone"`
	model.Metadata
}
