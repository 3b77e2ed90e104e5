package model

import "ecoparking/shared/model"

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID             = "id"
	FieldName           = "name"
	FieldIdentification = "identification"
	FieldPasswordHash   = "password_hash"
)

// Admin is the single administrator account. The table never holds more than one row.
type Admin struct {
	ID             int64  `db:"id"             insert:"-"`
	Name           string `db:"name"`
	Identification string `db:"identification"`
	PasswordHash   string `db:"password_hash"`
	model.Metadata
}
