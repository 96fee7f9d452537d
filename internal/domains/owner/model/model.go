package model

import "pgstay/shared/model"

const (
	TableName  = "owners"
	EntityName = "owner"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldName      = "name"
	FieldMobile    = "mobile"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

// Owner is a property owner account. Owners authenticate with email and
// password and are the only principals allowed to run the listing wizard.
type Owner struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	Password  string  `db:"password"`
	Name      string  `db:"name"`
	Mobile    string  `db:"mobile"`
	Role      string  `db:"role"`
	LastLogin *string `db:"last_login"`
	Active    bool    `db:"active"`
	model.Metadata
}
