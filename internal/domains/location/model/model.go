package model

import "gor/shared/model"

const (
	TableName  = "locations"
	EntityName = "location"

	FieldID          = "id"
	FieldName        = "name"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldActive      = "active"
)

type Location struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Address     string `db:"address"`
	City        string `db:"city"`
	Description string `db:"description"`
	Image       string `db:"image"`
	Active      bool   `db:"active"`
	model.Metadata
}
