package model

import "gor/shared/model"

const (
	TableName  = "fields"
	EntityName = "field"

	FieldID          = "id"
	FieldLocationID  = "location_id"
	FieldName        = "name"
	FieldFloorType   = "floor_type"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldImage       = "image"
	FieldActive      = "active"
)

// Field is a single badminton court. Price is the hourly rate in IDR.
type Field struct {
	ID          string `db:"id"`
	LocationID  string `db:"location_id"`
	Name        string `db:"name"`
	FloorType   string `db:"floor_type"`
	Description string `db:"description"`
	Price       int64  `db:"price"`
	Image       string `db:"image"`
	Active      bool   `db:"active"`
	model.Metadata
}
