package model

import (
	"gor/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "galleries"
	EntityName = "gallery"

	FieldID          = "id"
	FieldLocationID  = "location_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldImages      = "images"
)

// Gallery is a photo set for one location, shown on the browse pages.
type Gallery struct {
	ID          string         `db:"id"`
	LocationID  string         `db:"location_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Images      pq.StringArray `db:"images"`
	model.Metadata
}
