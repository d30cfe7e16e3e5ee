package dto

import (
	"mime/multipart"

	"gor/internal/domains/field/model"
	"gor/shared"
	gDto "gor/shared/dto"
	gModel "gor/shared/model"
	"gor/shared/timezone"

	"github.com/google/uuid"
)

type CreateFieldRequest struct {
	LocationID  string                `json:"location_id" validate:"required,uuid"`
	Name        string                `json:"name"        validate:"required,max=100"`
	FloorType   string                `json:"floor_type"  validate:"omitempty,oneof=vinyl wood synthetic cement"`
	Description string                `json:"description" validate:"omitempty"`
	Price       int64                 `json:"price"       validate:"required,gt=0"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateFieldRequest) ToModel(user string, imageURL string) model.Field {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	floorType := c.FloorType
	if floorType == "" {
		floorType = "vinyl"
	}

	return model.Field{
		ID:          uuid.NewString(),
		LocationID:  c.LocationID,
		Name:        c.Name,
		FloorType:   floorType,
		Description: c.Description,
		Price:       c.Price,
		Image:       imageURL,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFieldRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	FloorType   string                `db:"floor_type"  json:"floor_type"  validate:"omitempty,oneof=vinyl wood synthetic cement"`
	Description string                `db:"description" json:"description" validate:"omitempty"`
	Price       *int64                `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

type FieldResponse struct {
	ID          string `json:"id"`
	LocationID  string `json:"location_id"`
	Name        string `json:"name"`
	FloorType   string `json:"floor_type"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *FieldResponse) FromModel(model model.Field) {
	r.ID = model.ID
	r.LocationID = model.LocationID
	r.Name = model.Name
	r.FloorType = model.FloorType
	r.Description = model.Description
	r.Price = model.Price
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetFieldsResponse struct {
	Fields    []FieldResponse `json:"fields"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetFieldsResponse) FromModels(models []model.Field, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Fields = make([]FieldResponse, len(models))
	for i, mod := range models {
		r.Fields[i].FromModel(mod)
	}
}
