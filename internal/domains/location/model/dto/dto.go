package dto

import (
	"mime/multipart"

	"gor/internal/domains/location/model"
	"gor/shared"
	gDto "gor/shared/dto"
	gModel "gor/shared/model"
	"gor/shared/timezone"

	"github.com/google/uuid"
)

type CreateLocationRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	Address     string                `json:"address"     validate:"required,max=255"`
	City        string                `json:"city"        validate:"required,max=100"`
	Description string                `json:"description" validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateLocationRequest) ToModel(user string, imageURL string) model.Location {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Location{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Address:     c.Address,
		City:        c.City,
		Description: c.Description,
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

type UpdateLocationRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Address     string                `db:"address"     json:"address"     validate:"omitempty,max=255"`
	City        string                `db:"city"        json:"city"        validate:"omitempty,max=100"`
	Description string                `db:"description" json:"description" validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

type LocationResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *LocationResponse) FromModel(model model.Location) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.City = model.City
	r.Description = model.Description
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetLocationsResponse) FromModels(models []model.Location, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Locations = make([]LocationResponse, len(models))
	for i, mod := range models {
		r.Locations[i].FromModel(mod)
	}
}
