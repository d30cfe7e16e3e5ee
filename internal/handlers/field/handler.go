package field

import (
	"net/http"

	"gor/infras/otel"
	"gor/internal/domains/field/model"
	"gor/internal/domains/field/model/dto"
	"gor/internal/domains/field/service"
	"gor/shared"
	"gor/shared/constant"
	gDto "gor/shared/dto"
	"gor/shared/validator"
	"gor/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Field
	otel    otel.Otel
}

func New(service service.Field, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/fields", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateField)
		routerGroup.Get("/", handler.GetFields)
		routerGroup.Get("/{id}", handler.GetFieldByID)
		routerGroup.Patch("/{id}", handler.UpdateField)
		routerGroup.Delete("/{id}", handler.DeleteField)
	})
}

// CreateField handles the creation of a new badminton court.
// @Summary Create a new field
// @Description Create a new badminton court with the provided details.
// @Tags Field
// @Accept multipart/form-data
// @Produce json
// @Param location_id formData string true "Location ID"
// @Param name formData string true "Field name"
// @Param floor_type formData string false "Floor type (vinyl, wood, synthetic, cement)"
// @Param description formData string false "Description"
// @Param price formData integer true "Hourly price in IDR"
// @Param active formData boolean false "Active status"
// @Param image formData file false "Field image"
// @Success 201 {object} response.Message "Field created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fields [post]
// @Security BearerAuth
func (handler *Handler) CreateField(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateField")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateFieldRequest{
		LocationID:  request.FormValue("location_id"),
		Name:        request.FormValue("name"),
		FloorType:   request.FormValue("floor_type"),
		Description: request.FormValue("description"),
	}

	if priceStr := request.FormValue("price"); priceStr != "" {
		if p, err := shared.ConvertStringToInt(priceStr); err == nil {
			req.Price = int64(p)
		}
	}

	if activeStr := request.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create field")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Field created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Field created successfully")
}

// GetFields retrieves all fields based on query parameters.
// @Summary Get all fields
// @Description Retrieve all fields with optional filtering and pagination.
// @Tags Field
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param location_id query string false "Filter by location"
// @Param floor_type query string false "Filter by floor type"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.FieldResponse] "List of fields"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fields [get]
func (handler *Handler) GetFields(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFields")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if locationID := r.URL.Query().Get(model.FieldLocationID); locationID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocationID,
			Operator: gDto.FilterOperatorEq,
			Value:    locationID,
			Table:    model.TableName,
		})
	}

	if floorType := r.URL.Query().Get(model.FieldFloorType); floorType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldFloorType,
			Operator: gDto.FilterOperatorEq,
			Value:    floorType,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	fields, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get fields")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Fields retrieved successfully")

	response.WithJSON(w, http.StatusOK, fields)
}

// GetFieldByID retrieves a field by its ID.
// @Summary Get a field by ID
// @Description Retrieve a field by its unique identifier.
// @Tags Field
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} response.Data[dto.FieldResponse] "Field details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fields/{id} [get]
func (handler *Handler) GetFieldByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFieldByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	field, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get field by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Field retrieved successfully")

	response.WithJSON(w, http.StatusOK, field)
}

// UpdateField updates an existing field by its ID.
// @Summary Update a field by ID
// @Description Update the details of an existing field.
// @Tags Field
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Field ID"
// @Param name formData string false "Field name"
// @Param floor_type formData string false "Floor type (vinyl, wood, synthetic, cement)"
// @Param description formData string false "Description"
// @Param price formData integer false "Hourly price in IDR"
// @Param active formData boolean false "Active status"
// @Param image formData file false "Field image"
// @Success 200 {object} response.Message "Field updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fields/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateField")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateFieldRequest{
		Name:        r.FormValue("name"),
		FloorType:   r.FormValue("floor_type"),
		Description: r.FormValue("description"),
	}

	if priceStr := r.FormValue("price"); priceStr != "" {
		if p, err := shared.ConvertStringToInt(priceStr); err == nil {
			price := int64(p)
			req.Price = &price
		}
	}

	if activeStr := r.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update field")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Field updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Field updated successfully")
}

// DeleteField deletes a field by its ID.
// @Summary Delete a field by ID
// @Description Delete a field using its unique identifier.
// @Tags Field
// @Accept json
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} response.Message "Field deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/fields/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteField(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteField")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete field")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Field deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Field deleted successfully")
}
