package service

import (
	"context"
	"fmt"
	"time"

	"gor/config"
	"gor/infras/kafka"
	"gor/infras/otel"
	"gor/internal/domains/booking/model"
	"gor/internal/domains/booking/model/dto"
	"gor/internal/domains/booking/repository"
	"gor/internal/domains/booking/slot"
	fieldModel "gor/internal/domains/field/model"
	fieldRepo "gor/internal/domains/field/repository"
	"gor/shared"
	"gor/shared/cache"
	"gor/shared/constant"
	gDto "gor/shared/dto"
	"gor/shared/failure"
	"gor/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheBookedSlots   = "booking:slots"
	cacheAvailability  = "booking:availability"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	GetBookedSlots(ctx context.Context, fieldID, date string) (dto.GetBookedSlotsResponse, error)
	GetAvailability(ctx context.Context, fieldID, date string) (dto.GetAvailabilityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	fieldRepo fieldRepo.Field
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	kafka     kafka.Client
}

func New(repo repository.Booking, fieldRepo fieldRepo.Field, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Booking {
	return &serviceImpl{
		repo:      repo,
		fieldRepo: fieldRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		kafka:     kafka,
	}
}

// Create runs the full submission sequence: local draft validation, field
// lookup, a free check against the currently booked intervals, then the
// insert. The insert is the arbitration point: when two clients race for
// overlapping hours the exclusion constraint lets exactly one through and
// the other receives a conflict.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	draft := req.ToDraft()
	window := slot.WindowFromConfig(s.cfg)

	// Local rules first: field presence, date, hour range, ordering,
	// operating window.
	if _, _, err = draft.Validate(window, nil); err != nil {
		return res, err
	}

	field, err := s.fieldRepo.Get(ctx, shared.FilterByID(req.FieldID, fieldModel.FieldID, fieldModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get field")

		return res, fmt.Errorf("failed to get field: %w", err)
	}

	if field.ID == constant.Empty || !field.Active {
		return res, failure.BadRequestFromString("field does not exist") // nolint:wrapcheck
	}

	intervals, err := s.repo.GetBookedIntervals(ctx, req.FieldID, req.Date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked intervals")

		return res, fmt.Errorf("failed to get booked intervals: %w", err)
	}

	startHour, duration, err := draft.Validate(window, intervals)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(user, startHour, duration, slot.TotalPrice(field.Price, duration))

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, model.EventBookingCreated, booking)
		s.invalidateSlotCaches(c)
	}()

	return res, nil
}

func (s *serviceImpl) GetBookedSlots(ctx context.Context, fieldID, date string) (res dto.GetBookedSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookedSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.validateSlotQuery(ctx, fieldID, date); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheBookedSlots, fieldID, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booked slots")

		return res, nil
	}

	intervals, err := s.repo.GetBookedIntervals(ctx, fieldID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked intervals")

		return res, fmt.Errorf("failed to get booked intervals: %w", err)
	}

	res.FromIntervals(fieldID, date, intervals)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booked slots to cache")
		}
	}()

	return res, nil
}

// GetAvailability composes the candidate grid with the booked intervals so
// clients receive ready-made is_booked flags instead of mirroring the slot
// logic themselves. Regeneration is idempotent: the grid is derived from the
// operating window and the current bookings on every call.
func (s *serviceImpl) GetAvailability(ctx context.Context, fieldID, date string) (res dto.GetAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.validateSlotQuery(ctx, fieldID, date); err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheAvailability, fieldID, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	intervals, err := s.repo.GetBookedIntervals(ctx, fieldID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booked intervals")

		return res, fmt.Errorf("failed to get booked intervals: %w", err)
	}

	candidates := slot.MarkBooked(slot.Generate(slot.WindowFromConfig(s.cfg)), intervals)
	res.FromCandidates(fieldID, date, candidates)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		if err = s.authorizeOwner(ctx, res.UserID); err != nil {
			return dto.BookingResponse{}, err
		}

		return res, nil
	}

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.authorizeOwner(ctx, booking.UserID); err != nil {
		return dto.BookingResponse{}, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if req.Status == model.StatusCancelled && booking.Status != model.StatusCancelled {
			s.publishEvent(c, model.EventBookingCancelled, booking)
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		s.invalidateSlotCaches(c)
	}()

	return nil
}

// Cancel moves a booking to cancelled, freeing its slots for rebooking.
// Regular users may only cancel their own bookings.
func (s *serviceImpl) Cancel(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(nil)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	booking, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		log.Error().Msg("booking not found")

		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.authorizeOwner(ctx, booking.UserID); err != nil {
		return err
	}

	if booking.Status == model.StatusCancelled {
		return failure.BadRequestFromString("booking is already cancelled") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.publishEvent(c, model.EventBookingCancelled, booking)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		s.invalidateSlotCaches(c)
	}()

	return nil
}

func (s *serviceImpl) validateSlotQuery(ctx context.Context, fieldID, date string) error {
	if fieldID == constant.Empty {
		return failure.BadRequestFromString(slot.MsgFieldRequired) // nolint:wrapcheck
	}

	if _, err := time.Parse(constant.BookingDateFormat, date); err != nil {
		return failure.BadRequestFromString(slot.MsgInvalidDate) // nolint:wrapcheck
	}

	exist, err := s.fieldRepo.Exist(ctx, shared.FilterByID(fieldID, fieldModel.FieldID, fieldModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if field exists")

		return fmt.Errorf("failed to check if field exists: %w", err)
	}

	if !exist {
		return failure.NotFound("field not found") // nolint:wrapcheck
	}

	return nil
}

// authorizeOwner restricts regular users to their own bookings; admins pass.
func (s *serviceImpl) authorizeOwner(ctx context.Context, ownerID string) error {
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if role == constant.RoleUser && ownerID != user {
		return failure.ResourceRestrictedError
	}

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, eventType string, booking model.Booking) {
	event := dto.NewBookingEvent(eventType, booking)

	message := kafka.Message{
		Key:   booking.ID,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingEvents, message); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")
	}
}

func (s *serviceImpl) invalidateSlotCaches(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBooking)
	shared.InvalidateCaches(ctx, s.cache, cacheBookedSlots)
	shared.InvalidateCaches(ctx, s.cache, cacheAvailability)
}
