package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"gor/infras/otel"
	"gor/infras/postgres"
	"gor/internal/domains/booking/model"
	"gor/internal/domains/booking/slot"
	"gor/shared/constant"
	gDto "gor/shared/dto"
	"gor/shared/failure"
	"gor/shared/logger"
	gRepo "gor/shared/repository"

	"github.com/lib/pq"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	GetBookedIntervals(ctx context.Context, fieldID, date string) ([]slot.Interval, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert persists a booking. The bookings table carries an exclusion
// constraint on (field_id, booking_date, [start_hour, end_hour)), so of two
// racing submissions for overlapping hours exactly one insert succeeds; the
// loser surfaces as a conflict.
func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) error {
	err := r.Repository.Insert(ctx, booking)
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
		return failure.Conflict(slot.MsgSlotAlreadyBooked) // nolint:wrapcheck
	}

	return err
}

// GetBookedIntervals returns one interval per occupied hour of the field on
// the given date, expanding multi-hour bookings. Cancelled bookings do not
// occupy slots.
func (r *repositoryImpl) GetBookedIntervals(ctx context.Context, fieldID, date string) (intervals []slot.Interval, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetBookedIntervals")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT %s, %s FROM %s WHERE %s = $1 AND %s = $2 AND %s <> $3 ORDER BY %s ASC",
		model.FieldStartHour, model.FieldEndHour, model.TableName,
		model.FieldFieldID, model.FieldDate, model.FieldStatus, model.FieldStartHour,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var rows []struct {
		StartHour int `db:"start_hour"`
		EndHour   int `db:"end_hour"`
	}

	err = r.db.Read.SelectContext(ctx, &rows, query, fieldID, date, model.StatusCancelled)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get booked intervals (%s): %w", model.EntityName, err)
	}

	intervals = make([]slot.Interval, 0)
	for _, row := range rows {
		for hour := row.StartHour; hour < row.EndHour; hour++ {
			intervals = append(intervals, slot.Interval{
				StartTime: slot.HourKey(hour),
				EndTime:   slot.HourKey(hour + 1),
			})
		}
	}

	return intervals, nil
}
