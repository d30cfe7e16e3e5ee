package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gor/config"
	kafkaMocks "gor/infras/kafka/mocks"
	"gor/infras/otel/mocks"
	bookingMocks "gor/internal/domains/booking/mocks"
	"gor/internal/domains/booking/model"
	"gor/internal/domains/booking/model/dto"
	"gor/internal/domains/booking/service"
	"gor/internal/domains/booking/slot"
	fieldMocks "gor/internal/domains/field/mocks"
	fieldModel "gor/internal/domains/field/model"
	cacheMocks "gor/shared/cache/mocks"
	"gor/shared/constant"
	"gor/shared/failure"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.Booking.OpenHour = 6
	cfg.App.Booking.CloseHour = 24
	cfg.Kafka.Topics.BookingEvents = "booking.events"

	return cfg
}

func userContext(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockFieldRepo := fieldMocks.NewMockField(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, mockFieldRepo, newTestConfig(), mockCache, mockOtel, mockKafka)

	activeField := fieldModel.Field{
		ID:     "field-1",
		Name:   "Court 1",
		Price:  100000,
		Active: true,
	}

	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func()
		wantErr    string
		wantCode   int
		wantPrice  int64
		wantStart  string
		wantLength int
	}{
		{
			name: "successful multi hour booking",
			req: dto.CreateBookingRequest{
				FieldID:   "field-1",
				Date:      "2026-09-01",
				StartTime: "14:00",
				EndTime:   "17:00",
			},
			setupMock: func() {
				mockFieldRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeField, nil)

				mockRepo.EXPECT().
					GetBookedIntervals(gomock.Any(), "field-1", "2026-09-01").
					Return([]slot.Interval{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "booking.events", gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantPrice:  300000,
			wantStart:  "14:00",
			wantLength: 3,
		},
		{
			name: "missing field id fails before any lookup",
			req: dto.CreateBookingRequest{
				Date:      "2026-09-01",
				StartTime: "14:00",
				EndTime:   "15:00",
			},
			setupMock: func() {},
			wantErr:   slot.MsgFieldRequired,
			wantCode:  400,
		},
		{
			name: "invalid date fails before any lookup",
			req: dto.CreateBookingRequest{
				FieldID:   "field-1",
				Date:      "2026-13-40",
				StartTime: "14:00",
				EndTime:   "15:00",
			},
			setupMock: func() {},
			wantErr:   slot.MsgInvalidDate,
			wantCode:  400,
		},
		{
			name: "end not after start",
			req: dto.CreateBookingRequest{
				FieldID:   "field-1",
				Date:      "2026-09-01",
				StartTime: "15:00",
				EndTime:   "14:00",
			},
			setupMock: func() {},
			wantErr:   slot.MsgEndBeforeStart,
			wantCode:  400,
		},
		{
			name: "hours outside operating window fail before any lookup",
			req: dto.CreateBookingRequest{
				FieldID:   "field-1",
				Date:      "2026-09-01",
				StartTime: "03:00",
				EndTime:   "05:00",
			},
			setupMock: func() {},
			wantErr:   slot.MsgOutsideOperatingHours,
			wantCode:  400,
		},
		{
			name: "unknown field",
			req: dto.CreateBookingRequest{
				FieldID:   "missing",
				Date:      "2026-09-01",
				StartTime: "14:00",
				EndTime:   "15:00",
			},
			setupMock: func() {
				mockFieldRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(fieldModel.Field{}, nil)
			},
			wantErr:  "field does not exist",
			wantCode: 400,
		},
		{
			name: "booked hour inside requested range",
			req: dto.CreateBookingRequest{
				FieldID:   "field-1",
				Date:      "2026-09-01",
				StartTime: "14:00",
				EndTime:   "17:00",
			},
			setupMock: func() {
				mockFieldRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeField, nil)

				mockRepo.EXPECT().
					GetBookedIntervals(gomock.Any(), "field-1", "2026-09-01").
					Return([]slot.Interval{{StartTime: "16:00", EndTime: "17:00"}}, nil)
			},
			wantErr:  slot.MsgSlotAlreadyBooked,
			wantCode: 409,
		},
		{
			name: "race lost at insert",
			req: dto.CreateBookingRequest{
				FieldID:   "field-1",
				Date:      "2026-09-01",
				StartTime: "14:00",
				EndTime:   "15:00",
			},
			setupMock: func() {
				mockFieldRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeField, nil)

				mockRepo.EXPECT().
					GetBookedIntervals(gomock.Any(), "field-1", "2026-09-01").
					Return([]slot.Interval{}, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(failure.Conflict(slot.MsgSlotAlreadyBooked))
			},
			wantErr:  slot.MsgSlotAlreadyBooked,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(userContext("user-1", constant.RoleUser), tt.req)

			if tt.wantErr != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.req.FieldID, res.FieldID)
			assert.Equal(t, tt.req.Date, res.Date)
			assert.Equal(t, tt.wantStart, res.StartTime)
			assert.Equal(t, tt.wantLength, res.Duration)
			assert.Equal(t, tt.wantPrice, res.TotalPrice)
			assert.Equal(t, model.StatusPending, res.Status)
			assert.NotEmpty(t, res.ID)
		})
	}
}

func TestBookingService_GetAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockFieldRepo := fieldMocks.NewMockField(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, mockFieldRepo, newTestConfig(), mockCache, mockOtel, mockKafka)

	t.Run("full grid with booked flags", func(t *testing.T) {
		mockFieldRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetBookedIntervals(gomock.Any(), "field-1", "2026-09-01").
			Return([]slot.Interval{
				{StartTime: "08:00", EndTime: "09:00"},
				{StartTime: "23:00", EndTime: "00:00"},
			}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAvailability(context.Background(), "field-1", "2026-09-01")

		assert.NoError(t, err)
		assert.Equal(t, "field-1", res.FieldID)
		assert.Equal(t, 19, res.TotalItems)
		assert.Len(t, res.Slots, 19)
		assert.Equal(t, "06:00", res.Slots[0].StartTime)
		assert.Equal(t, "00:00", res.Slots[18].StartTime)

		booked := 0
		for _, s := range res.Slots {
			if s.IsBooked {
				booked++
				assert.Contains(t, []string{"08:00", "23:00"}, s.StartTime)
			}
		}
		assert.Equal(t, 2, booked)
	})

	t.Run("cached grid is reused", func(t *testing.T) {
		mockFieldRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := svc.GetAvailability(context.Background(), "field-1", "2026-09-01")

		assert.NoError(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		mockFieldRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.GetAvailability(context.Background(), "missing", "2026-09-01")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := svc.GetAvailability(context.Background(), "field-1", "tomorrow")

		assert.Error(t, err)
		assert.Equal(t, slot.MsgInvalidDate, err.Error())
	})
}

func TestBookingService_GetBookedSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockFieldRepo := fieldMocks.NewMockField(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, mockFieldRepo, newTestConfig(), mockCache, mockOtel, mockKafka)

	t.Run("one interval per occupied hour", func(t *testing.T) {
		mockFieldRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			GetBookedIntervals(gomock.Any(), "field-1", "2026-09-01").
			Return([]slot.Interval{
				{StartTime: "14:00", EndTime: "15:00"},
				{StartTime: "15:00", EndTime: "16:00"},
				{StartTime: "16:00", EndTime: "17:00"},
			}, nil)

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetBookedSlots(context.Background(), "field-1", "2026-09-01")

		assert.NoError(t, err)
		assert.Equal(t, 3, res.TotalItems)
		assert.Equal(t, "14:00", res.BookedSlots[0].StartTime)
		assert.Equal(t, "17:00", res.BookedSlots[2].EndTime)
	})

	t.Run("missing field id", func(t *testing.T) {
		_, err := svc.GetBookedSlots(context.Background(), "", "2026-09-01")

		assert.Error(t, err)
		assert.Equal(t, slot.MsgFieldRequired, err.Error())
	})
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockFieldRepo := fieldMocks.NewMockField(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, mockFieldRepo, newTestConfig(), mockCache, mockOtel, mockKafka)

	ownBooking := model.Booking{
		ID:      "booking-1",
		FieldID: "field-1",
		UserID:  "user-1",
		Status:  model.StatusConfirmed,
	}

	t.Run("owner cancels own booking", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownBooking, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

				return nil
			})

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "booking.events", gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Cancel(userContext("user-1", constant.RoleUser), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(ownBooking, nil)

		err := svc.Cancel(userContext("user-2", constant.RoleUser), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})

	t.Run("already cancelled", func(t *testing.T) {
		cancelled := ownBooking
		cancelled.Status = model.StatusCancelled

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(cancelled, nil)

		err := svc.Cancel(userContext("user-1", constant.RoleUser), "booking-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := svc.Cancel(userContext("user-1", constant.RoleUser), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
