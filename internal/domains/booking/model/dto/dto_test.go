package dto_test

import (
	"testing"
	"time"

	"gor/internal/domains/booking/model"
	"gor/internal/domains/booking/model/dto"
	"gor/internal/domains/booking/slot"
	gModel "gor/shared/model"
	"gor/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{
		FieldID:   "field-id-123",
		Date:      "2026-09-15",
		StartTime: "14:00",
		EndTime:   "17:00",
	}

	userID := "test-user-id"
	booking := req.ToModel(userID, 14, 3, 300000)

	assert.NotEmpty(t, booking.ID, "expected ID to be generated")
	assert.Equal(t, req.FieldID, booking.FieldID)
	assert.Equal(t, userID, booking.UserID)
	assert.Equal(t, 2026, booking.Date.Year())
	assert.Equal(t, time.September, booking.Date.Month())
	assert.Equal(t, 15, booking.Date.Day())
	assert.Equal(t, 14, booking.StartHour)
	assert.Equal(t, 17, booking.EndHour)
	assert.Equal(t, 3, booking.Duration)
	assert.Equal(t, int64(300000), booking.TotalPrice)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, userID, booking.CreatedBy)
	assert.Equal(t, userID, booking.ModifiedBy)
	assert.False(t, booking.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingRequest_ToDraft(t *testing.T) {
	req := dto.CreateBookingRequest{
		FieldID:   "field-id-123",
		Date:      "2026-09-15",
		StartTime: "14:00",
		EndTime:   "17:00",
	}

	draft := req.ToDraft()

	assert.Equal(t, req.FieldID, draft.FieldID)
	assert.Equal(t, req.Date, draft.Date)
	assert.Equal(t, req.StartTime, draft.StartTime)
	assert.Equal(t, req.EndTime, draft.EndTime)
}

func TestBookingResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	booking := model.Booking{
		ID:         "booking-id",
		FieldID:    "field-id",
		UserID:     "user-id",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartHour:  23,
		EndHour:    24,
		Duration:   1,
		TotalPrice: 100000,
		Status:     model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "user-id",
			ModifiedBy: "user-id",
		},
	}

	var response dto.BookingResponse
	response.FromModel(booking)

	assert.Equal(t, booking.ID, response.ID)
	assert.Equal(t, "2026-09-15", response.Date)
	assert.Equal(t, "23:00", response.StartTime)
	assert.Equal(t, "00:00", response.EndTime) // wraps at midnight
	assert.Equal(t, 1, response.Duration)
	assert.Equal(t, int64(100000), response.TotalPrice)
	assert.Equal(t, model.StatusConfirmed, response.Status)
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.Booking{
		{ID: "b-1", StartHour: 8, EndHour: 10, Duration: 2, Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "b-2", StartHour: 10, EndHour: 11, Duration: 1, Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)},
	}

	var response dto.GetBookingsResponse
	response.FromModels(bookings, 15, 10)

	assert.Equal(t, 15, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Bookings, 2)
	assert.Equal(t, "08:00", response.Bookings[0].StartTime)
	assert.Equal(t, "10:00", response.Bookings[1].StartTime)
}

func TestGetBookedSlotsResponse_FromIntervals(t *testing.T) {
	intervals := []slot.Interval{
		{StartTime: "08:00", EndTime: "09:00"},
		{StartTime: "09:00", EndTime: "10:00"},
	}

	var response dto.GetBookedSlotsResponse
	response.FromIntervals("field-id", "2026-09-15", intervals)

	assert.Equal(t, "field-id", response.FieldID)
	assert.Equal(t, "2026-09-15", response.Date)
	assert.Len(t, response.BookedSlots, 2)
	assert.Equal(t, 2, response.TotalItems)
}

func TestGetAvailabilityResponse_FromCandidates(t *testing.T) {
	candidates := slot.MarkBooked(
		slot.Generate(slot.Window{Open: 6, Close: 8}),
		[]slot.Interval{{StartTime: "07:00", EndTime: "08:00"}},
	)

	var response dto.GetAvailabilityResponse
	response.FromCandidates("field-id", "2026-09-15", candidates)

	assert.Equal(t, "field-id", response.FieldID)
	assert.Equal(t, 3, response.TotalItems)
	assert.Len(t, response.Slots, 3)
	assert.False(t, response.Slots[0].IsBooked)
	assert.True(t, response.Slots[1].IsBooked)
	assert.False(t, response.Slots[2].IsBooked)
	assert.Equal(t, "07:00", response.Slots[1].StartTime)
}

func TestNewBookingEvent(t *testing.T) {
	booking := model.Booking{
		ID:         "booking-id",
		FieldID:    "field-id",
		UserID:     "user-id",
		Date:       time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartHour:  14,
		Duration:   3,
		TotalPrice: 300000,
	}

	event := dto.NewBookingEvent(model.EventBookingCreated, booking)

	assert.Equal(t, model.EventBookingCreated, event.Type)
	assert.Equal(t, booking.ID, event.BookingID)
	assert.Equal(t, "2026-09-15", event.Date)
	assert.Equal(t, "14:00", event.StartTime)
	assert.Equal(t, 3, event.Duration)
	assert.Equal(t, int64(300000), event.TotalPrice)
	assert.NotEmpty(t, event.OccurredAt)
}
