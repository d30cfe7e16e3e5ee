package dto

import (
	"time"

	"gor/internal/domains/booking/model"
	"gor/internal/domains/booking/slot"
	"gor/shared"
	"gor/shared/constant"
	gDto "gor/shared/dto"
	gModel "gor/shared/model"
	"gor/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	FieldID   string `json:"field_id"   validate:"required"`
	Date      string `json:"date"       validate:"required"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time"   validate:"required"`
}

// ToDraft builds the selection that runs through the validation sequence.
func (c *CreateBookingRequest) ToDraft() slot.Draft {
	return slot.Draft{
		FieldID:   c.FieldID,
		Date:      c.Date,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
	}
}

func (c *CreateBookingRequest) ToModel(user string, startHour, duration int, totalPrice int64) model.Booking {
	date, _ := time.Parse(constant.BookingDateFormat, c.Date)

	return model.Booking{
		ID:         uuid.NewString(),
		FieldID:    c.FieldID,
		UserID:     user,
		Date:       date,
		StartHour:  startHour,
		EndHour:    startHour + duration,
		Duration:   duration,
		TotalPrice: totalPrice,
		Status:     model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

// CreateBookingResponse is the acknowledgement returned after a successful
// submission.
type CreateBookingResponse struct {
	ID         string `json:"id"`
	FieldID    string `json:"field_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	Duration   int    `json:"duration"`
	TotalPrice int64  `json:"total_price"`
	Status     string `json:"status"`
}

func (r *CreateBookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.FieldID = model.FieldID
	r.Date = model.Date.Format(constant.BookingDateFormat)
	r.StartTime = slot.HourKey(model.StartHour)
	r.Duration = model.Duration
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
}

type BookingResponse struct {
	ID         string `json:"id"`
	FieldID    string `json:"field_id"`
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Duration   int    `json:"duration"`
	TotalPrice int64  `json:"total_price"`
	Status     string `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.FieldID = model.FieldID
	r.UserID = model.UserID
	r.Date = model.Date.Format(constant.BookingDateFormat)
	r.StartTime = slot.HourKey(model.StartHour)
	r.EndTime = slot.HourKey(model.EndHour)
	r.Duration = model.Duration
	r.TotalPrice = model.TotalPrice
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// GetBookedSlotsResponse lists the occupied hour windows of one field on one
// date, one entry per occupied hour.
type GetBookedSlotsResponse struct {
	FieldID     string          `json:"field_id"`
	Date        string          `json:"date"`
	BookedSlots []slot.Interval `json:"booked_slots"`
	TotalItems  int             `json:"total_items"`
}

func (r *GetBookedSlotsResponse) FromIntervals(fieldID, date string, intervals []slot.Interval) {
	r.FieldID = fieldID
	r.Date = date
	r.BookedSlots = intervals
	r.TotalItems = len(intervals)
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	IsBooked  bool   `json:"is_booked"`
}

// GetAvailabilityResponse is the full candidate grid for one field on one
// date, so clients do not have to mirror the slot logic.
type GetAvailabilityResponse struct {
	FieldID    string         `json:"field_id"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
	TotalItems int            `json:"total_items"`
}

func (r *GetAvailabilityResponse) FromCandidates(fieldID, date string, candidates []slot.Candidate) {
	r.FieldID = fieldID
	r.Date = date
	r.TotalItems = len(candidates)

	r.Slots = make([]SlotResponse, len(candidates))
	for i, candidate := range candidates {
		r.Slots[i] = SlotResponse{
			StartTime: candidate.Key,
			IsBooked:  candidate.Booked,
		}
	}
}

// BookingEvent is the payload published to the booking event stream.
type BookingEvent struct {
	Type       string `json:"type"`
	BookingID  string `json:"booking_id"`
	FieldID    string `json:"field_id"`
	UserID     string `json:"user_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	Duration   int    `json:"duration"`
	TotalPrice int64  `json:"total_price"`
	OccurredAt string `json:"occurred_at"`
}

func NewBookingEvent(eventType string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Type:       eventType,
		BookingID:  booking.ID,
		FieldID:    booking.FieldID,
		UserID:     booking.UserID,
		Date:       booking.Date.Format(constant.BookingDateFormat),
		StartTime:  slot.HourKey(booking.StartHour),
		Duration:   booking.Duration,
		TotalPrice: booking.TotalPrice,
		OccurredAt: timezone.Now().Format(constant.DateFormat),
	}
}
