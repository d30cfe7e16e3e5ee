package model

import (
	"time"

	"gor/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID         = "id"
	FieldFieldID    = "field_id"
	FieldUserID     = "user_id"
	FieldDate       = "booking_date"
	FieldStartHour  = "start_hour"
	FieldEndHour    = "end_hour"
	FieldDuration   = "duration"
	FieldTotalPrice = "total_price"
	FieldStatus     = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// Booking occupies the hours [StartHour, EndHour) of one field on one date.
// EndHour may be 24, meaning the booking runs to midnight. TotalPrice is in
// IDR.
type Booking struct {
	ID         string    `db:"id"`
	FieldID    string    `db:"field_id"`
	UserID     string    `db:"user_id"`
	Date       time.Time `db:"booking_date"`
	StartHour  int       `db:"start_hour"`
	EndHour    int       `db:"end_hour"`
	Duration   int       `db:"duration"`
	TotalPrice int64     `db:"total_price"`
	Status     string    `db:"status"`
	model.Metadata
}
