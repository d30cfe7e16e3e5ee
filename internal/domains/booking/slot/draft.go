package slot

import (
	"strconv"
	"strings"
	"time"

	"gor/shared/constant"
	"gor/shared/failure"
)

// Draft is an unsaved booking selection. It is validated in full against the
// currently booked intervals before any write is attempted.
type Draft struct {
	FieldID   string
	Date      string
	StartTime string
	EndTime   string
}

// Validation failure messages, ordered by the rule that produces them.
const (
	MsgFieldRequired         = "field is required"
	MsgInvalidDate           = "date must be a valid calendar date"
	MsgInvalidStartTime      = "start time must be a valid hour of day"
	MsgEndBeforeStart        = "end time must be after start time"
	MsgOutsideOperatingHours = "selected time is outside operating hours"
	MsgSlotAlreadyBooked     = "one or more selected slots are no longer available"
)

// ParseHour extracts the hour component from an HH:MM or HH:MM:SS time. It
// returns false for anything that does not carry a two-digit hour in the
// 0..23 range.
func ParseHour(t string) (int, bool) {
	normalized := NormalizeTime(t)
	if normalized == "" {
		return 0, false
	}

	parts := strings.SplitN(normalized, ":", 2)
	if len(parts) != 2 || len(parts[0]) != 2 {
		return 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}

	return hour, true
}

// Validate checks the draft against the full rule sequence, the operating
// window, and the booked intervals for its field and date. Rules run in
// order and the first failure wins: field presence, date validity, start
// hour validity, end after start, selection inside the operating window,
// then a free check over every hour in [start, end). An end time of "00:00"
// is treated as midnight at the close of the day. On success it returns the
// start hour and the duration in hours.
func (d Draft) Validate(w Window, intervals []Interval) (startHour int, duration int, err error) {
	if strings.TrimSpace(d.FieldID) == "" {
		return 0, 0, failure.BadRequestFromString(MsgFieldRequired)
	}

	if _, parseErr := time.Parse(constant.BookingDateFormat, d.Date); parseErr != nil {
		return 0, 0, failure.BadRequestFromString(MsgInvalidDate)
	}

	startHour, ok := ParseHour(d.StartTime)
	if !ok {
		return 0, 0, failure.BadRequestFromString(MsgInvalidStartTime)
	}

	endHour, ok := ParseHour(d.EndTime)
	if !ok {
		return 0, 0, failure.BadRequestFromString(MsgEndBeforeStart)
	}

	// A midnight end marks the close of the day, not its start.
	if endHour == 0 {
		endHour = 24
	}

	if endHour <= startHour {
		return 0, 0, failure.BadRequestFromString(MsgEndBeforeStart)
	}

	if startHour < w.Open || endHour > w.Close {
		return 0, 0, failure.BadRequestFromString(MsgOutsideOperatingHours)
	}

	for hour := startHour; hour < endHour; hour++ {
		if IsBooked(hour%24, intervals) {
			return 0, 0, failure.Conflict(MsgSlotAlreadyBooked)
		}
	}

	return startHour, endHour - startHour, nil
}

// TotalPrice computes the price of a booking as the field's hourly price
// times its duration.
func TotalPrice(hourlyPrice int64, duration int) int64 {
	return hourlyPrice * int64(duration)
}
