// Package slot implements the hourly booking grid for a field: candidate
// slot generation over the daily operating window, availability marking
// against already-booked intervals, and validation of a draft selection
// before it is committed.
package slot

import (
	"fmt"

	"gor/config"
)

// Window is the daily operating window shared by every field. Close may be
// 24, meaning the last bookable hour ends at midnight.
type Window struct {
	Open  int
	Close int
}

// WindowFromConfig builds the operating window from the application config.
func WindowFromConfig(cfg *config.Config) Window {
	return Window{
		Open:  cfg.App.Booking.OpenHour,
		Close: cfg.App.Booking.CloseHour,
	}
}

// Candidate is a single bookable hour window for one field on one date.
// Booked is recomputed against the booked intervals on every fetch and is
// never persisted.
type Candidate struct {
	StartHour int    `json:"start_hour"`
	Key       string `json:"key"`
	Label     string `json:"label"`
	Booked    bool   `json:"booked"`
}

// Interval is an already-reserved hour window reported by the bookings
// store, scoped to one field and one date. Multi-hour bookings are expanded
// into one interval per occupied hour before they reach this package.
type Interval struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// HourKey formats an hour-of-day as the canonical HH:00 key. Hour 24 wraps
// to "00:00".
func HourKey(hour int) string {
	return fmt.Sprintf("%02d:00", hour%24)
}

// Generate produces the ordered candidate slots for one operating day, one
// per hour from Open through Close. The closing-hour slot wraps to the
// "00:00" key. Pure function: the same window always yields the same
// sequence.
func Generate(w Window) []Candidate {
	if w.Close < w.Open {
		return nil
	}

	candidates := make([]Candidate, 0, w.Close-w.Open+1)

	for hour := w.Open; hour <= w.Close; hour++ {
		key := HourKey(hour)
		candidates = append(candidates, Candidate{
			StartHour: hour % 24,
			Key:       key,
			Label:     key,
		})
	}

	return candidates
}

// NormalizeTime reduces a reported time to the HH:MM form used for
// matching, tolerating HH:MM:SS input. Anything shorter than five
// characters can never match a slot key.
func NormalizeTime(t string) string {
	if len(t) < 5 {
		return ""
	}

	return t[:5]
}

// IsBooked reports whether the slot starting at the given hour is occupied.
// A slot is booked iff some interval's normalized start time equals the
// slot's HH:00 key exactly; malformed interval times never match.
func IsBooked(hour int, intervals []Interval) bool {
	key := HourKey(hour)

	for _, interval := range intervals {
		if NormalizeTime(interval.StartTime) == key {
			return true
		}
	}

	return false
}

// MarkBooked annotates each candidate with its booked state. Pure function
// over its inputs, safe to recompute on every fetch.
func MarkBooked(candidates []Candidate, intervals []Interval) []Candidate {
	marked := make([]Candidate, len(candidates))

	for i, candidate := range candidates {
		candidate.Booked = IsBooked(candidate.StartHour, intervals)
		marked[i] = candidate
	}

	return marked
}
