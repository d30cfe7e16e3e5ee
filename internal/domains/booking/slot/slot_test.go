package slot_test

import (
	"reflect"
	"testing"

	"gor/internal/domains/booking/slot"
	"gor/shared/failure"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name      string
		window    slot.Window
		wantCount int
		wantFirst string
		wantLast  string
	}{
		{
			name:      "standard operating day",
			window:    slot.Window{Open: 6, Close: 24},
			wantCount: 19,
			wantFirst: "06:00",
			wantLast:  "00:00",
		},
		{
			name:      "short window",
			window:    slot.Window{Open: 8, Close: 10},
			wantCount: 3,
			wantFirst: "08:00",
			wantLast:  "10:00",
		},
		{
			name:      "single hour",
			window:    slot.Window{Open: 12, Close: 12},
			wantCount: 1,
			wantFirst: "12:00",
			wantLast:  "12:00",
		},
		{
			name:      "inverted window",
			window:    slot.Window{Open: 10, Close: 8},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slot.Generate(tt.window)

			if len(got) != tt.wantCount {
				t.Fatalf("Generate() produced %d candidates, want %d", len(got), tt.wantCount)
			}
			if tt.wantCount == 0 {
				return
			}
			if got[0].Key != tt.wantFirst {
				t.Errorf("first candidate key = %q, want %q", got[0].Key, tt.wantFirst)
			}
			if got[len(got)-1].Key != tt.wantLast {
				t.Errorf("last candidate key = %q, want %q", got[len(got)-1].Key, tt.wantLast)
			}
		})
	}
}

func TestGenerateOrderAndWrap(t *testing.T) {
	got := slot.Generate(slot.Window{Open: 6, Close: 24})

	wantHours := make([]int, 0, 19)
	for h := 6; h <= 23; h++ {
		wantHours = append(wantHours, h)
	}
	wantHours = append(wantHours, 0)

	gotHours := make([]int, 0, len(got))
	for _, candidate := range got {
		gotHours = append(gotHours, candidate.StartHour)
		if candidate.Booked {
			t.Errorf("candidate %q generated as booked", candidate.Key)
		}
		if candidate.Label != candidate.Key {
			t.Errorf("candidate label = %q, want %q", candidate.Label, candidate.Key)
		}
	}

	if !reflect.DeepEqual(gotHours, wantHours) {
		t.Errorf("Generate() start hours = %v, want %v", gotHours, wantHours)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	window := slot.Window{Open: 6, Close: 24}

	first := slot.Generate(window)
	second := slot.Generate(window)

	if !reflect.DeepEqual(first, second) {
		t.Error("Generate() is not deterministic for the same window")
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normalized", in: "08:00", want: "08:00"},
		{name: "with seconds", in: "08:00:00", want: "08:00"},
		{name: "too short", in: "8:00", want: ""},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slot.NormalizeTime(tt.in); got != tt.want {
				t.Errorf("NormalizeTime(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsBooked(t *testing.T) {
	intervals := []slot.Interval{
		{StartTime: "08:00", EndTime: "09:00"},
		{StartTime: "14:00:00", EndTime: "15:00:00"},
		{StartTime: "garbage", EndTime: "junk"},
		{StartTime: "9:0", EndTime: "10:0"},
	}

	tests := []struct {
		name string
		hour int
		want bool
	}{
		{name: "exact match", hour: 8, want: true},
		{name: "match with seconds suffix", hour: 14, want: true},
		{name: "free hour", hour: 10, want: false},
		{name: "malformed interval never matches", hour: 9, want: false},
		{name: "midnight wrap", hour: 24, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slot.IsBooked(tt.hour, intervals); got != tt.want {
				t.Errorf("IsBooked(%d) = %v, want %v", tt.hour, got, tt.want)
			}
		})
	}
}

func TestMarkBooked(t *testing.T) {
	candidates := slot.Generate(slot.Window{Open: 6, Close: 24})
	intervals := []slot.Interval{
		{StartTime: "08:00", EndTime: "09:00"},
		{StartTime: "23:00", EndTime: "00:00"},
	}

	marked := slot.MarkBooked(candidates, intervals)

	if len(marked) != len(candidates) {
		t.Fatalf("MarkBooked() returned %d candidates, want %d", len(marked), len(candidates))
	}

	bookedKeys := make(map[string]bool)
	for _, candidate := range marked {
		if candidate.Booked {
			bookedKeys[candidate.Key] = true
		}
	}

	want := map[string]bool{"08:00": true, "23:00": true}
	if !reflect.DeepEqual(bookedKeys, want) {
		t.Errorf("booked keys = %v, want %v", bookedKeys, want)
	}

	for _, candidate := range candidates {
		if candidate.Booked {
			t.Fatal("MarkBooked() mutated its input")
		}
	}
}

func TestMarkBookedIsIdempotent(t *testing.T) {
	candidates := slot.Generate(slot.Window{Open: 6, Close: 24})
	intervals := []slot.Interval{{StartTime: "10:00", EndTime: "11:00"}}

	first := slot.MarkBooked(candidates, intervals)
	second := slot.MarkBooked(first, intervals)

	if !reflect.DeepEqual(first, second) {
		t.Error("MarkBooked() is not idempotent over its own output")
	}
}

func TestParseHour(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		want   int
		wantOK bool
	}{
		{name: "morning hour", in: "08:00", want: 8, wantOK: true},
		{name: "midnight", in: "00:00", want: 0, wantOK: true},
		{name: "last hour", in: "23:00", want: 23, wantOK: true},
		{name: "with seconds", in: "17:00:00", want: 17, wantOK: true},
		{name: "out of range", in: "24:00", wantOK: false},
		{name: "not a number", in: "ab:00", wantOK: false},
		{name: "too short", in: "8:00", wantOK: false},
		{name: "empty", in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := slot.ParseHour(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseHour(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseHour(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestDraftValidate(t *testing.T) {
	window := slot.Window{Open: 6, Close: 24}
	intervals := []slot.Interval{
		{StartTime: "10:00", EndTime: "11:00"},
	}

	tests := []struct {
		name         string
		draft        slot.Draft
		intervals    []slot.Interval
		wantStart    int
		wantDuration int
		wantErr      string
		wantCode     int
	}{
		{
			name:         "valid single hour",
			draft:        slot.Draft{FieldID: "f1", Date: "2026-09-01", StartTime: "08:00", EndTime: "09:00"},
			intervals:    intervals,
			wantStart:    8,
			wantDuration: 1,
		},
		{
			name:         "valid multi hour",
			draft:        slot.Draft{FieldID: "f1", Date: "2026-09-01", StartTime: "14:00", EndTime: "17:00"},
			intervals:    intervals,
			wantStart:    14,
			wantDuration: 3,
		},
		{
			name:         "valid up to midnight",
			draft:        slot.Draft{FieldID: "f1", Date: "2026-09-01", StartTime: "23:00", EndTime: "00:00"},
			intervals:    intervals,
			wantStart:    23,
			wantDuration: 1,
		},
		{
			name:     "missing field",
			draft:    slot.Draft{FieldID: "  ", Date: "2026-09-01", StartTime: "08:00", EndTime: "09:00"},
			wantErr:  slot.MsgFieldRequired,
			wantCode: 400,
		},
		{
			name:     "invalid date",
			draft:    slot.Draft{FieldID: "f1", Date: "2026-02-30", StartTime: "08:00", EndTime: "09:00"},
			wantErr:  slot.MsgInvalidDate,
			wantCode: 400,
		},
		{
			name:     "invalid start time",
			draft:    slot.Draft{FieldID: "f1", Date: "2026-09-01", StartTime: "25:00", EndTime: "09:00"},
			wantErr:  slot.MsgInvalidStartTime,
			wantCode: 400,
		},
		{
			name:     "end equals start",
			draft:    slot.Draft{FieldID: "f1", Date: "2026-09-01", StartTime: "09:00", EndTime: "09:00"},
			wantErr:  slot.MsgEndBeforeStart,
			wantCode: 400,
		},
		{
			name:     "end before start",
			draft:    slot.Draft{FieldID: "f1", Date: "2026-09-01", StartTime: "10:00", EndTime: "08:00"},
			wantErr:  slot.MsgEndBeforeStart,
			wantCode: 400,
		},
		{
			name:     "start before opening hour",
			draft:    slot.Draft{FieldID: "f1", Date: "2026-09-01", StartTime: "03:00", EndTime: "05:00"},
			wantErr:  slot.MsgOutsideOperatingHours,
			wantCode: 400,
		},
		{
			name:     "range straddles opening hour",
			draft:    slot.Draft{FieldID: "f1", Date: "2026-09-01", StartTime: "05:00", EndTime: "08:00"},
			wantErr:  slot.MsgOutsideOperatingHours,
			wantCode: 400,
		},
		{
			name:      "start hour already booked",
			draft:     slot.Draft{FieldID: "f1", Date: "2026-09-01", StartTime: "10:00", EndTime: "11:00"},
			intervals: intervals,
			wantErr:   slot.MsgSlotAlreadyBooked,
			wantCode:  409,
		},
		{
			name:      "booked hour inside range",
			draft:     slot.Draft{FieldID: "f1", Date: "2026-09-01", StartTime: "09:00", EndTime: "12:00"},
			intervals: intervals,
			wantErr:   slot.MsgSlotAlreadyBooked,
			wantCode:  409,
		},
		{
			name:      "range ends before booked hour",
			draft:     slot.Draft{FieldID: "f1", Date: "2026-09-01", StartTime: "08:00", EndTime: "10:00"},
			intervals: intervals,
			wantStart: 8, wantDuration: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, duration, err := tt.draft.Validate(window, tt.intervals)

			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Validate() error = nil, want %q", tt.wantErr)
				}
				if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
				if code := failure.GetCode(err); code != tt.wantCode {
					t.Errorf("Validate() error code = %d, want %d", code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if start != tt.wantStart {
				t.Errorf("Validate() start = %d, want %d", start, tt.wantStart)
			}
			if duration != tt.wantDuration {
				t.Errorf("Validate() duration = %d, want %d", duration, tt.wantDuration)
			}
		})
	}
}

func TestDraftValidateClosingHour(t *testing.T) {
	window := slot.Window{Open: 8, Close: 22}

	start, duration, err := slot.Draft{
		FieldID: "f1", Date: "2026-09-01", StartTime: "20:00", EndTime: "22:00",
	}.Validate(window, nil)
	if err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
	if start != 20 || duration != 2 {
		t.Errorf("Validate() = (%d, %d), want (20, 2)", start, duration)
	}

	_, _, err = slot.Draft{
		FieldID: "f1", Date: "2026-09-01", StartTime: "22:00", EndTime: "23:00",
	}.Validate(window, nil)
	if err == nil {
		t.Fatal("Validate() error = nil, want error for range past closing hour")
	}
	if err.Error() != slot.MsgOutsideOperatingHours {
		t.Errorf("Validate() error = %q, want %q", err.Error(), slot.MsgOutsideOperatingHours)
	}
}

func TestTotalPrice(t *testing.T) {
	if got := slot.TotalPrice(100000, 3); got != 300000 {
		t.Errorf("TotalPrice(100000, 3) = %d, want 300000", got)
	}
	if got := slot.TotalPrice(150000, 1); got != 150000 {
		t.Errorf("TotalPrice(150000, 1) = %d, want 150000", got)
	}
}
