package validator_test

import (
	"strings"
	"testing"

	"gor/shared/validator"
)

type bookingRequest struct {
	FieldID   string `validate:"required,uuid" json:"field_id"`
	Date      string `validate:"required,datetime=2006-01-02" json:"date"`
	StartTime string `validate:"required,datetime=15:04" json:"start_time"`
	Duration  int    `validate:"required,gte=1,lte=12" json:"duration"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *bookingRequest
		expectError bool
	}{
		{
			name: "valid request",
			data: &bookingRequest{
				FieldID:   "0d4261b3-1be4-4a51-b3ae-0f44fcab275d",
				Date:      "2025-08-17",
				StartTime: "19:00",
				Duration:  2,
			},
			expectError: false,
		},
		{
			name: "missing field id",
			data: &bookingRequest{
				Date:      "2025-08-17",
				StartTime: "19:00",
				Duration:  2,
			},
			expectError: true,
		},
		{
			name: "field id not a uuid",
			data: &bookingRequest{
				FieldID:   "lapangan-1",
				Date:      "2025-08-17",
				StartTime: "19:00",
				Duration:  2,
			},
			expectError: true,
		},
		{
			name: "malformed date",
			data: &bookingRequest{
				FieldID:   "0d4261b3-1be4-4a51-b3ae-0f44fcab275d",
				Date:      "17-08-2025",
				StartTime: "19:00",
				Duration:  2,
			},
			expectError: true,
		},
		{
			name: "malformed start time",
			data: &bookingRequest{
				FieldID:   "0d4261b3-1be4-4a51-b3ae-0f44fcab275d",
				Date:      "2025-08-17",
				StartTime: "7pm",
				Duration:  2,
			},
			expectError: true,
		},
		{
			name: "zero duration",
			data: &bookingRequest{
				FieldID:   "0d4261b3-1be4-4a51-b3ae-0f44fcab275d",
				Date:      "2025-08-17",
				StartTime: "19:00",
				Duration:  0,
			},
			expectError: true,
		},
		{
			name: "duration above limit",
			data: &bookingRequest{
				FieldID:   "0d4261b3-1be4-4a51-b3ae-0f44fcab275d",
				Date:      "2025-08-17",
				StartTime: "19:00",
				Duration:  13,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "badminton",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "pemain@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "not-an-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "hour within range",
			field:       23,
			tag:         "gte=0,lte=23",
			expectError: false,
		},
		{
			name:        "hour out of range",
			field:       24,
			tag:         "gte=0,lte=23",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "pending",
			tag:         "oneof=pending paid cancelled",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "expired",
			tag:         "oneof=pending paid cancelled",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"field_id":"0d4261b3-1be4-4a51-b3ae-0f44fcab275d","date":"2025-08-17","start_time":"19:00","duration":2}`,
			expectError: false,
		},
		{
			name:        "validation failure",
			jsonBody:    `{"field_id":"0d4261b3-1be4-4a51-b3ae-0f44fcab275d","date":"tomorrow","start_time":"19:00","duration":2}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"field_id":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data bookingRequest
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &bookingRequest{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	if !strings.Contains(err.Error(), "required") {
		t.Errorf("expected message containing 'required', got: %s", err.Error())
	}
}
