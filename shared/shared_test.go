package shared_test

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"gor/shared"
	"gor/shared/constant"
	"gor/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{
			name:     "empty string returns nil",
			input:    "",
			expected: nil,
		},
		{
			name:     "true string",
			input:    "true",
			expected: boolPtr(true),
		},
		{
			name:     "false string",
			input:    "false",
			expected: boolPtr(false),
		},
		{
			name:     "numeric true",
			input:    "1",
			expected: boolPtr(true),
		},
		{
			name:     "numeric false",
			input:    "0",
			expected: boolPtr(false),
		},
		{
			name:     "uppercase TRUE",
			input:    "TRUE",
			expected: boolPtr(true),
		},
		{
			name:     "invalid string returns nil",
			input:    "yes please",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.ConvertStringToBool(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", *result)
				}
			} else {
				if result == nil {
					t.Errorf("expected %v, got nil", *tt.expected)
				} else if *result != *tt.expected {
					t.Errorf("expected %v, got %v", *tt.expected, *result)
				}
			}
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "negative limit returns 1",
			total:    100,
			limit:    -5,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type fieldUpdate struct {
		Name        string `db:"name"`
		Description string `db:"description"`
		Price       int    `db:"price"`
		Internal    string
	}

	tests := []struct {
		name     string
		data     fieldUpdate
		username string
		expected map[string]any
	}{
		{
			name: "populated fields",
			data: fieldUpdate{
				Name:     "Lapangan A",
				Price:    100000,
				Internal: "ignored",
			},
			username: "admin",
			expected: map[string]any{
				"name":  "Lapangan A",
				"price": 100000,
			},
		},
		{
			name:     "all zero values",
			data:     fieldUpdate{},
			username: "admin",
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data, tt.username)

			if result[constant.FieldModifiedBy] != tt.username {
				t.Errorf("expected modified_by to be %s, got %v", tt.username, result[constant.FieldModifiedBy])
			}

			if _, ok := result[constant.FieldModifiedAt].(time.Time); !ok {
				t.Error("expected modified_at to be a time.Time")
			}

			for key, expectedValue := range tt.expected {
				if actualValue, exists := result[key]; !exists {
					t.Errorf("expected field %s to exist", key)
				} else if !reflect.DeepEqual(actualValue, expectedValue) {
					t.Errorf("expected field %s to be %v, got %v", key, expectedValue, actualValue)
				}
			}

			for key := range result {
				if key == constant.FieldModifiedAt || key == constant.FieldModifiedBy {
					continue
				}
				if _, expected := tt.expected[key]; !expected {
					t.Errorf("unexpected field %s in result", key)
				}
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "field_id", "bookings")

	if len(result.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(result.Filters))
	}

	filter, ok := result.Filters[0].(dto.Filter)
	if !ok {
		t.Fatal("expected filter to be of type dto.Filter")
	}

	if filter.Field != "field_id" {
		t.Errorf("expected field to be field_id, got %s", filter.Field)
	}

	if filter.Value != "550e8400-e29b-41d4-a716-446655440000" {
		t.Errorf("unexpected value %v", filter.Value)
	}

	if filter.Operator != dto.FilterOperatorEq {
		t.Errorf("expected operator to be %s, got %s", dto.FilterOperatorEq, filter.Operator)
	}

	if filter.Table != "bookings" {
		t.Errorf("expected table to be bookings, got %s", filter.Table)
	}
}

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		args     []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "booking:get",
			args:     nil,
			expected: "booking:get",
		},
		{
			name:     "prefix with one argument",
			prefix:   "booking:get",
			args:     []string{"abc-123"},
			expected: "booking:get:abc-123",
		},
		{
			name:     "prefix with several arguments",
			prefix:   "ratelimit",
			args:     []string{"10.0.0.1", "curl/8.0"},
			expected: "ratelimit:10.0.0.1:curl/8.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.BuildCacheKey(tt.prefix, tt.args...)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByID("abc", "field_id", "bookings")

	key := shared.BuildCacheKeyWithQuery("booking:getall", params, filter)

	if !strings.HasPrefix(key, "booking:getall:") {
		t.Errorf("expected key to start with prefix, got %q", key)
	}

	same := shared.BuildCacheKeyWithQuery("booking:getall", params, filter)
	if key != same {
		t.Error("expected identical queries to produce identical keys")
	}

	other := shared.BuildCacheKeyWithQuery("booking:getall", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if key == other {
		t.Error("expected different queries to produce different keys")
	}
}

func boolPtr(b bool) *bool {
	return &b
}
