package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ChoreWheel_Go/internal/domain"
)

const validHousehold = "6f1c2a58-9f9e-4d55-a7a4-2f0c3f9e1b11"

func floatPtr(f float64) *float64 { return &f }

func TestValidator_CustomRewardInput(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		input   domain.CustomRewardInput
		wantErr bool
	}{
		// Best case
		{"valid", domain.CustomRewardInput{HouseholdID: validHousehold, Name: "Movie night", Probability: floatPtr(5)}, false},
		{"probability omitted", domain.CustomRewardInput{HouseholdID: validHousehold, Name: "Movie night"}, false},

		// Boundaries
		{"zero probability", domain.CustomRewardInput{HouseholdID: validHousehold, Name: "x", Probability: floatPtr(0)}, false},
		{"max probability", domain.CustomRewardInput{HouseholdID: validHousehold, Name: "x", Probability: floatPtr(100)}, false},
		{"name at limit", domain.CustomRewardInput{HouseholdID: validHousehold, Name: strings.Repeat("a", 100)}, false},

		// Invalid
		{"blank name", domain.CustomRewardInput{HouseholdID: validHousehold, Name: "   "}, true},
		{"missing name", domain.CustomRewardInput{HouseholdID: validHousehold}, true},
		{"household not uuid", domain.CustomRewardInput{HouseholdID: "house-1", Name: "x"}, true},
		{"negative probability", domain.CustomRewardInput{HouseholdID: validHousehold, Name: "x", Probability: floatPtr(-1)}, true},
		{"probability over 100", domain.CustomRewardInput{HouseholdID: validHousehold, Name: "x", Probability: floatPtr(100.5)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_WheelConfigUpdate(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		limit   int
		wantErr bool
	}{
		{"default limit", 3, false},
		{"minimum", 1, false},
		{"maximum", 100, false},
		{"zero", 0, true},
		{"negative", -2, true},
		{"too many", 101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(domain.WheelConfigUpdate{HouseholdID: validHousehold, DailyLimit: tt.limit})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()
	v := GetValidator()

	err := v.ValidateStruct(domain.CustomRewardInput{
		HouseholdID: "nope",
		Name:        " ",
		Probability: floatPtr(150),
	})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be a UUID", fields["household_id"])
	assert.Equal(t, "This field is required", fields["name"])
	assert.Equal(t, "Must be at most 100", fields["probability"])
}

func TestFormatValidationError_StringBounds(t *testing.T) {
	InitValidator()
	v := GetValidator()

	err := v.ValidateStruct(domain.CustomRewardInput{HouseholdID: validHousehold, Name: strings.Repeat("a", 101)})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be at most 100 characters", fields["name"])
}

func TestFormatValidationError_NotValidationError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", fields["error"])
}
