package handler

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Team  string `validate:"required,max=16,defid"`
	Power int    `validate:"gte=0,lte=100"`
}

func TestValidator_DefinitionID(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		team    string
		wantErr bool
	}{
		{"lower case", "human", false},
		{"digits and underscore", "team_2", false},
		{"upper case", "Human", true},
		{"space", "big bugs", true},
		{"empty", "", true},
		{"too long", strings.Repeat("a", 17), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testRequest{Team: tt.team, Power: 50})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(testRequest{Power: 101})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["team"])
	assert.Equal(t, "Must be at most 100", fields["power"])

	err = v.ValidateStruct(testRequest{Team: "human", Power: -1})
	require.Error(t, err)
	assert.Equal(t, "Must be at least 0", FormatValidationError(err)["power"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"},
		FormatValidationError(errors.New("boom")))
}
