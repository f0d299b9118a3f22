package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTripRequestLenientCoercions(t *testing.T) {
	payload := `{
		"destination": "Tokyo",
		"budget": "$1,000 - $1,500",
		"travelers": "3",
		"activities": "temples",
		"dietaryRestrictions": ["vegetarian", "halal"],
		"duration": "5 days"
	}`

	var req GenerateTripRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, "Tokyo", req.Destination)
	assert.InDelta(t, 1000.0, float64(req.Budget), 1e-9, "first number in a budget range wins")
	assert.InDelta(t, 3.0, float64(req.Travelers), 1e-9)
	assert.Equal(t, FlexibleStringList{"temples"}, req.Activities, "bare string becomes a one-element list")
	assert.Equal(t, FlexibleStringList{"vegetarian", "halal"}, req.DietaryRestrictions)
	assert.InDelta(t, 5.0, float64(req.Duration), 1e-9, "duration aliases like \"5 days\" coerce")
}

func TestFlexibleNumber(t *testing.T) {
	cases := []struct {
		name string
		json string
		want float64
	}{
		{"plain number", `1500`, 1500},
		{"numeric string", `"1500"`, 1500},
		{"currency range", `"$1,000 - $1,500"`, 1000},
		{"decimal", `"45.50"`, 45.5},
		{"no digits", `"mid-range"`, 0},
		{"null", `null`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n FlexibleNumber
			require.NoError(t, json.Unmarshal([]byte(tc.json), &n))
			assert.InDelta(t, tc.want, float64(n), 1e-9)
		})
	}
}

func TestFlexibleStringList(t *testing.T) {
	var l FlexibleStringList
	require.NoError(t, json.Unmarshal([]byte(`["a", "b"]`), &l))
	assert.Equal(t, FlexibleStringList{"a", "b"}, l)

	l = nil
	require.NoError(t, json.Unmarshal([]byte(`"solo"`), &l))
	assert.Equal(t, FlexibleStringList{"solo"}, l)

	l = nil
	require.NoError(t, json.Unmarshal([]byte(`""`), &l))
	assert.Nil(t, l)

	l = nil
	require.NoError(t, json.Unmarshal([]byte(`42`), &l))
	assert.Nil(t, l)
}
