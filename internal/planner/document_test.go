package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocumentStripsFences(t *testing.T) {
	doc, err := ParseDocument("```json\n{\"days\": []}\n```")
	require.NoError(t, err)
	_, ok := doc["days"]
	assert.True(t, ok)
}

func TestParseDocumentMalformed(t *testing.T) {
	for _, raw := range []string{
		"I'd be happy to plan your trip!",
		"{\"days\": [",
		"[1, 2, 3]",
		"",
	} {
		_, err := ParseDocument(raw)
		assert.ErrorIs(t, err, ErrMalformedOutput, "input: %q", raw)
	}
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripCodeFences(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, StripCodeFences("```JSON{\"a\":1}```"))
}

func TestBudgetCoercion(t *testing.T) {
	cases := map[string]struct {
		in   any
		want float64
	}{
		"number":        {1500.0, 1500},
		"plain string":  {"1500", 1500},
		"dollar string": {"$1500", 1500},
		"range string":  {"$1,000 - $1,500 USD", 1000},
		"words":         {"flexible", 0},
		"absent":        {nil, 0},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, budgetOf(tc.in))
		})
	}
}

func TestCoercePreferences(t *testing.T) {
	prefs := CoercePreferences(map[string]any{
		"destination":         "Kyoto",
		"startDate":           "2025-04-01",
		"budget":              "$2,000",
		"travelers":           "3",
		"activities":          "temples",
		"dietaryRestrictions": []any{"vegetarian", "no shellfish"},
	})

	assert.Equal(t, "Kyoto", prefs.Destination)
	assert.Equal(t, "2025-04-01", prefs.StartDate)
	assert.Equal(t, "", prefs.EndDate)
	assert.Equal(t, 2000.0, prefs.Budget)
	assert.Equal(t, 3, prefs.Travelers)
	assert.Equal(t, []string{"temples"}, prefs.Activities)
	assert.Equal(t, []string{"vegetarian", "no shellfish"}, prefs.DietaryRestrictions)
}

func TestMergePreferencesKeepsPriorFields(t *testing.T) {
	prior := TravelPreferences{
		Destination: "Kyoto",
		StartDate:   "2025-04-01",
		Budget:      2000,
		Travelers:   2,
	}
	update := TravelPreferences{
		EndDate:     "2025-04-05",
		TravelStyle: "relaxed",
	}

	merged := MergePreferences(prior, update)
	assert.Equal(t, "Kyoto", merged.Destination)
	assert.Equal(t, "2025-04-01", merged.StartDate)
	assert.Equal(t, "2025-04-05", merged.EndDate)
	assert.Equal(t, 2000.0, merged.Budget)
	assert.Equal(t, 2, merged.Travelers)
	assert.Equal(t, "relaxed", merged.TravelStyle)
}

func TestUnwrapIgnoresNonObjectEnvelope(t *testing.T) {
	doc := mustDoc(t, `{"itinerary": "tbd", "days": [{"activities": []}]}`)
	unwrapped := doc.Unwrap()
	_, ok := unwrapped["days"]
	assert.True(t, ok)
}
