package planner

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, raw string) RawDocument {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return RawDocument(doc)
}

var parisPrefs = TravelPreferences{
	Destination: "Paris",
	StartDate:   "2025-03-15",
	EndDate:     "2025-03-17",
}

func TestNormalizeRecomputesMissingTotals(t *testing.T) {
	doc := mustDoc(t, `{
		"days": [
			{"activities": [
				{"time": "08:00", "title": "Flight to Paris", "type": "flight", "cost": 450},
				{"title": "Hotel check-in", "type": "accommodation", "cost": 120}
			]},
			{"activities": [
				{"title": "Louvre", "type": "activity", "cost": 22},
				{"title": "Dinner", "type": "meal"}
			]},
			{"activities": [
				{"title": "Metro to airport", "type": "transport", "cost": 12.5}
			]}
		]
	}`)

	itinerary, err := Normalize(doc, parisPrefs)
	require.NoError(t, err)
	require.Len(t, itinerary.Days, 3)

	assert.Equal(t, 570.0, itinerary.Days[0].TotalCost)
	assert.Equal(t, 22.0, itinerary.Days[1].TotalCost)
	assert.Equal(t, 12.5, itinerary.Days[2].TotalCost)
	assert.Equal(t, 604.5, itinerary.TotalCost)

	// Day dates are backfilled from the trip start, preserving order.
	assert.Equal(t, "2025-03-15", itinerary.Days[0].Date)
	assert.Equal(t, "2025-03-16", itinerary.Days[1].Date)
	assert.Equal(t, "2025-03-17", itinerary.Days[2].Date)
}

func TestNormalizeCostConservation(t *testing.T) {
	doc := mustDoc(t, `{
		"days": [
			{"activities": [{"cost": 10}, {"cost": 20}]},
			{"activities": [{"cost": 5}]}
		]
	}`)

	itinerary, err := Normalize(doc, parisPrefs)
	require.NoError(t, err)

	var total float64
	for _, day := range itinerary.Days {
		var dayTotal float64
		for _, activity := range day.Activities {
			dayTotal += activity.Cost
		}
		assert.Equal(t, dayTotal, day.TotalCost)
		total += day.TotalCost
	}
	assert.Equal(t, total, itinerary.TotalCost)
}

func TestNormalizeStringCostCoercion(t *testing.T) {
	doc := mustDoc(t, `{
		"days": [{"activities": [
			{"title": "Boat tour", "cost": "45.50"},
			{"title": "Walking tour", "cost": "free"},
			{"title": "Broken", "cost": -10}
		]}]
	}`)

	itinerary, err := Normalize(doc, parisPrefs)
	require.NoError(t, err)

	activities := itinerary.Days[0].Activities
	assert.Equal(t, 45.5, activities[0].Cost)
	assert.Equal(t, 0.0, activities[1].Cost)
	assert.Equal(t, 0.0, activities[2].Cost)
	assert.Equal(t, 45.5, itinerary.Days[0].TotalCost)
}

func TestNormalizeActivityDefaults(t *testing.T) {
	doc := mustDoc(t, `{"days": [{"activities": [{}]}]}`)

	itinerary, err := Normalize(doc, parisPrefs)
	require.NoError(t, err)

	activity := itinerary.Days[0].Activities[0]
	assert.Equal(t, "09:00", activity.Time)
	assert.Equal(t, "Activity", activity.Title)
	assert.Equal(t, CategoryActivity, activity.Category)
	assert.Equal(t, "", activity.Description)
	assert.Equal(t, "", activity.Location)
	assert.Equal(t, 0.0, activity.Cost)
}

func TestNormalizeEnvelopeUnwrapping(t *testing.T) {
	wrapped := mustDoc(t, `{"itinerary": {"days": [{"activities": [{"cost": 30}]}]}}`)
	plain := mustDoc(t, `{"days": [{"activities": [{"cost": 30}]}]}`)

	fromWrapped, err := Normalize(wrapped, parisPrefs)
	require.NoError(t, err)
	fromPlain, err := Normalize(plain, parisPrefs)
	require.NoError(t, err)

	assert.Equal(t, fromPlain, fromWrapped)
}

func TestNormalizeMissingDaysIsFatal(t *testing.T) {
	for name, raw := range map[string]string{
		"empty document": `{}`,
		"empty days":     `{"days": []}`,
		"days not array": `{"days": "monday"}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Normalize(mustDoc(t, raw), parisPrefs)
			assert.ErrorIs(t, err, ErrMissingDays)
		})
	}
}

func TestNormalizeIdempotentOnValidInput(t *testing.T) {
	first, err := Normalize(mustDoc(t, `{
		"days": [
			{"activities": [
				{"time": "10:00", "title": "Museum", "description": "Modern art", "type": "activity", "cost": 18, "location": "Centre Pompidou"},
				{"time": "13:00", "title": "Lunch", "type": "meal", "cost": 25, "location": "Le Marais"}
			]}
		]
	}`), parisPrefs)
	require.NoError(t, err)

	// Round-trip the repaired itinerary through the pipeline again.
	encoded, err := json.Marshal(first)
	require.NoError(t, err)
	doc, err := ParseDocument(string(encoded))
	require.NoError(t, err)

	second, err := Normalize(doc, parisPrefs)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestNormalizeComputesBreakdownWhenAbsent(t *testing.T) {
	doc := mustDoc(t, `{
		"days": [{"activities": [
			{"type": "flight", "cost": 400},
			{"type": "accommodation", "cost": 150},
			{"type": "meal", "cost": 40},
			{"type": "transport", "cost": 15},
			{"type": "activity", "cost": 30},
			{"type": "spa", "cost": 60}
		]}]
	}`)

	itinerary, err := Normalize(doc, parisPrefs)
	require.NoError(t, err)

	breakdown := itinerary.CostBreakdown
	assert.Equal(t, 400.0, breakdown.Flights)
	assert.Equal(t, 150.0, breakdown.Accommodation)
	assert.Equal(t, 40.0, breakdown.Meals)
	assert.Equal(t, 15.0, breakdown.Transport)
	// Unrecognised categories fall into activities.
	assert.Equal(t, 90.0, breakdown.Activities)

	sum := breakdown.Flights + breakdown.Accommodation + breakdown.Activities +
		breakdown.Meals + breakdown.Transport
	assert.Equal(t, itinerary.TotalCost, sum)
}

func TestNormalizeTrustsPartialBreakdown(t *testing.T) {
	doc := mustDoc(t, `{
		"days": [{"activities": [{"type": "flight", "cost": 400}]}],
		"costBreakdown": {"flights": 999}
	}`)

	itinerary, err := Normalize(doc, parisPrefs)
	require.NoError(t, err)

	// A supplied breakdown, even incomplete or inconsistent, is not fixed up.
	assert.Equal(t, 999.0, itinerary.CostBreakdown.Flights)
	assert.Equal(t, 0.0, itinerary.CostBreakdown.Meals)
}

func TestNormalizeTrustsNumericTotals(t *testing.T) {
	doc := mustDoc(t, `{
		"days": [{"activities": [{"cost": 10}], "totalCost": 777}],
		"totalCost": 888
	}`)

	itinerary, err := Normalize(doc, parisPrefs)
	require.NoError(t, err)
	assert.Equal(t, 777.0, itinerary.Days[0].TotalCost)
	assert.Equal(t, 888.0, itinerary.TotalCost)
}

func TestNormalizeIsDeterministic(t *testing.T) {
	raw := `{"days": [{"activities": [{"cost": "12.30"}, {}]}, {}]}`

	first, err := Normalize(mustDoc(t, raw), parisPrefs)
	require.NoError(t, err)
	second, err := Normalize(mustDoc(t, raw), parisPrefs)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
