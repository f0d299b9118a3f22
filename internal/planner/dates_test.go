package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackfillDatesNoDatesGiven(t *testing.T) {
	now := time.Date(2025, 3, 1, 15, 30, 0, 0, time.UTC)

	prefs, err := BackfillDates(TravelPreferences{Destination: "Lisbon"}, 0, now)
	require.NoError(t, err)

	// Trip starts a week out and runs the default 7 days.
	assert.Equal(t, "2025-03-08", prefs.StartDate)
	assert.Equal(t, "2025-03-14", prefs.EndDate)

	// The same call against a later "today" shifts by exactly the elapsed time.
	later, err := BackfillDates(TravelPreferences{Destination: "Lisbon"}, 0, now.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", later.StartDate)
	assert.Equal(t, "2025-03-17", later.EndDate)
}

func TestBackfillDatesOnlyStartGiven(t *testing.T) {
	prefs, err := BackfillDates(TravelPreferences{StartDate: "2025-06-10"}, 5, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", prefs.StartDate)
	assert.Equal(t, "2025-06-14", prefs.EndDate)
}

func TestBackfillDatesOnlyEndGiven(t *testing.T) {
	prefs, err := BackfillDates(TravelPreferences{EndDate: "2025-06-14"}, 5, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", prefs.StartDate)
	assert.Equal(t, "2025-06-14", prefs.EndDate)
}

func TestBackfillDatesBothGivenVerbatim(t *testing.T) {
	prefs, err := BackfillDates(TravelPreferences{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-03",
	}, 14, time.Now())
	require.NoError(t, err)

	// Duration is ignored when both dates are supplied.
	assert.Equal(t, "2025-06-01", prefs.StartDate)
	assert.Equal(t, "2025-06-03", prefs.EndDate)
}

func TestBackfillDatesCrossesMonthBoundary(t *testing.T) {
	prefs, err := BackfillDates(TravelPreferences{StartDate: "2025-01-30"}, 4, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "2025-02-02", prefs.EndDate)
}

func TestBackfillDatesMalformedIsFatal(t *testing.T) {
	for _, prefs := range []TravelPreferences{
		{StartDate: "next tuesday"},
		{EndDate: "06/14/2025"},
		{StartDate: "2025-06-01", EndDate: "garbage"},
	} {
		_, err := BackfillDates(prefs, 3, time.Now())
		assert.ErrorIs(t, err, ErrInvalidDate)
	}
}

func TestAddDays(t *testing.T) {
	date, err := AddDays("2025-12-30", 3)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02", date)

	_, err = AddDays("not-a-date", 1)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
