package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tobugo/internal/planner"
)

// fakeAI scripts the generative client: one canned response (or error) per
// call, in order.
type fakeAI struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeAI) next() (string, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp string
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

func (f *fakeAI) GenerateJSON(ctx context.Context, system, user string) (string, error) {
	return f.next()
}

func (f *fakeAI) GenerateChatJSON(ctx context.Context, system, user string) (string, error) {
	return f.next()
}

func newTestPlannerService(ai *fakeAI) *plannerService {
	return &plannerService{
		ai: ai,
		retry: planner.RetryPolicy{
			MaxAttempts: 3,
			Classify:    planner.IsTransientProviderError,
			Delay:       func(int) time.Duration { return 0 },
		},
		now: func() time.Time {
			return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		},
	}
}

const validItineraryJSON = `{
  "days": [
    {"date": "2025-03-15", "activities": [
      {"time": "10:00", "title": "Louvre", "type": "activity", "cost": 20}
    ]},
    {"activities": [
      {"time": "12:00", "title": "Lunch", "type": "meal", "cost": 30}
    ]}
  ]
}`

func TestSynthesizeProducesNormalizedItinerary(t *testing.T) {
	ai := &fakeAI{responses: []string{"```json\n" + validItineraryJSON + "\n```"}}
	svc := newTestPlannerService(ai)

	prefs := planner.TravelPreferences{Destination: "Paris", StartDate: "2025-03-15"}
	itinerary, resolved, err := svc.Synthesize(context.Background(), prefs, 2)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-15", resolved.StartDate)
	assert.Equal(t, "2025-03-16", resolved.EndDate)

	require.Len(t, itinerary.Days, 2)
	assert.Equal(t, "2025-03-16", itinerary.Days[1].Date, "missing day date backfilled from start date")
	assert.InDelta(t, 50.0, itinerary.TotalCost, 1e-9)
}

func TestSynthesizeBackfillsAllDates(t *testing.T) {
	ai := &fakeAI{responses: []string{`{"days": [{"activities": []}]}`}}
	svc := newTestPlannerService(ai)

	_, resolved, err := svc.Synthesize(context.Background(), planner.TravelPreferences{Destination: "Rome"}, 0)
	require.NoError(t, err)

	assert.Equal(t, "2025-03-08", resolved.StartDate, "start defaults to a week out")
	assert.Equal(t, "2025-03-14", resolved.EndDate, "7-day default duration")
}

func TestSynthesizeRetriesTransientFailures(t *testing.T) {
	ai := &fakeAI{
		responses: []string{"", validItineraryJSON},
		errs:      []error{errors.New("503 service overloaded"), nil},
	}
	svc := newTestPlannerService(ai)

	itinerary, _, err := svc.Synthesize(context.Background(), planner.TravelPreferences{
		Destination: "Paris", StartDate: "2025-03-15", EndDate: "2025-03-16",
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, ai.calls)
	assert.Len(t, itinerary.Days, 2)
}

func TestSynthesizeSurfacesOverloadAfterRetries(t *testing.T) {
	overload := errors.New("model is overloaded")
	ai := &fakeAI{errs: []error{overload, overload, overload}}
	svc := newTestPlannerService(ai)

	_, _, err := svc.Synthesize(context.Background(), planner.TravelPreferences{
		Destination: "Paris", StartDate: "2025-03-15", EndDate: "2025-03-16",
	}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrServiceOverloaded)
	assert.Equal(t, 3, ai.calls)
}

func TestSynthesizeMalformedOutputIsFatal(t *testing.T) {
	ai := &fakeAI{responses: []string{"Sure! Here is your itinerary: have fun!"}}
	svc := newTestPlannerService(ai)

	_, _, err := svc.Synthesize(context.Background(), planner.TravelPreferences{
		Destination: "Paris", StartDate: "2025-03-15", EndDate: "2025-03-16",
	}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrMalformedOutput)
	assert.Equal(t, 1, ai.calls, "malformed output is not retried")
}

func TestSynthesizeInvalidDateIsFatalBeforeAnyCall(t *testing.T) {
	ai := &fakeAI{}
	svc := newTestPlannerService(ai)

	_, _, err := svc.Synthesize(context.Background(), planner.TravelPreferences{
		Destination: "Paris", StartDate: "soonish",
	}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, planner.ErrInvalidDate)
	assert.Equal(t, 0, ai.calls)
}

func TestOptimizeAnchorsOnExistingDates(t *testing.T) {
	ai := &fakeAI{responses: []string{`{
      "days": [
        {"activities": [{"title": "Cheaper museum", "type": "activity", "cost": 5}]},
        {"activities": [{"title": "Picnic", "type": "meal", "cost": 10}]}
      ]
    }`}}
	svc := newTestPlannerService(ai)

	current := &planner.Itinerary{
		Days: []planner.Day{
			{Date: "2025-04-01"},
			{Date: "2025-04-02"},
		},
		TotalCost: 500,
	}

	optimized, err := svc.Optimize(context.Background(), current, "Paris", "make it cheaper")
	require.NoError(t, err)
	require.Len(t, optimized.Days, 2)
	assert.Equal(t, "2025-04-01", optimized.Days[0].Date)
	assert.Equal(t, "2025-04-02", optimized.Days[1].Date)
	assert.InDelta(t, 15.0, optimized.TotalCost, 1e-9)
}

func TestExtractTurnParsesPreferences(t *testing.T) {
	ai := &fakeAI{responses: []string{`{
      "response": "Great, Paris it is! When would you like to go?",
      "extractedPreferences": {"destination": "Paris", "budget": "$1,000 - $1,500", "travelers": "2"},
      "shouldGenerateItinerary": false
    }`}}
	svc := newTestPlannerService(ai)

	history := []planner.ConversationTurn{{Role: "user", Content: "I want to visit Paris"}}
	result, err := svc.ExtractTurn(context.Background(), history, planner.TravelPreferences{})
	require.NoError(t, err)

	assert.Equal(t, "Great, Paris it is! When would you like to go?", result.Reply)
	assert.Equal(t, "Paris", result.Preferences.Destination)
	assert.InDelta(t, 1000.0, result.Preferences.Budget, 1e-9)
	assert.Equal(t, 2, result.Preferences.Travelers)
	assert.False(t, result.ReadyToGenerate)
}

func TestExtractTurnMergesWithPriorPreferences(t *testing.T) {
	ai := &fakeAI{responses: []string{`{
      "response": "Got it, departing March 15th.",
      "extractedPreferences": {"startDate": "2025-03-15"},
      "shouldGenerateItinerary": true
    }`}}
	svc := newTestPlannerService(ai)

	prior := planner.TravelPreferences{Destination: "Paris", Budget: 1200}
	result, err := svc.ExtractTurn(context.Background(), nil, prior)
	require.NoError(t, err)

	assert.Equal(t, "Paris", result.Preferences.Destination, "prior fields survive")
	assert.InDelta(t, 1200.0, result.Preferences.Budget, 1e-9)
	assert.Equal(t, "2025-03-15", result.Preferences.StartDate)
	assert.True(t, result.ReadyToGenerate)
}

func TestExtractTurnDegradesToFallbackOnProviderError(t *testing.T) {
	ai := &fakeAI{errs: []error{errors.New("connection reset")}}
	svc := newTestPlannerService(ai)

	prior := planner.TravelPreferences{Destination: "Paris"}
	result, err := svc.ExtractTurn(context.Background(), nil, prior)
	require.NoError(t, err, "extraction failures never error the conversation")

	assert.Equal(t, extractionFallbackReply, result.Reply)
	assert.Equal(t, "Paris", result.Preferences.Destination, "prior preferences retained")
	assert.False(t, result.ReadyToGenerate)
	assert.Equal(t, 1, ai.calls, "collection turns are not retried")
}

func TestExtractTurnDegradesToFallbackOnMalformedJSON(t *testing.T) {
	ai := &fakeAI{responses: []string{"I think Paris would be lovely!"}}
	svc := newTestPlannerService(ai)

	result, err := svc.ExtractTurn(context.Background(), nil, planner.TravelPreferences{})
	require.NoError(t, err)
	assert.Equal(t, extractionFallbackReply, result.Reply)
}
