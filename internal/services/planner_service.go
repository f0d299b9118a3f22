package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"tobugo/internal/planner"
	"tobugo/pkg/utils"
)

const synthesisSystemPrompt = `You are a travel planning assistant. Produce a complete day-by-day
itinerary for the requested trip as a single JSON object with this exact shape:
{
  "days": [
    {
      "date": "YYYY-MM-DD",
      "activities": [
        {"time": "HH:MM", "title": "...", "description": "...",
         "type": "flight|accommodation|activity|transport|meal",
         "cost": 0, "location": "..."}
      ],
      "totalCost": 0
    }
  ],
  "totalCost": 0,
  "costBreakdown": {"flights": 0, "accommodation": 0, "activities": 0, "meals": 0, "transport": 0}
}
Cover every date from the start date to the end date inclusive. Respect the
budget, travel style, accommodation preference and dietary restrictions.
All costs are numbers in USD. Respond with JSON only, no markdown fences.`

const optimizeSystemPrompt = `You are a travel planning assistant. You will receive an existing
itinerary as JSON plus an instruction describing how to change it. Apply the
instruction while keeping the same JSON shape and the same date range. Keep
activities the instruction does not touch. All costs are numbers in USD.
Respond with JSON only, no markdown fences.`

const extractionSystemPrompt = `You are a friendly travel planning assistant collecting trip
preferences through conversation. Given the dialogue so far, respond as a
single JSON object:
{
  "response": "your conversational reply to the user",
  "extractedPreferences": {
    "destination": "", "startDate": "YYYY-MM-DD", "endDate": "YYYY-MM-DD",
    "budget": 0, "travelers": 1, "accommodationType": "",
    "activities": [], "travelStyle": "", "dietaryRestrictions": []
  },
  "shouldGenerateItinerary": false
}
Only include preference fields the user has actually stated. Set
shouldGenerateItinerary to true once you know at least the destination and
roughly when the trip happens. Respond with JSON only, no markdown fences.`

// extractionFallbackReply is shown when the extraction call fails outright;
// collection turns are conversational and are not retried.
const extractionFallbackReply = "Lo siento, tuve un problema técnico. ¿Podrías repetir tu mensaje?"

type PlannerServiceInterface interface {
	ExtractTurn(ctx context.Context, history []planner.ConversationTurn, prior planner.TravelPreferences) (*planner.ExtractionResult, error)
	Synthesize(ctx context.Context, prefs planner.TravelPreferences, duration int) (*planner.Itinerary, planner.TravelPreferences, error)
	Optimize(ctx context.Context, itinerary *planner.Itinerary, destination, instruction string) (*planner.Itinerary, error)
}

type plannerService struct {
	ai    utils.PlannerAIInterface
	retry planner.RetryPolicy
	now   func() time.Time
}

func NewPlannerService(ai utils.PlannerAIInterface) PlannerServiceInterface {
	return &plannerService{
		ai:    ai,
		retry: planner.DefaultRetryPolicy(),
		now:   time.Now,
	}
}

// ExtractTurn runs one preference-collection step over the conversation. A
// provider failure degrades to a fallback reply instead of an error so the
// conversation can continue.
func (p *plannerService) ExtractTurn(ctx context.Context, history []planner.ConversationTurn, prior planner.TravelPreferences) (*planner.ExtractionResult, error) {
	var dialogue strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&dialogue, "%s: %s\n", turn.Role, turn.Content)
	}
	if prior.Destination != "" || prior.StartDate != "" || prior.Budget > 0 || len(prior.Activities) > 0 {
		known, _ := json.Marshal(prior)
		fmt.Fprintf(&dialogue, "\nPreferences gathered so far: %s\n", known)
	}

	raw, err := p.ai.GenerateChatJSON(ctx, extractionSystemPrompt, dialogue.String())
	if err != nil {
		log.Printf("preference extraction failed: %v", err)
		return &planner.ExtractionResult{Reply: extractionFallbackReply, Preferences: prior}, nil
	}

	doc, err := planner.ParseDocument(raw)
	if err != nil {
		log.Printf("preference extraction returned malformed JSON: %v", err)
		return &planner.ExtractionResult{Reply: extractionFallbackReply, Preferences: prior}, nil
	}

	result := &planner.ExtractionResult{
		Reply:       extractionFallbackReply,
		Preferences: prior,
	}
	if reply, ok := doc["response"].(string); ok && reply != "" {
		result.Reply = reply
	}
	if extracted, ok := doc["extractedPreferences"].(map[string]any); ok {
		result.Preferences = planner.MergePreferences(prior, planner.CoercePreferences(extracted))
	}
	if ready, ok := doc["shouldGenerateItinerary"].(bool); ok {
		result.ReadyToGenerate = ready
	}
	return result, nil
}

// Synthesize backfills missing dates, asks the model for a full itinerary
// under the retry policy, and repairs the raw output into a consistent plan.
// The returned preferences carry the resolved dates.
func (p *plannerService) Synthesize(ctx context.Context, prefs planner.TravelPreferences, duration int) (*planner.Itinerary, planner.TravelPreferences, error) {
	prefs, err := planner.BackfillDates(prefs, duration, p.now())
	if err != nil {
		return nil, prefs, err
	}

	request, err := json.Marshal(prefs)
	if err != nil {
		return nil, prefs, err
	}
	userContent := fmt.Sprintf("Plan a trip with these preferences:\n%s", request)

	raw, err := p.retry.Do(ctx, func(ctx context.Context) (string, error) {
		return p.ai.GenerateJSON(ctx, synthesisSystemPrompt, userContent)
	})
	if err != nil {
		return nil, prefs, err
	}

	doc, err := planner.ParseDocument(raw)
	if err != nil {
		return nil, prefs, err
	}

	itinerary, err := planner.Normalize(doc, prefs)
	if err != nil {
		return nil, prefs, err
	}
	return itinerary, prefs, nil
}

// Optimize rewrites an existing itinerary per a free-form instruction. The
// normalization pass reuses the itinerary's own date range as its anchor.
func (p *plannerService) Optimize(ctx context.Context, itinerary *planner.Itinerary, destination, instruction string) (*planner.Itinerary, error) {
	current, err := json.Marshal(itinerary)
	if err != nil {
		return nil, err
	}
	userContent := fmt.Sprintf("Current itinerary:\n%s\n\nInstruction: %s", current, instruction)

	raw, err := p.retry.Do(ctx, func(ctx context.Context) (string, error) {
		return p.ai.GenerateJSON(ctx, optimizeSystemPrompt, userContent)
	})
	if err != nil {
		return nil, err
	}

	doc, err := planner.ParseDocument(raw)
	if err != nil {
		return nil, err
	}

	anchor := planner.TravelPreferences{
		Destination: destination,
		Budget:      itinerary.TotalCost,
	}
	if len(itinerary.Days) > 0 {
		anchor.StartDate = itinerary.Days[0].Date
		anchor.EndDate = itinerary.Days[len(itinerary.Days)-1].Date
	}
	if anchor.Destination == "" {
		anchor.Destination = "Unknown"
	}

	return planner.Normalize(doc, anchor)
}
