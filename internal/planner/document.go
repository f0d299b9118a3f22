package planner

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// RawDocument is an untrusted itinerary-shaped payload as produced by the
// generative model. Every repair rule that turns its loosely typed fields
// into the strongly typed model lives in this file, so the whole coercion
// surface is reviewable in one place.
type RawDocument map[string]any

// ParseDocument strips markdown code fences and parses the remaining text as
// a single JSON object. A payload that does not parse, or parses to
// something other than an object, is ErrMalformedOutput.
func ParseDocument(text string) (RawDocument, error) {
	cleaned := StripCodeFences(text)

	var value any
	if err := json.Unmarshal([]byte(cleaned), &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	doc, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrMalformedOutput)
	}
	return RawDocument(doc), nil
}

// StripCodeFences removes ```json / ``` wrappers the model sometimes adds
// despite being told not to.
func StripCodeFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```JSON", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// Unwrap peels one level of {"itinerary": {...}} envelope if present.
func (d RawDocument) Unwrap() RawDocument {
	if inner, ok := d["itinerary"].(map[string]any); ok {
		return RawDocument(inner)
	}
	return d
}

// stringOr returns v as a string, or def when absent or not a string.
func stringOr(v any, def string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return def
}

// numberOr returns v as a float64 when it is a JSON number, or when it is a
// string that parses as one. The second result reports whether a numeric
// value was obtained.
func numberOr(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// costOf coerces an activity cost: numbers pass through, numeric strings are
// parsed, everything else (including "free" or absence) is 0. Costs are never
// negative.
func costOf(v any) float64 {
	n, ok := numberOr(v)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// sliceOr returns v as a []any, or nil when absent or not a sequence.
func sliceOr(v any) []any {
	s, _ := v.([]any)
	return s
}

// stringSliceOr accepts either a list of strings or a bare string, matching
// the lenient shapes the extraction model emits.
func stringSliceOr(v any) []string {
	switch val := v.(type) {
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	default:
		return nil
	}
}

// budgetOf parses a budget signal which may arrive as a number or as free
// text like "$1,000 - $1,500 USD"; the first number wins.
func budgetOf(v any) float64 {
	if n, ok := numberOr(v); ok {
		return n
	}
	s, ok := v.(string)
	if !ok {
		return 0
	}
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			continue
		}
		if r == ',' && digits.Len() > 0 {
			continue
		}
		if digits.Len() > 0 {
			break
		}
	}
	n, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0
	}
	return n
}

// CoercePreferences maps an untrusted extractedPreferences object onto the
// typed record, keeping only fields the model actually emitted.
func CoercePreferences(raw map[string]any) TravelPreferences {
	prefs := TravelPreferences{
		Destination:         stringOr(raw["destination"], ""),
		StartDate:           stringOr(raw["startDate"], ""),
		EndDate:             stringOr(raw["endDate"], ""),
		Budget:              budgetOf(raw["budget"]),
		AccommodationType:   stringOr(raw["accommodationType"], ""),
		TravelStyle:         stringOr(raw["travelStyle"], ""),
		Activities:          stringSliceOr(raw["activities"]),
		DietaryRestrictions: stringSliceOr(raw["dietaryRestrictions"]),
	}
	if n, ok := numberOr(raw["travelers"]); ok && n >= 1 {
		prefs.Travelers = int(n)
	}
	return prefs
}

// MergePreferences overlays newly extracted fields onto the preferences
// accumulated so far; absent fields never erase known ones.
func MergePreferences(prior, update TravelPreferences) TravelPreferences {
	merged := prior
	if update.Destination != "" {
		merged.Destination = update.Destination
	}
	if update.StartDate != "" {
		merged.StartDate = update.StartDate
	}
	if update.EndDate != "" {
		merged.EndDate = update.EndDate
	}
	if update.Budget > 0 {
		merged.Budget = update.Budget
	}
	if update.Travelers > 0 {
		merged.Travelers = update.Travelers
	}
	if update.AccommodationType != "" {
		merged.AccommodationType = update.AccommodationType
	}
	if update.TravelStyle != "" {
		merged.TravelStyle = update.TravelStyle
	}
	if len(update.Activities) > 0 {
		merged.Activities = update.Activities
	}
	if len(update.DietaryRestrictions) > 0 {
		merged.DietaryRestrictions = update.DietaryRestrictions
	}
	return merged
}
