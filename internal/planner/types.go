package planner

// Activity categories recognised by the cost breakdown. Anything else is
// bucketed under "activities".
const (
	CategoryFlight        = "flight"
	CategoryAccommodation = "accommodation"
	CategoryActivity      = "activity"
	CategoryTransport     = "transport"
	CategoryMeal          = "meal"
)

// TravelPreferences is the input to itinerary synthesis. StartDate and
// EndDate are ISO calendar dates ("2006-01-02") and are guaranteed present
// after BackfillDates has run.
type TravelPreferences struct {
	Destination         string   `json:"destination"`
	StartDate           string   `json:"startDate"`
	EndDate             string   `json:"endDate"`
	Budget              float64  `json:"budget,omitempty"`
	Travelers           int      `json:"travelers,omitempty"`
	AccommodationType   string   `json:"accommodationType,omitempty"`
	Activities          []string `json:"activities,omitempty"`
	TravelStyle         string   `json:"travelStyle,omitempty"`
	DietaryRestrictions []string `json:"dietaryRestrictions,omitempty"`
}

type Activity struct {
	Time        string  `json:"time"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"type"`
	Cost        float64 `json:"cost"`
	Location    string  `json:"location"`
}

type Day struct {
	Date       string     `json:"date"`
	Activities []Activity `json:"activities"`
	TotalCost  float64    `json:"totalCost"`
}

type CostBreakdown struct {
	Flights       float64 `json:"flights"`
	Accommodation float64 `json:"accommodation"`
	Activities    float64 `json:"activities"`
	Meals         float64 `json:"meals"`
	Transport     float64 `json:"transport"`
}

// Itinerary is the repaired, internally consistent trip plan. Values are
// never mutated after Normalize returns; Optimize produces a new one.
type Itinerary struct {
	Days          []Day         `json:"days"`
	TotalCost     float64       `json:"totalCost"`
	CostBreakdown CostBreakdown `json:"costBreakdown"`
}

type ConversationTurn struct {
	Role      string `json:"role"` // "user" | "assistant"
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ExtractionResult is one preference-collection step: a conversational reply,
// whatever typed fields the model could support from the dialogue so far, and
// whether enough is known to synthesize an itinerary.
type ExtractionResult struct {
	Reply           string            `json:"response"`
	Preferences     TravelPreferences `json:"extractedPreferences"`
	ReadyToGenerate bool              `json:"shouldGenerateItinerary"`
}
