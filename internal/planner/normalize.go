package planner

// Normalize repairs an untrusted itinerary document into a consistent
// Itinerary. It is a pure function of its two inputs: no I/O, no clock, no
// randomness. The only non-repairable condition is a missing or empty days
// sequence; every per-field defect is backfilled silently.
func Normalize(doc RawDocument, prefs TravelPreferences) (*Itinerary, error) {
	doc = doc.Unwrap()

	rawDays := sliceOr(doc["days"])
	if len(rawDays) == 0 {
		return nil, ErrMissingDays
	}

	itinerary := &Itinerary{Days: make([]Day, 0, len(rawDays))}

	for i, rawDay := range rawDays {
		dayDoc, _ := rawDay.(map[string]any)
		itinerary.Days = append(itinerary.Days, normalizeDay(dayDoc, prefs, i))
	}

	// A partially populated breakdown is trusted as supplied; only a wholly
	// absent one is recomputed from activity categories.
	if breakdown, ok := doc["costBreakdown"].(map[string]any); ok {
		itinerary.CostBreakdown = CostBreakdown{
			Flights:       costOf(breakdown["flights"]),
			Accommodation: costOf(breakdown["accommodation"]),
			Activities:    costOf(breakdown["activities"]),
			Meals:         costOf(breakdown["meals"]),
			Transport:     costOf(breakdown["transport"]),
		}
	} else {
		itinerary.CostBreakdown = computeBreakdown(itinerary.Days)
	}

	// A numeric grand total is trusted even when it disagrees with the day
	// sums; anything non-numeric is recomputed.
	if total, ok := numberOr(doc["totalCost"]); ok {
		itinerary.TotalCost = total
	} else {
		for _, day := range itinerary.Days {
			itinerary.TotalCost += day.TotalCost
		}
	}

	return itinerary, nil
}

func normalizeDay(dayDoc map[string]any, prefs TravelPreferences, index int) Day {
	day := Day{}

	rawActivities := sliceOr(dayDoc["activities"])
	day.Activities = make([]Activity, 0, len(rawActivities))
	for _, rawActivity := range rawActivities {
		activityDoc, _ := rawActivity.(map[string]any)
		day.Activities = append(day.Activities, normalizeActivity(activityDoc))
	}

	if total, ok := numberOr(dayDoc["totalCost"]); ok {
		day.TotalCost = total
	} else {
		for _, activity := range day.Activities {
			day.TotalCost += activity.Cost
		}
	}

	day.Date = stringOr(dayDoc["date"], "")
	if day.Date == "" {
		if date, err := AddDays(prefs.StartDate, index); err == nil {
			day.Date = date
		}
	}

	return day
}

func normalizeActivity(doc map[string]any) Activity {
	return Activity{
		Time:        stringOr(doc["time"], "09:00"),
		Title:       stringOr(doc["title"], "Activity"),
		Description: stringOr(doc["description"], ""),
		Category:    stringOr(doc["type"], CategoryActivity),
		Cost:        costOf(doc["cost"]),
		Location:    stringOr(doc["location"], ""),
	}
}

// computeBreakdown sums every activity cost into exactly one category bucket;
// unrecognised categories land in activities.
func computeBreakdown(days []Day) CostBreakdown {
	var breakdown CostBreakdown
	for _, day := range days {
		for _, activity := range day.Activities {
			switch activity.Category {
			case CategoryFlight:
				breakdown.Flights += activity.Cost
			case CategoryAccommodation:
				breakdown.Accommodation += activity.Cost
			case CategoryMeal:
				breakdown.Meals += activity.Cost
			case CategoryTransport:
				breakdown.Transport += activity.Cost
			default:
				breakdown.Activities += activity.Cost
			}
		}
	}
	return breakdown
}
