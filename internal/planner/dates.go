package planner

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

const defaultDurationDays = 7

// BackfillDates fills missing trip dates deterministically before any model
// call. duration counts calendar days (7-day default); dates supplied by the
// user are used verbatim, malformed ones are fatal.
func BackfillDates(prefs TravelPreferences, duration int, now time.Time) (TravelPreferences, error) {
	if duration < 1 {
		duration = defaultDurationDays
	}

	switch {
	case prefs.StartDate == "" && prefs.EndDate == "":
		start := now.AddDate(0, 0, 7)
		prefs.StartDate = start.Format(dateLayout)
		prefs.EndDate = start.AddDate(0, 0, duration-1).Format(dateLayout)

	case prefs.StartDate != "" && prefs.EndDate == "":
		start, err := parseDate(prefs.StartDate)
		if err != nil {
			return prefs, err
		}
		prefs.EndDate = start.AddDate(0, 0, duration-1).Format(dateLayout)

	case prefs.StartDate == "" && prefs.EndDate != "":
		end, err := parseDate(prefs.EndDate)
		if err != nil {
			return prefs, err
		}
		prefs.StartDate = end.AddDate(0, 0, -(duration - 1)).Format(dateLayout)

	default:
		// Both given: trusted as-is, but they must at least parse.
		if _, err := parseDate(prefs.StartDate); err != nil {
			return prefs, err
		}
		if _, err := parseDate(prefs.EndDate); err != nil {
			return prefs, err
		}
	}

	return prefs, nil
}

// AddDays returns date + n calendar days, both as ISO date strings.
func AddDays(date string, n int) (string, error) {
	parsed, err := parseDate(date)
	if err != nil {
		return "", err
	}
	return parsed.AddDate(0, 0, n).Format(dateLayout), nil
}

func parseDate(s string) (time.Time, error) {
	parsed, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return parsed, nil
}
