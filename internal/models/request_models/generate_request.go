package request_models

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// FlexibleNumber accepts a JSON number or a free-form string such as
// "$1,000 - $1,500" and keeps the first number it finds.
type FlexibleNumber float64

func (n *FlexibleNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = FlexibleNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*n = 0
		return nil
	}

	var digits strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) || (r == '.' && digits.Len() > 0) {
			digits.WriteRune(r)
			continue
		}
		if r == ',' {
			continue
		}
		if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		*n = 0
		return nil
	}
	f, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexibleNumber(f)
	return nil
}

// FlexibleStringList accepts a JSON list of strings or a bare string.
type FlexibleStringList []string

func (l *FlexibleStringList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*l = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*l = nil
		return nil
	}
	if s == "" {
		*l = nil
		return nil
	}
	*l = []string{s}
	return nil
}

type GenerateTripRequest struct {
	TripID              string             `json:"trip_id"`
	Destination         string             `json:"destination" binding:"required"`
	StartDate           string             `json:"startDate"`
	EndDate             string             `json:"endDate"`
	Duration            FlexibleNumber     `json:"duration"`
	Budget              FlexibleNumber     `json:"budget"`
	Travelers           FlexibleNumber     `json:"travelers"`
	AccommodationType   string             `json:"accommodationType"`
	Activities          FlexibleStringList `json:"activities"`
	TravelStyle         string             `json:"travelStyle"`
	DietaryRestrictions FlexibleStringList `json:"dietaryRestrictions"`
	Title               string             `json:"title"`
}

type OptimizeTripRequest struct {
	TripID      string `json:"trip_id" binding:"required,uuid"`
	Instruction string `json:"instruction" binding:"required"`
}
