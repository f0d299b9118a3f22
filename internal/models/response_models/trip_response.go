package response_models

import (
	"encoding/json"
	"time"

	"tobugo/internal/models/db_models"
	"tobugo/internal/planner"
)

type TripResponse struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	Title        string             `json:"title"`
	Destination  string             `json:"destination"`
	StartDate    string             `json:"start_date"`
	EndDate      string             `json:"end_date"`
	Budget       float64            `json:"budget"`
	Travelers    int                `json:"travelers"`
	TravelStyle  string             `json:"travel_style"`
	Itinerary    *planner.Itinerary `json:"itinerary,omitempty"`
	Tags         []string           `json:"tags"`
	IsPublic     bool               `json:"is_public"`
	Rating       float64            `json:"rating"`
	ReviewCount  int                `json:"review_count"`
	HasPurchased bool               `json:"has_purchased"`
	CreatedAt    int64              `json:"created_at"`
}

type PagedTripsResponse struct {
	Trips    []TripResponse `json:"trips"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Total    int64          `json:"total"`
}

func ToTripResponse(trip *db_models.Trip, hasPurchased bool) TripResponse {
	resp := TripResponse{
		ID:           trip.ID.String(),
		UserID:       trip.UserID.String(),
		Title:        trip.Title,
		Destination:  trip.Destination,
		Budget:       trip.Budget,
		Travelers:    trip.Travelers,
		TravelStyle:  trip.TravelStyle,
		Tags:         trip.Tags,
		IsPublic:     trip.IsPublic,
		Rating:       trip.Rating,
		ReviewCount:  trip.ReviewCount,
		HasPurchased: hasPurchased,
		CreatedAt:    trip.CreatedAt,
	}
	if !trip.StartDate.IsZero() {
		resp.StartDate = trip.StartDate.Format(time.DateOnly)
	}
	if !trip.EndDate.IsZero() {
		resp.EndDate = trip.EndDate.Format(time.DateOnly)
	}
	if len(trip.Itinerary) > 0 {
		var itinerary planner.Itinerary
		if err := json.Unmarshal(trip.Itinerary, &itinerary); err == nil {
			resp.Itinerary = &itinerary
		}
	}
	return resp
}
