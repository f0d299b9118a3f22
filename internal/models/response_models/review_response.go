package response_models

import "tobugo/internal/models/db_models"

type ReviewResponse struct {
	ID           string `json:"id"`
	TripID       string `json:"trip_id"`
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	HelpfulCount int    `json:"helpful_count"`
	CreatedAt    int64  `json:"created_at"`
}

type CommunityStatsResponse struct {
	PublicTrips   int64   `json:"public_trips"`
	Users         int64   `json:"users"`
	Reviews       int64   `json:"reviews"`
	AverageRating float64 `json:"average_rating"`
}

type ReviewStatsResponse struct {
	TripID        string      `json:"trip_id"`
	AverageRating float64     `json:"average_rating"`
	ReviewCount   int64       `json:"review_count"`
	Distribution  map[int]int `json:"distribution"`
}

func ToReviewResponse(review *db_models.Review, username string) ReviewResponse {
	return ReviewResponse{
		ID:           review.ID.String(),
		TripID:       review.TripID.String(),
		UserID:       review.UserID.String(),
		Username:     username,
		Rating:       review.Rating,
		Comment:      review.Comment,
		HelpfulCount: review.HelpfulCount,
		CreatedAt:    review.CreatedAt,
	}
}
