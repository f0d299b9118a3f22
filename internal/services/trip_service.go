package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"tobugo/internal/models/db_models"
	"tobugo/internal/models/request_models"
	"tobugo/internal/models/response_models"
	"tobugo/internal/planner"
	"tobugo/internal/repositories"
	"tobugo/pkg/utils"
)

type TripServiceInterface interface {
	GenerateTrip(ctx context.Context, userID string, request request_models.GenerateTripRequest) (*response_models.TripResponse, error)
	OptimizeTrip(ctx context.Context, userID, tripID, instruction string) (*response_models.TripResponse, error)
	GetTrip(ctx context.Context, userID, tripID string) (*response_models.TripResponse, error)
	ListTrips(ctx context.Context, userID string, page, pageSize int) (*response_models.PagedTripsResponse, error)
	UpdateTrip(ctx context.Context, userID, tripID string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, userID, tripID string) error
}

type TripService struct {
	tripRepo        repositories.TripRepository
	transactionRepo repositories.TransactionRepository
	plannerSvc      PlannerServiceInterface
	embeddings      TripEmbeddingServiceInterface
}

func NewTripService(
	tripRepo repositories.TripRepository,
	transactionRepo repositories.TransactionRepository,
	plannerSvc PlannerServiceInterface,
	embeddings TripEmbeddingServiceInterface,
) TripServiceInterface {
	return &TripService{
		tripRepo:        tripRepo,
		transactionRepo: transactionRepo,
		plannerSvc:      plannerSvc,
		embeddings:      embeddings,
	}
}

// GenerateTrip synthesizes an itinerary from the lenient request payload.
// With a trip_id the result is stored on that existing trip; otherwise a new
// trip is created for the caller.
func (t *TripService) GenerateTrip(ctx context.Context, userID string, request request_models.GenerateTripRequest) (*response_models.TripResponse, error) {
	prefs := planner.TravelPreferences{
		Destination:         request.Destination,
		StartDate:           request.StartDate,
		EndDate:             request.EndDate,
		Budget:              float64(request.Budget),
		Travelers:           int(request.Travelers),
		AccommodationType:   request.AccommodationType,
		Activities:          request.Activities,
		TravelStyle:         request.TravelStyle,
		DietaryRestrictions: request.DietaryRestrictions,
	}

	itinerary, resolved, err := t.plannerSvc.Synthesize(ctx, prefs, int(request.Duration))
	if err != nil {
		return nil, err
	}

	var trip *db_models.Trip
	if request.TripID != "" {
		trip, err = t.ownedTrip(ctx, userID, request.TripID)
		if err != nil {
			return nil, err
		}
	} else {
		uid, parseErr := uuid.Parse(userID)
		if parseErr != nil {
			return nil, utils.ErrInvalidInput
		}
		trip = &db_models.Trip{UserID: uid}
	}

	title := request.Title
	if title == "" && trip.Title == "" {
		title = "Trip to " + resolved.Destination
	}
	if title != "" {
		trip.Title = title
	}
	trip.Destination = resolved.Destination
	trip.Budget = resolved.Budget
	trip.Travelers = resolved.Travelers
	trip.TravelStyle = resolved.TravelStyle
	trip.StartDate, _ = time.Parse(time.DateOnly, resolved.StartDate)
	trip.EndDate, _ = time.Parse(time.DateOnly, resolved.EndDate)
	if raw, err := json.Marshal(resolved); err == nil {
		trip.Preferences = raw
	}
	if raw, err := json.Marshal(itinerary); err == nil {
		trip.Itinerary = raw
	}

	if request.TripID != "" {
		err = t.tripRepo.Update(ctx, trip)
	} else {
		err = t.tripRepo.Insert(ctx, trip)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.embeddings.IndexTripAsync(trip)

	resp := response_models.ToTripResponse(trip, false)
	return &resp, nil
}

// OptimizeTrip rewrites the stored itinerary per the instruction. Only the
// trip owner can optimize it.
func (t *TripService) OptimizeTrip(ctx context.Context, userID, tripID, instruction string) (*response_models.TripResponse, error) {
	trip, err := t.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	if len(trip.Itinerary) == 0 {
		return nil, utils.ErrTripNotGenerated
	}

	var itinerary planner.Itinerary
	if err := json.Unmarshal(trip.Itinerary, &itinerary); err != nil {
		return nil, utils.ErrTripNotGenerated
	}

	optimized, err := t.plannerSvc.Optimize(ctx, &itinerary, trip.Destination, instruction)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(optimized); err == nil {
		trip.Itinerary = raw
	}
	trip.Budget = optimized.TotalCost
	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	t.embeddings.IndexTripAsync(trip)

	purchased, _ := t.transactionRepo.HasPaidForTrip(ctx, userID, tripID)
	resp := response_models.ToTripResponse(trip, purchased)
	return &resp, nil
}

func (t *TripService) GetTrip(ctx context.Context, userID, tripID string) (*response_models.TripResponse, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID.String() != userID && !trip.IsPublic {
		return nil, utils.ErrForbidden
	}

	purchased := false
	if trip.UserID.String() == userID {
		purchased, _ = t.transactionRepo.HasPaidForTrip(ctx, userID, tripID)
	}
	resp := response_models.ToTripResponse(trip, purchased)
	return &resp, nil
}

func (t *TripService) ListTrips(ctx context.Context, userID string, page, pageSize int) (*response_models.PagedTripsResponse, error) {
	trips, total, err := t.tripRepo.FindByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.PagedTripsResponse{
		Trips:    make([]response_models.TripResponse, 0, len(trips)),
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}
	for i := range trips {
		resp.Trips = append(resp.Trips, response_models.ToTripResponse(&trips[i], false))
	}
	return resp, nil
}

func (t *TripService) UpdateTrip(ctx context.Context, userID, tripID string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	trip, err := t.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if request.Title != "" {
		trip.Title = request.Title
	}
	if request.Destination != "" {
		trip.Destination = request.Destination
	}
	if request.StartDate != "" {
		parsed, err := time.Parse(time.DateOnly, request.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.StartDate = parsed
	}
	if request.EndDate != "" {
		parsed, err := time.Parse(time.DateOnly, request.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.EndDate = parsed
	}
	if request.Budget != nil {
		trip.Budget = *request.Budget
	}
	if request.IsPublic != nil {
		trip.IsPublic = *request.IsPublic
	}
	if request.Tags != nil {
		trip.Tags = request.Tags
	}

	if err := t.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	purchased, _ := t.transactionRepo.HasPaidForTrip(ctx, userID, tripID)
	resp := response_models.ToTripResponse(trip, purchased)
	return &resp, nil
}

func (t *TripService) DeleteTrip(ctx context.Context, userID, tripID string) error {
	if _, err := t.ownedTrip(ctx, userID, tripID); err != nil {
		return err
	}
	if err := t.tripRepo.Delete(ctx, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	t.embeddings.RemoveTrip(ctx, tripID)
	return nil
}

func (t *TripService) ownedTrip(ctx context.Context, userID, tripID string) (*db_models.Trip, error) {
	trip, err := t.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID.String() != userID {
		return nil, utils.ErrForbidden
	}
	return trip, nil
}
