package services

import (
	"context"

	"github.com/google/uuid"

	"tobugo/internal/models/db_models"
	"tobugo/internal/models/request_models"
	"tobugo/internal/models/response_models"
	"tobugo/internal/repositories"
	"tobugo/pkg/utils"
)

type CommunityServiceInterface interface {
	BrowsePublicTrips(ctx context.Context, filter request_models.PublicTripFilter) (*response_models.PagedTripsResponse, error)
	CreateReview(ctx context.Context, userID, tripID string, request request_models.CreateReviewRequest) (*db_models.Review, error)
	ListReviews(ctx context.Context, tripID string, page, pageSize int) ([]response_models.ReviewResponse, int64, error)
	ReviewStats(ctx context.Context, tripID string) (*response_models.ReviewStatsResponse, error)
	MarkReviewHelpful(ctx context.Context, reviewID string) error
	DeleteReview(ctx context.Context, userID, reviewID string) error
	ListUserReviews(ctx context.Context, userID string, page, pageSize int) ([]db_models.Review, int64, error)
	RecentReviews(ctx context.Context, limit int) ([]response_models.ReviewResponse, error)
	CommunityStats(ctx context.Context) (*response_models.CommunityStatsResponse, error)
	SaveTrip(ctx context.Context, userID, tripID string) error
	UnsaveTrip(ctx context.Context, userID, tripID string) error
	ListSavedTrips(ctx context.Context, userID string, page, pageSize int) (*response_models.PagedTripsResponse, error)
	SimilarTrips(ctx context.Context, tripID string, limit int) ([]repositories.SimilarTrip, error)
}

type CommunityService struct {
	tripRepo      repositories.TripRepository
	reviewRepo    repositories.ReviewRepository
	savedTripRepo repositories.SavedTripRepository
	accountRepo   repositories.AccountRepository
	embeddings    TripEmbeddingServiceInterface
}

func NewCommunityService(
	tripRepo repositories.TripRepository,
	reviewRepo repositories.ReviewRepository,
	savedTripRepo repositories.SavedTripRepository,
	accountRepo repositories.AccountRepository,
	embeddings TripEmbeddingServiceInterface,
) CommunityServiceInterface {
	return &CommunityService{
		tripRepo:      tripRepo,
		reviewRepo:    reviewRepo,
		savedTripRepo: savedTripRepo,
		accountRepo:   accountRepo,
		embeddings:    embeddings,
	}
}

func (c *CommunityService) BrowsePublicTrips(ctx context.Context, filter request_models.PublicTripFilter) (*response_models.PagedTripsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	trips, total, err := c.tripRepo.FindPublic(ctx, filter)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := &response_models.PagedTripsResponse{
		Trips:    make([]response_models.TripResponse, 0, len(trips)),
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}
	for i := range trips {
		resp.Trips = append(resp.Trips, response_models.ToTripResponse(&trips[i], false))
	}
	return resp, nil
}

// CreateReview records one review per user per trip. Reviewing your own trip
// is not allowed, and a second review from the same user updates the first.
func (c *CommunityService) CreateReview(ctx context.Context, userID, tripID string, request request_models.CreateReviewRequest) (*db_models.Review, error) {
	trip, err := c.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || !trip.IsPublic {
		return nil, utils.ErrTripNotFound
	}
	if trip.UserID.String() == userID {
		return nil, utils.ErrForbidden
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	review, err := c.reviewRepo.FindByTripAndUser(ctx, tripID, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if review == nil {
		review = &db_models.Review{
			TripID:  trip.ID,
			UserID:  uid,
			Rating:  request.Rating,
			Comment: request.Comment,
		}
		if err := c.reviewRepo.Insert(ctx, review); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		review.Rating = request.Rating
		review.Comment = request.Comment
		if err := c.reviewRepo.Update(ctx, review); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	c.refreshTripRating(ctx, tripID)
	return review, nil
}

func (c *CommunityService) ListReviews(ctx context.Context, tripID string, page, pageSize int) ([]response_models.ReviewResponse, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	reviews, total, err := c.reviewRepo.FindByTrip(ctx, tripID, page, pageSize)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}

	out := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, response_models.ToReviewResponse(&reviews[i].Review, reviews[i].Username))
	}
	return out, total, nil
}

func (c *CommunityService) ReviewStats(ctx context.Context, tripID string) (*response_models.ReviewStatsResponse, error) {
	stats, err := c.reviewRepo.StatsForTrip(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return &response_models.ReviewStatsResponse{
		TripID:        tripID,
		AverageRating: stats.AverageRating,
		ReviewCount:   stats.ReviewCount,
		Distribution:  stats.Distribution,
	}, nil
}

func (c *CommunityService) ListUserReviews(ctx context.Context, userID string, page, pageSize int) ([]db_models.Review, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	reviews, total, err := c.reviewRepo.FindByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}
	return reviews, total, nil
}

func (c *CommunityService) RecentReviews(ctx context.Context, limit int) ([]response_models.ReviewResponse, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	reviews, err := c.reviewRepo.Recent(ctx, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, response_models.ToReviewResponse(&reviews[i].Review, reviews[i].Username))
	}
	return out, nil
}

func (c *CommunityService) CommunityStats(ctx context.Context) (*response_models.CommunityStatsResponse, error) {
	publicTrips, err := c.tripRepo.CountPublic(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	users, err := c.accountRepo.Count(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	reviewCount, avgRating, err := c.reviewRepo.GlobalStats(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CommunityStatsResponse{
		PublicTrips:   publicTrips,
		Users:         users,
		Reviews:       reviewCount,
		AverageRating: avgRating,
	}, nil
}

func (c *CommunityService) MarkReviewHelpful(ctx context.Context, reviewID string) error {
	review, err := c.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if review == nil {
		return utils.ErrReviewNotFound
	}
	if err := c.reviewRepo.IncrementHelpful(ctx, reviewID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *CommunityService) DeleteReview(ctx context.Context, userID, reviewID string) error {
	review, err := c.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if review == nil {
		return utils.ErrReviewNotFound
	}
	if review.UserID.String() != userID {
		return utils.ErrForbidden
	}
	if err := c.reviewRepo.Delete(ctx, reviewID); err != nil {
		return utils.ErrDatabaseError
	}
	c.refreshTripRating(ctx, review.TripID.String())
	return nil
}

func (c *CommunityService) SaveTrip(ctx context.Context, userID, tripID string) error {
	trip, err := c.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil || (!trip.IsPublic && trip.UserID.String() != userID) {
		return utils.ErrTripNotFound
	}

	exists, err := c.savedTripRepo.Exists(ctx, userID, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if exists {
		return nil
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	saved := &db_models.SavedTrip{UserID: uid, TripID: trip.ID}
	if err := c.savedTripRepo.Insert(ctx, saved); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *CommunityService) UnsaveTrip(ctx context.Context, userID, tripID string) error {
	if err := c.savedTripRepo.Delete(ctx, userID, tripID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *CommunityService) ListSavedTrips(ctx context.Context, userID string, page, pageSize int) (*response_models.PagedTripsResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	trips, total, err := c.savedTripRepo.FindTripsByUser(ctx, userID, page, pageSize)
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

func (c *CommunityService) SimilarTrips(ctx context.Context, tripID string, limit int) ([]repositories.SimilarTrip, error) {
	return c.embeddings.FindSimilar(ctx, tripID, limit)
}

func (c *CommunityService) refreshTripRating(ctx context.Context, tripID string) {
	stats, err := c.reviewRepo.StatsForTrip(ctx, tripID)
	if err != nil {
		return
	}
	_ = c.tripRepo.UpdateRating(ctx, tripID, stats.AverageRating, int(stats.ReviewCount))
}
