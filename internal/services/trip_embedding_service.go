package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"tobugo/internal/models/db_models"
	"tobugo/internal/repositories"
	"tobugo/pkg/utils"
)

type TripEmbeddingServiceInterface interface {
	IndexTripAsync(trip *db_models.Trip)
	FindSimilar(ctx context.Context, tripID string, limit int) ([]repositories.SimilarTrip, error)
	RemoveTrip(ctx context.Context, tripID string)
}

type TripEmbeddingService struct {
	embeddingRepo repositories.TripEmbeddingRepository
	tripRepo      repositories.TripRepository
	client        utils.EmbeddingClientInterface
}

func NewTripEmbeddingService(
	embeddingRepo repositories.TripEmbeddingRepository,
	tripRepo repositories.TripRepository,
	client utils.EmbeddingClientInterface,
) TripEmbeddingServiceInterface {
	return &TripEmbeddingService{
		embeddingRepo: embeddingRepo,
		tripRepo:      tripRepo,
		client:        client,
	}
}

// IndexTripAsync embeds the trip off the request path. Indexing failures are
// logged and retried on the next trip update, never surfaced to the caller.
func (s *TripEmbeddingService) IndexTripAsync(trip *db_models.Trip) {
	snapshot := *trip
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		vector, err := s.client.GetEmbedding(ctx, embeddingText(&snapshot))
		if err != nil {
			log.Printf("trip embedding failed for %s: %v", snapshot.ID, err)
			return
		}
		err = s.embeddingRepo.Upsert(ctx, &db_models.TripEmbedding{
			TripID:    snapshot.ID,
			Embedding: vector,
		})
		if err != nil {
			log.Printf("trip embedding upsert failed for %s: %v", snapshot.ID, err)
		}
	}()
}

func (s *TripEmbeddingService) FindSimilar(ctx context.Context, tripID string, limit int) ([]repositories.SimilarTrip, error) {
	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	vector, err := s.client.GetEmbedding(ctx, embeddingText(trip))
	if err != nil {
		return nil, err
	}

	if limit < 1 || limit > 50 {
		limit = 10
	}
	similar, err := s.embeddingRepo.FindSimilar(ctx, vector, tripID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return similar, nil
}

func (s *TripEmbeddingService) RemoveTrip(ctx context.Context, tripID string) {
	if err := s.embeddingRepo.DeleteByTrip(ctx, tripID); err != nil {
		log.Printf("trip embedding delete failed for %s: %v", tripID, err)
	}
}

func embeddingText(trip *db_models.Trip) string {
	parts := []string{trip.Title, trip.Destination, trip.TravelStyle}
	parts = append(parts, trip.Tags...)
	if trip.Budget > 0 {
		parts = append(parts, fmt.Sprintf("budget %.0f USD", trip.Budget))
	}
	return strings.Join(parts, " | ")
}
