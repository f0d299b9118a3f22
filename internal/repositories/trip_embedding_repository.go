package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tobugo/internal/models/db_models"
)

type SimilarTrip struct {
	TripID     string  `json:"trip_id"`
	Similarity float64 `json:"similarity"`
}

type TripEmbeddingRepository interface {
	Upsert(ctx context.Context, embedding *db_models.TripEmbedding) error
	FindSimilar(ctx context.Context, vector pgvector.Vector, excludeTripID string, limit int) ([]SimilarTrip, error)
	DeleteByTrip(ctx context.Context, tripID string) error
}

type tripEmbeddingRepository struct {
	db *gorm.DB
}

func NewTripEmbeddingRepository(db *gorm.DB) TripEmbeddingRepository {
	return &tripEmbeddingRepository{db: db}
}

func (t *tripEmbeddingRepository) Upsert(ctx context.Context, embedding *db_models.TripEmbedding) error {
	return t.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"embedding", "updated_at"}),
		}).
		Create(embedding).Error
}

func (t *tripEmbeddingRepository) FindSimilar(ctx context.Context, vector pgvector.Vector, excludeTripID string, limit int) ([]SimilarTrip, error) {
	var results []SimilarTrip

	query := `
        SELECT trip_id, (1 - (embedding <=> $1)) as similarity
        FROM trip_embeddings
        WHERE trip_id <> $2
          AND deleted_at IS NULL
          AND (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $3
    `

	err := t.db.WithContext(ctx).Raw(query, vector.String(), excludeTripID, limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (t *tripEmbeddingRepository) DeleteByTrip(ctx context.Context, tripID string) error {
	return t.db.WithContext(ctx).Delete(&db_models.TripEmbedding{}, "trip_id = ?", tripID).Error
}
