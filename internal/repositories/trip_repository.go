package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tobugo/internal/models/db_models"
	"tobugo/internal/models/request_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	FindByID(ctx context.Context, id string) (*db_models.Trip, error)
	FindByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Trip, int64, error)
	FindPublic(ctx context.Context, filter request_models.PublicTripFilter) ([]db_models.Trip, int64, error)
	Update(ctx context.Context, trip *db_models.Trip) error
	Delete(ctx context.Context, id string) error
	UpdateRating(ctx context.Context, tripID string, rating float64, reviewCount int) error
	CountPublic(ctx context.Context) (int64, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (t *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Create(trip).Error
}

func (t *tripRepository) FindByID(ctx context.Context, id string) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := t.db.WithContext(ctx).First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (t *tripRepository) FindByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Trip, int64, error) {
	var trips []db_models.Trip
	var total int64

	query := t.db.WithContext(ctx).Model(&db_models.Trip{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

func (t *tripRepository) FindPublic(ctx context.Context, filter request_models.PublicTripFilter) ([]db_models.Trip, int64, error) {
	var trips []db_models.Trip
	var total int64

	query := t.db.WithContext(ctx).Model(&db_models.Trip{}).Where("is_public = ?", true)
	if filter.Destination != "" {
		query = query.Where("destination ILIKE ?", "%"+filter.Destination+"%")
	}
	if filter.MinBudget > 0 {
		query = query.Where("budget >= ?", filter.MinBudget)
	}
	if filter.MaxBudget > 0 {
		query = query.Where("budget <= ?", filter.MaxBudget)
	}
	if filter.MinDays > 0 {
		query = query.Where("(end_date::date - start_date::date) >= ?", filter.MinDays-1)
	}
	if filter.MaxDays > 0 {
		query = query.Where("(end_date::date - start_date::date) <= ?", filter.MaxDays-1)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("rating DESC, created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}

func (t *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return t.db.WithContext(ctx).Save(trip).Error
}

func (t *tripRepository) Delete(ctx context.Context, id string) error {
	return t.db.WithContext(ctx).Delete(&db_models.Trip{}, "id = ?", id).Error
}

func (t *tripRepository) CountPublic(ctx context.Context) (int64, error) {
	var count int64
	err := t.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("is_public = ?", true).
		Count(&count).Error
	return count, err
}

func (t *tripRepository) UpdateRating(ctx context.Context, tripID string, rating float64, reviewCount int) error {
	return t.db.WithContext(ctx).
		Model(&db_models.Trip{}).
		Where("id = ?", tripID).
		Updates(map[string]interface{}{"rating": rating, "review_count": reviewCount}).Error
}
