package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tobugo/internal/models/db_models"
)

type ReviewWithAuthor struct {
	db_models.Review
	Username string `json:"username"`
}

type ReviewStats struct {
	AverageRating float64
	ReviewCount   int64
	Distribution  map[int]int
}

type ReviewRepository interface {
	Insert(ctx context.Context, review *db_models.Review) error
	FindByID(ctx context.Context, id string) (*db_models.Review, error)
	FindByTrip(ctx context.Context, tripID string, page, pageSize int) ([]ReviewWithAuthor, int64, error)
	FindByTripAndUser(ctx context.Context, tripID, userID string) (*db_models.Review, error)
	Update(ctx context.Context, review *db_models.Review) error
	Delete(ctx context.Context, id string) error
	IncrementHelpful(ctx context.Context, id string) error
	StatsForTrip(ctx context.Context, tripID string) (*ReviewStats, error)
	FindByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Review, int64, error)
	Recent(ctx context.Context, limit int) ([]ReviewWithAuthor, error)
	GlobalStats(ctx context.Context) (int64, float64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Insert(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindByTrip(ctx context.Context, tripID string, page, pageSize int) ([]ReviewWithAuthor, int64, error) {
	var reviews []ReviewWithAuthor
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("trip_id = ?", tripID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, accounts.username").
		Joins("JOIN accounts ON accounts.id = reviews.user_id").
		Where("reviews.trip_id = ? AND reviews.deleted_at IS NULL", tripID).
		Order("reviews.helpful_count DESC, reviews.created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Scan(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) FindByTripAndUser(ctx context.Context, tripID, userID string) (*db_models.Review, error) {
	var review db_models.Review
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Review{}, "id = ?", id).Error
}

func (r *reviewRepository) IncrementHelpful(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Where("id = ?", id).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1")).Error
}

func (r *reviewRepository) FindByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Review, int64, error) {
	var reviews []db_models.Review
	var total int64

	query := r.db.WithContext(ctx).Model(&db_models.Review{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) Recent(ctx context.Context, limit int) ([]ReviewWithAuthor, error) {
	var reviews []ReviewWithAuthor
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.*, accounts.username").
		Joins("JOIN accounts ON accounts.id = reviews.user_id").
		Where("reviews.deleted_at IS NULL").
		Order("reviews.created_at DESC").
		Limit(limit).
		Scan(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GlobalStats(ctx context.Context) (int64, float64, error) {
	var row struct {
		Count int64
		Avg   float64
	}
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Select("COUNT(*) as count, COALESCE(AVG(rating), 0) as avg").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Count, row.Avg, nil
}

func (r *reviewRepository) StatsForTrip(ctx context.Context, tripID string) (*ReviewStats, error) {
	type bucket struct {
		Rating int
		Count  int
	}
	var buckets []bucket
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Select("rating, COUNT(*) as count").
		Where("trip_id = ?", tripID).
		Group("rating").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}

	stats := &ReviewStats{Distribution: make(map[int]int)}
	var sum int64
	for _, b := range buckets {
		stats.Distribution[b.Rating] = b.Count
		stats.ReviewCount += int64(b.Count)
		sum += int64(b.Rating) * int64(b.Count)
	}
	if stats.ReviewCount > 0 {
		stats.AverageRating = float64(sum) / float64(stats.ReviewCount)
	}
	return stats, nil
}
