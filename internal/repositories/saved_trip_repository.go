package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tobugo/internal/models/db_models"
)

type SavedTripRepository interface {
	Insert(ctx context.Context, saved *db_models.SavedTrip) error
	Delete(ctx context.Context, userID, tripID string) error
	Exists(ctx context.Context, userID, tripID string) (bool, error)
	FindTripsByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Trip, int64, error)
}

type savedTripRepository struct {
	db *gorm.DB
}

func NewSavedTripRepository(db *gorm.DB) SavedTripRepository {
	return &savedTripRepository{db: db}
}

func (s *savedTripRepository) Insert(ctx context.Context, saved *db_models.SavedTrip) error {
	return s.db.WithContext(ctx).Create(saved).Error
}

func (s *savedTripRepository) Delete(ctx context.Context, userID, tripID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND trip_id = ?", userID, tripID).
		Delete(&db_models.SavedTrip{}).Error
}

func (s *savedTripRepository) Exists(ctx context.Context, userID, tripID string) (bool, error) {
	var saved db_models.SavedTrip
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND trip_id = ?", userID, tripID).
		First(&saved).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *savedTripRepository) FindTripsByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Trip, int64, error) {
	var trips []db_models.Trip
	var total int64

	base := s.db.WithContext(ctx).
		Table("trips").
		Joins("JOIN saved_trips ON saved_trips.trip_id = trips.id").
		Where("saved_trips.user_id = ? AND saved_trips.deleted_at IS NULL AND trips.deleted_at IS NULL", userID)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Select("trips.*").
		Order("saved_trips.created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}
	return trips, total, nil
}
