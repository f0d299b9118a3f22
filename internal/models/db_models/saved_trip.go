package db_models

import "github.com/google/uuid"

type SavedTrip struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_saved_user_trip;not null" json:"user_id"`
	TripID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_saved_user_trip;not null" json:"trip_id"`
}
