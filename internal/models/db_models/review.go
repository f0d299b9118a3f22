package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	TripID       uuid.UUID `gorm:"type:uuid;index;not null" json:"trip_id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Rating       int       `gorm:"not null" json:"rating"`
	Comment      string    `json:"comment"`
	HelpfulCount int       `gorm:"default:0" json:"helpful_count"`
}
