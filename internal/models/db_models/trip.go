package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	Title       string         `gorm:"not null" json:"title"`
	Destination string         `gorm:"index" json:"destination"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     time.Time      `json:"end_date"`
	Budget      float64        `json:"budget"`
	Travelers   int            `json:"travelers"`
	TravelStyle string         `json:"travel_style"`
	Preferences datatypes.JSON `gorm:"type:jsonb" json:"preferences"`
	Itinerary   datatypes.JSON `gorm:"type:jsonb" json:"itinerary"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	IsPublic    bool           `gorm:"index" json:"is_public"`
	Rating      float64        `json:"rating"`
	ReviewCount int            `json:"review_count"`
}
