package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ChatStatusCollecting = "collecting"
	ChatStatusReady      = "ready"
	ChatStatusGenerated  = "generated"
)

type ChatSession struct {
	BaseModel
	UserID      uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	TripID      *uuid.UUID     `gorm:"type:uuid;index" json:"trip_id,omitempty"`
	Messages    datatypes.JSON `gorm:"type:jsonb" json:"messages"`
	Preferences datatypes.JSON `gorm:"type:jsonb" json:"preferences"`
	Status      string         `gorm:"default:collecting" json:"status"`
}
