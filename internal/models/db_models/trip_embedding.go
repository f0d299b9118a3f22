package db_models

import (
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type TripEmbedding struct {
	BaseModel
	TripID    uuid.UUID       `gorm:"type:uuid;uniqueIndex;not null" json:"trip_id"`
	Embedding pgvector.Vector `gorm:"type:vector(1536)" json:"-"`
}
