package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	TransactionStatusPending = "pending"
	TransactionStatusPaid    = "paid"
	TransactionStatusFailed  = "failed"
)

type Transaction struct {
	BaseModel
	UserID         uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	TripID         uuid.UUID      `gorm:"type:uuid;index;not null" json:"trip_id"`
	Amount         int            `gorm:"not null" json:"amount"`
	Status         string         `gorm:"default:pending;index" json:"status"`
	Provider       string         `json:"provider"`
	ProviderTxnID  string         `gorm:"uniqueIndex" json:"provider_txn_id"`
	Receipt        datatypes.JSON `gorm:"type:jsonb" json:"receipt,omitempty"`
	FailureMessage string         `json:"failure_message,omitempty"`
}
