package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tobugo/internal/models/db_models"
)

type TransactionRepository interface {
	Insert(ctx context.Context, txn *db_models.Transaction) error
	FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error)
	MarkPaid(ctx context.Context, providerTxnID string, receipt []byte) (*db_models.Transaction, error)
	MarkFailed(ctx context.Context, providerTxnID, reason string) error
	HasPaidForTrip(ctx context.Context, userID, tripID string) (bool, error)
	FindByUser(ctx context.Context, userID string, limit int) ([]db_models.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (t *transactionRepository) Insert(ctx context.Context, txn *db_models.Transaction) error {
	return t.db.WithContext(ctx).Create(txn).Error
}

func (t *transactionRepository) FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).First(&txn, "provider_txn_id = ?", providerTxnID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

// MarkPaid transitions a pending transaction to paid inside a database
// transaction. Replayed webhooks find the row already paid and return it
// unchanged.
func (t *transactionRepository) MarkPaid(ctx context.Context, providerTxnID string, receipt []byte) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&txn, "provider_txn_id = ?", providerTxnID).Error; err != nil {
			return err
		}
		if txn.Status == db_models.TransactionStatusPaid {
			return nil
		}
		txn.Status = db_models.TransactionStatusPaid
		txn.Receipt = receipt
		return tx.Save(&txn).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (t *transactionRepository) MarkFailed(ctx context.Context, providerTxnID, reason string) error {
	return t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("provider_txn_id = ? AND status = ?", providerTxnID, db_models.TransactionStatusPending).
		Updates(map[string]interface{}{
			"status":          db_models.TransactionStatusFailed,
			"failure_message": reason,
		}).Error
}

func (t *transactionRepository) HasPaidForTrip(ctx context.Context, userID, tripID string) (bool, error) {
	var count int64
	err := t.db.WithContext(ctx).
		Model(&db_models.Transaction{}).
		Where("user_id = ? AND trip_id = ? AND status = ?", userID, tripID, db_models.TransactionStatusPaid).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (t *transactionRepository) FindByUser(ctx context.Context, userID string, limit int) ([]db_models.Transaction, error) {
	var txns []db_models.Transaction
	err := t.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&txns).Error
	if err != nil {
		return nil, err
	}
	return txns, nil
}
