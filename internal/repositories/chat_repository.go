package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"tobugo/internal/models/db_models"
)

type ChatRepository interface {
	Insert(ctx context.Context, session *db_models.ChatSession) error
	FindByID(ctx context.Context, id string) (*db_models.ChatSession, error)
	FindByUser(ctx context.Context, userID string, limit int) ([]db_models.ChatSession, error)
	Update(ctx context.Context, session *db_models.ChatSession) error
	Delete(ctx context.Context, id string) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (c *chatRepository) Insert(ctx context.Context, session *db_models.ChatSession) error {
	return c.db.WithContext(ctx).Create(session).Error
}

func (c *chatRepository) FindByID(ctx context.Context, id string) (*db_models.ChatSession, error) {
	var session db_models.ChatSession
	err := c.db.WithContext(ctx).First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (c *chatRepository) FindByUser(ctx context.Context, userID string, limit int) ([]db_models.ChatSession, error) {
	var sessions []db_models.ChatSession
	err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (c *chatRepository) Update(ctx context.Context, session *db_models.ChatSession) error {
	return c.db.WithContext(ctx).Save(session).Error
}

func (c *chatRepository) Delete(ctx context.Context, id string) error {
	return c.db.WithContext(ctx).Delete(&db_models.ChatSession{}, "id = ?", id).Error
}
