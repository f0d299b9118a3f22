package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"tobugo/internal/models/db_models"
	"tobugo/internal/models/response_models"
	"tobugo/internal/planner"
	"tobugo/internal/repositories"
	"tobugo/pkg/utils"
)

type ChatServiceInterface interface {
	SendMessage(ctx context.Context, userID, sessionID, message string) (*response_models.ChatTurnResponse, error)
	GetSession(ctx context.Context, userID, sessionID string) (*response_models.ChatTurnResponse, error)
	ListSessions(ctx context.Context, userID string, limit int) ([]db_models.ChatSession, error)
	DeleteSession(ctx context.Context, userID, sessionID string) error
}

type ChatService struct {
	chatRepo   repositories.ChatRepository
	plannerSvc PlannerServiceInterface
}

func NewChatService(chatRepo repositories.ChatRepository, plannerSvc PlannerServiceInterface) ChatServiceInterface {
	return &ChatService{
		chatRepo:   chatRepo,
		plannerSvc: plannerSvc,
	}
}

// SendMessage appends the user turn, runs one preference-extraction step and
// appends the assistant reply. An empty sessionID starts a new conversation.
func (c *ChatService) SendMessage(ctx context.Context, userID, sessionID, message string) (*response_models.ChatTurnResponse, error) {
	var session *db_models.ChatSession
	var err error

	if sessionID == "" {
		uid, parseErr := uuid.Parse(userID)
		if parseErr != nil {
			return nil, utils.ErrInvalidInput
		}
		session = &db_models.ChatSession{
			UserID: uid,
			Status: db_models.ChatStatusCollecting,
		}
		if err := c.chatRepo.Insert(ctx, session); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		session, err = c.ownedSession(ctx, userID, sessionID)
		if err != nil {
			return nil, err
		}
	}

	history := decodeTurns(session.Messages)
	history = append(history, planner.ConversationTurn{
		Role:      "user",
		Content:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	prior := decodePreferences(session.Preferences)
	result, err := c.plannerSvc.ExtractTurn(ctx, history, prior)
	if err != nil {
		return nil, err
	}

	history = append(history, planner.ConversationTurn{
		Role:      "assistant",
		Content:   result.Reply,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	if raw, err := json.Marshal(history); err == nil {
		session.Messages = raw
	}
	if raw, err := json.Marshal(result.Preferences); err == nil {
		session.Preferences = raw
	}
	if result.ReadyToGenerate && session.Status == db_models.ChatStatusCollecting {
		session.Status = db_models.ChatStatusReady
	}
	if err := c.chatRepo.Update(ctx, session); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ChatTurnResponse{
		SessionID:   session.ID.String(),
		Reply:       result.Reply,
		Preferences: &result.Preferences,
		Ready:       result.ReadyToGenerate,
		Status:      session.Status,
	}, nil
}

func (c *ChatService) GetSession(ctx context.Context, userID, sessionID string) (*response_models.ChatTurnResponse, error) {
	session, err := c.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}

	prefs := decodePreferences(session.Preferences)
	return &response_models.ChatTurnResponse{
		SessionID:   session.ID.String(),
		Preferences: &prefs,
		Ready:       session.Status != db_models.ChatStatusCollecting,
		Status:      session.Status,
		Messages:    decodeTurns(session.Messages),
	}, nil
}

func (c *ChatService) ListSessions(ctx context.Context, userID string, limit int) ([]db_models.ChatSession, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	sessions, err := c.chatRepo.FindByUser(ctx, userID, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return sessions, nil
}

func (c *ChatService) DeleteSession(ctx context.Context, userID, sessionID string) error {
	if _, err := c.ownedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	if err := c.chatRepo.Delete(ctx, sessionID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *ChatService) ownedSession(ctx context.Context, userID, sessionID string) (*db_models.ChatSession, error) {
	session, err := c.chatRepo.FindByID(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if session == nil {
		return nil, utils.ErrChatSessionNotFound
	}
	if session.UserID.String() != userID {
		return nil, utils.ErrForbidden
	}
	return session, nil
}

func decodeTurns(raw []byte) []planner.ConversationTurn {
	var turns []planner.ConversationTurn
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &turns)
	}
	return turns
}

func decodePreferences(raw []byte) planner.TravelPreferences {
	var prefs planner.TravelPreferences
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &prefs)
	}
	return prefs
}
