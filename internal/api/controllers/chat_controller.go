package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tobugo/internal/models/request_models"
	"tobugo/internal/services"
	"tobugo/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// SendMessage godoc
// @Summary Send a message in a planning conversation
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatMessageRequest true "Message payload; omit session_id to start a new conversation"
// @Success 200 {object} utils.APIResponse
// @Router /chat/messages [post]
func (ch *ChatController) SendMessage(c *gin.Context) {
	userID := c.GetString("user_id")

	var req request_models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	turn, err := ch.chatService.SendMessage(c.Request.Context(), userID, req.SessionID, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, turn, "")
}

func (ch *ChatController) GetSession(c *gin.Context) {
	userID := c.GetString("user_id")
	sessionID := c.Param("id")

	session, err := ch.chatService.GetSession(c.Request.Context(), userID, sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session, "")
}

func (ch *ChatController) ListSessions(c *gin.Context) {
	userID := c.GetString("user_id")

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	sessions, err := ch.chatService.ListSessions(c.Request.Context(), userID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sessions, "")
}

func (ch *ChatController) DeleteSession(c *gin.Context) {
	userID := c.GetString("user_id")
	sessionID := c.Param("id")

	if err := ch.chatService.DeleteSession(c.Request.Context(), userID, sessionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Session deleted")
}
