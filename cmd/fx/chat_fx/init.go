package chat_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tobugo/internal/api/controllers"
	"tobugo/internal/repositories"
	"tobugo/internal/services"
)

var Module = fx.Provide(
	provideChatRepo, provideChatService, provideChatController)

func provideChatRepo(db *gorm.DB) repositories.ChatRepository {
	return repositories.NewChatRepository(db)
}

func provideChatService(chatRepo repositories.ChatRepository, plannerSvc services.PlannerServiceInterface) services.ChatServiceInterface {
	return services.NewChatService(chatRepo, plannerSvc)
}

func provideChatController(chatService services.ChatServiceInterface) *controllers.ChatController {
	return controllers.NewChatController(chatService)
}
