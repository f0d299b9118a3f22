package media_fx

import (
	"os"

	"go.uber.org/fx"

	"tobugo/internal/api/controllers"
	"tobugo/internal/services"
)

var Module = fx.Provide(
	provideMediaService, provideMediaController)

func provideMediaService() services.MediaServiceInterface {
	return services.NewMediaService(services.PixabayConfig{
		APIKey: os.Getenv("PIXABAY_API_KEY"),
	})
}

func provideMediaController(mediaService services.MediaServiceInterface) *controllers.MediaController {
	return controllers.NewMediaController(mediaService)
}
