package community_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tobugo/internal/api/controllers"
	"tobugo/internal/repositories"
	"tobugo/internal/services"
)

var Module = fx.Provide(
	provideReviewRepo,
	provideSavedTripRepo,
	provideCommunityService,
	provideCommunityController,
)

func provideReviewRepo(db *gorm.DB) repositories.ReviewRepository {
	return repositories.NewReviewRepository(db)
}

func provideSavedTripRepo(db *gorm.DB) repositories.SavedTripRepository {
	return repositories.NewSavedTripRepository(db)
}

func provideCommunityService(
	tripRepo repositories.TripRepository,
	reviewRepo repositories.ReviewRepository,
	savedTripRepo repositories.SavedTripRepository,
	accountRepo repositories.AccountRepository,
	embeddings services.TripEmbeddingServiceInterface,
) services.CommunityServiceInterface {
	return services.NewCommunityService(tripRepo, reviewRepo, savedTripRepo, accountRepo, embeddings)
}

func provideCommunityController(communityService services.CommunityServiceInterface) *controllers.CommunityController {
	return controllers.NewCommunityController(communityService)
}
