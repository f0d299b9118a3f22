package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tobugo/internal/api/controllers"
	"tobugo/internal/repositories"
	"tobugo/internal/services"
	"tobugo/pkg/utils"
)

var Module = fx.Provide(
	provideTripRepo,
	provideTransactionRepo,
	provideEmbeddingRepo,
	provideEmbeddingService,
	provideTripService,
	provideTripController,
)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideTransactionRepo(db *gorm.DB) repositories.TransactionRepository {
	return repositories.NewTransactionRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.TripEmbeddingRepository {
	return repositories.NewTripEmbeddingRepository(db)
}

func provideEmbeddingService(
	embeddingRepo repositories.TripEmbeddingRepository,
	tripRepo repositories.TripRepository,
	client utils.EmbeddingClientInterface,
) services.TripEmbeddingServiceInterface {
	return services.NewTripEmbeddingService(embeddingRepo, tripRepo, client)
}

func provideTripService(
	tripRepo repositories.TripRepository,
	transactionRepo repositories.TransactionRepository,
	plannerSvc services.PlannerServiceInterface,
	embeddings services.TripEmbeddingServiceInterface,
) services.TripServiceInterface {
	return services.NewTripService(tripRepo, transactionRepo, plannerSvc, embeddings)
}

func provideTripController(tripService services.TripServiceInterface) *controllers.TripController {
	return controllers.NewTripController(tripService)
}
