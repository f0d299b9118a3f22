package export_fx

import (
	"go.uber.org/fx"

	"tobugo/internal/api/controllers"
	"tobugo/internal/repositories"
	"tobugo/internal/services"
)

var Module = fx.Provide(
	provideExportService, provideExportController)

func provideExportService(tripRepo repositories.TripRepository, transactionRepo repositories.TransactionRepository) services.ExportServiceInterface {
	return services.NewExportService(tripRepo, transactionRepo)
}

func provideExportController(exportService services.ExportServiceInterface) *controllers.ExportController {
	return controllers.NewExportController(exportService)
}
