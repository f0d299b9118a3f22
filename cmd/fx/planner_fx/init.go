package planner_fx

import (
	"go.uber.org/fx"

	"tobugo/internal/api/controllers"
	"tobugo/internal/services"
	"tobugo/pkg/utils"
)

var Module = fx.Provide(
	providePlannerService, providePlannerController)

func providePlannerService(ai utils.PlannerAIInterface) services.PlannerServiceInterface {
	return services.NewPlannerService(ai)
}

func providePlannerController(tripService services.TripServiceInterface) *controllers.PlannerController {
	return controllers.NewPlannerController(tripService)
}
