package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tobugo/internal/models/request_models"
	"tobugo/internal/planner"
	"tobugo/internal/services"
	"tobugo/pkg/utils"
)

type PlannerController struct {
	tripService services.TripServiceInterface
}

func NewPlannerController(tripService services.TripServiceInterface) *PlannerController {
	return &PlannerController{
		tripService: tripService,
	}
}

// GenerateTrip godoc
// @Summary Generate an itinerary from trip preferences
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.GenerateTripRequest true "Trip preferences"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /ai/generate-itinerary [post]
func (p *PlannerController) GenerateTrip(c *gin.Context) {
	userID := c.GetString("user_id")

	var req request_models.GenerateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := p.tripService.GenerateTrip(c.Request.Context(), userID, req)
	if err != nil {
		handlePlannerError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Itinerary generated")
}

// OptimizeTrip godoc
// @Summary Rewrite an itinerary per a free-form instruction
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.OptimizeTripRequest true "Trip and optimization instruction"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /ai/optimize-itinerary [post]
func (p *PlannerController) OptimizeTrip(c *gin.Context) {
	userID := c.GetString("user_id")

	var req request_models.OptimizeTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := p.tripService.OptimizeTrip(c.Request.Context(), userID, req.TripID, req.Instruction)
	if err != nil {
		handlePlannerError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Itinerary optimized")
}

// handlePlannerError translates generation pipeline failures before falling
// back to the shared service error mapping.
func handlePlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrInvalidDate), errors.Is(err, planner.ErrMissingDays):
		utils.RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, planner.ErrMalformedOutput):
		utils.RespondError(c, http.StatusBadGateway, "The planner returned an unusable itinerary. Please try again.")
	case errors.Is(err, planner.ErrServiceOverloaded):
		utils.RespondError(c, http.StatusServiceUnavailable, "The AI service is temporarily overloaded. Please try again in a few moments.")
	case errors.Is(err, planner.ErrTooManyRequests):
		utils.RespondError(c, http.StatusTooManyRequests, "Too many requests right now. Please wait a moment and try again.")
	case errors.Is(err, planner.ErrGenerationFailed):
		utils.RespondError(c, http.StatusInternalServerError, "Itinerary generation failed. Please try again.")
	default:
		utils.HandleServiceError(c, err)
	}
}
