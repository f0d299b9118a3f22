package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tobugo/internal/models/request_models"
	"tobugo/internal/services"
	"tobugo/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

func (t *TripController) GetTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	trip, err := t.tripService.GetTrip(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "")
}

func (t *TripController) ListTrips(c *gin.Context) {
	userID := c.GetString("user_id")

	page, pageSize, err := pagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "")
}

func (t *TripController) UpdateTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.UpdateTrip(c.Request.Context(), userID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip updated")
}

func (t *TripController) DeleteTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	if err := t.tripService.DeleteTrip(c.Request.Context(), userID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted")
}

func pagination(c *gin.Context) (int, int, error) {
	page := 1
	pageSize := 20

	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return 0, 0, utils.ErrInvalidPage
		}
		page = parsed
	}
	if raw := c.Query("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			return 0, 0, utils.ErrInvalidPageSize
		}
		pageSize = parsed
	}
	return page, pageSize, nil
}
