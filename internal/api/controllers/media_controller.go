package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tobugo/internal/services"
	"tobugo/pkg/utils"
)

type MediaController struct {
	mediaService services.MediaServiceInterface
}

func NewMediaController(mediaService services.MediaServiceInterface) *MediaController {
	return &MediaController{
		mediaService: mediaService,
	}
}

func (m *MediaController) SearchImages(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	result, err := m.mediaService.SearchImages(c.Request.Context(), query, mediaLimit(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "")
}

func (m *MediaController) SearchVideos(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	result, err := m.mediaService.SearchVideos(c.Request.Context(), query, mediaLimit(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "")
}

func (m *MediaController) SearchTravelContent(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter 'q' is required")
		return
	}

	result, err := m.mediaService.SearchTravelContent(c.Request.Context(), query, mediaLimit(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "")
}

func mediaLimit(c *gin.Context) int {
	limit := 12
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	return limit
}
