package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tobugo/internal/services"
	"tobugo/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// ExportTripPDF streams the rendered itinerary. Responds 402 until the
// export has been purchased for the trip.
func (e *ExportController) ExportTripPDF(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	pdf, filename, err := e.exportService.ExportTripPDF(c.Request.Context(), userID, tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
