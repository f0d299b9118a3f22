package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tobugo/internal/models/request_models"
	"tobugo/internal/services"
	"tobugo/pkg/utils"
)

type CommunityController struct {
	communityService services.CommunityServiceInterface
}

func NewCommunityController(communityService services.CommunityServiceInterface) *CommunityController {
	return &CommunityController{
		communityService: communityService,
	}
}

func (cc *CommunityController) BrowsePublicTrips(c *gin.Context) {
	var filter request_models.PublicTripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	trips, err := cc.communityService.BrowsePublicTrips(c.Request.Context(), filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "")
}

func (cc *CommunityController) CreateReview(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	review, err := cc.communityService.CreateReview(c.Request.Context(), userID, tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review saved")
}

func (cc *CommunityController) ListReviews(c *gin.Context) {
	tripID := c.Param("id")

	page, pageSize, err := pagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	reviews, total, err := cc.communityService.ListReviews(c.Request.Context(), tripID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"reviews": reviews, "total": total, "page": page, "page_size": pageSize}, "")
}

func (cc *CommunityController) ReviewStats(c *gin.Context) {
	tripID := c.Param("id")

	stats, err := cc.communityService.ReviewStats(c.Request.Context(), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "")
}

func (cc *CommunityController) ListMyReviews(c *gin.Context) {
	userID := c.GetString("user_id")

	page, pageSize, err := pagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	reviews, total, err := cc.communityService.ListUserReviews(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"reviews": reviews, "total": total, "page": page, "page_size": pageSize}, "")
}

func (cc *CommunityController) RecentReviews(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	reviews, err := cc.communityService.RecentReviews(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "")
}

func (cc *CommunityController) CommunityStats(c *gin.Context) {
	stats, err := cc.communityService.CommunityStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "")
}

func (cc *CommunityController) MarkReviewHelpful(c *gin.Context) {
	reviewID := c.Param("id")

	if err := cc.communityService.MarkReviewHelpful(c.Request.Context(), reviewID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Marked as helpful")
}

func (cc *CommunityController) DeleteReview(c *gin.Context) {
	userID := c.GetString("user_id")
	reviewID := c.Param("id")

	if err := cc.communityService.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review deleted")
}

func (cc *CommunityController) SaveTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	if err := cc.communityService.SaveTrip(c.Request.Context(), userID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip saved")
}

func (cc *CommunityController) UnsaveTrip(c *gin.Context) {
	userID := c.GetString("user_id")
	tripID := c.Param("id")

	if err := cc.communityService.UnsaveTrip(c.Request.Context(), userID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip unsaved")
}

func (cc *CommunityController) ListSavedTrips(c *gin.Context) {
	userID := c.GetString("user_id")

	page, pageSize, err := pagination(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	trips, err := cc.communityService.ListSavedTrips(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "")
}

func (cc *CommunityController) SimilarTrips(c *gin.Context) {
	tripID := c.Param("id")

	limit := 10
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	similar, err := cc.communityService.SimilarTrips(c.Request.Context(), tripID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, similar, "")
}
