package controllers

import (
	"github.com/hanepo/MoodMap-sub000/constants"
	"github.com/hanepo/MoodMap-sub000/response"
	"github.com/hanepo/MoodMap-sub000/services"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	service *services.RecommendationService
}

func NewRecommendationController(service *services.RecommendationService) *RecommendationController {
	return &RecommendationController{service: service}
}

// GetRecommendations trả về gợi ý hoạt động theo mood category,
// query param mood nhận low / medium / high / general
func (ctl *RecommendationController) GetRecommendations(c *gin.Context) {
	moodCategory := c.DefaultQuery("mood", constants.MoodCategoryGeneral)

	switch moodCategory {
	case constants.MoodCategoryLow, constants.MoodCategoryMedium,
		constants.MoodCategoryHigh, constants.MoodCategoryGeneral:
	default:
		response.BadRequest(c, "Mood category không hợp lệ")
		return
	}

	recommendations, err := ctl.service.GetRecommendations(c.Request.Context(), moodCategory)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, recommendations)
}
