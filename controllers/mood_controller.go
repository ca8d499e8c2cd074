package controllers

import (
	"strconv"

	"github.com/hanepo/MoodMap-sub000/dto"
	"github.com/hanepo/MoodMap-sub000/models"
	"github.com/hanepo/MoodMap-sub000/response"
	"github.com/hanepo/MoodMap-sub000/services"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	service *services.MoodService
}

func NewMoodController(service *services.MoodService) *MoodController {
	return &MoodController{service: service}
}

// LogMood ghi một mood entry mới
func (ctl *MoodController) LogMood(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var req dto.LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	entry := &models.MoodEntry{
		UserID:       userID,
		Mood:         req.Mood,
		MoodLabel:    req.MoodLabel,
		MoodCategory: req.MoodCategory,
		RawInput:     req.RawInput,
		Description:  req.Description,
	}

	created, err := ctl.service.LogMood(c.Request.Context(), entry)
	if err != nil {
		if svcErr, ok := err.(*services.ServiceError); ok && svcErr.Err == nil {
			response.BadRequest(c, svcErr.Message)
			return
		}
		response.ServerError(c)
		return
	}

	response.Success(c, created)
}

// AnalyzeMood gửi text đến sentiment service và trả về mood score + label
func (ctl *MoodController) AnalyzeMood(c *gin.Context) {
	var req dto.AnalyzeSentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	result, err := services.AnalyzeSentiment(c.Request.Context(), req.Text)
	if err != nil {
		response.Error(c, 0, "Không phân tích được sentiment")
		return
	}

	response.Success(c, result)
}

// GetRecentMoods trả về mood entry gần nhất, query param limit
func (ctl *MoodController) GetRecentMoods(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	moods := ctl.service.GetRecentMoods(c.Request.Context(), userID, limit)
	response.Success(c, moods)
}

// GetTodayMood trả về mood entry của hôm nay, data null nếu chưa log
func (ctl *MoodController) GetTodayMood(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	entry, err := ctl.service.GetTodayMood(c.Request.Context(), userID)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, entry)
}

// GetMoodSummary trả về tóm tắt mood cho Home card
func (ctl *MoodController) GetMoodSummary(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "2"))
	summary := ctl.service.GetMoodSummary(c.Request.Context(), userID, limit)
	response.Success(c, summary)
}

// GetMoodStats trả về trung bình và xu hướng mood
func (ctl *MoodController) GetMoodStats(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	stats := ctl.service.GetMoodStats(c.Request.Context(), userID)
	response.Success(c, stats)
}
