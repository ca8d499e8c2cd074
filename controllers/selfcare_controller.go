package controllers

import (
	"strconv"
	"time"

	"github.com/hanepo/MoodMap-sub000/config"
	"github.com/hanepo/MoodMap-sub000/constants"
	"github.com/hanepo/MoodMap-sub000/dto"
	"github.com/hanepo/MoodMap-sub000/models"
	"github.com/hanepo/MoodMap-sub000/response"
	"github.com/hanepo/MoodMap-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

const selfCareCacheTTL = 30 * time.Minute

type SelfCareController struct {
	service        *services.SelfCareService
	recommendation *services.RecommendationService
	rdb            *redis.Client
}

func NewSelfCareController(service *services.SelfCareService, recommendation *services.RecommendationService, rdb *redis.Client) *SelfCareController {
	return &SelfCareController{service: service, recommendation: recommendation, rdb: rdb}
}

// GetActivities trả về toàn bộ self-care activity đang active, cache 30 phút
func (ctl *SelfCareController) GetActivities(c *gin.Context) {
	if ctl.rdb != nil {
		var cached []models.SelfCareActivity
		if err := services.GetFromRedis(config.Ctx, ctl.rdb, services.CacheKeySelfCareAll, &cached); err == nil && len(cached) > 0 {
			response.Success(c, cached)
			return
		}
	}

	activities := ctl.service.GetAllActivities(c.Request.Context())

	if ctl.rdb != nil && len(activities) > 0 {
		_ = services.SetToRedis(config.Ctx, ctl.rdb, services.CacheKeySelfCareAll, activities, selfCareCacheTTL)
	}

	response.Success(c, activities)
}

// GetActivitiesByMood trả về activity khớp mood category, query param mood
func (ctl *SelfCareController) GetActivitiesByMood(c *gin.Context) {
	moodCategory := c.DefaultQuery("mood", constants.MoodCategoryGeneral)
	activities := ctl.service.GetActivitiesByMood(c.Request.Context(), moodCategory)
	response.Success(c, activities)
}

// GetSupportResources trả về danh sách hotline hỗ trợ
func (ctl *SelfCareController) GetSupportResources(c *gin.Context) {
	resources, err := ctl.service.GetSupportResources(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, resources)
}

// CreateActivity tạo self-care activity mới (admin)
func (ctl *SelfCareController) CreateActivity(c *gin.Context) {
	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	activity := &models.SelfCareActivity{
		Title:       req.Title,
		Description: req.Description,
		Emoji:       req.Emoji,
		MoodMatch:   pq.StringArray(req.MoodMatch),
		Action:      req.Action,
		Link:        req.Link,
		Order:       req.Order,
		IsActive:    req.IsActive,
	}

	created, err := ctl.service.CreateActivity(c.Request.Context(), activity)
	if err != nil {
		handleSelfCareError(c, err)
		return
	}

	ctl.invalidateCaches(req.MoodMatch)
	response.Success(c, created)
}

// UpdateActivity cập nhật self-care activity (admin)
func (ctl *SelfCareController) UpdateActivity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "ID activity không hợp lệ")
		return
	}

	var req dto.ActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updates := &models.SelfCareActivity{
		Title:       req.Title,
		Description: req.Description,
		Emoji:       req.Emoji,
		MoodMatch:   pq.StringArray(req.MoodMatch),
		Action:      req.Action,
		Link:        req.Link,
		Order:       req.Order,
		IsActive:    req.IsActive,
	}

	updated, err := ctl.service.UpdateActivity(c.Request.Context(), uint(id), updates)
	if err != nil {
		handleSelfCareError(c, err)
		return
	}

	ctl.invalidateCaches(req.MoodMatch)
	response.Success(c, updated)
}

// DeleteActivity xóa self-care activity (admin)
func (ctl *SelfCareController) DeleteActivity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "ID activity không hợp lệ")
		return
	}

	if err := ctl.service.DeleteActivity(c.Request.Context(), uint(id)); err != nil {
		handleSelfCareError(c, err)
		return
	}

	ctl.invalidateCaches([]string{
		constants.MoodCategoryLow,
		constants.MoodCategoryMedium,
		constants.MoodCategoryHigh,
		constants.MoodCategoryGeneral,
	})
	response.Success(c, nil)
}

// SeedActivities tạo dữ liệu self-care mặc định nếu bảng còn trống (admin)
func (ctl *SelfCareController) SeedActivities(c *gin.Context) {
	if err := ctl.service.SeedDefaultActivities(c.Request.Context()); err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, nil)
}

func (ctl *SelfCareController) invalidateCaches(categories []string) {
	if ctl.rdb != nil {
		_ = services.DeleteFromRedis(config.Ctx, ctl.rdb, services.CacheKeySelfCareAll)
	}
	if ctl.recommendation != nil && len(categories) > 0 {
		ctl.recommendation.InvalidateRecommendationCache(config.Ctx, categories...)
	}
}

func handleSelfCareError(c *gin.Context, err error) {
	if svcErr, ok := err.(*services.ServiceError); ok {
		switch {
		case svcErr.Code == services.ErrCodeActivityNotFound:
			response.NotFound(c)
		case svcErr.Err == nil:
			response.BadRequest(c, svcErr.Message)
		default:
			response.ServerError(c)
		}
		return
	}
	response.ServerError(c)
}
