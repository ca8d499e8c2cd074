package controllers

import (
	"fmt"
	"time"

	"github.com/hanepo/MoodMap-sub000/config"
	"github.com/hanepo/MoodMap-sub000/response"
	"github.com/hanepo/MoodMap-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const weekCheckInsCacheTTL = 5 * time.Minute

type CheckInController struct {
	service *services.CheckInService
	rdb     *redis.Client
}

func NewCheckInController(service *services.CheckInService, rdb *redis.Client) *CheckInController {
	return &CheckInController{service: service, rdb: rdb}
}

// CheckIn ghi điểm danh cho ngày hôm nay.
// Gọi lại trong cùng ngày trả về alreadyCheckedIn, không lỗi.
func (ctl *CheckInController) CheckIn(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	result, err := ctl.service.RecordCheckIn(c.Request.Context(), userID, time.Now())
	if err != nil {
		response.ServerError(c)
		return
	}

	// Xóa cache tuần để lần đọc sau thấy ngay điểm danh mới
	if ctl.rdb != nil {
		cacheKey := fmt.Sprintf("%s%d", services.CacheKeyWeekCheckIns, userID)
		_ = services.DeleteFromRedis(config.Ctx, ctl.rdb, cacheKey)
	}

	response.Success(c, result)
}

// GetWeekCheckIns trả về lịch điểm danh tuần hiện tại và streak
func (ctl *CheckInController) GetWeekCheckIns(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	cacheKey := fmt.Sprintf("%s%d", services.CacheKeyWeekCheckIns, userID)

	if ctl.rdb != nil {
		var cached services.WeekCheckIns
		if err := services.GetFromRedis(config.Ctx, ctl.rdb, cacheKey, &cached); err == nil && len(cached.CheckInDates) > 0 {
			response.Success(c, cached)
			return
		}
	}

	result := ctl.service.GetWeekCheckIns(c.Request.Context(), userID, time.Now())

	if ctl.rdb != nil && len(result.CheckInDates) > 0 {
		_ = services.SetToRedis(config.Ctx, ctl.rdb, cacheKey, result, weekCheckInsCacheTTL)
	}

	response.Success(c, result)
}

// GetCheckInCalendar trả về toàn bộ lịch sử điểm danh cho màn calendar
func (ctl *CheckInController) GetCheckInCalendar(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	records := ctl.service.GetAllCheckIns(c.Request.Context(), userID)
	response.Success(c, records)
}

// currentUserID lấy userID đã được AuthMiddleware lưu vào context
func currentUserID(c *gin.Context) uint {
	v, exists := c.Get("userID")
	if !exists {
		return 0
	}
	userID, ok := v.(uint)
	if !ok {
		return 0
	}
	return userID
}
