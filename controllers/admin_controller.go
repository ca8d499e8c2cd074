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
	"github.com/redis/go-redis/v9"
)

type AdminController struct {
	service *services.AdminService
	rdb     *redis.Client
}

func NewAdminController(service *services.AdminService, rdb *redis.Client) *AdminController {
	return &AdminController{service: service, rdb: rdb}
}

// GetUsers trả về danh sách user phân trang cho màn quản lý
func (ctl *AdminController) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := services.UserFilter{
		Query: c.Query("q"),
		Page:  page,
		Limit: limit,
	}
	if statusStr := c.Query("status"); statusStr != "" {
		if status, err := strconv.Atoi(statusStr); err == nil {
			filter.Status = &status
		}
	}

	users, total, err := ctl.service.GetUsers(c.Request.Context(), filter)
	if err != nil {
		response.ServerError(c)
		return
	}

	userResponses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, toUserResponse(user))
	}

	response.SuccessWithPagination(c, userResponses, filter.Page, filter.Limit, int(total))
}

// UpdateUser cập nhật thông tin user
func (ctl *AdminController) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := ctl.service.UpdateUser(c.Request.Context(), req.UserID, req.Name, req.Avatar, req.Role)
	if err != nil {
		handleAdminError(c, err)
		return
	}

	response.Success(c, toUserResponse(*user))
}

// ChangeUserStatus khóa hoặc mở khóa tài khoản user
func (ctl *AdminController) ChangeUserStatus(c *gin.Context) {
	var req dto.ChangeUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Status != constants.UserStatusActive && req.Status != constants.UserStatusInactive {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	user, err := ctl.service.SetUserStatus(c.Request.Context(), req.UserID, req.Status)
	if err != nil {
		handleAdminError(c, err)
		return
	}

	response.Success(c, toUserResponse(*user))
}

// DeleteUser xóa user cùng toàn bộ dữ liệu liên quan
func (ctl *AdminController) DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil || userID <= 0 {
		response.BadRequest(c, "ID user không hợp lệ")
		return
	}

	if err := ctl.service.DeleteUser(c.Request.Context(), uint(userID)); err != nil {
		handleAdminError(c, err)
		return
	}

	response.Success(c, nil)
}

// GetAnalytics trả về số liệu nhanh cho admin home
func (ctl *AdminController) GetAnalytics(c *gin.Context) {
	analytics, err := ctl.service.GetAnalytics(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, analytics)
}

// GetDetailedAnalytics trả về số liệu chi tiết theo range 7d / 30d / 90d.
// Đọc snapshot cron ghi sẵn trong Redis trước, tính trực tiếp nếu chưa có.
func (ctl *AdminController) GetDetailedAnalytics(c *gin.Context) {
	rng := c.DefaultQuery("range", "7d")
	switch rng {
	case "7d", "30d", "90d":
	default:
		response.BadRequest(c, "Range không hợp lệ")
		return
	}

	if ctl.rdb != nil {
		var cached services.DetailedAnalytics
		if err := services.GetFromRedis(config.Ctx, ctl.rdb, services.CacheKeyAdminAnalytics+rng, &cached); err == nil && !cached.CalculatedAt.IsZero() {
			response.Success(c, cached)
			return
		}
	}

	analytics, err := ctl.service.GetDetailedAnalytics(c.Request.Context(), rng)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, analytics)
}

// GetTaskCategories trả về toàn bộ task category
func (ctl *AdminController) GetTaskCategories(c *gin.Context) {
	categories, err := ctl.service.GetTaskCategories(c.Request.Context())
	if err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, categories)
}

// CreateTaskCategory tạo task category mới
func (ctl *AdminController) CreateTaskCategory(c *gin.Context) {
	var req dto.TaskCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	category := &models.TaskCategory{
		Name:        req.Name,
		Description: req.Description,
		Emoji:       req.Emoji,
		IsActive:    req.IsActive,
	}

	created, err := ctl.service.CreateTaskCategory(c.Request.Context(), category)
	if err != nil {
		handleAdminError(c, err)
		return
	}

	response.Success(c, created)
}

// UpdateTaskCategory cập nhật task category
func (ctl *AdminController) UpdateTaskCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "ID category không hợp lệ")
		return
	}

	var req dto.TaskCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	updates := &models.TaskCategory{
		Name:        req.Name,
		Description: req.Description,
		Emoji:       req.Emoji,
		IsActive:    req.IsActive,
	}

	updated, err := ctl.service.UpdateTaskCategory(c.Request.Context(), uint(id), updates)
	if err != nil {
		handleAdminError(c, err)
		return
	}

	response.Success(c, updated)
}

// DeleteTaskCategory xóa task category
func (ctl *AdminController) DeleteTaskCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		response.BadRequest(c, "ID category không hợp lệ")
		return
	}

	if err := ctl.service.DeleteTaskCategory(c.Request.Context(), uint(id)); err != nil {
		handleAdminError(c, err)
		return
	}

	response.Success(c, nil)
}

// CreateLog ghi một system log, actor lấy từ token
func (ctl *AdminController) CreateLog(c *gin.Context) {
	var req dto.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	logEntry := &models.SystemLog{
		Type:    req.Type,
		Message: req.Message,
		Actor:   strconv.FormatUint(uint64(currentUserID(c)), 10),
	}

	if err := ctl.service.CreateLog(c.Request.Context(), logEntry); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, logEntry)
}

// GetLogs trả về system log lọc theo type, từ khóa và khoảng thời gian
func (ctl *AdminController) GetLogs(c *gin.Context) {
	var from, to *time.Time
	if fromStr := c.Query("fromDate"); fromStr != "" {
		if t, err := time.Parse("2006-01-02", fromStr); err == nil {
			from = &t
		}
	}
	if toStr := c.Query("toDate"); toStr != "" {
		if t, err := time.Parse("2006-01-02", toStr); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			to = &end
		}
	}

	logs, err := ctl.service.GetLogs(c.Request.Context(), c.Query("type"), c.Query("q"), from, to)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, logs)
}

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		Avatar:           user.Avatar,
		Role:             user.Role,
		Status:           user.Status,
		LastLogin:        user.LastLogin,
		TotalMoodEntries: user.TotalMoodEntries,
		TotalTasks:       user.TotalTasks,
		CompletedTasks:   user.CompletedTasks,
		CreatedAt:        user.CreatedAt,
	}
}

func handleAdminError(c *gin.Context, err error) {
	if svcErr, ok := err.(*services.ServiceError); ok {
		switch {
		case svcErr.Code == services.ErrCodeUserNotFound:
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
