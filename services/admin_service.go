package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hanepo/MoodMap-sub000/constants"
	"github.com/hanepo/MoodMap-sub000/models"
	"github.com/hanepo/MoodMap-sub000/services/logger"

	"gorm.io/gorm"
)

const (
	ErrCodeInvalidUserID    = "INVALID_USER_ID"
	ErrCodeUserNotFound     = "USER_NOT_FOUND"
	ErrCodeCheckInFailed    = "CHECKIN_FAILED"
	ErrCodeMoodLogFailed    = "MOOD_LOG_FAILED"
	ErrCodeTaskFailed       = "TASK_FAILED"
	ErrCodeTaskNotFound     = "TASK_NOT_FOUND"
	ErrCodeSelfCareFailed   = "SELFCARE_FAILED"
	ErrCodeActivityNotFound = "ACTIVITY_NOT_FOUND"
	ErrCodeRecommendFailed  = "RECOMMEND_FAILED"
	ErrCodeAnalyticsFailed  = "ANALYTICS_FAILED"
)

type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func validateUserID(userID uint) error {
	if userID == 0 {
		return &ServiceError{
			Code:    ErrCodeInvalidUserID,
			Message: "user ID không hợp lệ",
		}
	}
	return nil
}

// Analytics là số liệu nhanh cho màn admin home
type Analytics struct {
	TotalUsers   int64     `json:"totalUsers"`
	ActiveToday  int64     `json:"activeToday"`
	TasksLast7d  int64     `json:"tasksLast7d"`
	CalculatedAt time.Time `json:"calculatedAt"`
}

// DetailedAnalytics là số liệu chi tiết cho màn Analytics Reports
type DetailedAnalytics struct {
	Range                  string    `json:"range"`
	TotalUsers             int64     `json:"totalUsers"`
	ActiveUsers            int64     `json:"activeUsers"`
	TotalTasks             int64     `json:"totalTasks"`
	TasksCompleted         int64     `json:"tasksCompleted"`
	TotalMoods             int64     `json:"totalMoods"`
	PositiveMoods          int64     `json:"positiveMoods"`
	PositiveMoodPercentage int       `json:"positiveMoodPercentage"`
	EngagementRate         int       `json:"engagementRate"`
	CalculatedAt           time.Time `json:"calculatedAt"`
}

// UserFilter là điều kiện lọc danh sách user cho admin
type UserFilter struct {
	Query  string
	Status *int
	Page   int
	Limit  int
}

type AdminService struct {
	db     *gorm.DB
	logger logger.Logger
}

type AdminServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewAdminService(opts AdminServiceOptions) *AdminService {
	return &AdminService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// GetUsers trả về danh sách user phân trang, lọc theo tên/email và status
func (s *AdminService) GetUsers(ctx context.Context, filter UserFilter) ([]models.User, int64, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	tx := s.db.WithContext(ctx).Model(&models.User{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi đếm user", Err: err}
	}

	var users []models.User
	if err := tx.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&users).Error; err != nil {
		return nil, 0, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi lấy danh sách user", Err: err}
	}

	return users, total, nil
}

// UpdateUser cập nhật thông tin hiển thị của user
func (s *AdminService) UpdateUser(ctx context.Context, userID uint, name, avatar string, role *int) (*models.User, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if name != "" {
		user.Name = name
	}
	if avatar != "" {
		user.Avatar = avatar
	}
	if role != nil {
		user.Role = *role
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeUserNotFound, Message: "lỗi khi cập nhật user", Err: err}
	}
	return user, nil
}

// SetUserStatus đổi trạng thái active/inactive của user
func (s *AdminService) SetUserStatus(ctx context.Context, userID uint, status int) (*models.User, error) {
	if status != constants.UserStatusActive && status != constants.UserStatusInactive {
		return nil, &ServiceError{Code: ErrCodeUserNotFound, Message: "status không hợp lệ"}
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Status = status
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeUserNotFound, Message: "lỗi khi đổi trạng thái user", Err: err}
	}
	return user, nil
}

// DeleteUser xóa user cùng toàn bộ dữ liệu con
func (s *AdminService) DeleteUser(ctx context.Context, userID uint) error {
	if _, err := s.findUser(ctx, userID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.CheckInRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.MoodEntry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}

// GetAnalytics trả về số liệu nhanh: tổng user, user active 24h, task 7 ngày
func (s *AdminService) GetAnalytics(ctx context.Context) (*Analytics, error) {
	now := time.Now()
	oneDayAgo := now.Add(-24 * time.Hour)
	sevenDaysAgo := now.AddDate(0, 0, -7)

	result := &Analytics{CalculatedAt: now}

	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&result.TotalUsers).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi đếm user", Err: err}
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("last_login >= ?", oneDayAgo).
		Count(&result.ActiveToday).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi đếm user active", Err: err}
	}
	if err := s.db.WithContext(ctx).Model(&models.Task{}).
		Where("created_at >= ?", sevenDaysAgo).
		Count(&result.TasksLast7d).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi đếm task 7 ngày", Err: err}
	}

	return result, nil
}

// GetDetailedAnalytics tổng hợp số liệu theo range 7d / 30d / 90d
func (s *AdminService) GetDetailedAnalytics(ctx context.Context, rng string) (*DetailedAnalytics, error) {
	days := 7
	switch rng {
	case "30d":
		days = 30
	case "90d":
		days = 90
	default:
		rng = "7d"
	}

	now := time.Now()
	startDate := now.AddDate(0, 0, -days)

	result := &DetailedAnalytics{Range: rng, CalculatedAt: now}

	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&result.TotalUsers).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi đếm user", Err: err}
	}

	if err := s.db.WithContext(ctx).Model(&models.Task{}).
		Where("created_at >= ?", startDate).
		Count(&result.TotalTasks).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi đếm task", Err: err}
	}
	if err := s.db.WithContext(ctx).Model(&models.Task{}).
		Where("created_at >= ? AND completed = ?", startDate, true).
		Count(&result.TasksCompleted).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi đếm task hoàn thành", Err: err}
	}

	if err := s.db.WithContext(ctx).Model(&models.MoodEntry{}).
		Where("timestamp >= ?", startDate).
		Count(&result.TotalMoods).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi đếm mood", Err: err}
	}
	if err := s.db.WithContext(ctx).Model(&models.MoodEntry{}).
		Where("timestamp >= ? AND mood >= ?", startDate, 6).
		Count(&result.PositiveMoods).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi đếm mood tích cực", Err: err}
	}

	// User có ít nhất một mood entry hoặc task trong range được coi là active
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("id IN (?) OR id IN (?)",
			s.db.Model(&models.MoodEntry{}).Select("user_id").Where("timestamp >= ?", startDate),
			s.db.Model(&models.Task{}).Select("user_id").Where("created_at >= ?", startDate),
		).
		Count(&result.ActiveUsers).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi đếm user active", Err: err}
	}

	if result.TotalMoods > 0 {
		result.PositiveMoodPercentage = int(float64(result.PositiveMoods)/float64(result.TotalMoods)*100 + 0.5)
	}
	if result.TotalUsers > 0 {
		result.EngagementRate = int(float64(result.ActiveUsers)/float64(result.TotalUsers)*100 + 0.5)
	}

	return result, nil
}

// GetTaskCategories trả về toàn bộ task category
func (s *AdminService) GetTaskCategories(ctx context.Context) ([]models.TaskCategory, error) {
	categories := []models.TaskCategory{}
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi lấy task categories", Err: err}
	}
	return categories, nil
}

// CreateTaskCategory tạo category mới
func (s *AdminService) CreateTaskCategory(ctx context.Context, category *models.TaskCategory) (*models.TaskCategory, error) {
	if strings.TrimSpace(category.Name) == "" {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "tên category không được để trống"}
	}
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "category đã tồn tại"}
		}
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi tạo category", Err: err}
	}
	return category, nil
}

// UpdateTaskCategory cập nhật category
func (s *AdminService) UpdateTaskCategory(ctx context.Context, id uint, updates *models.TaskCategory) (*models.TaskCategory, error) {
	var category models.TaskCategory
	err := s.db.WithContext(ctx).First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "không tìm thấy category"}
	}
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi tìm category", Err: err}
	}

	if updates.Name != "" {
		category.Name = updates.Name
	}
	category.Description = updates.Description
	if updates.Emoji != "" {
		category.Emoji = updates.Emoji
	}
	category.IsActive = updates.IsActive

	if err := s.db.WithContext(ctx).Save(&category).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi cập nhật category", Err: err}
	}
	return &category, nil
}

// DeleteTaskCategory xóa category
func (s *AdminService) DeleteTaskCategory(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.TaskCategory{}, id)
	if res.Error != nil {
		return &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi xóa category", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "không tìm thấy category"}
	}
	return nil
}

// CreateLog ghi một system log
func (s *AdminService) CreateLog(ctx context.Context, logEntry *models.SystemLog) error {
	if logEntry.Type == "" {
		logEntry.Type = constants.LogTypeInfo
	}
	if err := s.db.WithContext(ctx).Create(logEntry).Error; err != nil {
		return &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi ghi system log", Err: err}
	}
	return nil
}

// GetLogs trả về system log lọc theo type, khoảng thời gian và từ khóa
func (s *AdminService) GetLogs(ctx context.Context, logType, query string, from, to *time.Time) ([]models.SystemLog, error) {
	tx := s.db.WithContext(ctx).Model(&models.SystemLog{})

	if logType != "" {
		tx = tx.Where("type = ?", logType)
	}
	if from != nil {
		tx = tx.Where("created_at >= ?", *from)
	}
	if to != nil {
		tx = tx.Where("created_at <= ?", *to)
	}
	if q := strings.TrimSpace(query); q != "" {
		tx = tx.Where("LOWER(message) LIKE ?", "%"+strings.ToLower(q)+"%")
	}

	logs := []models.SystemLog{}
	if err := tx.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeAnalyticsFailed, Message: "lỗi khi lấy system logs", Err: err}
	}
	return logs, nil
}

func (s *AdminService) findUser(ctx context.Context, userID uint) (*models.User, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ServiceError{Code: ErrCodeUserNotFound, Message: "không tìm thấy user"}
	}
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeUserNotFound, Message: "lỗi khi tìm user", Err: err}
	}
	return &user, nil
}
