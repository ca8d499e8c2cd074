package services

import (
	"context"
	"errors"
	"time"

	"github.com/hanepo/MoodMap-sub000/builders"
	"github.com/hanepo/MoodMap-sub000/commands"
	"github.com/hanepo/MoodMap-sub000/models"
	"github.com/hanepo/MoodMap-sub000/services/logger"
	"github.com/hanepo/MoodMap-sub000/validator"

	"gorm.io/gorm"
)

// TaskStats là thống kê task cho Home card
type TaskStats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	CompletionRate int `json:"completionRate"` // phần trăm
}

// TaskInput là dữ liệu tạo/sửa task từ client
type TaskInput struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description"`
	Category        string `json:"category"`
	EnergyLevel     string `json:"energyLevel"`
	DifficultyLevel string `json:"difficultyLevel"`
	AssociatedMood  *int   `json:"associatedMood"`
	IsCustom        bool   `json:"isCustom"`
}

type TaskService struct {
	db     *gorm.DB
	logger logger.Logger
}

type TaskServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewTaskService(opts TaskServiceOptions) *TaskService {
	return &TaskService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// CreateTask tạo task mới và tăng counter TotalTasks của user
func (s *TaskService) CreateTask(ctx context.Context, userID uint, input TaskInput) (*models.Task, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	task := builders.NewTaskBuilder().
		WithUser(userID).
		WithTitle(input.Title).
		WithDescription(input.Description).
		WithCategory(input.Category).
		WithEnergyLevel(input.EnergyLevel).
		WithDifficulty(input.DifficultyLevel).
		WithAssociatedMood(input.AssociatedMood).
		WithCustomFlag(input.IsCustom).
		Build()

	if err := validator.ValidateTask(task); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := commands.NewCreateTaskCommand(task, tx).Execute(); err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("total_tasks", gorm.Expr("total_tasks + 1")).Error
	})
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeTaskFailed, Message: "lỗi khi tạo task", Err: err}
	}

	s.logger.Info("User %d tạo task %q", userID, task.Title)
	return task, nil
}

// CompleteTask đánh dấu task hoàn thành và tăng counter CompletedTasks
func (s *TaskService) CompleteTask(ctx context.Context, userID, taskID uint) (*models.Task, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	var task models.Task
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ServiceError{Code: ErrCodeTaskNotFound, Message: "không tìm thấy task"}
	}
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeTaskFailed, Message: "lỗi khi tìm task", Err: err}
	}

	if task.Completed {
		return &task, nil
	}

	now := time.Now()
	task.Completed = true
	task.CompletedAt = &now

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := commands.NewUpdateTaskCommand(&task, tx).Execute(); err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("completed_tasks", gorm.Expr("completed_tasks + 1")).Error
	})
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeTaskFailed, Message: "lỗi khi hoàn thành task", Err: err}
	}

	return &task, nil
}

// UpdateTask cập nhật nội dung task
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint, input TaskInput) (*models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ServiceError{Code: ErrCodeTaskNotFound, Message: "không tìm thấy task"}
	}
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeTaskFailed, Message: "lỗi khi tìm task", Err: err}
	}

	task.Title = input.Title
	task.Description = input.Description
	if input.Category != "" {
		task.Category = input.Category
	}
	task.EnergyLevel = input.EnergyLevel
	if input.DifficultyLevel != "" {
		task.DifficultyLevel = input.DifficultyLevel
	}
	task.AssociatedMood = input.AssociatedMood

	if err := validator.ValidateTask(&task); err != nil {
		return nil, err
	}

	if err := commands.NewUpdateTaskCommand(&task, s.db.WithContext(ctx)).Execute(); err != nil {
		return nil, &ServiceError{Code: ErrCodeTaskFailed, Message: "lỗi khi cập nhật task", Err: err}
	}
	return &task, nil
}

// DeleteTask xóa task của user
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint) error {
	var task models.Task
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &ServiceError{Code: ErrCodeTaskNotFound, Message: "không tìm thấy task"}
	}
	if err != nil {
		return &ServiceError{Code: ErrCodeTaskFailed, Message: "lỗi khi tìm task", Err: err}
	}

	if err := commands.NewDeleteTaskCommand(task.ID, s.db.WithContext(ctx)).Execute(); err != nil {
		return &ServiceError{Code: ErrCodeTaskFailed, Message: "lỗi khi xóa task", Err: err}
	}
	return nil
}

// GetTasks trả về toàn bộ task của user, mới nhất trước
func (s *TaskService) GetTasks(ctx context.Context, userID uint) []models.Task {
	tasks := []models.Task{}
	if userID == 0 {
		return tasks
	}

	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		s.logger.Error("Lỗi khi lấy task của user %d: %v", userID, err)
		return []models.Task{}
	}
	return tasks
}

// GetPendingTasks trả về task chưa hoàn thành
func (s *TaskService) GetPendingTasks(ctx context.Context, userID uint) []models.Task {
	return s.filterTasks(ctx, userID, false)
}

// GetCompletedTasks trả về task đã hoàn thành
func (s *TaskService) GetCompletedTasks(ctx context.Context, userID uint) []models.Task {
	return s.filterTasks(ctx, userID, true)
}

func (s *TaskService) filterTasks(ctx context.Context, userID uint, completed bool) []models.Task {
	tasks := []models.Task{}
	if userID == 0 {
		return tasks
	}

	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND completed = ?", userID, completed).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		s.logger.Error("Lỗi khi lọc task của user %d: %v", userID, err)
		return []models.Task{}
	}
	return tasks
}

// GetTaskStats tính thống kê task của user
func (s *TaskService) GetTaskStats(ctx context.Context, userID uint) TaskStats {
	tasks := s.GetTasks(ctx, userID)

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	stats := TaskStats{
		Total:     len(tasks),
		Completed: completed,
		Pending:   len(tasks) - completed,
	}
	if stats.Total > 0 {
		stats.CompletionRate = int(float64(completed)/float64(stats.Total)*100 + 0.5)
	}
	return stats
}

// GetTaskSummary trả về vài task gần nhất cho Home card
func (s *TaskService) GetTaskSummary(ctx context.Context, userID uint, limit int) []models.Task {
	tasks := []models.Task{}
	if userID == 0 {
		return tasks
	}
	if limit <= 0 {
		limit = 2
	}

	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&tasks).Error; err != nil {
		s.logger.Error("Lỗi khi lấy task summary của user %d: %v", userID, err)
		return []models.Task{}
	}
	return tasks
}
