package builders

import (
	"strings"

	"github.com/hanepo/MoodMap-sub000/models"
)

// TaskBuilder giúp tạo task theo từng bước với default hợp lý
type TaskBuilder struct {
	task *models.Task
}

// NewTaskBuilder tạo instance mới của TaskBuilder
func NewTaskBuilder() *TaskBuilder {
	return &TaskBuilder{
		task: &models.Task{
			Category:        "Reflection",
			DifficultyLevel: "Easy",
		},
	}
}

// WithUser thêm thông tin user
func (b *TaskBuilder) WithUser(userID uint) *TaskBuilder {
	b.task.UserID = userID
	return b
}

// WithTitle thêm tiêu đề, fallback về Untitled Task nếu rỗng
func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	title = strings.TrimSpace(title)
	if title == "" {
		title = "Untitled Task"
	}
	b.task.Title = title
	return b
}

// WithDescription thêm mô tả
func (b *TaskBuilder) WithDescription(description string) *TaskBuilder {
	b.task.Description = strings.TrimSpace(description)
	return b
}

// WithCategory thêm category
func (b *TaskBuilder) WithCategory(category string) *TaskBuilder {
	if category != "" {
		b.task.Category = category
	}
	return b
}

// WithEnergyLevel thêm energy level (low / medium / high)
func (b *TaskBuilder) WithEnergyLevel(level string) *TaskBuilder {
	b.task.EnergyLevel = level
	return b
}

// WithDifficulty thêm độ khó
func (b *TaskBuilder) WithDifficulty(difficulty string) *TaskBuilder {
	if difficulty != "" {
		b.task.DifficultyLevel = difficulty
	}
	return b
}

// WithAssociatedMood gắn mood tại thời điểm tạo task
func (b *TaskBuilder) WithAssociatedMood(mood *int) *TaskBuilder {
	b.task.AssociatedMood = mood
	return b
}

// WithCustomFlag đánh dấu task do user tự tạo
func (b *TaskBuilder) WithCustomFlag(isCustom bool) *TaskBuilder {
	b.task.IsCustom = isCustom
	return b
}

// Build tạo task hoàn chỉnh
func (b *TaskBuilder) Build() *models.Task {
	return b.task
}
