package commands

import (
	"github.com/hanepo/MoodMap-sub000/models"

	"gorm.io/gorm"
)

// TaskCommand định nghĩa interface cho các command
type TaskCommand interface {
	Execute() error
}

// CreateTaskCommand command để tạo task mới
type CreateTaskCommand struct {
	task *models.Task
	db   *gorm.DB
}

func NewCreateTaskCommand(task *models.Task, db *gorm.DB) *CreateTaskCommand {
	return &CreateTaskCommand{
		task: task,
		db:   db,
	}
}

func (c *CreateTaskCommand) Execute() error {
	return c.db.Create(c.task).Error
}

// UpdateTaskCommand command để cập nhật task
type UpdateTaskCommand struct {
	task *models.Task
	db   *gorm.DB
}

func NewUpdateTaskCommand(task *models.Task, db *gorm.DB) *UpdateTaskCommand {
	return &UpdateTaskCommand{
		task: task,
		db:   db,
	}
}

func (c *UpdateTaskCommand) Execute() error {
	return c.db.Save(c.task).Error
}

// DeleteTaskCommand command để xóa task
type DeleteTaskCommand struct {
	taskID uint
	db     *gorm.DB
}

func NewDeleteTaskCommand(taskID uint, db *gorm.DB) *DeleteTaskCommand {
	return &DeleteTaskCommand{
		taskID: taskID,
		db:     db,
	}
}

func (c *DeleteTaskCommand) Execute() error {
	return c.db.Delete(&models.Task{}, c.taskID).Error
}
