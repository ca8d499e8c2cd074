package dto

import "time"

// UserResponse là thông tin user cho màn quản lý của admin
type UserResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Avatar           string    `json:"avatar"`
	Role             int       `json:"role"`
	Status           int       `json:"status"`
	LastLogin        time.Time `json:"lastLogin"`
	TotalMoodEntries int       `json:"totalMoodEntries"`
	TotalTasks       int       `json:"totalTasks"`
	CompletedTasks   int       `json:"completedTasks"`
	CreatedAt        time.Time `json:"createdAt"`
}

// UpdateUserRequest là payload admin cập nhật user
type UpdateUserRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Role   *int   `json:"role"`
}

// ChangeUserStatusRequest là payload đổi trạng thái user
type ChangeUserStatusRequest struct {
	UserID uint `json:"userId" binding:"required"`
	Status int  `json:"status"`
}

// TaskCategoryRequest là payload tạo/sửa task category
type TaskCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	IsActive    bool   `json:"isActive"`
}

// CreateLogRequest là payload ghi system log
type CreateLogRequest struct {
	Type    string `json:"type"`
	Message string `json:"message" binding:"required"`
}
