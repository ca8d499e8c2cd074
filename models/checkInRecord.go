package models

import "time"

// CheckInRecord là một lượt điểm danh trong ngày của user.
// Mỗi user chỉ có một record cho mỗi ngày: unique index (user_id, date)
// chặn ghi trùng ngay ở tầng database thay vì chỉ check ở application.
type CheckInRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_checkin_user_date" json:"userId"`
	Date        string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_checkin_user_date" json:"date"` // YYYY-MM-DD theo giờ local
	Timestamp   time.Time `gorm:"autoCreateTime" json:"timestamp"`
	StreakCount int       `gorm:"default:1" json:"streakCount"` // streak tại thời điểm ghi, không tính lại về sau
}
