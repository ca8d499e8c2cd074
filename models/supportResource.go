package models

import "time"

// SupportResource là đường dây nóng / link hỗ trợ hiển thị ở màn Self-Care
type SupportResource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Phone       string    `json:"phone,omitempty"`
	Link        string    `json:"link,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
