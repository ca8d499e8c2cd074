package models

import (
	"time"

	"github.com/lib/pq"
)

type SelfCareActivity struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Description string         `json:"description"`
	Emoji       string         `gorm:"default:✨" json:"emoji"`
	MoodMatch   pq.StringArray `gorm:"type:text[]" json:"moodMatch"` // low / medium / high / general
	Action      string         `gorm:"default:guide" json:"action"`  // guide hoặc link
	Link        string         `json:"link,omitempty"`
	Order       int            `gorm:"column:display_order;default:0" json:"order"`
	IsActive    bool           `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
