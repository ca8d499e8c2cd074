package models

import "time"

type Task struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"index;not null" json:"userId"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `json:"description"`
	Completed       bool       `gorm:"default:false" json:"completed"`
	CreatedAt       time.Time  `gorm:"autoCreateTime;index" json:"createdAt"`
	CompletedAt     *time.Time `json:"completedAt"`
	Category        string     `gorm:"default:Reflection" json:"category"`
	EnergyLevel     string     `gorm:"type:varchar(10);index" json:"energyLevel"` // low / medium / high
	DifficultyLevel string     `gorm:"default:Easy" json:"difficultyLevel"`
	AssociatedMood  *int       `json:"associatedMood,omitempty"` // mood lúc tạo task (nếu có)
	IsCustom        bool       `gorm:"default:false" json:"isCustom"`
}
