package models

import (
	"time"
)

type User struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Name             string          `gorm:"default:New User" json:"name"`
	Email            string          `gorm:"unique" json:"email"`
	Avatar           string          `json:"avatar"`
	Role             int             `gorm:"default:0" json:"role"`
	Status           int             `gorm:"default:1" json:"status"`
	LastLogin        time.Time       `json:"lastLogin"`
	Onboarded        bool            `gorm:"default:false" json:"onboarded"`
	TotalMoodEntries int             `gorm:"default:0" json:"totalMoodEntries"`
	TotalTasks       int             `gorm:"default:0" json:"totalTasks"`
	CompletedTasks   int             `gorm:"default:0" json:"completedTasks"`
	CheckIns         []CheckInRecord `json:"checkins" gorm:"foreignKey:UserID"`
	MoodEntries      []MoodEntry     `json:"moodEntries,omitempty" gorm:"foreignKey:UserID"`
	Tasks            []Task          `json:"tasks,omitempty" gorm:"foreignKey:UserID"`
}
