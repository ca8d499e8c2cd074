package models

import "time"

type MoodEntry struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"userId"`
	Mood         int       `gorm:"not null" json:"mood"` // thang 1-10
	MoodLabel    string    `json:"moodLabel"`
	MoodCategory string    `gorm:"type:varchar(10);index" json:"moodCategory"` // low / medium / high
	RawInput     string    `json:"rawInput,omitempty"`                         // text gốc người dùng nhập (nếu phân tích sentiment)
	Description  string    `json:"description"`
	Date         string    `gorm:"type:varchar(10);index" json:"date"` // YYYY-MM-DD
	Timestamp    time.Time `gorm:"autoCreateTime;index" json:"timestamp"`
}
