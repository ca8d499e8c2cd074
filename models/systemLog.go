package models

import "time"

type SystemLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"type:varchar(20);index" json:"type"` // info / warning / error / audit
	Message   string    `gorm:"not null" json:"message"`
	Actor     string    `json:"actor"` // admin thực hiện thao tác (nếu là audit)
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}
