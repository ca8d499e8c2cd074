package dto

// ActivityRequest là payload tạo/sửa self-care activity (admin)
type ActivityRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Emoji       string   `json:"emoji"`
	MoodMatch   []string `json:"moodMatch"`
	Action      string   `json:"action"`
	Link        string   `json:"link"`
	Order       int      `json:"order"`
	IsActive    bool     `json:"isActive"`
}
