package dto

// LogMoodRequest là payload ghi mood entry
type LogMoodRequest struct {
	Mood         int    `json:"mood" binding:"required,min=1,max=10"`
	MoodLabel    string `json:"moodLabel"`
	MoodCategory string `json:"moodCategory" binding:"required"`
	RawInput     string `json:"rawInput"`
	Description  string `json:"description"`
}

// AnalyzeSentimentRequest là payload phân tích sentiment từ text
type AnalyzeSentimentRequest struct {
	Text string `json:"text" binding:"required"`
}
