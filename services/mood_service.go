package services

import (
	"context"
	"errors"
	"time"

	"github.com/hanepo/MoodMap-sub000/models"
	"github.com/hanepo/MoodMap-sub000/services/logger"
	"github.com/hanepo/MoodMap-sub000/validator"

	"gorm.io/gorm"
)

const (
	moodStatsWindow  = 30 // số entry gần nhất dùng để tính thống kê
	moodTrendSamples = 5
)

// MoodStats là thống kê tâm trạng cho Home card
type MoodStats struct {
	Average float64 `json:"average"`
	Total   int     `json:"total"`
	Trend   string  `json:"trend"` // improving / declining / neutral
}

// MoodSummaryItem là một dòng tóm tắt cho màn Mood History
type MoodSummaryItem struct {
	ID        uint   `json:"id"`
	Mood      int    `json:"mood"`
	MoodLabel string `json:"moodLabel"`
	Date      string `json:"date"`
}

type MoodService struct {
	db     *gorm.DB
	logger logger.Logger
	loc    *time.Location
}

type MoodServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Location *time.Location
}

func NewMoodService(opts MoodServiceOptions) *MoodService {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	return &MoodService{
		db:     opts.DB,
		logger: opts.Logger,
		loc:    loc,
	}
}

// LogMood ghi một mood entry mới và cập nhật counter trên user
func (s *MoodService) LogMood(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, error) {
	if err := validateUserID(entry.UserID); err != nil {
		return nil, err
	}
	if entry.Date == "" {
		entry.Date = time.Now().In(s.loc).Format(dateLayout)
	}
	if err := validator.ValidateMoodEntry(entry); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", entry.UserID).
			Updates(map[string]interface{}{
				"total_mood_entries": gorm.Expr("total_mood_entries + 1"),
				"last_login":         time.Now(),
			}).Error
	})
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeMoodLogFailed, Message: "lỗi khi ghi mood entry", Err: err}
	}

	s.logger.Info("User %d log mood %d/10 (%s)", entry.UserID, entry.Mood, entry.MoodCategory)
	return entry, nil
}

// GetRecentMoods trả về các mood entry gần nhất, mặc định 10
func (s *MoodService) GetRecentMoods(ctx context.Context, userID uint, limit int) []models.MoodEntry {
	moods := []models.MoodEntry{}
	if userID == 0 {
		return moods
	}
	if limit <= 0 {
		limit = 10
	}

	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&moods).Error; err != nil {
		s.logger.Error("Lỗi khi lấy mood gần nhất của user %d: %v", userID, err)
		return []models.MoodEntry{}
	}
	return moods
}

// GetTodayMood trả về mood entry của hôm nay, nil nếu chưa log
func (s *MoodService) GetTodayMood(ctx context.Context, userID uint) (*models.MoodEntry, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	today := time.Now().In(s.loc).Format(dateLayout)

	var entry models.MoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, today).
		Order("timestamp DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeMoodLogFailed, Message: "lỗi khi lấy mood hôm nay", Err: err}
	}
	return &entry, nil
}

// GetMoodSummary trả về tóm tắt mood cho Home card (mặc định 2 entry)
func (s *MoodService) GetMoodSummary(ctx context.Context, userID uint, limit int) []MoodSummaryItem {
	if limit <= 0 {
		limit = 2
	}

	summary := []MoodSummaryItem{}
	for _, m := range s.GetRecentMoods(ctx, userID, limit) {
		summary = append(summary, MoodSummaryItem{
			ID:        m.ID,
			Mood:      m.Mood,
			MoodLabel: summaryLabel(m.Mood),
			Date:      m.Date,
		})
	}
	return summary
}

// GetMoodStats tính trung bình và xu hướng trên các entry gần nhất
func (s *MoodService) GetMoodStats(ctx context.Context, userID uint) MoodStats {
	moods := s.GetRecentMoods(ctx, userID, moodStatsWindow)
	if len(moods) == 0 {
		return MoodStats{Trend: "neutral"}
	}

	sum := 0
	for _, m := range moods {
		sum += m.Mood
	}
	average := float64(sum) / float64(len(moods))

	return MoodStats{
		Average: roundTo1(average),
		Total:   len(moods),
		Trend:   moodTrend(moods),
	}
}

// moodTrend so sánh trung bình 5 entry mới nhất với 5 entry trước đó.
// Mỗi nhóm cần tối thiểu 3 entry, không đủ thì coi là neutral.
func moodTrend(moods []models.MoodEntry) string {
	recent := moods[:min(moodTrendSamples, len(moods))]
	var previous []models.MoodEntry
	if len(moods) > moodTrendSamples {
		previous = moods[moodTrendSamples:min(2*moodTrendSamples, len(moods))]
	}

	if len(recent) < 3 || len(previous) < 3 {
		return "neutral"
	}

	recentAvg := moodAverage(recent)
	previousAvg := moodAverage(previous)

	switch {
	case recentAvg > previousAvg+0.5:
		return "improving"
	case recentAvg < previousAvg-0.5:
		return "declining"
	default:
		return "neutral"
	}
}

func moodAverage(moods []models.MoodEntry) float64 {
	if len(moods) == 0 {
		return 0
	}
	sum := 0
	for _, m := range moods {
		sum += m.Mood
	}
	return float64(sum) / float64(len(moods))
}

// summaryLabel gom mood 1-10 về nhãn hiển thị nhanh
func summaryLabel(mood int) string {
	switch {
	case mood >= 7:
		return "Happy"
	case mood <= 3:
		return "Sad"
	default:
		return "Neutral"
	}
}

func roundTo1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
