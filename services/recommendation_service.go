package services

import (
	"context"
	"time"

	"github.com/hanepo/MoodMap-sub000/models"
	"github.com/hanepo/MoodMap-sub000/services/logger"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const recommendationCacheTTL = 10 * time.Minute

// Recommendation là một gợi ý hoạt động theo mood,
// gộp từ task gợi ý và self-care activity.
type Recommendation struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       string `json:"level"`
	EnergyLevel string `json:"energyLevel"`
	Category    string `json:"category"`
	IsSelfCare  bool   `json:"isSelfCare"`
}

type RecommendationService struct {
	db     *gorm.DB
	rdb    *redis.Client
	logger logger.Logger
}

type RecommendationServiceOptions struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Logger logger.Logger
}

func NewRecommendationService(opts RecommendationServiceOptions) *RecommendationService {
	return &RecommendationService{
		db:     opts.DB,
		rdb:    opts.Redis,
		logger: opts.Logger,
	}
}

// GetRecommendations trả về gợi ý theo mood category, cache 10 phút.
// Gợi ý gộp từ hai nguồn: task mẫu có energy level khớp và
// self-care activity có mood match chứa category.
func (s *RecommendationService) GetRecommendations(ctx context.Context, moodCategory string) ([]Recommendation, error) {
	if moodCategory == "" {
		return []Recommendation{}, nil
	}

	cacheKey := CacheKeyRecommendations + moodCategory

	var cached []Recommendation
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, cacheKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	var tasks []models.Task
	if err := s.db.WithContext(ctx).
		Where("energy_level = ? AND is_custom = ?", moodCategory, false).
		Find(&tasks).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeRecommendFailed, Message: "lỗi khi lấy task gợi ý", Err: err}
	}

	var activities []models.SelfCareActivity
	if err := s.db.WithContext(ctx).
		Where("is_active = ? AND ? = ANY(mood_match)", true, moodCategory).
		Order("display_order ASC").
		Find(&activities).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeRecommendFailed, Message: "lỗi khi lấy self-care gợi ý", Err: err}
	}

	recommendations := make([]Recommendation, 0, len(tasks)+len(activities))
	for _, t := range tasks {
		level := t.DifficultyLevel
		if level == "" {
			level = "Medium"
		}
		recommendations = append(recommendations, Recommendation{
			ID:          t.ID,
			Name:        t.Title,
			Description: t.Description,
			Level:       level,
			EnergyLevel: t.EnergyLevel,
			Category:    t.Category,
			IsSelfCare:  false,
		})
	}
	for _, a := range activities {
		recommendations = append(recommendations, Recommendation{
			ID:          a.ID,
			Name:        a.Title,
			Description: a.Description,
			Level:       "Easy", // self-care luôn là hoạt động nhẹ
			EnergyLevel: moodCategory,
			Category:    "Self-Care",
			IsSelfCare:  true,
		})
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, cacheKey, recommendations, recommendationCacheTTL); err != nil {
			s.logger.Error("Lỗi khi cache recommendations cho mood %s: %v", moodCategory, err)
		}
	}

	return recommendations, nil
}

// InvalidateRecommendationCache xóa cache gợi ý của mọi mood category,
// gọi sau khi admin sửa task mẫu hoặc self-care activity.
func (s *RecommendationService) InvalidateRecommendationCache(ctx context.Context, categories ...string) {
	if s.rdb == nil {
		return
	}
	for _, category := range categories {
		if err := DeleteFromRedis(ctx, s.rdb, CacheKeyRecommendations+category); err != nil {
			s.logger.Error("Lỗi khi xóa cache recommendations %s: %v", category, err)
		}
	}
}
