package services

import (
	"context"
	"errors"

	"github.com/hanepo/MoodMap-sub000/constants"
	"github.com/hanepo/MoodMap-sub000/models"
	"github.com/hanepo/MoodMap-sub000/services/logger"
	"github.com/hanepo/MoodMap-sub000/validator"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

type SelfCareService struct {
	db     *gorm.DB
	logger logger.Logger
}

type SelfCareServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewSelfCareService(opts SelfCareServiceOptions) *SelfCareService {
	return &SelfCareService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// GetAllActivities trả về toàn bộ activity theo thứ tự hiển thị
func (s *SelfCareService) GetAllActivities(ctx context.Context) []models.SelfCareActivity {
	activities := []models.SelfCareActivity{}
	if err := s.db.WithContext(ctx).
		Order("display_order ASC").
		Find(&activities).Error; err != nil {
		s.logger.Error("Lỗi khi lấy danh sách self-care activity: %v", err)
		return []models.SelfCareActivity{}
	}
	return activities
}

// GetActivitiesByMood trả về activity đang active khớp với mood category
func (s *SelfCareService) GetActivitiesByMood(ctx context.Context, moodCategory string) []models.SelfCareActivity {
	activities := []models.SelfCareActivity{}
	if err := s.db.WithContext(ctx).
		Where("is_active = ? AND ? = ANY(mood_match)", true, moodCategory).
		Order("display_order ASC").
		Find(&activities).Error; err != nil {
		s.logger.Error("Lỗi khi lấy activity theo mood %s: %v", moodCategory, err)
		return []models.SelfCareActivity{}
	}
	return activities
}

// CreateActivity tạo activity mới (thao tác admin)
func (s *SelfCareService) CreateActivity(ctx context.Context, activity *models.SelfCareActivity) (*models.SelfCareActivity, error) {
	if activity.Emoji == "" {
		activity.Emoji = "✨"
	}
	if activity.Action == "" {
		activity.Action = "guide"
	}
	if len(activity.MoodMatch) == 0 {
		activity.MoodMatch = pq.StringArray{constants.MoodCategoryGeneral}
	}

	if err := validator.ValidateActivity(activity); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(activity).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeSelfCareFailed, Message: "lỗi khi tạo activity", Err: err}
	}
	return activity, nil
}

// UpdateActivity cập nhật activity (thao tác admin)
func (s *SelfCareService) UpdateActivity(ctx context.Context, id uint, updates *models.SelfCareActivity) (*models.SelfCareActivity, error) {
	var activity models.SelfCareActivity
	err := s.db.WithContext(ctx).First(&activity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ServiceError{Code: ErrCodeActivityNotFound, Message: "không tìm thấy activity"}
	}
	if err != nil {
		return nil, &ServiceError{Code: ErrCodeSelfCareFailed, Message: "lỗi khi tìm activity", Err: err}
	}

	activity.Title = updates.Title
	activity.Description = updates.Description
	if updates.Emoji != "" {
		activity.Emoji = updates.Emoji
	}
	if len(updates.MoodMatch) > 0 {
		activity.MoodMatch = updates.MoodMatch
	}
	if updates.Action != "" {
		activity.Action = updates.Action
	}
	activity.Link = updates.Link
	activity.Order = updates.Order
	activity.IsActive = updates.IsActive

	if err := validator.ValidateActivity(&activity); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(&activity).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeSelfCareFailed, Message: "lỗi khi cập nhật activity", Err: err}
	}
	return &activity, nil
}

// DeleteActivity xóa activity (thao tác admin)
func (s *SelfCareService) DeleteActivity(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.SelfCareActivity{}, id)
	if res.Error != nil {
		return &ServiceError{Code: ErrCodeSelfCareFailed, Message: "lỗi khi xóa activity", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &ServiceError{Code: ErrCodeActivityNotFound, Message: "không tìm thấy activity"}
	}
	return nil
}

// GetSupportResources trả về danh sách đường dây nóng / link hỗ trợ
func (s *SelfCareService) GetSupportResources(ctx context.Context) ([]models.SupportResource, error) {
	resources := []models.SupportResource{}
	if err := s.db.WithContext(ctx).
		Order("name ASC").
		Find(&resources).Error; err != nil {
		return nil, &ServiceError{Code: ErrCodeSelfCareFailed, Message: "lỗi khi lấy support resources", Err: err}
	}
	return resources, nil
}

// SeedDefaultActivities nạp bộ activity và helpline mặc định,
// chỉ chạy khi bảng còn trống để không tạo dữ liệu trùng.
func (s *SelfCareService) SeedDefaultActivities(ctx context.Context) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.SelfCareActivity{}).Count(&count).Error; err != nil {
		return &ServiceError{Code: ErrCodeSelfCareFailed, Message: "lỗi khi đếm activity", Err: err}
	}
	if count > 0 {
		s.logger.Info("Self-care activities đã có dữ liệu, bỏ qua seed")
		return nil
	}

	defaults := []models.SelfCareActivity{
		{Title: "Deep Breathing", Description: "Take 10 slow, deep breaths", Emoji: "🌬️", MoodMatch: pq.StringArray{constants.MoodCategoryLow, constants.MoodCategoryMedium}, Action: "guide", Order: 1, IsActive: true},
		{Title: "Gratitude Journal", Description: "Write down 3 things you are grateful for", Emoji: "📓", MoodMatch: pq.StringArray{constants.MoodCategoryMedium, constants.MoodCategoryHigh}, Action: "guide", Order: 2, IsActive: true},
		{Title: "Short Walk", Description: "A 10 minute walk outside", Emoji: "🚶", MoodMatch: pq.StringArray{constants.MoodCategoryLow, constants.MoodCategoryMedium, constants.MoodCategoryHigh}, Action: "guide", Order: 3, IsActive: true},
		{Title: "Guided Meditation", Description: "Follow a 5 minute guided meditation", Emoji: "🧘", MoodMatch: pq.StringArray{constants.MoodCategoryLow}, Action: "link", Link: "https://www.youtube.com/results?search_query=5+minute+meditation", Order: 4, IsActive: true},
		{Title: "Celebrate a Win", Description: "Note one thing that went well today", Emoji: "🎉", MoodMatch: pq.StringArray{constants.MoodCategoryHigh}, Action: "guide", Order: 5, IsActive: true},
	}

	contacts := []models.SupportResource{
		{Name: "Crisis Text Line", Description: "Text HOME to connect with a counselor", Phone: "741741"},
		{Name: "National Suicide Prevention Lifeline", Description: "24/7 free and confidential support", Phone: "988"},
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&defaults).Error; err != nil {
			return err
		}
		return tx.Create(&contacts).Error
	})
}
