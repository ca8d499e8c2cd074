package validator

import (
	"regexp"
	"time"

	"github.com/hanepo/MoodMap-sub000/constants"
	"github.com/hanepo/MoodMap-sub000/errors"
	"github.com/hanepo/MoodMap-sub000/models"
)

// ValidateMoodEntry validate một mood entry trước khi ghi
func ValidateMoodEntry(entry *models.MoodEntry) error {
	if entry.Mood < 1 || entry.Mood > 10 {
		return errors.NewAppError(errors.ErrCodeInvalidMood, "Mood phải nằm trong khoảng 1-10", nil)
	}

	if !isValidMoodCategory(entry.MoodCategory) {
		return errors.NewAppError(errors.ErrCodeInvalidCategory, "Mood category không hợp lệ: "+entry.MoodCategory, nil)
	}

	if entry.Date != "" && !IsValidDate(entry.Date) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày không đúng định dạng YYYY-MM-DD", nil)
	}

	return nil
}

// ValidateTask validate thông tin task
func ValidateTask(task *models.Task) error {
	if task.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tiêu đề task không được để trống", nil)
	}

	if task.EnergyLevel != "" && !isValidMoodCategory(task.EnergyLevel) {
		return errors.NewAppError(errors.ErrCodeInvalidCategory, "Energy level không hợp lệ: "+task.EnergyLevel, nil)
	}

	if task.AssociatedMood != nil && (*task.AssociatedMood < 1 || *task.AssociatedMood > 10) {
		return errors.NewAppError(errors.ErrCodeInvalidMood, "Mood gắn với task phải nằm trong khoảng 1-10", nil)
	}

	return nil
}

// ValidateActivity validate một self-care activity
func ValidateActivity(activity *models.SelfCareActivity) error {
	if activity.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tiêu đề activity không được để trống", nil)
	}

	for _, m := range activity.MoodMatch {
		if !isValidMoodCategory(m) {
			return errors.NewAppError(errors.ErrCodeInvalidCategory, "Mood match không hợp lệ: "+m, nil)
		}
	}

	if activity.Action != "guide" && activity.Action != "link" {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Action phải là guide hoặc link", nil)
	}

	if activity.Action == "link" && activity.Link == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Activity dạng link phải có link", nil)
	}

	return nil
}

// IsValidDate kiểm tra chuỗi ngày đúng định dạng YYYY-MM-DD
func IsValidDate(date string) bool {
	matched, _ := regexp.MatchString(`^\d{4}-\d{2}-\d{2}$`, date)
	if !matched {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// isValidMoodCategory kiểm tra category thuộc tập cho phép
func isValidMoodCategory(category string) bool {
	switch category {
	case constants.MoodCategoryLow, constants.MoodCategoryMedium, constants.MoodCategoryHigh, constants.MoodCategoryGeneral:
		return true
	}
	return false
}
