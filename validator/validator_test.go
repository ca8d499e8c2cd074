package validator

import (
	"testing"

	"github.com/hanepo/MoodMap-sub000/errors"
	"github.com/hanepo/MoodMap-sub000/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestValidateMoodEntry(t *testing.T) {
	valid := &models.MoodEntry{Mood: 7, MoodCategory: "high", Date: "2025-03-15"}
	assert.NoError(t, ValidateMoodEntry(valid))

	outOfRange := &models.MoodEntry{Mood: 11, MoodCategory: "high"}
	err := ValidateMoodEntry(outOfRange)
	assert.Error(t, err)
	appErr, ok := errors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, errors.ErrCodeInvalidMood, appErr.Code)

	zeroMood := &models.MoodEntry{Mood: 0, MoodCategory: "low"}
	assert.Error(t, ValidateMoodEntry(zeroMood))

	badCategory := &models.MoodEntry{Mood: 5, MoodCategory: "extreme"}
	err = ValidateMoodEntry(badCategory)
	assert.Error(t, err)
	appErr, _ = errors.AsAppError(err)
	assert.Equal(t, errors.ErrCodeInvalidCategory, appErr.Code)

	badDate := &models.MoodEntry{Mood: 5, MoodCategory: "medium", Date: "15/03/2025"}
	assert.Error(t, ValidateMoodEntry(badDate))
}

func TestValidateTask(t *testing.T) {
	valid := &models.Task{Title: "Viết nhật ký", EnergyLevel: "low"}
	assert.NoError(t, ValidateTask(valid))

	noTitle := &models.Task{EnergyLevel: "low"}
	err := ValidateTask(noTitle)
	assert.Error(t, err)
	appErr, _ := errors.AsAppError(err)
	assert.Equal(t, errors.ErrCodeRequiredField, appErr.Code)

	badLevel := &models.Task{Title: "abc", EnergyLevel: "extreme"}
	assert.Error(t, ValidateTask(badLevel))

	badMood := 15
	withBadMood := &models.Task{Title: "abc", AssociatedMood: &badMood}
	assert.Error(t, ValidateTask(withBadMood))

	okMood := 6
	withOkMood := &models.Task{Title: "abc", AssociatedMood: &okMood}
	assert.NoError(t, ValidateTask(withOkMood))
}

func TestValidateActivity(t *testing.T) {
	valid := &models.SelfCareActivity{
		Title:     "Thở sâu 5 phút",
		MoodMatch: pq.StringArray{"low", "medium"},
		Action:    "guide",
	}
	assert.NoError(t, ValidateActivity(valid))

	badMatch := &models.SelfCareActivity{
		Title:     "abc",
		MoodMatch: pq.StringArray{"angry"},
		Action:    "guide",
	}
	assert.Error(t, ValidateActivity(badMatch))

	badAction := &models.SelfCareActivity{Title: "abc", Action: "popup"}
	assert.Error(t, ValidateActivity(badAction))

	linkWithoutLink := &models.SelfCareActivity{Title: "abc", Action: "link"}
	assert.Error(t, ValidateActivity(linkWithoutLink))

	linkWithLink := &models.SelfCareActivity{Title: "abc", Action: "link", Link: "https://example.com"}
	assert.NoError(t, ValidateActivity(linkWithLink))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2025-03-15"))
	assert.True(t, IsValidDate("2024-02-29")) // năm nhuận

	assert.False(t, IsValidDate("2025-13-01"))
	assert.False(t, IsValidDate("2025-02-30"))
	assert.False(t, IsValidDate("15-03-2025"))
	assert.False(t, IsValidDate("2025/03/15"))
	assert.False(t, IsValidDate(""))
}
