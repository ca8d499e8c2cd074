package services

import (
	"testing"

	"github.com/hanepo/MoodMap-sub000/models"

	"github.com/stretchr/testify/assert"
)

func moodEntries(values ...int) []models.MoodEntry {
	entries := make([]models.MoodEntry, 0, len(values))
	for _, v := range values {
		entries = append(entries, models.MoodEntry{Mood: v})
	}
	return entries
}

func TestMoodTrendNotEnoughData(t *testing.T) {
	// Dưới 3 entry mỗi nhóm thì không kết luận xu hướng
	assert.Equal(t, "neutral", moodTrend(moodEntries()))
	assert.Equal(t, "neutral", moodTrend(moodEntries(8, 9)))
	assert.Equal(t, "neutral", moodTrend(moodEntries(8, 9, 7, 8, 9, 2, 3)))
}

func TestMoodTrendImproving(t *testing.T) {
	// 5 entry mới (đầu slice) cao hơn 5 entry cũ quá 0.5
	entries := moodEntries(8, 9, 8, 7, 8, 4, 5, 4, 5, 4)
	assert.Equal(t, "improving", moodTrend(entries))
}

func TestMoodTrendDeclining(t *testing.T) {
	entries := moodEntries(3, 2, 4, 3, 2, 7, 8, 7, 8, 7)
	assert.Equal(t, "declining", moodTrend(entries))
}

func TestMoodTrendNeutralWithinThreshold(t *testing.T) {
	// Chênh lệch đúng 0.4, trong ngưỡng 0.5
	entries := moodEntries(6, 6, 6, 6, 7, 6, 6, 6, 6, 5)
	assert.Equal(t, "neutral", moodTrend(entries))
}

func TestMoodAverage(t *testing.T) {
	assert.Equal(t, 0.0, moodAverage(nil))
	assert.Equal(t, 5.0, moodAverage(moodEntries(4, 5, 6)))
	assert.InDelta(t, 7.5, moodAverage(moodEntries(7, 8)), 0.001)
}

func TestSummaryLabel(t *testing.T) {
	assert.Equal(t, "Happy", summaryLabel(7))
	assert.Equal(t, "Happy", summaryLabel(10))
	assert.Equal(t, "Sad", summaryLabel(3))
	assert.Equal(t, "Sad", summaryLabel(1))
	assert.Equal(t, "Neutral", summaryLabel(4))
	assert.Equal(t, "Neutral", summaryLabel(6))
}

func TestRoundTo1(t *testing.T) {
	assert.Equal(t, 7.5, roundTo1(7.45))
	assert.Equal(t, 7.4, roundTo1(7.44))
	assert.Equal(t, 0.0, roundTo1(0))
}
