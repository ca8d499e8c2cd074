package controllers

import (
	"testing"

	"github.com/hanepo/MoodMap-sub000/models"

	"github.com/stretchr/testify/assert"
)

func sampleTasks() []models.Task {
	mood := 7
	return []models.Task{
		{ID: 1, Title: "Đi bộ buổi sáng", Description: "Đi bộ quanh công viên", Category: "Exercise", EnergyLevel: "high"},
		{ID: 2, Title: "Viết nhật ký", Description: "Ghi lại cảm xúc trong ngày", Category: "Reflection", EnergyLevel: "low"},
		{ID: 3, Title: "Gọi điện cho mẹ", Category: "Social", EnergyLevel: "medium", AssociatedMood: &mood},
	}
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "di bo", normalizeInput("  Đi Bộ  "))
	assert.Equal(t, "viet nhat ky", normalizeInput("Viết Nhật Ký"))
	assert.Equal(t, "", normalizeInput("   "))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("", ""))
	assert.Equal(t, 1.0, calculateSimilarity("abc", "abc"))
	assert.InDelta(t, 0.75, calculateSimilarity("abcd", "abcx"), 0.001)
	assert.Less(t, calculateSimilarity("abc", "xyz"), 0.5)
}

func TestParseEnergyLevel(t *testing.T) {
	assert.Equal(t, "low", parseEnergyLevel("việc nhẹ nhàng"))
	assert.Equal(t, "medium", parseEnergyLevel("task trung bình"))
	assert.Equal(t, "high", parseEnergyLevel("việc khó"))
	assert.Equal(t, "", parseEnergyLevel("đi bộ"))
}

func TestExtractMoodFromQuery(t *testing.T) {
	assert.Equal(t, 7, extractMoodFromQuery("task cho mood 7"))
	assert.Equal(t, 10, extractMoodFromQuery("mood 10"))
	assert.Equal(t, -1, extractMoodFromQuery("mood 11"))
	assert.Equal(t, -1, extractMoodFromQuery("không có số"))
}

func TestPrepareUniqueCategories(t *testing.T) {
	categories := prepareUniqueCategories(sampleTasks())
	assert.Len(t, categories, 3)
	assert.Contains(t, categories, "exercise")
	assert.Contains(t, categories, "reflection")
	assert.Contains(t, categories, "social")
}

func TestFilterAndScoreTasksRanksTitleMatchFirst(t *testing.T) {
	tasks := sampleTasks()
	cm := createMatcher(prepareUniqueCategories(tasks))

	scored := filterAndScoreTasks("đi bộ", tasks, cm)

	assert.NotEmpty(t, scored)
	assert.Equal(t, uint(1), scored[0].Task.ID)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}

func TestFilterAndScoreTasksNoMatch(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Title: "Đi bộ buổi sáng", Category: "Exercise"},
	}
	cm := createMatcher(prepareUniqueCategories(tasks))

	scored := filterAndScoreTasks("zzzzzz", tasks, cm)
	assert.Empty(t, scored)
}
