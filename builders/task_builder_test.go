package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskBuilderDefaults(t *testing.T) {
	task := NewTaskBuilder().
		WithUser(42).
		WithTitle("Đi bộ 15 phút").
		Build()

	assert.Equal(t, uint(42), task.UserID)
	assert.Equal(t, "Đi bộ 15 phút", task.Title)
	assert.Equal(t, "Reflection", task.Category)
	assert.Equal(t, "Easy", task.DifficultyLevel)
	assert.False(t, task.IsCustom)
}

func TestTaskBuilderTitleFallback(t *testing.T) {
	task := NewTaskBuilder().WithTitle("   ").Build()
	assert.Equal(t, "Untitled Task", task.Title)
}

func TestTaskBuilderFullChain(t *testing.T) {
	mood := 4
	task := NewTaskBuilder().
		WithUser(7).
		WithTitle("Gọi điện cho bạn thân").
		WithDescription("  Hỏi thăm và hẹn cà phê  ").
		WithCategory("Social").
		WithEnergyLevel("medium").
		WithDifficulty("Medium").
		WithAssociatedMood(&mood).
		WithCustomFlag(true).
		Build()

	assert.Equal(t, "Social", task.Category)
	assert.Equal(t, "medium", task.EnergyLevel)
	assert.Equal(t, "Medium", task.DifficultyLevel)
	assert.Equal(t, "Hỏi thăm và hẹn cà phê", task.Description)
	assert.Equal(t, 4, *task.AssociatedMood)
	assert.True(t, task.IsCustom)
}

func TestTaskBuilderEmptyOverridesKeepDefaults(t *testing.T) {
	task := NewTaskBuilder().
		WithTitle("abc").
		WithCategory("").
		WithDifficulty("").
		Build()

	assert.Equal(t, "Reflection", task.Category)
	assert.Equal(t, "Easy", task.DifficultyLevel)
}
