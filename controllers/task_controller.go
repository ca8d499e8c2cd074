package controllers

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/hanepo/MoodMap-sub000/errors"
	"github.com/hanepo/MoodMap-sub000/models"
	"github.com/hanepo/MoodMap-sub000/response"
	"github.com/hanepo/MoodMap-sub000/services"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

type TaskController struct {
	service *services.TaskService
}

func NewTaskController(service *services.TaskService) *TaskController {
	return &TaskController{service: service}
}

// ScoredTask là task kèm điểm phù hợp khi tìm kiếm
type ScoredTask struct {
	Task  models.Task `json:"task"`
	Score int         `json:"score"`
}

// CreateTask tạo task mới cho user
func (ctl *TaskController) CreateTask(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var input services.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	task, err := ctl.service.CreateTask(c.Request.Context(), userID, input)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	response.Success(c, task)
}

// CompleteTask đánh dấu task hoàn thành
func (ctl *TaskController) CompleteTask(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil || taskID <= 0 {
		response.BadRequest(c, "ID task không hợp lệ")
		return
	}

	task, err := ctl.service.CompleteTask(c.Request.Context(), userID, uint(taskID))
	if err != nil {
		handleTaskError(c, err)
		return
	}

	response.Success(c, task)
}

// UpdateTask cập nhật thông tin task
func (ctl *TaskController) UpdateTask(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil || taskID <= 0 {
		response.BadRequest(c, "ID task không hợp lệ")
		return
	}

	var input services.TaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	task, err := ctl.service.UpdateTask(c.Request.Context(), userID, uint(taskID), input)
	if err != nil {
		handleTaskError(c, err)
		return
	}

	response.Success(c, task)
}

// DeleteTask xóa task
func (ctl *TaskController) DeleteTask(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil || taskID <= 0 {
		response.BadRequest(c, "ID task không hợp lệ")
		return
	}

	if err := ctl.service.DeleteTask(c.Request.Context(), userID, uint(taskID)); err != nil {
		handleTaskError(c, err)
		return
	}

	response.Success(c, nil)
}

// GetTasks trả về danh sách task, lọc theo query param status
func (ctl *TaskController) GetTasks(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	var tasks []models.Task
	switch c.Query("status") {
	case "pending":
		tasks = ctl.service.GetPendingTasks(c.Request.Context(), userID)
	case "completed":
		tasks = ctl.service.GetCompletedTasks(c.Request.Context(), userID)
	default:
		tasks = ctl.service.GetTasks(c.Request.Context(), userID)
	}

	response.Success(c, tasks)
}

// GetTaskStats trả về thống kê task cho Home card
func (ctl *TaskController) GetTaskStats(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	stats := ctl.service.GetTaskStats(c.Request.Context(), userID)
	response.Success(c, stats)
}

// GetTaskSummary trả về task gần nhất cho Home card
func (ctl *TaskController) GetTaskSummary(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "2"))
	tasks := ctl.service.GetTaskSummary(c.Request.Context(), userID, limit)
	response.Success(c, tasks)
}

// SearchTasks tìm task theo từ khóa gần đúng
func (ctl *TaskController) SearchTasks(c *gin.Context) {
	userID := currentUserID(c)
	if userID == 0 {
		response.Unauthorized(c)
		return
	}

	query := c.Query("query")
	if strings.TrimSpace(query) == "" {
		response.BadRequest(c, "Thiếu từ khóa tìm kiếm")
		return
	}

	tasks := ctl.service.GetTasks(c.Request.Context(), userID)
	if len(tasks) == 0 {
		response.Success(c, []ScoredTask{})
		return
	}

	cmCategory := createMatcher(prepareUniqueCategories(tasks))
	scored := filterAndScoreTasks(query, tasks, cmCategory)

	response.Success(c, scored)
}

func handleTaskError(c *gin.Context, err error) {
	if appErr, ok := errors.AsAppError(err); ok {
		response.BadRequest(c, appErr.Message)
		return
	}
	if svcErr, ok := err.(*services.ServiceError); ok {
		switch {
		case svcErr.Code == services.ErrCodeTaskNotFound:
			response.NotFound(c)
		case svcErr.Err == nil:
			response.BadRequest(c, svcErr.Message)
		default:
			response.ServerError(c)
		}
		return
	}
	response.ServerError(c)
}

// Hàm chuẩn hóa chuỗi
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// Tách energy level từ query nếu có
func parseEnergyLevel(query string) string {
	lowKeywords := []string{"low", "nhẹ", "nhe", "dễ", "de"}
	mediumKeywords := []string{"medium", "vừa", "vua", "trung bình", "trung binh"}
	highKeywords := []string{"high", "cao", "khó", "kho", "nặng", "nang"}

	normalizedQuery := normalizeInput(query)
	for _, kw := range lowKeywords {
		if strings.Contains(normalizedQuery, normalizeInput(kw)) {
			return "low"
		}
	}
	for _, kw := range mediumKeywords {
		if strings.Contains(normalizedQuery, normalizeInput(kw)) {
			return "medium"
		}
	}
	for _, kw := range highKeywords {
		if strings.Contains(normalizedQuery, normalizeInput(kw)) {
			return "high"
		}
	}
	return ""
}

// Tách mood (1-10) từ query, ví dụ "mood 7"
func extractMoodFromQuery(query string) int {
	re := regexp.MustCompile(`mood\s*(\d+)`)
	match := re.FindStringSubmatch(query)
	if len(match) < 2 {
		return -1
	}

	mood, err := strconv.Atoi(match[1])
	if err != nil || mood < 1 || mood > 10 {
		return -1
	}
	return mood
}

// Tạo danh sách category duy nhất từ task cho closestmatch
func prepareUniqueCategories(tasks []models.Task) []string {
	uniqueValues := make(map[string]bool)
	for _, task := range tasks {
		if task.Category != "" {
			uniqueValues[normalizeInput(task.Category)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp cho task
func calculateTaskScore(query string, task models.Task, cmCategory *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedTitle := normalizeInput(task.Title)
	if strings.Contains(normalizedTitle, normalizedQuery) {
		score += 20
	} else if calculateSimilarity(normalizedQuery, normalizedTitle) > 0.7 {
		score += 12
	}

	if task.Description != "" && strings.Contains(normalizeInput(task.Description), normalizedQuery) {
		score += 8
	}

	if cmCategory.Closest(normalizedQuery) == normalizeInput(task.Category) {
		score += 10
	}

	if level := parseEnergyLevel(normalizedQuery); level != "" && level == task.EnergyLevel {
		score += 6
	}

	if mood := extractMoodFromQuery(normalizedQuery); mood != -1 && task.AssociatedMood != nil && *task.AssociatedMood == mood {
		score += 5
	}

	return score
}

func filterAndScoreTasks(query string, tasks []models.Task, cmCategory *closestmatch.ClosestMatch) []ScoredTask {
	scored := []ScoredTask{}
	scoreCh := make(chan ScoredTask, len(tasks))
	var wg sync.WaitGroup

	for _, task := range tasks {
		wg.Add(1)
		go func(task models.Task) {
			defer wg.Done()
			score := calculateTaskScore(query, task, cmCategory)
			if score > 0 {
				scoreCh <- ScoredTask{Task: task, Score: score}
			}
		}(task)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for st := range scoreCh {
		scored = append(scored, st)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
