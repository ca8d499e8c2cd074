package routes

import (
	"github.com/hanepo/MoodMap-sub000/config"
	"github.com/hanepo/MoodMap-sub000/constants"
	"github.com/hanepo/MoodMap-sub000/controllers"
	middlewares "github.com/hanepo/MoodMap-sub000/middleware"
	"github.com/hanepo/MoodMap-sub000/services"
	"github.com/hanepo/MoodMap-sub000/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {

	defaultLogger := logger.NewDefaultLogger(logger.LevelFromEnv())
	loc := config.AppLocation()

	checkInService := services.NewCheckInService(services.CheckInServiceOptions{
		DB:       db,
		Logger:   defaultLogger,
		Location: loc,
	})
	moodService := services.NewMoodService(services.MoodServiceOptions{
		DB:       db,
		Logger:   defaultLogger,
		Location: loc,
	})
	taskService := services.NewTaskService(services.TaskServiceOptions{
		DB:     db,
		Logger: defaultLogger,
	})
	selfCareService := services.NewSelfCareService(services.SelfCareServiceOptions{
		DB:     db,
		Logger: defaultLogger,
	})
	recommendationService := services.NewRecommendationService(services.RecommendationServiceOptions{
		DB:     db,
		Redis:  redisCli,
		Logger: defaultLogger,
	})
	adminService := services.NewAdminService(services.AdminServiceOptions{
		DB:     db,
		Logger: defaultLogger,
	})

	checkInController := controllers.NewCheckInController(checkInService, redisCli)
	moodController := controllers.NewMoodController(moodService)
	taskController := controllers.NewTaskController(taskService)
	selfCareController := controllers.NewSelfCareController(selfCareService, recommendationService, redisCli)
	recommendationController := controllers.NewRecommendationController(recommendationService)
	adminController := controllers.NewAdminController(adminService, redisCli)

	v1 := router.Group("/api/v1")

	// Check-in và streak
	v1.POST("/checkin", middlewares.AuthMiddleware(), checkInController.CheckIn)
	v1.GET("/checkinWeek", middlewares.AuthMiddleware(), checkInController.GetWeekCheckIns)
	v1.GET("/checkinCalendar", middlewares.AuthMiddleware(), checkInController.GetCheckInCalendar)

	// Mood
	v1.POST("/mood", middlewares.AuthMiddleware(), moodController.LogMood)
	v1.POST("/moodAnalyze", middlewares.AuthMiddleware(), moodController.AnalyzeMood)
	v1.GET("/moodRecent", middlewares.AuthMiddleware(), moodController.GetRecentMoods)
	v1.GET("/moodToday", middlewares.AuthMiddleware(), moodController.GetTodayMood)
	v1.GET("/moodSummary", middlewares.AuthMiddleware(), moodController.GetMoodSummary)
	v1.GET("/moodStats", middlewares.AuthMiddleware(), moodController.GetMoodStats)

	// Task
	v1.POST("/task", middlewares.AuthMiddleware(), taskController.CreateTask)
	v1.GET("/task", middlewares.AuthMiddleware(), taskController.GetTasks)
	v1.PUT("/task/:id", middlewares.AuthMiddleware(), taskController.UpdateTask)
	v1.PUT("/task/:id/complete", middlewares.AuthMiddleware(), taskController.CompleteTask)
	v1.DELETE("/task/:id", middlewares.AuthMiddleware(), taskController.DeleteTask)
	v1.GET("/taskStats", middlewares.AuthMiddleware(), taskController.GetTaskStats)
	v1.GET("/taskSummary", middlewares.AuthMiddleware(), taskController.GetTaskSummary)
	v1.GET("/taskSearch", middlewares.AuthMiddleware(), taskController.SearchTasks)

	// Self-care và support
	v1.GET("/selfcare", selfCareController.GetActivities)
	v1.GET("/selfcareByMood", selfCareController.GetActivitiesByMood)
	v1.GET("/supportResources", selfCareController.GetSupportResources)

	// Gợi ý theo mood
	v1.GET("/recommendations", middlewares.AuthMiddleware(), recommendationController.GetRecommendations)

	// Admin
	admin := v1.Group("/admin", middlewares.AuthMiddleware(constants.RoleAdmin))
	admin.GET("/users", adminController.GetUsers)
	admin.PUT("/users", adminController.UpdateUser)
	admin.PUT("/userStatus", adminController.ChangeUserStatus)
	admin.DELETE("/users/:id", adminController.DeleteUser)
	admin.GET("/analytics", adminController.GetAnalytics)
	admin.GET("/analyticsDetailed", adminController.GetDetailedAnalytics)
	admin.GET("/taskCategories", adminController.GetTaskCategories)
	admin.POST("/taskCategories", adminController.CreateTaskCategory)
	admin.PUT("/taskCategories/:id", adminController.UpdateTaskCategory)
	admin.DELETE("/taskCategories/:id", adminController.DeleteTaskCategory)
	admin.POST("/selfcare", selfCareController.CreateActivity)
	admin.PUT("/selfcare/:id", selfCareController.UpdateActivity)
	admin.DELETE("/selfcare/:id", selfCareController.DeleteActivity)
	admin.POST("/selfcareSeed", selfCareController.SeedActivities)
	admin.POST("/logs", adminController.CreateLog)
	admin.GET("/logs", adminController.GetLogs)
}
