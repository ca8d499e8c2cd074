package main

import (
	"log"
	"net/http"
	"os"

	"github.com/hanepo/MoodMap-sub000/config"
	"github.com/hanepo/MoodMap-sub000/jobs"
	"github.com/hanepo/MoodMap-sub000/models"
	"github.com/hanepo/MoodMap-sub000/routes"
	"github.com/hanepo/MoodMap-sub000/services"
	"github.com/hanepo/MoodMap-sub000/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.CheckInRecord{},
		&models.MoodEntry{},
		&models.Task{},
		&models.TaskCategory{},
		&models.SelfCareActivity{},
		&models.SupportResource{},
		&models.SystemLog{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	migrateTables()

	adminService := services.NewAdminService(services.AdminServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.LevelFromEnv()),
	})
	snapshotAdapter := services.NewAnalyticsSnapshotAdapter(adminService, config.RedisClient)
	jobs.SetAnalyticsSnapshotter(snapshotAdapter)

	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
