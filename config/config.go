package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const DefaultTimezone = "Asia/Ho_Chi_Minh"

func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	return nil
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// AppLocation trả về timezone của ứng dụng, mặc định Asia/Ho_Chi_Minh
func AppLocation() *time.Location {
	tz := os.Getenv("TIMEZONE")
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("Warning: timezone %q không hợp lệ, dùng Local: %v", tz, err)
		return time.Local
	}
	return loc
}
