package jobs

import (
	"log"
	"time"

	"github.com/hanepo/MoodMap-sub000/utils"

	"github.com/robfig/cron/v3"
)

// AnalyticsSnapshotter định nghĩa interface cho việc chụp snapshot analytics
type AnalyticsSnapshotter interface {
	SnapshotAnalytics() error
}

var analyticsSnapshotter AnalyticsSnapshotter

// SetAnalyticsSnapshotter thiết lập implementation cho AnalyticsSnapshotter
func SetAnalyticsSnapshotter(snapshotter AnalyticsSnapshotter) {
	analyticsSnapshotter = snapshotter
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron) error {
	// Cron job chạy lúc 00:05 mỗi ngày, chụp snapshot analytics vào Redis
	_, err := c.AddFunc("5 0 * * *", func() {
		now := time.Now()
		utils.LogInfo("Đang chạy snapshot analytics lúc: %v", now)
		if analyticsSnapshotter == nil {
			utils.LogError("Lỗi: AnalyticsSnapshotter chưa được thiết lập")
			return
		}
		if err := analyticsSnapshotter.SnapshotAnalytics(); err != nil {
			utils.LogError("Lỗi khi chụp snapshot analytics: %v", err)
			return
		}
		utils.LogInfo("Snapshot analytics hoàn thành")
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
