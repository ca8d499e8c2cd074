package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const analyticsSnapshotTTL = 25 * time.Hour

// AnalyticsSnapshotAdapter chụp snapshot số liệu analytics vào Redis,
// cron gọi mỗi đêm để màn admin đọc nhanh không phải query lại.
type AnalyticsSnapshotAdapter struct {
	admin *AdminService
	rdb   *redis.Client
}

func NewAnalyticsSnapshotAdapter(admin *AdminService, rdb *redis.Client) *AnalyticsSnapshotAdapter {
	return &AnalyticsSnapshotAdapter{admin: admin, rdb: rdb}
}

// SnapshotAnalytics tính số liệu cho từng range và lưu vào Redis
func (a *AnalyticsSnapshotAdapter) SnapshotAnalytics() error {
	if a.rdb == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, rng := range []string{"7d", "30d", "90d"} {
		analytics, err := a.admin.GetDetailedAnalytics(ctx, rng)
		if err != nil {
			return err
		}
		if err := SetToRedis(ctx, a.rdb, CacheKeyAdminAnalytics+rng, analytics, analyticsSnapshotTTL); err != nil {
			return err
		}
	}
	return nil
}
