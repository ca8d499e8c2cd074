package services

import (
	"context"
	"errors"
	"time"

	"github.com/hanepo/MoodMap-sub000/models"
	"github.com/hanepo/MoodMap-sub000/services/logger"

	"gorm.io/gorm"
)

const (
	// Chỉ quét 400 ngày gần nhất khi tính streak / tuần hiện tại,
	// đủ cho mọi streak thực tế thay vì load toàn bộ lịch sử.
	checkInScanWindowDays = 400

	dateLayout = "2006-01-02"
)

// CheckInResult là kết quả của một lượt điểm danh
type CheckInResult struct {
	Success          bool `json:"success"`
	AlreadyCheckedIn bool `json:"alreadyCheckedIn"`
	StreakCount      int  `json:"streakCount"`
}

// WeekCheckIns là trạng thái điểm danh của tuần hiện tại cùng streak
type WeekCheckIns struct {
	CheckInsByDay map[int]bool `json:"checkInsByDay"` // 0 = Chủ nhật .. 6 = Thứ bảy
	CheckInDates  []string     `json:"checkInDates"`  // toàn bộ ngày điểm danh, mới nhất trước
	CurrentStreak int          `json:"currentStreak"`
}

type CheckInService struct {
	db     *gorm.DB
	logger logger.Logger
	loc    *time.Location
}

type CheckInServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Location *time.Location
}

func NewCheckInService(opts CheckInServiceOptions) *CheckInService {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	return &CheckInService{
		db:     opts.DB,
		logger: opts.Logger,
		loc:    loc,
	}
}

// RecordCheckIn ghi một lượt điểm danh cho ngày hiện tại.
// Gọi lại trong cùng ngày trả về AlreadyCheckedIn, không tạo record mới.
func (s *CheckInService) RecordCheckIn(ctx context.Context, userID uint, now time.Time) (*CheckInResult, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}

	localNow := now.In(s.loc)
	today := localNow.Format(dateLayout)

	var existing models.CheckInRecord
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, today).
		First(&existing).Error
	if err == nil {
		s.logger.Info("User %d đã điểm danh ngày %s", userID, today)
		return &CheckInResult{AlreadyCheckedIn: true, StreakCount: existing.StreakCount}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ServiceError{Code: ErrCodeCheckInFailed, Message: "lỗi khi kiểm tra điểm danh hôm nay", Err: err}
	}

	// Streak mới = streak hôm qua + 1, không có thì bắt đầu lại từ 1
	yesterday := localNow.AddDate(0, 0, -1).Format(dateLayout)
	streak := 1

	var prev models.CheckInRecord
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, yesterday).
		First(&prev).Error
	if err == nil {
		streak = prev.StreakCount + 1
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &ServiceError{Code: ErrCodeCheckInFailed, Message: "lỗi khi kiểm tra điểm danh hôm qua", Err: err}
	}

	record := models.CheckInRecord{
		UserID:      userID,
		Date:        today,
		Timestamp:   now,
		StreakCount: streak,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		// Unique index (user_id, date): hai request cùng ngày đua nhau thì
		// request thua cũng được coi là đã điểm danh.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &CheckInResult{AlreadyCheckedIn: true, StreakCount: streak}, nil
		}
		return nil, &ServiceError{Code: ErrCodeCheckInFailed, Message: "lỗi khi ghi điểm danh", Err: err}
	}

	s.logger.Info("User %d điểm danh ngày %s, streak %d", userID, today, streak)
	return &CheckInResult{Success: true, StreakCount: streak}, nil
}

// GetWeekCheckIns trả về trạng thái điểm danh của tuần hiện tại
// (Chủ nhật gần nhất đến hết hôm nay) cùng streak đang giữ.
// Lỗi database không propagate: trả về kết quả rỗng để UI vẫn load được.
func (s *CheckInService) GetWeekCheckIns(ctx context.Context, userID uint, now time.Time) *WeekCheckIns {
	result := &WeekCheckIns{
		CheckInsByDay: map[int]bool{},
		CheckInDates:  []string{},
	}
	if userID == 0 {
		return result
	}

	localNow := now.In(s.loc)
	cutoff := localNow.AddDate(0, 0, -checkInScanWindowDays).Format(dateLayout)

	var records []models.CheckInRecord
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, cutoff).
		Order("date DESC").
		Find(&records).Error; err != nil {
		s.logger.Error("Lỗi khi lấy điểm danh tuần của user %d: %v", userID, err)
		return result
	}

	for _, r := range records {
		result.CheckInDates = append(result.CheckInDates, r.Date)
	}

	startOfWeek, endOfToday := weekWindow(localNow)
	result.CheckInsByDay = bucketWeekDays(result.CheckInDates, startOfWeek, endOfToday, s.loc)
	result.CurrentStreak = calculateStreak(result.CheckInDates, localNow, s.loc)
	return result
}

// bucketWeekDays đánh dấu thứ trong tuần (0 = Chủ nhật .. 6 = Thứ bảy)
// cho các ngày nằm trong khoảng [startOfWeek, endOfToday]
func bucketWeekDays(dates []string, startOfWeek, endOfToday time.Time, loc *time.Location) map[int]bool {
	byDay := map[int]bool{}
	for _, date := range dates {
		d, err := time.ParseInLocation(dateLayout, date, loc)
		if err != nil {
			continue
		}
		if !d.Before(startOfWeek) && !d.After(endOfToday) {
			byDay[int(d.Weekday())] = true
		}
	}
	return byDay
}

// GetAllCheckIns trả về toàn bộ record điểm danh cho màn calendar,
// mới nhất trước. Lỗi database trả về danh sách rỗng.
func (s *CheckInService) GetAllCheckIns(ctx context.Context, userID uint) []models.CheckInRecord {
	records := []models.CheckInRecord{}
	if userID == 0 {
		return records
	}

	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&records).Error; err != nil {
		s.logger.Error("Lỗi khi lấy toàn bộ điểm danh của user %d: %v", userID, err)
		return []models.CheckInRecord{}
	}
	return records
}

// weekWindow trả về [Chủ nhật gần nhất 00:00, hôm nay 23:59:59.999]
func weekWindow(now time.Time) (time.Time, time.Time) {
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfToday.AddDate(0, 0, -int(now.Weekday()))
	endOfToday := startOfToday.Add(24*time.Hour - time.Millisecond)
	return startOfWeek, endOfToday
}

// calculateStreak tính streak từ danh sách ngày đã sort giảm dần.
// Streak luôn tính lại từ dãy ngày thay vì tin StreakCount đã lưu,
// để record backfill hay insert sai thứ tự không làm sai streak hiển thị.
func calculateStreak(sortedDates []string, now time.Time, loc *time.Location) int {
	if len(sortedDates) == 0 {
		return 0
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	mostRecent, err := time.ParseInLocation(dateLayout, sortedDates[0], loc)
	if err != nil {
		return 0
	}

	// Không điểm danh hôm nay lẫn hôm qua thì streak đã đứt
	if daysBetween(mostRecent, today) > 1 {
		return 0
	}

	streak := 1
	prev := mostRecent
	for _, d := range sortedDates[1:] {
		current, err := time.ParseInLocation(dateLayout, d, loc)
		if err != nil {
			break
		}
		// Chỉ nhận gap đúng 1 ngày; 0 (trùng ngày) hay >1 đều dừng
		if daysBetween(current, prev) != 1 {
			break
		}
		streak++
		prev = current
	}

	return streak
}

// daysBetween đếm số ngày lịch giữa hai mốc (from trước to).
// Quy cả hai về ngày UTC để mỗi ngày luôn đủ 24 giờ,
// timezone có DST không làm lệch phép đếm.
func daysBetween(from, to time.Time) int {
	fromDate := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	toDate := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(toDate.Sub(fromDate).Hours() / 24)
}
