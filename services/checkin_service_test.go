package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("không load được timezone: %v", err)
	}
	return loc
}

// dayList sinh danh sách ngày liên tiếp giảm dần bắt đầu từ start
func dayList(start time.Time, count int) []string {
	dates := make([]string, 0, count)
	for i := 0; i < count; i++ {
		dates = append(dates, start.AddDate(0, 0, -i).Format(dateLayout))
	}
	return dates
}

func TestCalculateStreakEmpty(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	assert.Equal(t, 0, calculateStreak([]string{}, now, loc))
	assert.Equal(t, 0, calculateStreak(nil, now, loc))
}

func TestCalculateStreakTodayOnly(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	streak := calculateStreak([]string{"2025-03-15"}, now, loc)
	assert.Equal(t, 1, streak)
}

func TestCalculateStreakYesterdayOnly(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	// Chưa điểm danh hôm nay nhưng có hôm qua thì streak vẫn còn
	streak := calculateStreak([]string{"2025-03-14"}, now, loc)
	assert.Equal(t, 1, streak)
}

func TestCalculateStreakBrokenWhenStale(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	// Ngày gần nhất cách hôm nay 2 ngày: streak đứt dù dãy phía sau liên tiếp
	streak := calculateStreak([]string{"2025-03-13", "2025-03-12", "2025-03-11"}, now, loc)
	assert.Equal(t, 0, streak)
}

func TestCalculateStreakConsecutiveRun(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	dates := dayList(now, 7)
	assert.Equal(t, 7, calculateStreak(dates, now, loc))
}

func TestCalculateStreakStopsAtGap(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	// 15, 14, rồi nhảy sang 12: chỉ đếm 2 ngày đầu
	dates := []string{"2025-03-15", "2025-03-14", "2025-03-12", "2025-03-11"}
	assert.Equal(t, 2, calculateStreak(dates, now, loc))
}

func TestCalculateStreakStopsAtDuplicate(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	// Ngày trùng (gap 0) dừng đếm thay vì đếm đôi
	dates := []string{"2025-03-15", "2025-03-15", "2025-03-14"}
	assert.Equal(t, 1, calculateStreak(dates, now, loc))
}

func TestCalculateStreakRunEndingYesterday(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 15, 23, 30, 0, 0, loc)

	yesterday := now.AddDate(0, 0, -1)
	dates := dayList(yesterday, 5)
	assert.Equal(t, 5, calculateStreak(dates, now, loc))
}

func TestCalculateStreakAcrossMonthBoundary(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 2, 8, 0, 0, 0, loc)

	dates := []string{"2025-03-02", "2025-03-01", "2025-02-28", "2025-02-27"}
	assert.Equal(t, 4, calculateStreak(dates, now, loc))
}

func TestCalculateStreakInvalidDateStops(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	dates := []string{"2025-03-15", "not-a-date", "2025-03-13"}
	assert.Equal(t, 1, calculateStreak(dates, now, loc))

	assert.Equal(t, 0, calculateStreak([]string{"garbage"}, now, loc))
}

func TestWeekWindowMidWeek(t *testing.T) {
	loc := mustLoc(t)
	// 2025-03-12 là thứ Tư
	now := time.Date(2025, 3, 12, 15, 30, 0, 0, loc)

	start, end := weekWindow(now)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, 12, end.Day())
	assert.True(t, end.After(now))
}

func TestWeekWindowOnSunday(t *testing.T) {
	loc := mustLoc(t)
	// Chủ nhật: tuần mới bắt đầu từ chính hôm đó
	now := time.Date(2025, 3, 9, 6, 0, 0, 0, loc)

	start, end := weekWindow(now)
	assert.Equal(t, time.Date(2025, 3, 9, 0, 0, 0, 0, loc), start)
	assert.Equal(t, 9, end.Day())
}

func TestBucketWeekDaysPartialWeek(t *testing.T) {
	loc := mustLoc(t)
	// Tuần 2025-03-09 (CN) .. 2025-03-15 (T7), hôm nay là thứ Sáu 14
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, loc)
	startOfWeek, endOfToday := weekWindow(now)

	// Điểm danh thứ Hai, Ba, Tư và thứ Sáu; kèm một ngày tuần trước
	dates := []string{"2025-03-14", "2025-03-12", "2025-03-11", "2025-03-10", "2025-03-05"}
	byDay := bucketWeekDays(dates, startOfWeek, endOfToday, loc)

	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true, 5: true}, byDay)
}

func TestBucketWeekDaysIgnoresOutOfWindowAndInvalid(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, loc)
	startOfWeek, endOfToday := weekWindow(now)

	// Ngày tuần trước, ngày sau hôm nay và chuỗi hỏng đều bị bỏ qua
	dates := []string{"2025-03-12", "2025-03-08", "2025-03-14", "xx-bad"}
	byDay := bucketWeekDays(dates, startOfWeek, endOfToday, loc)

	assert.Equal(t, map[int]bool{3: true}, byDay)
}

func TestBucketWeekDaysEmpty(t *testing.T) {
	loc := mustLoc(t)
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, loc)
	startOfWeek, endOfToday := weekWindow(now)

	assert.Equal(t, map[int]bool{}, bucketWeekDays(nil, startOfWeek, endOfToday, loc))
}

func TestDaysBetween(t *testing.T) {
	loc := mustLoc(t)

	a := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)
	b := time.Date(2025, 3, 15, 0, 0, 0, 0, loc)

	assert.Equal(t, 5, daysBetween(a, b))
	assert.Equal(t, 0, daysBetween(a, a))
	assert.Equal(t, 1, daysBetween(a, a.AddDate(0, 0, 1)))
}

func TestDaysBetweenAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("không load được timezone DST: %v", err)
	}

	// 2025-03-09 là ngày spring-forward ở New York: khoảng từ
	// 0h ngày 9 đến 0h ngày 10 chỉ dài 23 giờ
	before := time.Date(2025, 3, 9, 0, 0, 0, 0, loc)
	after := time.Date(2025, 3, 10, 0, 0, 0, 0, loc)

	assert.Equal(t, 1, daysBetween(before, after))
}

func TestCalculateStreakSurvivesDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("không load được timezone DST: %v", err)
	}

	// Dãy vắt qua ngày 23 giờ: gap 9 -> 10 vẫn phải đếm là 1 ngày
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, loc)
	dates := []string{"2025-03-10", "2025-03-09", "2025-03-08"}

	assert.Equal(t, 3, calculateStreak(dates, now, loc))
}
