package domain_test

import (
	"testing"
	"time"

	"tempo/internal/modules/stats/domain"
)

// Wednesday 2024-01-17 12:00 local. Week start is Monday 2024-01-15,
// month start 2024-01-01, year start 2024-01-01.
var now = time.Date(2024, 1, 17, 12, 0, 0, 0, time.Local)

func at(t time.Time) domain.Entry {
	return domain.Entry{Timestamp: t, DurationSec: 600}
}

func TestPeriodWindows(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		at(now.AddDate(0, 0, -2)),  // Monday this week
		at(now.AddDate(0, 0, -10)), // last week, this month
		at(now.AddDate(0, 0, -40)), // last year (2023-12)
	}

	if got := domain.ForPeriod(entries, domain.PeriodWeek, now).Count; got != 1 {
		t.Fatalf("week count = %d, want 1", got)
	}
	if got := domain.ForPeriod(entries, domain.PeriodMonth, now).Count; got != 2 {
		t.Fatalf("month count = %d, want 2", got)
	}
	if got := domain.ForPeriod(entries, domain.PeriodYear, now).Count; got != 2 {
		t.Fatalf("year count = %d, want 2", got)
	}
	if got := domain.Overall(entries).Count; got != 3 {
		t.Fatalf("overall count = %d, want 3", got)
	}
}

func TestPeriodStartIsInclusive(t *testing.T) {
	t.Parallel()
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.Local)
	entries := []domain.Entry{at(monday)}
	if got := domain.ForPeriod(entries, domain.PeriodWeek, now).Count; got != 1 {
		t.Fatalf("entry exactly at Monday 00:00 must count, got %d", got)
	}
	if got := domain.ForPeriod(entries, domain.PeriodWeek, now.AddDate(0, 0, 7)).Count; got != 0 {
		t.Fatalf("entry from last week must not count, got %d", got)
	}
}

func TestAvgMinutes(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{Timestamp: now, DurationSec: 600},
		{Timestamp: now, DurationSec: 300},
	}
	stats := domain.Overall(entries)
	if stats.TotalSeconds != 900 {
		t.Fatalf("total = %d, want 900", stats.TotalSeconds)
	}
	if stats.AvgMinutes != 7.5 {
		t.Fatalf("avg = %v, want 7.5", stats.AvgMinutes)
	}
	if empty := domain.Overall(nil); empty.AvgMinutes != 0 || empty.Count != 0 {
		t.Fatalf("empty stats must be zero, got %+v", empty)
	}
}

func TestWeekDailyAlwaysSevenPoints(t *testing.T) {
	t.Parallel()
	monday := time.Date(2024, 1, 15, 8, 0, 0, 0, time.Local)
	friday := time.Date(2024, 1, 19, 22, 0, 0, 0, time.Local)
	entries := []domain.Entry{
		{Timestamp: monday, DurationSec: 120},
		{Timestamp: friday, DurationSec: 60},
	}

	points := domain.WeekDaily(entries, now)
	if len(points) != 7 {
		t.Fatalf("expected 7 points, got %d", len(points))
	}
	wantLabels := []string{"一", "二", "三", "四", "五", "六", "日"}
	for i, p := range points {
		if p.Label != wantLabels[i] {
			t.Fatalf("label[%d] = %q, want %q", i, p.Label, wantLabels[i])
		}
	}
	if points[0].Minutes != 2 {
		t.Fatalf("Monday minutes = %v, want 2", points[0].Minutes)
	}
	if points[4].Minutes != 1 {
		t.Fatalf("Friday minutes = %v, want 1", points[4].Minutes)
	}
	for _, i := range []int{1, 2, 3, 5, 6} {
		if points[i].Minutes != 0 {
			t.Fatalf("day %d should be zero, got %v", i, points[i].Minutes)
		}
	}
}

func TestMonthDailySparse(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{Timestamp: time.Date(2024, 1, 3, 10, 0, 0, 0, time.Local), DurationSec: 300},
		{Timestamp: time.Date(2024, 1, 3, 22, 0, 0, 0, time.Local), DurationSec: 300},
		{Timestamp: time.Date(2024, 1, 15, 10, 0, 0, 0, time.Local), DurationSec: 60},
		{Timestamp: time.Date(2023, 12, 20, 10, 0, 0, 0, time.Local), DurationSec: 999},
	}

	points := domain.MonthDaily(entries, now)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Label != "03" || points[0].Minutes != 10 {
		t.Fatalf("first point = %+v", points[0])
	}
	if points[1].Label != "15" || points[1].Minutes != 1 {
		t.Fatalf("second point = %+v", points[1])
	}
}

func TestYearMonthlySparse(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{Timestamp: time.Date(2024, 1, 3, 10, 0, 0, 0, time.Local), DurationSec: 120},
		{Timestamp: time.Date(2024, 5, 9, 10, 0, 0, 0, time.Local), DurationSec: 60},
		{Timestamp: time.Date(2023, 5, 9, 10, 0, 0, 0, time.Local), DurationSec: 600},
	}

	points := domain.YearMonthly(entries, now)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Label != "1月" || points[0].Minutes != 2 {
		t.Fatalf("first point = %+v", points[0])
	}
	if points[1].Label != "5月" || points[1].Minutes != 1 {
		t.Fatalf("second point = %+v", points[1])
	}
}

func TestLatestNarrative(t *testing.T) {
	t.Parallel()

	if _, ok := domain.LatestOf(nil, now); ok {
		t.Fatal("empty entries must yield no latest")
	}

	today := time.Date(2024, 1, 17, 9, 5, 0, 0, time.Local)
	l, ok := domain.LatestOf([]domain.Entry{{Timestamp: today, DurationSec: 925}}, now)
	if !ok {
		t.Fatal("expected latest")
	}
	if l.DaysAgo != 0 || l.DisplayDate != "今天" {
		t.Fatalf("today: %+v", l)
	}
	if l.TimeOfDay != "上午 9:05" {
		t.Fatalf("time = %q, want 上午 9:05", l.TimeOfDay)
	}

	yesterday := time.Date(2024, 1, 16, 23, 30, 0, 0, time.Local)
	l, _ = domain.LatestOf([]domain.Entry{{Timestamp: yesterday}}, now)
	if l.DaysAgo != 1 || l.DisplayDate != "昨天" || l.TimeOfDay != "下午 11:30" {
		t.Fatalf("yesterday: %+v", l)
	}

	// 2024-01-10 is a Wednesday, seven days before now.
	old := time.Date(2024, 1, 10, 12, 0, 0, 0, time.Local)
	l, _ = domain.LatestOf([]domain.Entry{{Timestamp: old}}, now)
	if l.DaysAgo != 7 {
		t.Fatalf("daysAgo = %d, want 7", l.DaysAgo)
	}
	if l.DisplayDate != "1月10日 星期三" {
		t.Fatalf("display = %q", l.DisplayDate)
	}
	if l.Phrase == "" {
		t.Fatal("phrase must not be empty")
	}

	// Same data renders the same phrase every time.
	again, _ := domain.LatestOf([]domain.Entry{{Timestamp: old}}, now)
	if again.Phrase != l.Phrase {
		t.Fatalf("phrase not stable: %q vs %q", again.Phrase, l.Phrase)
	}
}

func TestLatestPicksMostRecent(t *testing.T) {
	t.Parallel()
	entries := []domain.Entry{
		{Timestamp: now.AddDate(0, 0, -5), DurationSec: 100},
		{Timestamp: now.AddDate(0, 0, -1), DurationSec: 200},
		{Timestamp: now.AddDate(0, 0, -3), DurationSec: 300},
	}
	l, _ := domain.LatestOf(entries, now)
	if l.DurationSec != 200 || l.DaysAgo != 1 {
		t.Fatalf("latest = %+v", l)
	}
}
