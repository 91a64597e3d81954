package domain

import (
	"fmt"
	"time"
)

// Entry is the slice of a recorded session the aggregator needs. Stats
// never reads sessions directly; callers project their records into
// entries first.
type Entry struct {
	Timestamp   time.Time
	DurationSec int
}

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// PeriodStart returns the inclusive lower bound for a period relative
// to now: Monday 00:00 for the week, day 1 for the month, January 1
// for the year. All in now's location.
func PeriodStart(p Period, now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		monday := now.AddDate(0, 0, -(isoWeekday(now) - 1))
		return midnight(monday)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	}
	return midnight(now)
}

type PeriodStats struct {
	Count        int
	TotalSeconds int
	AvgMinutes   float64
}

// ForPeriod aggregates the entries whose timestamp falls on or after
// the period start.
func ForPeriod(entries []Entry, p Period, now time.Time) PeriodStats {
	start := PeriodStart(p, now)
	stats := PeriodStats{}
	for _, e := range entries {
		if e.Timestamp.Before(start) {
			continue
		}
		stats.Count++
		stats.TotalSeconds += e.DurationSec
	}
	if stats.Count > 0 {
		stats.AvgMinutes = float64(stats.TotalSeconds) / (60 * float64(stats.Count))
	}
	return stats
}

// Overall aggregates every entry regardless of age.
func Overall(entries []Entry) PeriodStats {
	stats := PeriodStats{Count: len(entries)}
	for _, e := range entries {
		stats.TotalSeconds += e.DurationSec
	}
	if stats.Count > 0 {
		stats.AvgMinutes = float64(stats.TotalSeconds) / (60 * float64(stats.Count))
	}
	return stats
}

// SeriesPoint is one bar in a chart: a short label and total minutes.
type SeriesPoint struct {
	Label   string
	Minutes float64
}

var weekdayShort = [7]string{"一", "二", "三", "四", "五", "六", "日"}

// WeekDaily returns exactly seven points, Monday through Sunday of the
// current week, with zero minutes for days without entries.
func WeekDaily(entries []Entry, now time.Time) []SeriesPoint {
	monday := PeriodStart(PeriodWeek, now)
	totals := map[string]int{}
	for _, e := range entries {
		if e.Timestamp.Before(monday) {
			continue
		}
		totals[dayKey(e.Timestamp)] += e.DurationSec
	}
	points := make([]SeriesPoint, 7)
	for i := 0; i < 7; i++ {
		day := monday.AddDate(0, 0, i)
		points[i] = SeriesPoint{
			Label:   weekdayShort[i],
			Minutes: float64(totals[dayKey(day)]) / 60,
		}
	}
	return points
}

// MonthDaily returns one point per day of the current month that has
// entries, in date order, labelled with the two-digit day.
func MonthDaily(entries []Entry, now time.Time) []SeriesPoint {
	start := PeriodStart(PeriodMonth, now)
	totals := map[int]int{}
	for _, e := range entries {
		if e.Timestamp.Before(start) {
			continue
		}
		totals[e.Timestamp.Day()] += e.DurationSec
	}
	points := []SeriesPoint{}
	for day := 1; day <= 31; day++ {
		secs, ok := totals[day]
		if !ok || secs <= 0 {
			continue
		}
		points = append(points, SeriesPoint{
			Label:   fmt.Sprintf("%02d", day),
			Minutes: float64(secs) / 60,
		})
	}
	return points
}

// YearMonthly returns one point per month of the current year that has
// entries, January first, labelled "N月".
func YearMonthly(entries []Entry, now time.Time) []SeriesPoint {
	totals := map[time.Month]int{}
	for _, e := range entries {
		if e.Timestamp.Year() != now.Year() {
			continue
		}
		totals[e.Timestamp.Month()] += e.DurationSec
	}
	points := []SeriesPoint{}
	for m := time.January; m <= time.December; m++ {
		secs, ok := totals[m]
		if !ok || secs <= 0 {
			continue
		}
		points = append(points, SeriesPoint{
			Label:   fmt.Sprintf("%d月", int(m)),
			Minutes: float64(secs) / 60,
		})
	}
	return points
}

// Latest describes the most recent entry in display terms.
type Latest struct {
	DaysAgo     int
	DisplayDate string
	TimeOfDay   string
	DurationSec int
	Phrase      string
}

var weekdayFull = [7]string{"星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期日"}

var (
	phrasesToday = []string{
		"今日已交作业",
		"今天完成了释放指标",
		"已完成今日份输出",
		"今天没忍住，已记录",
	}
	phrasesYesterday = []string{
		"昨天完成了一次",
		"昨日成功部署",
		"昨天交过作业了",
		"昨天有过记录",
	}
	phrasesTwoDays = []string{
		"已经鸽了 2 天",
		"空窗 2 天中",
		"连续摆烂 2 天",
	}
	phrasesGap = []string{
		"已经鸽了 %d 天（自 %s 起）",
		"空窗 %d 天了（%s 开始）",
		"持续摆烂 %d 天（从 %s 算）",
	}
)

// LatestOf picks the most recent entry and renders the summary card
// text. The phrase choice hashes the entry's date so it stays stable
// across renders of the same data.
func LatestOf(entries []Entry, now time.Time) (Latest, bool) {
	if len(entries) == 0 {
		return Latest{}, false
	}
	latest := entries[0]
	for _, e := range entries[1:] {
		if e.Timestamp.After(latest.Timestamp) {
			latest = e
		}
	}

	ts := latest.Timestamp
	daysAgo := daysBetween(ts, now)
	seed := ts.Year()*1000 + ts.YearDay()

	l := Latest{
		DaysAgo:     daysAgo,
		TimeOfDay:   clockOfDay(ts),
		DurationSec: latest.DurationSec,
	}
	switch daysAgo {
	case 0:
		l.DisplayDate = "今天"
		l.Phrase = phrasesToday[seed%len(phrasesToday)]
	case 1:
		l.DisplayDate = "昨天"
		l.Phrase = phrasesYesterday[seed%len(phrasesYesterday)]
	case 2:
		l.DisplayDate = longDate(ts)
		l.Phrase = phrasesTwoDays[seed%len(phrasesTwoDays)]
	default:
		l.DisplayDate = longDate(ts)
		since := ts.AddDate(0, 0, 1)
		l.Phrase = fmt.Sprintf(phrasesGap[seed%len(phrasesGap)],
			daysAgo, fmt.Sprintf("%d月%d日", int(since.Month()), since.Day()))
	}
	return l, true
}

func longDate(t time.Time) string {
	return fmt.Sprintf("%d月%d日 %s", int(t.Month()), t.Day(), weekdayFull[isoWeekday(t)-1])
}

func clockOfDay(t time.Time) string {
	meridiem := "上午"
	hour := t.Hour()
	if hour >= 12 {
		meridiem = "下午"
	}
	h12 := hour % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%s %d:%02d", meridiem, h12, t.Minute())
}

// isoWeekday maps Monday to 1 and Sunday to 7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func daysBetween(from, to time.Time) int {
	return int(midnight(to).Sub(midnight(from)).Hours() / 24)
}
