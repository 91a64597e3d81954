package timefmt

import "fmt"

// Layout is the session timestamp encoding: ISO-8601 local date-time,
// no offset. Legacy payloads use the same layout.
const Layout = "2006-01-02T15:04:05"

// Clock formats elapsed seconds as mm:ss, or hh:mm:ss past one hour.
func Clock(totalSeconds int) string {
	h := totalSeconds / 3600
	m := totalSeconds % 3600 / 60
	s := totalSeconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// Duration formats total seconds as "X小时 Y分钟", dropping the hour part
// when it is zero. Integer division with remainder, no rounding of minutes.
func Duration(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := totalSeconds % 3600 / 60
	if hours > 0 {
		return fmt.Sprintf("%d小时 %d分钟", hours, minutes)
	}
	return fmt.Sprintf("%d分钟", minutes)
}
