package dto

type PeriodOutput struct {
	Count        int
	TotalSeconds int
	AvgMinutes   float64
}

type PointOutput struct {
	Label   string
	Minutes float64
}

type LatestOutput struct {
	DaysAgo     int
	DisplayDate string
	TimeOfDay   string
	DurationSec int
	Phrase      string
}

// Overview is the whole statistics page in one shot.
type Overview struct {
	Week        PeriodOutput
	Month       PeriodOutput
	Year        PeriodOutput
	Overall     PeriodOutput
	WeekDaily   []PointOutput
	MonthDaily  []PointOutput
	YearMonthly []PointOutput
	Latest      *LatestOutput
}
