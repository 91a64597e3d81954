package domain

import "time"

// Defaults applied when an imported record omits optional fields. The
// Chinese strings are the product's curated vocabulary; the data layer
// does not enforce them as enums.
const (
	DefaultRating = 3.0
	DefaultMood   = "平静"
	DefaultProps  = "手"
)

const (
	RatingMin = 0.0
	RatingMax = 5.0
)

// Session is one completed timed activity, the unit of record. ID is
// assigned by the store on insert; zero means not yet persisted, and
// imported records always come back with a zero ID.
type Session struct {
	ID           int64
	Timestamp    time.Time
	Duration     int
	Remark       string
	Location     string
	WatchedMovie bool
	Climax       bool
	Rating       float64
	Mood         string
	Props        string
}

// ClampRating forces a rating into [0, 5]. Out-of-range values are
// clamped, never rejected.
func ClampRating(r float64) float64 {
	if r < RatingMin {
		return RatingMin
	}
	if r > RatingMax {
		return RatingMax
	}
	return r
}

// Normalized returns a copy with the data invariants enforced:
// non-negative duration and a clamped rating.
func (s Session) Normalized() Session {
	if s.Duration < 0 {
		s.Duration = 0
	}
	s.Rating = ClampRating(s.Rating)
	return s
}
