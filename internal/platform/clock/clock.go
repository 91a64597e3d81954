package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall-clock time. Session timestamps are
// local date-times by contract, so there is no UTC normalization here.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
