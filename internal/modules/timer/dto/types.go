package dto

type StatusOutput struct {
	State      string
	RunID      string
	ElapsedSec int
}

// AnnotateInput is the detail form filled in after a stop; committing
// it turns the frozen run into a persisted session.
type AnnotateInput struct {
	Remark       string
	Location     string
	WatchedMovie bool
	Climax       bool
	Rating       float64
	Mood         string
	Props        string
}

type CommitOutput struct {
	SessionID   int64
	DurationSec int
}
