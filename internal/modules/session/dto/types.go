package dto

import "time"

type SessionInput struct {
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

type UpdateInput struct {
	ID           int64
	Duration     int
	Remark       string
	Location     string
	WatchedMovie bool
	Climax       bool
	Rating       float64
	Mood         string
	Props        string
}

type SessionOutput struct {
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

type ImportOutput struct {
	Imported int
	Skipped  int
}

type ExportOutput struct {
	Data  []byte
	Count int
}
