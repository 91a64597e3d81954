package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrInvalidFormat = errors.New("invalid format")
	ErrNoValidData   = errors.New("no valid data")

	ErrNotConfigured  = errors.New("webdav is not configured")
	ErrBackupNotFound = errors.New("no backup exists")

	ErrNoActiveRun     = errors.New("no active run")
	ErrTimerRunning    = errors.New("timer is already running")
	ErrTimerNotRunning = errors.New("timer is not running")
	ErrNothingToRecord = errors.New("nothing to record")
	ErrNoPendingRun    = errors.New("no pending run")
	ErrRunPending      = errors.New("a stopped run is awaiting annotation")
)
