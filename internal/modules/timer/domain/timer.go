package domain

import (
	"time"

	apperrors "tempo/internal/platform/errors"
)

type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StatePaused  State = "paused"
	// StateStopped is the awaiting-annotation sub-state: elapsed is
	// frozen and the run is gone only after commit or discard.
	StateStopped State = "stopped"
)

// Run is the single in-progress timer. Elapsed time is derived from
// Accumulated plus the start instant, never from tick counts, so a
// missed or irregular display tick cannot skew the recorded duration.
type Run struct {
	RunID       string    `json:"run_id"`
	State       State     `json:"state"`
	StartedAt   time.Time `json:"started_at"`
	Accumulated int       `json:"accumulated_sec"`
}

func (r Run) Active() bool {
	return r.State == StateRunning || r.State == StatePaused || r.State == StateStopped
}

// Elapsed reports whole seconds counted so far.
func (r Run) Elapsed(now time.Time) int {
	if r.State == StateRunning {
		return r.Accumulated + int(now.Sub(r.StartedAt)/time.Second)
	}
	return r.Accumulated
}

// Start begins a new run from idle or resumes a paused one. The start
// instant is always reset to now; accumulated seconds carry forward on
// resume.
func Start(r Run, now time.Time, runID string) (Run, error) {
	switch r.State {
	case StateRunning:
		return Run{}, apperrors.ErrTimerRunning
	case StateStopped:
		return Run{}, apperrors.ErrRunPending
	case StatePaused:
		r.State = StateRunning
		r.StartedAt = now
		return r, nil
	default:
		return Run{
			RunID:     runID,
			State:     StateRunning,
			StartedAt: now,
		}, nil
	}
}

// Pause freezes the elapsed count.
func Pause(r Run, now time.Time) (Run, error) {
	if r.State != StateRunning {
		return Run{}, apperrors.ErrTimerNotRunning
	}
	r.Accumulated = r.Elapsed(now)
	r.State = StatePaused
	r.StartedAt = time.Time{}
	return r, nil
}

// Stop freezes the run for annotation. Stopping with nothing on the
// clock is rejected rather than producing a zero-length record.
func Stop(r Run, now time.Time) (Run, error) {
	if r.State != StateRunning && r.State != StatePaused {
		return Run{}, apperrors.ErrTimerNotRunning
	}
	elapsed := r.Elapsed(now)
	if elapsed <= 0 {
		return Run{}, apperrors.ErrNothingToRecord
	}
	r.Accumulated = elapsed
	r.State = StateStopped
	r.StartedAt = time.Time{}
	return r, nil
}
