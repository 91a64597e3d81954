package domain_test

import (
	"errors"
	"testing"
	"time"

	"tempo/internal/modules/timer/domain"
	apperrors "tempo/internal/platform/errors"
)

var base = time.Date(2024, 5, 20, 12, 0, 0, 0, time.Local)

func TestStartPauseResumeStopArithmetic(t *testing.T) {
	t.Parallel()

	run, err := domain.Start(domain.Run{}, base, "run-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	// 10 seconds running, then pause.
	run, err = domain.Pause(run, base.Add(10*time.Second))
	if err != nil {
		t.Fatalf("pause: %v", err)
	}
	if got := run.Elapsed(base.Add(99 * time.Hour)); got != 10 {
		t.Fatalf("paused elapsed must be frozen at 10, got %d", got)
	}

	// Resume much later, run 5 more seconds.
	run, err = domain.Start(run, base.Add(1*time.Hour), "ignored")
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if run.RunID != "run-1" {
		t.Fatalf("resume must keep the run id, got %s", run.RunID)
	}

	run, err = domain.Stop(run, base.Add(1*time.Hour+5*time.Second))
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if run.State != domain.StateStopped {
		t.Fatalf("expected stopped state, got %s", run.State)
	}
	if got := run.Elapsed(base.Add(2 * time.Hour)); got != 15 {
		t.Fatalf("elapsed = %d, want 15", got)
	}
}

func TestElapsedIgnoresTickCadence(t *testing.T) {
	t.Parallel()
	run, err := domain.Start(domain.Run{}, base, "run-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	// No intermediate observations at all; a single late read still
	// reports the full wall-clock span.
	if got := run.Elapsed(base.Add(925 * time.Second)); got != 925 {
		t.Fatalf("elapsed = %d, want 925", got)
	}
}

func TestStopAtZeroIsRejected(t *testing.T) {
	t.Parallel()
	run, err := domain.Start(domain.Run{}, base, "run-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := domain.Stop(run, base); !errors.Is(err, apperrors.ErrNothingToRecord) {
		t.Fatalf("expected ErrNothingToRecord, got %v", err)
	}
}

func TestInvalidTransitions(t *testing.T) {
	t.Parallel()

	if _, err := domain.Pause(domain.Run{}, base); !errors.Is(err, apperrors.ErrTimerNotRunning) {
		t.Fatalf("pause idle: %v", err)
	}
	if _, err := domain.Stop(domain.Run{}, base); !errors.Is(err, apperrors.ErrTimerNotRunning) {
		t.Fatalf("stop idle: %v", err)
	}

	running, err := domain.Start(domain.Run{}, base, "run-1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := domain.Start(running, base, "run-2"); !errors.Is(err, apperrors.ErrTimerRunning) {
		t.Fatalf("double start: %v", err)
	}

	stopped, err := domain.Stop(running, base.Add(time.Second))
	if err != nil {
		t.Fatalf("stop: %v", err)
	}
	if _, err := domain.Start(stopped, base, "run-3"); !errors.Is(err, apperrors.ErrRunPending) {
		t.Fatalf("start over pending run: %v", err)
	}
	if _, err := domain.Pause(stopped, base); !errors.Is(err, apperrors.ErrTimerNotRunning) {
		t.Fatalf("pause stopped run: %v", err)
	}
}
