package usecase

import (
	"context"
	"errors"

	sessiondto "tempo/internal/modules/session/dto"
	sessionin "tempo/internal/modules/session/port/in"
	"tempo/internal/modules/timer/domain"
	timerdto "tempo/internal/modules/timer/dto"
	timerin "tempo/internal/modules/timer/port/in"
	timerout "tempo/internal/modules/timer/port/out"
	"tempo/internal/modules/timer/service"
	apperrors "tempo/internal/platform/errors"
)

type Interactor struct {
	svc      *service.TimerService
	store    timerout.RunStore
	sessions sessionin.Usecase
}

func NewInteractor(svc *service.TimerService, store timerout.RunStore, sessions sessionin.Usecase) timerin.Usecase {
	return &Interactor{svc: svc, store: store, sessions: sessions}
}

func (i *Interactor) Start(ctx context.Context) (timerdto.StatusOutput, error) {
	run, err := i.loadOrIdle(ctx)
	if err != nil {
		return timerdto.StatusOutput{}, err
	}
	run, err = i.svc.Start(run)
	if err != nil {
		return timerdto.StatusOutput{}, err
	}
	if err := i.store.Save(ctx, run); err != nil {
		return timerdto.StatusOutput{}, err
	}
	return i.status(run), nil
}

func (i *Interactor) Pause(ctx context.Context) (timerdto.StatusOutput, error) {
	run, err := i.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveRun) {
			return timerdto.StatusOutput{}, apperrors.ErrTimerNotRunning
		}
		return timerdto.StatusOutput{}, err
	}
	run, err = i.svc.Pause(run)
	if err != nil {
		return timerdto.StatusOutput{}, err
	}
	if err := i.store.Save(ctx, run); err != nil {
		return timerdto.StatusOutput{}, err
	}
	return i.status(run), nil
}

func (i *Interactor) Stop(ctx context.Context) (timerdto.StatusOutput, error) {
	run, err := i.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveRun) {
			return timerdto.StatusOutput{}, apperrors.ErrTimerNotRunning
		}
		return timerdto.StatusOutput{}, err
	}
	run, err = i.svc.Stop(run)
	if err != nil {
		return timerdto.StatusOutput{}, err
	}
	if err := i.store.Save(ctx, run); err != nil {
		return timerdto.StatusOutput{}, err
	}
	return i.status(run), nil
}

func (i *Interactor) Status(ctx context.Context) (timerdto.StatusOutput, error) {
	run, err := i.loadOrIdle(ctx)
	if err != nil {
		return timerdto.StatusOutput{}, err
	}
	return i.status(run), nil
}

func (i *Interactor) Commit(ctx context.Context, input timerdto.AnnotateInput) (timerdto.CommitOutput, error) {
	run, err := i.pending(ctx)
	if err != nil {
		return timerdto.CommitOutput{}, err
	}

	session, err := i.sessions.Add(ctx, sessiondto.SessionInput{
		Timestamp:    i.svc.Now(),
		Duration:     run.Accumulated,
		Remark:       input.Remark,
		Location:     input.Location,
		WatchedMovie: input.WatchedMovie,
		Climax:       input.Climax,
		Rating:       input.Rating,
		Mood:         input.Mood,
		Props:        input.Props,
	})
	if err != nil {
		return timerdto.CommitOutput{}, err
	}
	if err := i.store.Clear(ctx); err != nil {
		return timerdto.CommitOutput{}, err
	}
	return timerdto.CommitOutput{SessionID: session.ID, DurationSec: session.Duration}, nil
}

func (i *Interactor) Discard(ctx context.Context) error {
	if _, err := i.pending(ctx); err != nil {
		return err
	}
	return i.store.Clear(ctx)
}

func (i *Interactor) loadOrIdle(ctx context.Context) (domain.Run, error) {
	run, err := i.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveRun) {
			return domain.Run{State: domain.StateIdle}, nil
		}
		return domain.Run{}, err
	}
	return run, nil
}

func (i *Interactor) pending(ctx context.Context) (domain.Run, error) {
	run, err := i.store.Load(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoActiveRun) {
			return domain.Run{}, apperrors.ErrNoPendingRun
		}
		return domain.Run{}, err
	}
	if run.State != domain.StateStopped {
		return domain.Run{}, apperrors.ErrNoPendingRun
	}
	return run, nil
}

func (i *Interactor) status(run domain.Run) timerdto.StatusOutput {
	state := run.State
	if state == "" {
		state = domain.StateIdle
	}
	return timerdto.StatusOutput{
		State:      string(state),
		RunID:      run.RunID,
		ElapsedSec: i.svc.Elapsed(run),
	}
}
