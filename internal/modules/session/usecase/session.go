package usecase

import (
	"context"

	"tempo/internal/modules/session/domain"
	sessiondto "tempo/internal/modules/session/dto"
	sessionin "tempo/internal/modules/session/port/in"
	"tempo/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	sessions, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toOutput(s))
	}
	return out, nil
}

func (i *Interactor) Add(ctx context.Context, input sessiondto.SessionInput) (sessiondto.SessionOutput, error) {
	session, err := i.svc.Add(ctx, domain.Session{
		Timestamp:    input.Timestamp,
		Duration:     input.Duration,
		Remark:       input.Remark,
		Location:     input.Location,
		WatchedMovie: input.WatchedMovie,
		Climax:       input.Climax,
		Rating:       input.Rating,
		Mood:         input.Mood,
		Props:        input.Props,
	})
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

// Update rewrites every field except id and timestamp.
func (i *Interactor) Update(ctx context.Context, input sessiondto.UpdateInput) (sessiondto.SessionOutput, error) {
	session, err := i.svc.Update(ctx, domain.Session{
		ID:           input.ID,
		Duration:     input.Duration,
		Remark:       input.Remark,
		Location:     input.Location,
		WatchedMovie: input.WatchedMovie,
		Climax:       input.Climax,
		Rating:       input.Rating,
		Mood:         input.Mood,
		Props:        input.Props,
	})
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) Delete(ctx context.Context, id int64) error {
	return i.svc.Delete(ctx, id)
}

func (i *Interactor) Clear(ctx context.Context) error {
	return i.svc.Clear(ctx)
}

func (i *Interactor) Import(ctx context.Context, data []byte) (sessiondto.ImportOutput, error) {
	result, err := domain.Decode(data)
	if err != nil {
		return sessiondto.ImportOutput{}, err
	}
	if err := i.svc.Replace(ctx, result.Sessions); err != nil {
		return sessiondto.ImportOutput{}, err
	}
	return sessiondto.ImportOutput{Imported: len(result.Sessions), Skipped: result.Skipped}, nil
}

func (i *Interactor) Export(ctx context.Context) (sessiondto.ExportOutput, error) {
	sessions, err := i.svc.List(ctx)
	if err != nil {
		return sessiondto.ExportOutput{}, err
	}
	payload, err := domain.Encode(sessions)
	if err != nil {
		return sessiondto.ExportOutput{}, err
	}
	return sessiondto.ExportOutput{Data: payload, Count: len(sessions)}, nil
}

func toOutput(s domain.Session) sessiondto.SessionOutput {
	return sessiondto.SessionOutput{
		ID:           s.ID,
		Timestamp:    s.Timestamp,
		Duration:     s.Duration,
		Remark:       s.Remark,
		Location:     s.Location,
		WatchedMovie: s.WatchedMovie,
		Climax:       s.Climax,
		Rating:       s.Rating,
		Mood:         s.Mood,
		Props:        s.Props,
	}
}
