package usecase

import (
	"context"

	"tempo/internal/modules/report/dto"
	reportin "tempo/internal/modules/report/port/in"
	"tempo/internal/modules/report/service"
	sessionin "tempo/internal/modules/session/port/in"
)

type Interactor struct {
	svc      *service.ReportService
	sessions sessionin.Usecase
}

func NewInteractor(svc *service.ReportService, sessions sessionin.Usecase) reportin.Usecase {
	return &Interactor{svc: svc, sessions: sessions}
}

func (i *Interactor) List(ctx context.Context) ([]dto.RendererInfo, error) {
	return i.svc.List(ctx)
}

func (i *Interactor) Formats(ctx context.Context) ([]dto.FormatInfo, error) {
	return i.svc.Formats(ctx)
}

// Render exports the current session collection and hands the document
// to the renderer.
func (i *Interactor) Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	if input.SessionsJSON == "" {
		export, err := i.sessions.Export(ctx)
		if err != nil {
			return dto.RenderOutput{}, err
		}
		input.SessionsJSON = string(export.Data)
	}
	return i.svc.Render(ctx, input)
}
