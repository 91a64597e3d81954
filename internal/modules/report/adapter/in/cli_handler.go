package in

import (
	"context"

	reportdto "tempo/internal/modules/report/dto"
	reportin "tempo/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]reportdto.RendererInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Formats(ctx context.Context) ([]reportdto.FormatInfo, error) {
	return h.usecase.Formats(ctx)
}

func (h CLIHandler) Render(ctx context.Context, input reportdto.RenderInput) (reportdto.RenderOutput, error) {
	return h.usecase.Render(ctx, input)
}
