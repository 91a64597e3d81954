package in

import (
	"context"

	"tempo/internal/modules/report/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.RendererInfo, error)
	// Formats lists every export format the enabled renderers offer.
	Formats(ctx context.Context) ([]dto.FormatInfo, error)
	Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error)
}
