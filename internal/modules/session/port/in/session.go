package in

import (
	"context"

	"tempo/internal/modules/session/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.SessionOutput, error)
	Add(ctx context.Context, input dto.SessionInput) (dto.SessionOutput, error)
	Update(ctx context.Context, input dto.UpdateInput) (dto.SessionOutput, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
	// Import tolerantly decodes a session document and replaces the
	// whole collection with it.
	Import(ctx context.Context, data []byte) (dto.ImportOutput, error)
	// Export encodes the full collection in the canonical format.
	Export(ctx context.Context) (dto.ExportOutput, error)
}
