package in

import (
	"context"

	sessiondto "tempo/internal/modules/session/dto"
	sessionin "tempo/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]sessiondto.SessionOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Add(ctx context.Context, input sessiondto.SessionInput) (sessiondto.SessionOutput, error) {
	return h.usecase.Add(ctx, input)
}

func (h CLIHandler) Update(ctx context.Context, input sessiondto.UpdateInput) (sessiondto.SessionOutput, error) {
	return h.usecase.Update(ctx, input)
}

func (h CLIHandler) Delete(ctx context.Context, id int64) error {
	return h.usecase.Delete(ctx, id)
}

func (h CLIHandler) Clear(ctx context.Context) error {
	return h.usecase.Clear(ctx)
}

func (h CLIHandler) Import(ctx context.Context, data []byte) (sessiondto.ImportOutput, error) {
	return h.usecase.Import(ctx, data)
}

func (h CLIHandler) Export(ctx context.Context) (sessiondto.ExportOutput, error) {
	return h.usecase.Export(ctx)
}
