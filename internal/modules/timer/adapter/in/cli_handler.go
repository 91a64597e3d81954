package in

import (
	"context"

	timerdto "tempo/internal/modules/timer/dto"
	timerin "tempo/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context) (timerdto.StatusOutput, error) {
	return h.usecase.Start(ctx)
}

func (h CLIHandler) Pause(ctx context.Context) (timerdto.StatusOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) (timerdto.StatusOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (timerdto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Commit(ctx context.Context, input timerdto.AnnotateInput) (timerdto.CommitOutput, error) {
	return h.usecase.Commit(ctx, input)
}

func (h CLIHandler) Discard(ctx context.Context) error {
	return h.usecase.Discard(ctx)
}
