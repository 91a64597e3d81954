package in

import (
	"context"

	"tempo/internal/modules/timer/dto"
)

type Usecase interface {
	// Start begins a run from idle or resumes a paused one.
	Start(ctx context.Context) (dto.StatusOutput, error)
	Pause(ctx context.Context) (dto.StatusOutput, error)
	// Stop freezes a nonzero run for annotation.
	Stop(ctx context.Context) (dto.StatusOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	// Commit records the stopped run as a session and returns to idle.
	Commit(ctx context.Context, input dto.AnnotateInput) (dto.CommitOutput, error)
	// Discard drops the stopped run without recording anything.
	Discard(ctx context.Context) error
}
