package out

import (
	"context"

	"tempo/internal/modules/timer/domain"
)

// RunStore persists the single in-progress run so it survives process
// exits. Load returns ErrNoActiveRun when nothing is in flight.
type RunStore interface {
	Save(ctx context.Context, run domain.Run) error
	Load(ctx context.Context) (domain.Run, error)
	Clear(ctx context.Context) error
}
