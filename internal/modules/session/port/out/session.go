package out

import (
	"context"

	"tempo/internal/modules/session/domain"
)

// Store is the single source of truth for persisted sessions. All
// operations on one store instance are serialized with respect to each
// other; no cross-process guarantee is made.
type Store interface {
	// LoadAll returns the full collection, most recent first.
	LoadAll(ctx context.Context) ([]domain.Session, error)
	// ReplaceAll atomically swaps the whole collection. Incoming ids
	// are ignored; the store assigns fresh ones. ReplaceAll(nil) is
	// clear-all.
	ReplaceAll(ctx context.Context, sessions []domain.Session) error
	// Append inserts one record and returns the assigned id.
	Append(ctx context.Context, session domain.Session) (int64, error)
	// Update rewrites the record with the given session's id.
	Update(ctx context.Context, session domain.Session) error
	// Remove deletes exactly one record by id.
	Remove(ctx context.Context, id int64) error
}
