package out

import (
	"context"

	"tempo/internal/modules/report/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

type Host interface {
	// CheckLifecycle starts the renderer and performs one metadata
	// round trip.
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	ListFormats(ctx context.Context, manifest domain.Manifest) ([]domain.FormatDescriptor, error)
	Render(ctx context.Context, manifest domain.Manifest, input domain.RenderRequest) (domain.RenderResult, error)
}
