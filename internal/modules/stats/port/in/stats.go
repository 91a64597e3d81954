package in

import (
	"context"

	"tempo/internal/modules/stats/dto"
)

type Usecase interface {
	Overview(ctx context.Context) (dto.Overview, error)
}
