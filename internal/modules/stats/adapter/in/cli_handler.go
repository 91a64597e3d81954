package in

import (
	"context"

	statsdto "tempo/internal/modules/stats/dto"
	statsin "tempo/internal/modules/stats/port/in"
)

type CLIHandler struct {
	usecase statsin.Usecase
}

func NewCLIHandler(usecase statsin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Overview(ctx context.Context) (statsdto.Overview, error) {
	return h.usecase.Overview(ctx)
}
