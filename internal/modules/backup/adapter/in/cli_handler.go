package in

import (
	"context"

	backupdto "tempo/internal/modules/backup/dto"
	backupin "tempo/internal/modules/backup/port/in"
)

type CLIHandler struct {
	usecase backupin.Usecase
}

func NewCLIHandler(usecase backupin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Backup(ctx context.Context) (backupdto.BackupOutput, error) {
	return h.usecase.Backup(ctx)
}

func (h CLIHandler) Restore(ctx context.Context) (backupdto.RestoreOutput, error) {
	return h.usecase.Restore(ctx)
}

func (h CLIHandler) Test(ctx context.Context) error {
	return h.usecase.Test(ctx)
}
