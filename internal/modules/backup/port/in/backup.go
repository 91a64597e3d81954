package in

import (
	"context"

	"tempo/internal/modules/backup/dto"
)

type Usecase interface {
	// Backup exports every session and uploads the document.
	Backup(ctx context.Context) (dto.BackupOutput, error)
	// Restore downloads the remote document and replaces the local
	// collection with it.
	Restore(ctx context.Context) (dto.RestoreOutput, error)
	// Test checks connectivity and credentials without transferring
	// data.
	Test(ctx context.Context) error
}
