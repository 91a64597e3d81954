package usecase

import (
	"context"

	backupdto "tempo/internal/modules/backup/dto"
	backupin "tempo/internal/modules/backup/port/in"
	backupout "tempo/internal/modules/backup/port/out"
	sessionin "tempo/internal/modules/session/port/in"
	apperrors "tempo/internal/platform/errors"
)

type Interactor struct {
	sessions sessionin.Usecase
	remote   backupout.RemoteStore
}

// NewInteractor wires the backup flows. remote may be nil when no
// server is configured; every operation then fails fast with
// ErrNotConfigured.
func NewInteractor(sessions sessionin.Usecase, remote backupout.RemoteStore) backupin.Usecase {
	return &Interactor{sessions: sessions, remote: remote}
}

func (i *Interactor) Backup(ctx context.Context) (backupdto.BackupOutput, error) {
	if i.remote == nil {
		return backupdto.BackupOutput{}, apperrors.ErrNotConfigured
	}
	export, err := i.sessions.Export(ctx)
	if err != nil {
		return backupdto.BackupOutput{}, err
	}
	if err := i.remote.Upload(ctx, export.Data); err != nil {
		return backupdto.BackupOutput{}, err
	}
	return backupdto.BackupOutput{Count: export.Count, Bytes: len(export.Data)}, nil
}

func (i *Interactor) Restore(ctx context.Context) (backupdto.RestoreOutput, error) {
	if i.remote == nil {
		return backupdto.RestoreOutput{}, apperrors.ErrNotConfigured
	}
	payload, err := i.remote.Download(ctx)
	if err != nil {
		return backupdto.RestoreOutput{}, err
	}
	imported, err := i.sessions.Import(ctx, payload)
	if err != nil {
		return backupdto.RestoreOutput{}, err
	}
	return backupdto.RestoreOutput{Imported: imported.Imported, Skipped: imported.Skipped}, nil
}

func (i *Interactor) Test(ctx context.Context) error {
	if i.remote == nil {
		return apperrors.ErrNotConfigured
	}
	return i.remote.Probe(ctx)
}
