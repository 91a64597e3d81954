package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tempo/internal/modules/backup/usecase"
	sessionout "tempo/internal/modules/session/adapter/out"
	sessiondto "tempo/internal/modules/session/dto"
	sessionin "tempo/internal/modules/session/port/in"
	sessionservice "tempo/internal/modules/session/service"
	sessionusecase "tempo/internal/modules/session/usecase"
	apperrors "tempo/internal/platform/errors"
)

type fakeRemote struct {
	stored    []byte
	probeErr  error
	uploads   int
	downloads int
}

func (f *fakeRemote) Probe(context.Context) error { return f.probeErr }

func (f *fakeRemote) Upload(_ context.Context, data []byte) error {
	f.uploads++
	f.stored = append([]byte(nil), data...)
	return nil
}

func (f *fakeRemote) Download(context.Context) ([]byte, error) {
	f.downloads++
	if f.stored == nil {
		return nil, apperrors.ErrBackupNotFound
	}
	return f.stored, nil
}

func newSessions(t *testing.T) sessionin.Usecase {
	t.Helper()
	store, err := sessionout.NewSQLiteStore(filepath.Join(t.TempDir(), "tempo.db"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return sessionusecase.NewInteractor(sessionservice.NewSessionService(store))
}

func TestNotConfiguredFailsFast(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(newSessions(t), nil)
	ctx := context.Background()

	if _, err := uc.Backup(ctx); !errors.Is(err, apperrors.ErrNotConfigured) {
		t.Fatalf("backup: %v", err)
	}
	if _, err := uc.Restore(ctx); !errors.Is(err, apperrors.ErrNotConfigured) {
		t.Fatalf("restore: %v", err)
	}
	if err := uc.Test(ctx); !errors.Is(err, apperrors.ErrNotConfigured) {
		t.Fatalf("test: %v", err)
	}
}

func TestBackupRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sessions := newSessions(t)
	remote := &fakeRemote{}
	uc := usecase.NewInteractor(sessions, remote)

	ts := time.Date(2024, 1, 15, 20, 30, 0, 0, time.Local)
	if _, err := sessions.Add(ctx, sessiondto.SessionInput{Timestamp: ts, Duration: 925, Remark: "测试"}); err != nil {
		t.Fatalf("add: %v", err)
	}

	backup, err := uc.Backup(ctx)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if backup.Count != 1 || remote.uploads != 1 {
		t.Fatalf("backup = %+v, uploads = %d", backup, remote.uploads)
	}

	// Restore is destructive: local edits made after the backup are
	// replaced by the remote document.
	if err := sessions.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := sessions.Add(ctx, sessiondto.SessionInput{Timestamp: ts.Add(time.Hour), Duration: 1}); err != nil {
		t.Fatalf("add local edit: %v", err)
	}

	restored, err := uc.Restore(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Imported != 1 || restored.Skipped != 0 {
		t.Fatalf("restore = %+v", restored)
	}

	list, err := sessions.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].Duration != 925 || list[0].Remark != "测试" {
		t.Fatalf("restored sessions = %+v", list)
	}
}

func TestRestoreWithoutBackup(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(newSessions(t), &fakeRemote{})
	if _, err := uc.Restore(context.Background()); !errors.Is(err, apperrors.ErrBackupNotFound) {
		t.Fatalf("expected ErrBackupNotFound, got %v", err)
	}
}

func TestProbePassthrough(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(newSessions(t), &fakeRemote{})
	if err := uc.Test(context.Background()); err != nil {
		t.Fatalf("test: %v", err)
	}

	boom := errors.New("unreachable")
	failing := usecase.NewInteractor(newSessions(t), &fakeRemote{probeErr: boom})
	if err := failing.Test(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected probe error, got %v", err)
	}
}
