package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tempo/internal/modules/timer/domain"
	timerout "tempo/internal/modules/timer/port/out"
	apperrors "tempo/internal/platform/errors"
)

type FileRunStore struct {
	path string
}

func NewFileRunStore(path string) timerout.RunStore {
	return &FileRunStore{path: path}
}

func (s *FileRunStore) Save(_ context.Context, run domain.Run) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create timer dir: %w", err)
	}
	payload, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal timer run: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write timer run: %w", err)
	}
	return nil
}

func (s *FileRunStore) Load(_ context.Context) (domain.Run, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Run{}, apperrors.ErrNoActiveRun
		}
		return domain.Run{}, fmt.Errorf("read timer run: %w", err)
	}
	run := domain.Run{}
	if err := json.Unmarshal(payload, &run); err != nil {
		return domain.Run{}, fmt.Errorf("decode timer run: %w", err)
	}
	if run.RunID == "" || !run.Active() {
		return domain.Run{}, apperrors.ErrNoActiveRun
	}
	return run, nil
}

func (s *FileRunStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear timer run: %w", err)
	}
	return nil
}
