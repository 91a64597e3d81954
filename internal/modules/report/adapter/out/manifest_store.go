package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tempo/internal/modules/report/domain"
	reportout "tempo/internal/modules/report/port/out"
)

// FileManifestStore reads renderer manifests from renderers.json in
// the plugins directory. Relative binary paths resolve against that
// directory.
type FileManifestStore struct {
	basePath string
	path     string
}

func NewFileManifestStore(basePath string) reportout.ManifestStore {
	return &FileManifestStore{basePath: basePath, path: filepath.Join(basePath, "renderers.json")}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read renderer manifest store: %w", err)
	}
	var manifests []domain.Manifest
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode renderer manifests: %w", err)
	}
	for i := range manifests {
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(s.basePath, manifests[i].Binary))
		}
	}
	return manifests, nil
}
