package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"tempo/internal/modules/report/domain"
	"tempo/internal/modules/report/dto"
	reportout "tempo/internal/modules/report/port/out"
)

type ReportService struct {
	store reportout.ManifestStore
	host  reportout.Host
}

func NewReportService(store reportout.ManifestStore, host reportout.Host) *ReportService {
	return &ReportService{store: store, host: host}
}

func (s *ReportService) List(ctx context.Context) ([]dto.RendererInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RendererInfo, 0, len(manifests))
	for _, m := range manifests {
		out = append(out, dto.RendererInfo{Name: m.Name, Version: m.Version, Enabled: m.Enabled, Binary: m.Binary})
	}
	return out, nil
}

func (s *ReportService) Formats(ctx context.Context) ([]dto.FormatInfo, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return nil, err
	}
	out := []dto.FormatInfo{}
	for _, m := range manifests {
		if !m.Enabled {
			continue
		}
		if err := checksumMatches(m.Binary, m.SHA256); err != nil {
			return nil, err
		}
		formats, err := s.host.ListFormats(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("renderer %s: %w", m.Name, err)
		}
		for _, f := range formats {
			if err := f.Validate(); err != nil {
				return nil, fmt.Errorf("renderer %s: %w", m.Name, err)
			}
			out = append(out, dto.FormatInfo{
				RendererName: m.Name,
				ID:           f.ID,
				Title:        f.Title,
				Description:  f.Description,
				Extension:    f.Extension,
			})
		}
	}
	return out, nil
}

func (s *ReportService) Render(ctx context.Context, input dto.RenderInput) (dto.RenderOutput, error) {
	manifest, err := s.getRunnableManifest(ctx, input.RendererName)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	req := domain.RenderRequest{
		FormatID:     input.FormatID,
		SessionsJSON: input.SessionsJSON,
		Options:      input.Options,
	}
	if err := req.Validate(); err != nil {
		return dto.RenderOutput{}, err
	}

	formats, err := s.host.ListFormats(ctx, manifest)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	if err := requireFormat(formats, input.FormatID); err != nil {
		return dto.RenderOutput{}, err
	}

	result, err := s.host.Render(ctx, manifest, req)
	if err != nil {
		return dto.RenderOutput{}, err
	}
	return dto.RenderOutput{
		RendererName: input.RendererName,
		FormatID:     input.FormatID,
		Content:      result.Content,
		Filename:     result.Filename,
	}, nil
}

func (s *ReportService) loadValidated(ctx context.Context) ([]domain.Manifest, error) {
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	for _, m := range manifests {
		if err := m.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[m.Name]; ok {
			return nil, fmt.Errorf("duplicate renderer name: %s", m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return manifests, nil
}

func (s *ReportService) getRunnableManifest(ctx context.Context, name string) (domain.Manifest, error) {
	manifests, err := s.loadValidated(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	manifest := domain.Manifest{}
	found := false
	for _, item := range manifests {
		if item.Name == name {
			manifest = item
			found = true
			break
		}
	}
	if !found {
		return domain.Manifest{}, fmt.Errorf("renderer %q not found", name)
	}
	if !manifest.Enabled {
		return domain.Manifest{}, fmt.Errorf("%w: %s", domain.ErrRendererDisabled, name)
	}
	if err := checksumMatches(manifest.Binary, manifest.SHA256); err != nil {
		return domain.Manifest{}, err
	}
	return manifest, nil
}

func requireFormat(formats []domain.FormatDescriptor, formatID string) error {
	for _, f := range formats {
		if err := f.Validate(); err != nil {
			return err
		}
		if f.ID == formatID {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", domain.ErrFormatNotFound, formatID)
}

func checksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read renderer binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	if hex.EncodeToString(hash[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}
