package service_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tempo/internal/modules/report/domain"
	"tempo/internal/modules/report/dto"
	"tempo/internal/modules/report/service"
)

type fakeStore struct {
	manifests []domain.Manifest
	err       error
}

func (f *fakeStore) Load(context.Context) ([]domain.Manifest, error) {
	return f.manifests, f.err
}

type fakeHost struct {
	formats     []domain.FormatDescriptor
	rendered    domain.RenderResult
	renderCalls []domain.RenderRequest
}

func (f *fakeHost) CheckLifecycle(context.Context, domain.Manifest) error { return nil }

func (f *fakeHost) GetMetadata(_ context.Context, m domain.Manifest) (domain.Metadata, error) {
	return domain.Metadata{Name: m.Name, Version: m.Version}, nil
}

func (f *fakeHost) ListFormats(context.Context, domain.Manifest) ([]domain.FormatDescriptor, error) {
	return f.formats, nil
}

func (f *fakeHost) Render(_ context.Context, _ domain.Manifest, req domain.RenderRequest) (domain.RenderResult, error) {
	f.renderCalls = append(f.renderCalls, req)
	return f.rendered, nil
}

func writeBinary(t *testing.T) (string, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "csv-renderer")
	payload := []byte("not-a-real-renderer")
	if err := os.WriteFile(path, payload, 0o755); err != nil {
		t.Fatalf("write renderer binary: %v", err)
	}
	sum := sha256.Sum256(payload)
	return path, hex.EncodeToString(sum[:])
}

func TestRenderChecksThenDelegates(t *testing.T) {
	t.Parallel()
	binary, checksum := writeBinary(t)
	store := &fakeStore{manifests: []domain.Manifest{{
		Name: "csv", Version: "1.0.0", Binary: binary, SHA256: checksum, Enabled: true,
	}}}
	host := &fakeHost{
		formats:  []domain.FormatDescriptor{{ID: "csv", Title: "CSV", Extension: "csv"}},
		rendered: domain.RenderResult{Content: "timestamp,duration\n", Filename: "sessions.csv"},
	}

	svc := service.NewReportService(store, host)
	out, err := svc.Render(context.Background(), dto.RenderInput{
		RendererName: "csv",
		FormatID:     "csv",
		SessionsJSON: "[]",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.Filename != "sessions.csv" || out.Content == "" {
		t.Fatalf("render output = %+v", out)
	}
	if len(host.renderCalls) != 1 || host.renderCalls[0].SessionsJSON != "[]" {
		t.Fatalf("render calls = %+v", host.renderCalls)
	}
}

func TestRenderRejectsChecksumMismatch(t *testing.T) {
	t.Parallel()
	binary, _ := writeBinary(t)
	store := &fakeStore{manifests: []domain.Manifest{{
		Name: "csv", Version: "1.0.0", Binary: binary, SHA256: strings.Repeat("0", 64), Enabled: true,
	}}}

	svc := service.NewReportService(store, &fakeHost{})
	_, err := svc.Render(context.Background(), dto.RenderInput{RendererName: "csv", FormatID: "csv", SessionsJSON: "[]"})
	if !errors.Is(err, domain.ErrChecksumMismatch) {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
}

func TestRenderRejectsDisabledRenderer(t *testing.T) {
	t.Parallel()
	binary, checksum := writeBinary(t)
	store := &fakeStore{manifests: []domain.Manifest{{
		Name: "csv", Version: "1.0.0", Binary: binary, SHA256: checksum, Enabled: false,
	}}}

	svc := service.NewReportService(store, &fakeHost{})
	_, err := svc.Render(context.Background(), dto.RenderInput{RendererName: "csv", FormatID: "csv", SessionsJSON: "[]"})
	if !errors.Is(err, domain.ErrRendererDisabled) {
		t.Fatalf("expected disabled error, got %v", err)
	}
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	t.Parallel()
	binary, checksum := writeBinary(t)
	store := &fakeStore{manifests: []domain.Manifest{{
		Name: "csv", Version: "1.0.0", Binary: binary, SHA256: checksum, Enabled: true,
	}}}
	host := &fakeHost{formats: []domain.FormatDescriptor{{ID: "csv", Extension: "csv"}}}

	svc := service.NewReportService(store, host)
	_, err := svc.Render(context.Background(), dto.RenderInput{RendererName: "csv", FormatID: "pdf", SessionsJSON: "[]"})
	if !errors.Is(err, domain.ErrFormatNotFound) {
		t.Fatalf("expected format not found, got %v", err)
	}
}

func TestFormatsSkipsDisabledRenderers(t *testing.T) {
	t.Parallel()
	binary, checksum := writeBinary(t)
	store := &fakeStore{manifests: []domain.Manifest{
		{Name: "csv", Version: "1.0.0", Binary: binary, SHA256: checksum, Enabled: true},
		{Name: "off", Version: "1.0.0", Binary: binary, SHA256: checksum, Enabled: false},
	}}
	host := &fakeHost{formats: []domain.FormatDescriptor{{ID: "csv", Title: "CSV", Extension: "csv"}}}

	svc := service.NewReportService(store, host)
	formats, err := svc.Formats(context.Background())
	if err != nil {
		t.Fatalf("formats: %v", err)
	}
	if len(formats) != 1 || formats[0].RendererName != "csv" {
		t.Fatalf("formats = %+v", formats)
	}
}

func TestListRejectsDuplicateNames(t *testing.T) {
	t.Parallel()
	binary, checksum := writeBinary(t)
	m := domain.Manifest{Name: "csv", Version: "1.0.0", Binary: binary, SHA256: checksum, Enabled: true}
	store := &fakeStore{manifests: []domain.Manifest{m, m}}

	svc := service.NewReportService(store, &fakeHost{})
	if _, err := svc.List(context.Background()); err == nil {
		t.Fatal("expected duplicate name error")
	}
}
