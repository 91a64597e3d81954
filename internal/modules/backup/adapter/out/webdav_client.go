package out

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tempo/internal/modules/backup/domain"
	backupout "tempo/internal/modules/backup/port/out"
	apperrors "tempo/internal/platform/errors"
)

const requestTimeout = 30 * time.Second

// WebDavClient speaks just enough WebDAV to keep one backup file on a
// remote server: PROPFIND to probe, PUT to upload, GET to download.
type WebDavClient struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

func NewWebDavClient(baseURL, username, password string) backupout.RemoteStore {
	return &WebDavClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		client:   &http.Client{Timeout: requestTimeout},
	}
}

func (c *WebDavClient) Probe(ctx context.Context) error {
	req, err := c.newRequest(ctx, "PROPFIND", c.baseURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Depth", "0")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("webdav probe: %w", err)
	}
	defer resp.Body.Close()

	// 207 Multi-Status is the normal PROPFIND answer.
	if success(resp.StatusCode) || resp.StatusCode == http.StatusMultiStatus {
		return nil
	}
	return &domain.HTTPError{Op: "probe", Code: resp.StatusCode}
}

func (c *WebDavClient) Upload(ctx context.Context, data []byte) error {
	req, err := c.newRequest(ctx, http.MethodPut, c.fileURL(), bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("webdav upload: %w", err)
	}
	defer resp.Body.Close()

	if success(resp.StatusCode) ||
		resp.StatusCode == http.StatusCreated ||
		resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return &domain.HTTPError{Op: "upload", Code: resp.StatusCode}
}

func (c *WebDavClient) Download(ctx context.Context) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.fileURL(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webdav download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrBackupNotFound
	}
	if !success(resp.StatusCode) {
		return nil, &domain.HTTPError{Op: "download", Code: resp.StatusCode}
	}
	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("webdav download: %w", err)
	}
	return payload, nil
}

func (c *WebDavClient) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("webdav request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	return req, nil
}

func (c *WebDavClient) fileURL() string {
	return c.baseURL + "/" + domain.RemoteFilename
}

func success(code int) bool {
	return code >= 200 && code < 300
}
