package domain

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrRendererDisabled = errors.New("renderer is disabled")
	ErrChecksumMismatch = errors.New("renderer checksum mismatch")
	ErrFormatNotFound   = errors.New("renderer format not found")
	ErrRendererTimeout  = errors.New("renderer timeout")
)

var sha256Pattern = regexp.MustCompile(`^[a-f0-9]{64}$`)

// Manifest describes one out-of-process renderer binary.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Binary  string `json:"binary"`
	SHA256  string `json:"sha256"`
	Enabled bool   `json:"enabled"`
}

func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("renderer name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("renderer version is required")
	}
	if m.Binary == "" {
		return fmt.Errorf("renderer binary path is required")
	}
	if !sha256Pattern.MatchString(m.SHA256) {
		return fmt.Errorf("renderer sha256 must be lowercase 64-char hex")
	}
	return nil
}

type Metadata struct {
	Name    string
	Version string
}

// FormatDescriptor is one export format a renderer advertises.
type FormatDescriptor struct {
	ID          string
	Title       string
	Description string
	Extension   string
}

func (d FormatDescriptor) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("format id is required")
	}
	if d.Extension == "" {
		return fmt.Errorf("format extension is required")
	}
	return nil
}

// RenderRequest carries the full session document to a renderer.
type RenderRequest struct {
	FormatID     string
	SessionsJSON string
	Options      map[string]string
}

func (r RenderRequest) Validate() error {
	if r.FormatID == "" {
		return fmt.Errorf("format id is required")
	}
	if r.SessionsJSON == "" {
		return fmt.Errorf("sessions document is required")
	}
	return nil
}

type RenderResult struct {
	Content  string
	Filename string
}
