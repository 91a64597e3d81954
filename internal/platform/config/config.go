package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WebDav holds the remote backup endpoint. All three fields must be set
// before backup operations are allowed to touch the network.
type WebDav struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

func (w WebDav) Configured() bool {
	return w.URL != "" && w.Username != "" && w.Password != ""
}

type Config struct {
	DataDir     string `yaml:"-"`
	DBPath      string `yaml:"-"`
	TimerPath   string `yaml:"-"`
	PluginsPath string `yaml:"-"`

	WebDav WebDav `yaml:"webdav"`
}

// New resolves paths under dataDir and merges settings from
// <dataDir>/config.yaml when present. A missing settings file is not an
// error; it only leaves the backup target unconfigured.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	cfg := Config{
		DataDir:     dataDir,
		DBPath:      filepath.Join(dataDir, "tempo.db"),
		TimerPath:   filepath.Join(dataDir, "active-timer.json"),
		PluginsPath: filepath.Join(dataDir, "plugins"),
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DefaultDataDir is ~/.config/tempo, overridable with --data.
func DefaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "tempo")
	}
	return ".tempo"
}
