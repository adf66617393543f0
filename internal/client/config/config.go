package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the siteproof CLI.
//
// Fields:
//   - ServerURL: base URL of the attendance sync server.
//   - DataDir: root directory for local data; the record database and the
//     photo directory both live under it.
//   - UserID: server-side user the synced records are attributed to.
//   - SyncRetryDelay: base delay for the upload retry backoff.
type Config struct {
	ServerURL      string
	DataDir        string
	UserID         int
	SyncRetryDelay time.Duration
}

// LoadDefaults populates c with sensible defaults. DataDir falls back to the
// current directory when the user home cannot be resolved.
func (c *Config) LoadDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	c.ServerURL = "http://127.0.0.1:8080"
	c.DataDir = filepath.Join(home, ".siteproof")
	c.UserID = 1
	c.SyncRetryDelay = 500 * time.Millisecond
}

// DatabasePath is the SQLite file holding the record index.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "siteproof.db")
}

// PhotoDir is where captured attendance photos are copied to.
func (c *Config) PhotoDir() string {
	return filepath.Join(c.DataDir, "attendance_photos")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
