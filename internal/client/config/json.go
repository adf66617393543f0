package config

import (
	"encoding/json"
	"os"
	"time"

	"siteproof/internal/flagx"
	"siteproof/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "500ms"
// or as integer nanoseconds. After parsing, values are copied into the runtime
// Config.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	DataDir        string         `json:"data_dir"`
	UserID         int            `json:"user_id"`
	SyncRetryDelay timex.Duration `json:"sync_retry_delay"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. When no file is given the function returns without
// touching cfg. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.UserID != 0 {
		cfg.UserID = jc.UserID
	}
	if jc.SyncRetryDelay.Duration != 0 {
		cfg.SyncRetryDelay = time.Duration(jc.SyncRetryDelay.Duration)
	}
}
