package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Config holds the persistent defaults a user can set once instead of
// repeating flags. Every field is optional; flags override all of them.
type Config struct {
	// ToolPath points at a picotool binary outside the search path.
	ToolPath string `json:"tool_path,omitempty"`
	// TimeoutMS bounds external tool invocations, in milliseconds.
	TimeoutMS int `json:"timeout_ms,omitempty"`
	// SearchRoots are extra directories scanned for board volumes.
	SearchRoots []string `json:"search_roots,omitempty"`
	// VendorIDs are extra accepted USB vendor ids (hex, e.g. "239A").
	VendorIDs []string `json:"vendor_ids,omitempty"`
	// LogLevel is a logrus level name ("debug", "info", "warn", "error").
	LogLevel string `json:"log_level,omitempty"`
}

var config = &Config{}

func configFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "picoctl", "config.json"), nil
}

// InitConfig loads the config file if one exists. A missing file is the
// normal first-run state; a corrupt file is logged and replaced by defaults.
func InitConfig() error {
	config = &Config{}

	path, err := configFile()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, config); err != nil {
		log.Warnf("config file %s is corrupted, using defaults", path)
		config = &Config{}
	}
	return nil
}

func GetConfig() *Config {
	return config
}

// SaveConfig writes the current config back to disk, creating the config
// directory on first use.
func SaveConfig() error {
	path, err := configFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
