// Package daemon manages the taskdeck server lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all server configuration.
type Config struct {
	API       APIConfig       `toml:"api"`
	Store     StoreConfig     `toml:"store"`
	Telemetry TelemetryConfig `toml:"telemetry"`
}

// APIConfig controls the HTTP server.
type APIConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StoreConfig selects and configures the task store backend.
type StoreConfig struct {
	// Backend is one of "mongo", "sqlite", "memory".
	Backend    string `toml:"backend"`
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
	// Dir is where the sqlite backend keeps its database file.
	Dir string `toml:"dir"`
}

// TelemetryConfig controls the /metrics endpoint.
type TelemetryConfig struct {
	Prometheus bool `toml:"prometheus"`
}

// DefaultConfig returns the fixed defaults.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host: "127.0.0.1",
			Port: 8640,
		},
		Store: StoreConfig{
			Backend:    "mongo",
			URI:        "mongodb://127.0.0.1:27017",
			Database:   "taskdeck",
			Collection: "tasks",
			Dir:        taskdeckHome(),
		},
	}
}

// LoadConfig reads config from ~/.taskdeck/config.toml, falling back to
// defaults, then applies environment overrides (TASKDECK_STORE_URI,
// TASKDECK_PORT).
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := filepath.Join(taskdeckHome(), "config.toml")

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if uri := os.Getenv("TASKDECK_STORE_URI"); uri != "" {
		cfg.Store.URI = uri
	}
	if port := os.Getenv("TASKDECK_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return cfg, fmt.Errorf("parse TASKDECK_PORT: %w", err)
		}
		cfg.API.Port = p
	}

	return cfg, nil
}

// SaveConfig writes the config to ~/.taskdeck/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(taskdeckHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// taskdeckHome returns the taskdeck data directory.
func taskdeckHome() string {
	if env := os.Getenv("TASKDECK_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".taskdeck")
}
