package geodata

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultUnits is the length unit assumed when the workspace config does
// not set one.
const DefaultUnits = "nm"

// Config represents a workspace.yaml configuration file.
// It carries the pipeline-level settings that are not part of any single
// geometry document.
type Config struct {
	// Name labels the workspace in logs and exported metadata.
	Name string `yaml:"name,omitempty"`

	// OutputDir is the directory relative export paths resolve against.
	OutputDir string `yaml:"output_dir,omitempty"`

	// Units is the length unit all coordinates are expressed in.
	// One of "nm", "um", "mm". Default: "nm".
	Units string `yaml:"units,omitempty"`

	// LogLevel sets workspace logging verbosity.
	// One of "debug", "info", "warn", "error". Default: "info".
	LogLevel string `yaml:"log_level,omitempty"`
}

// LoadConfig reads and parses a workspace.yaml file from the given path.
// If the path is a directory, it looks for workspace.yaml or workspace.yml
// in that directory. The parsed config is validated before it is returned.
func LoadConfig(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	configPath := path
	if info.IsDir() {
		yamlPath := filepath.Join(path, "workspace.yaml")
		if _, err := os.Stat(yamlPath); err == nil {
			configPath = yamlPath
		} else {
			ymlPath := filepath.Join(path, "workspace.yml")
			if _, err := os.Stat(ymlPath); err == nil {
				configPath = ymlPath
			} else {
				return nil, fmt.Errorf("no workspace.yaml or workspace.yml found in %s", path)
			}
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the config for unsupported values. Empty fields are
// valid; they fall back to defaults.
func (c *Config) Validate() error {
	switch c.Units {
	case "", "nm", "um", "mm":
	default:
		return fmt.Errorf("unsupported units %q (want nm, um, or mm)", c.Units)
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.LogLevel)
	}

	return nil
}

// GetUnits returns the configured units or the default value.
func (c *Config) GetUnits() string {
	if c == nil || c.Units == "" {
		return DefaultUnits
	}
	return c.Units
}

// GetLogLevel returns the configured slog level or the default value.
func (c *Config) GetLogLevel() slog.Level {
	if c == nil {
		return slog.LevelInfo
	}
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
