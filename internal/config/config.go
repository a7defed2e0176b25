// Package config loads the CLI configuration file.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// Config is the escp CLI configuration.
type Config struct {
	Device DeviceConfig `toml:"device"`
}

// DeviceConfig describes the printer device.
type DeviceConfig struct {
	// Path is the printer device node.
	Path string `toml:"path"`

	// StatusTimeoutMS is how long a status query waits for the printer
	// to answer, in milliseconds.
	StatusTimeoutMS int `toml:"status_timeout_ms"`

	// MaxGraphicsWidth is the graphics width limit in dots.
	MaxGraphicsWidth int `toml:"max_graphics_width"`
}

// StatusTimeout returns the status query timeout as a duration.
func (d DeviceConfig) StatusTimeout() time.Duration {
	return time.Duration(d.StatusTimeoutMS) * time.Millisecond
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Device: DeviceConfig{
			Path:             "/dev/usb/lp0",
			StatusTimeoutMS:  1000,
			MaxGraphicsWidth: 1440,
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.config/escp.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "escp.toml"
	}
	return filepath.Join(home, ".config", "escp.toml")
}

// Load reads the config file at path, falling back to defaults if the
// file does not exist. Fields absent from the file keep their default
// values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}
