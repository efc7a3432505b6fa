package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the user-facing YAML configuration. It only carries
// presentation and logging settings: the metronome counters never depend
// on it and are not persisted here.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file exists or the file
// cannot be read. Load failures always fall back here silently from the
// user's point of view.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  420,
			Height: 360,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Path returns the config file location for the given application ID,
// under the platform user config directory.
func Path(appID string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(base, appID, "config.yaml"), nil
}

// LoadFile reads and validates a config file. Callers are expected to
// substitute Default() when an error is returned.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

// normalize clamps nonsense values back to defaults so a partial or
// hand-edited file cannot produce an unusable window.
func (c *Config) normalize() {
	def := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}
