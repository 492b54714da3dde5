package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Save    SaveConfig    `yaml:"save"`
	Logging LoggingConfig `yaml:"logging"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

type SaveConfig struct {
	// Backend is "file" or "sqlite".
	Backend string `yaml:"backend"`
	// Dir is the save directory for the file backend.
	Dir string `yaml:"dir"`
	// Path is the database path for the sqlite backend.
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "ld-game-engine",
			Width:  640,
			Height: 480,
			TPS:    60,
		},
		Save: SaveConfig{
			Backend: "file",
			Dir:     "saves",
			Path:    "saves.db",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a config file, filling unset fields from defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %v", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values, naming the offending field.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window.width and window.height must be positive")
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window.tps must be positive")
	}
	switch c.Save.Backend {
	case "file", "sqlite":
	default:
		return fmt.Errorf("save.backend must be \"file\" or \"sqlite\", got %q", c.Save.Backend)
	}
	return nil
}
