package config

import (
	"fmt"
	"os"

	"ogTemplate/internal/logger"

	"github.com/BurntSushi/toml"
)

const (
	DefaultPath     = "configs/config.toml"
	DefaultLogLevel = "info"
)

type Config struct {
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type OutputConfig struct {
	// File is the workbook path; empty leaves the choice to the template builder.
	File string `toml:"file"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the configuration used when no config file is present.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// LoadConfig loads configuration from the specified config file path.
// A missing file is not an error; defaults are returned and nothing is written.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Debug("No config file, using defaults", "path", configPath)
		return Default(), nil
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}

	// Set defaults if missing
	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}
