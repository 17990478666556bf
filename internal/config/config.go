// Package config reads run settings from the environment.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"

	"regions/internal/storage"
)

const (
	EnvDataDir    = "REGIONS_DATA_DIR"
	EnvCollection = "REGIONS_COLLECTION"
	EnvLogLevel   = "REGIONS_LOG_LEVEL"
)

// Config holds settings that are not part of the command line
type Config struct {
	// DataDir is the PocketBase data directory. Empty disables archiving.
	DataDir    string
	Collection string
	LogLevel   zapcore.Level
}

// ArchiveEnabled reports whether enriched rows should be archived
func (c Config) ArchiveEnabled() bool {
	return c.DataDir != ""
}

// FromEnv reads the configuration from the process environment
func FromEnv() (Config, error) {
	return Load(os.Getenv)
}

// Load reads the configuration using getenv, applying defaults for unset
// values
func Load(getenv func(string) string) (Config, error) {
	cfg := Config{
		DataDir:    getenv(EnvDataDir),
		Collection: getenv(EnvCollection),
		LogLevel:   zapcore.WarnLevel,
	}
	if cfg.Collection == "" {
		cfg.Collection = storage.DefaultCollection
	}
	if level := getenv(EnvLogLevel); level != "" {
		l, err := zapcore.ParseLevel(level)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = l
	}
	return cfg, nil
}
