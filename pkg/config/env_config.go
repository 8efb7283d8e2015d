// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvironmentConfig holds deployment-level settings read from FLATTOP_*
// environment variables. These override the file-based GameConfig so a
// session can be tuned without editing JSON.
type EnvironmentConfig struct {
	UpdateRate  int     // simulation ticks per second for headless drivers
	WorldSize   float64 // world extent used by renderers
	MaxAircraft int
	SlotPolicy  SlotPolicy
}

// DefaultEnvironmentConfig returns the settings used when no
// environment variables are set.
func DefaultEnvironmentConfig() *EnvironmentConfig {
	return &EnvironmentConfig{
		UpdateRate:  60,
		WorldSize:   20,
		MaxAircraft: 5,
		SlotPolicy:  SlotFreedOnRelaunch,
	}
}

// LoadConfigFromEnv reads the environment configuration, falling back
// to defaults for unset variables and failing on unparseable values.
func LoadConfigFromEnv() (*EnvironmentConfig, error) {
	cfg := DefaultEnvironmentConfig()

	var err error
	if cfg.UpdateRate, err = getEnvInt("FLATTOP_UPDATE_RATE", cfg.UpdateRate); err != nil {
		return nil, err
	}
	if cfg.WorldSize, err = getEnvFloat("FLATTOP_WORLD_SIZE", cfg.WorldSize); err != nil {
		return nil, err
	}
	if cfg.MaxAircraft, err = getEnvInt("FLATTOP_MAX_AIRCRAFT", cfg.MaxAircraft); err != nil {
		return nil, err
	}
	if v := os.Getenv("FLATTOP_SLOT_POLICY"); v != "" {
		switch SlotPolicy(v) {
		case SlotFreedOnRelaunch, SlotFreedOnLanding:
			cfg.SlotPolicy = SlotPolicy(v)
		default:
			return nil, fmt.Errorf("FLATTOP_SLOT_POLICY: unknown policy %q", v)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the environment configuration for unusable values
func (c *EnvironmentConfig) Validate() error {
	if c.UpdateRate <= 0 {
		return fmt.Errorf("update rate must be positive, got %d", c.UpdateRate)
	}
	if c.WorldSize <= 0 {
		return fmt.Errorf("world size must be positive, got %v", c.WorldSize)
	}
	if c.MaxAircraft < 0 {
		return fmt.Errorf("max aircraft must not be negative, got %d", c.MaxAircraft)
	}
	return nil
}

// ApplyEnvironmentOverrides overlays environment settings onto a game
// configuration loaded from file or defaults.
func ApplyEnvironmentOverrides(config *GameConfig) error {
	envConfig, err := LoadConfigFromEnv()
	if err != nil {
		return err
	}

	if os.Getenv("FLATTOP_WORLD_SIZE") != "" {
		config.WorldSize = envConfig.WorldSize
	}
	if os.Getenv("FLATTOP_MAX_AIRCRAFT") != "" {
		config.MaxAircraft = envConfig.MaxAircraft
	}
	if os.Getenv("FLATTOP_SLOT_POLICY") != "" {
		config.SlotPolicy = envConfig.SlotPolicy
	}

	return config.Validate()
}

// getEnvInt reads an integer environment variable with a default
func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, v, err)
	}
	return parsed, nil
}

// getEnvFloat reads a float environment variable with a default
func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q: %w", key, v, err)
	}
	return parsed, nil
}
