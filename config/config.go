package config

import (
	"fmt"
	"os"
	"path/filepath"

	"riskbattle/meta"

	"github.com/spf13/viper"
)

// Config represents the complete riskbattle configuration
type Config struct {
	// Seed seeds the dice; 0 picks a time-based seed
	Seed uint64     `mapstructure:"seed"`
	Log  LogConfig  `mapstructure:"log"`
	Odds OddsConfig `mapstructure:"odds"`
}

// LogConfig controls diagnostic output on stderr
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error" (default: "warn")
	Level string `mapstructure:"level"`
}

// OddsConfig controls the odds experiment
type OddsConfig struct {
	// Battles is the number of simulated battles per estimate
	Battles int `mapstructure:"battles"`
	// Attack is the fixed attack size; 0 always attacks with the maximum
	Attack int `mapstructure:"attack"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Seed: 0,
		Log: LogConfig{
			Level: "warn",
		},
		Odds: OddsConfig{
			Battles: meta.ODDS_BATTLES,
			Attack:  0,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("seed", defaults.Seed)
	viper.SetDefault("log.level", defaults.Log.Level)
	viper.SetDefault("odds.battles", defaults.Odds.Battles)
	viper.SetDefault("odds.attack", defaults.Odds.Attack)
}

// Load reads the configuration from viper
func Load() (*Config, error) {
	cfg := Default()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values no command can run with
func (c *Config) Validate() error {
	if c.Odds.Battles <= 0 {
		return fmt.Errorf("odds.battles must be positive, got %d", c.Odds.Battles)
	}
	if c.Odds.Attack < 0 || c.Odds.Attack > meta.MAX_ATTACK_DICE {
		return fmt.Errorf("odds.attack must be between 0 and %d, got %d", meta.MAX_ATTACK_DICE, c.Odds.Attack)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	return nil
}

// ConfigDir returns the directory searched for config.yaml
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "riskbattle")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "riskbattle")
}
