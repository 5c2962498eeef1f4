package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 10000, cfg.Odds.Battles)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero battles", func(c *Config) { c.Odds.Battles = 0 }},
		{"negative attack", func(c *Config) { c.Odds.Attack = -1 }},
		{"attack above dice", func(c *Config) { c.Odds.Attack = 4 }},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			require.Error(t, cfg.Validate())
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		viper.Reset()
		SetDefaults()

		cfg, err := Load()

		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("config file", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		path := filepath.Join(t.TempDir(), "config.yaml")
		contents := "seed: 42\nlog:\n  level: debug\nodds:\n  battles: 50\n  attack: 2\n"
		require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
		viper.SetConfigFile(path)
		require.NoError(t, viper.ReadInConfig())

		cfg, err := Load()

		require.NoError(t, err)
		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Equal(t, 50, cfg.Odds.Battles)
		require.Equal(t, 2, cfg.Odds.Attack)
	})

	t.Run("invalid value", func(t *testing.T) {
		viper.Reset()
		SetDefaults()
		viper.Set("odds.battles", -3)

		_, err := Load()

		require.Error(t, err)
	})
}

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	require.Equal(t, filepath.Join("/tmp/xdg", "riskbattle"), ConfigDir())
}
