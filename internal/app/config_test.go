package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dddictionary/cars/internal/preset"
	"github.com/dddictionary/cars/pkg/rules"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "B3/S23", cfg.Rule)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
	assert.Equal(t, 0, cfg.Steps)
	assert.Equal(t, "glider", cfg.Preset)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 150*time.Millisecond, cfg.Delay)
	assert.Equal(t, UIPlain, cfg.UI)
	assert.Empty(t, cfg.StatsOut)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CARS_RULE", "B36/S23")
	t.Setenv("CARS_WIDTH", "40")
	t.Setenv("CARS_STEPS", "12")
	t.Setenv("CARS_DELAY", "1s")
	t.Setenv("CARS_STATS_OUT", "out.csv")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "B36/S23", cfg.Rule)
	assert.Equal(t, 40, cfg.Width)
	assert.Equal(t, 12, cfg.Steps)
	assert.Equal(t, time.Second, cfg.Delay)
	assert.Equal(t, "out.csv", cfg.StatsOut)
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("CARS_WIDTH", "wide")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func validConfig() Config {
	return Config{
		Rule:    rules.Conway,
		Width:   10,
		Height:  10,
		Preset:  "glider",
		Seed:    1,
		Density: 0.3,
		UI:      UIPlain,
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{name: "bad rule", mutate: func(c *Config) { c.Rule = "B3S23" }, want: rules.ErrInvalidFormat},
		{name: "bad digit", mutate: func(c *Config) { c.Rule = "Bx/S23" }, want: rules.ErrInvalidDigit},
		{name: "unknown preset", mutate: func(c *Config) { c.Preset = "nope" }, want: preset.ErrUnknownPreset},
		{name: "negative width", mutate: func(c *Config) { c.Width = -1 }},
		{name: "negative steps", mutate: func(c *Config) { c.Steps = -1 }},
		{name: "density", mutate: func(c *Config) { c.Density = 1.5 }},
		{name: "delay", mutate: func(c *Config) { c.Delay = -time.Second }},
		{name: "ui", mutate: func(c *Config) { c.UI = "gif" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestValidateAcceptsDegenerateAndRandom(t *testing.T) {
	cfg := validConfig()
	cfg.Width, cfg.Height = 0, 0
	cfg.Preset = "RANDOM"
	assert.NoError(t, cfg.Validate())
}
