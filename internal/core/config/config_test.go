package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_is_valid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 100*time.Millisecond, cfg.Sync.Throttle())
	assert.Equal(t, 150*time.Millisecond, cfg.Sync.QuietPeriod())
	assert.Equal(t, 2*time.Second, cfg.Sync.HighlightTTL())
	assert.Equal(t, 300*time.Millisecond, cfg.Sync.ClickFeedback())
	assert.InDelta(t, 0.3, cfg.Match.MinScore, 0.0001)
	assert.InDelta(t, 0.10, cfg.Viewport.MinVisibleRatio, 0.0001)
}

func TestLoad_missing_file_returns_defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_empty_path_returns_defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoad_partial_file_fills_defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "sync:\n  throttle_ms: 250\nui:\n  theme: gruvbox\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Sync.ThrottleMS)
	assert.Equal(t, "gruvbox", cfg.UI.Theme)
	// Unset values keep defaults.
	assert.Equal(t, 150, cfg.Sync.QuietPeriodMS)
	assert.Equal(t, "dark", cfg.UI.MarkdownStyle)
}

func TestLoad_malformed_yaml_errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sync: [broken"), 0o644))

	_, err := Load(path)

	assert.Error(t, err)
}

func TestValidate_rejects_bad_values(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"negative throttle", func(c *Config) { c.Sync.ThrottleMS = -5 }, "sync.throttle_ms"},
		{"score above one", func(c *Config) { c.Match.MinScore = 1.5 }, "match.min_score"},
		{"ratio at one", func(c *Config) { c.Viewport.MinVisibleRatio = 1 }, "viewport.min_visible_ratio"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "solar-flare" }, "ui.theme"},
		{"pane too narrow", func(c *Config) { c.UI.PagePanePercent = 5 }, "ui.page_pane_percent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			require.Error(t, err)
			var fieldErrs criterio.FieldErrors
			require.True(t, errors.As(err, &fieldErrs))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidateDeep_rejects_directory_config_path(t *testing.T) {
	cfg := DefaultConfig()

	err := cfg.ValidateDeep(t.TempDir())

	assert.Error(t, err)
}
