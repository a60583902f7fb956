// Package config handles configuration loading and validation for tandem.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	Sync     SyncConfig     `yaml:"sync"`
	Match    MatchConfig    `yaml:"match"`
	Viewport ViewportConfig `yaml:"viewport"`
	UI       UIConfig       `yaml:"ui"`
}

// SyncConfig holds scroll-sync timing, all in milliseconds.
type SyncConfig struct {
	ThrottleMS      int `yaml:"throttle_ms"`
	QuietPeriodMS   int `yaml:"quiet_period_ms"`
	HighlightTTLMS  int `yaml:"highlight_ttl_ms"`
	ClickFeedbackMS int `yaml:"click_feedback_ms"`
}

// Throttle returns the minimum interval between processed scroll events.
func (s SyncConfig) Throttle() time.Duration {
	return time.Duration(s.ThrottleMS) * time.Millisecond
}

// QuietPeriod returns the delay after the last scroll event before a
// sync session ends.
func (s SyncConfig) QuietPeriod() time.Duration {
	return time.Duration(s.QuietPeriodMS) * time.Millisecond
}

// HighlightTTL returns how long a click highlight lives.
func (s SyncConfig) HighlightTTL() time.Duration {
	return time.Duration(s.HighlightTTLMS) * time.Millisecond
}

// ClickFeedback returns the duration of the click feedback flash.
func (s SyncConfig) ClickFeedback() time.Duration {
	return time.Duration(s.ClickFeedbackMS) * time.Millisecond
}

// MatchConfig holds the matcher tunables. The score threshold and word
// filter are empirical; see the defaults before changing them.
type MatchConfig struct {
	MinScore float64 `yaml:"min_score"`
}

// ViewportConfig holds the visibility scanner tunables.
type ViewportConfig struct {
	MinVisibleRatio float64 `yaml:"min_visible_ratio"`
}

// UIConfig holds terminal rendering options.
type UIConfig struct {
	Theme           string `yaml:"theme"`
	MarkdownStyle   string `yaml:"markdown_style"`
	PagePanePercent int    `yaml:"page_pane_percent"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Sync: SyncConfig{
			ThrottleMS:      100,
			QuietPeriodMS:   150,
			HighlightTTLMS:  2000,
			ClickFeedbackMS: 300,
		},
		Match: MatchConfig{
			MinScore: 0.3,
		},
		Viewport: ViewportConfig{
			MinVisibleRatio: 0.10,
		},
		UI: UIConfig{
			Theme:           "tokyo-night",
			MarkdownStyle:   "dark",
			PagePanePercent: 50,
		},
	}
}

// Load reads configuration from the given path. If configPath is empty
// or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Sync.ThrottleMS == 0 {
		c.Sync.ThrottleMS = defaults.Sync.ThrottleMS
	}
	if c.Sync.QuietPeriodMS == 0 {
		c.Sync.QuietPeriodMS = defaults.Sync.QuietPeriodMS
	}
	if c.Sync.HighlightTTLMS == 0 {
		c.Sync.HighlightTTLMS = defaults.Sync.HighlightTTLMS
	}
	if c.Sync.ClickFeedbackMS == 0 {
		c.Sync.ClickFeedbackMS = defaults.Sync.ClickFeedbackMS
	}
	if c.Match.MinScore == 0 {
		c.Match.MinScore = defaults.Match.MinScore
	}
	if c.Viewport.MinVisibleRatio == 0 {
		c.Viewport.MinVisibleRatio = defaults.Viewport.MinVisibleRatio
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.MarkdownStyle == "" {
		c.UI.MarkdownStyle = defaults.UI.MarkdownStyle
	}
	if c.UI.PagePanePercent == 0 {
		c.UI.PagePanePercent = defaults.UI.PagePanePercent
	}
}
