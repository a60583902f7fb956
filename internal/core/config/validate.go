package config

import (
	"fmt"
	"os"

	"github.com/hay-kot/criterio"

	"github.com/tandemview/tandem/internal/core/styles"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("sync.throttle_ms", c.Sync.ThrottleMS, positiveMillis),
		criterio.Run("sync.quiet_period_ms", c.Sync.QuietPeriodMS, positiveMillis),
		criterio.Run("sync.highlight_ttl_ms", c.Sync.HighlightTTLMS, positiveMillis),
		criterio.Run("sync.click_feedback_ms", c.Sync.ClickFeedbackMS, positiveMillis),
		criterio.Run("match.min_score", c.Match.MinScore, openUnitInterval),
		criterio.Run("viewport.min_visible_ratio", c.Viewport.MinVisibleRatio, openUnitInterval),
		criterio.Run("ui.theme", c.UI.Theme, themeExists),
		criterio.Run("ui.page_pane_percent", c.UI.PagePanePercent, panePercentRange),
	)
}

// ValidateDeep runs Validate plus I/O checks on the config file itself.
// The configPath argument specifies the config file location (empty
// string skips the file check).
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return validateConfigFile(configPath)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func positiveMillis(ms int) error {
	if ms < 1 {
		return fmt.Errorf("must be at least 1ms, got %d", ms)
	}
	return nil
}

func openUnitInterval(v float64) error {
	if v <= 0 || v >= 1 {
		return fmt.Errorf("must be between 0 and 1 exclusive, got %v", v)
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	return nil
}

func panePercentRange(pct int) error {
	if pct < 20 || pct > 80 {
		return fmt.Errorf("must be between 20 and 80, got %d", pct)
	}
	return nil
}
