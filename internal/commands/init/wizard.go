// Package initcmd implements the interactive first-run wizard behind
// `tandem init`.
package initcmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/tandemview/tandem/internal/core/config"
	"github.com/tandemview/tandem/internal/core/styles"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool   // skip prompts, use defaults
	Force      bool   // overwrite existing config
	Theme      string // pre-specified theme ("" = prompt)
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	// Check for existing config
	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("Init cancelled")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if w.opts.Theme != "" {
		cfg.UI.Theme = w.opts.Theme
	}

	if !w.opts.Yes {
		if err := w.promptUser(&cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Backup existing config if needed
	if ConfigExists(w.opts.ConfigPath) {
		backupPath, err := BackupConfig(w.opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		if backupPath != "" {
			fmt.Printf("Backed up config to: %s\n", backupPath)
		}
	}

	if err := WriteConfig(cfg, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Printf("Created config: %s\n", w.opts.ConfigPath)
	fmt.Println("\nRun 'tandem <result-dir>' to open a recognition result.")

	return nil
}

func (w *Wizard) promptUser(cfg *config.Config) error {
	themeOptions := make([]huh.Option[string], 0, len(styles.ThemeNames()))
	for _, name := range styles.ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	panePercent := strconv.Itoa(cfg.UI.PagePanePercent)
	throttle := strconv.Itoa(cfg.Sync.ThrottleMS)
	quiet := strconv.Itoa(cfg.Sync.QuietPeriodMS)

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Color theme").
			Options(themeOptions...).
			Value(&cfg.UI.Theme),
		huh.NewSelect[string]().
			Title("Markdown rendering style").
			Options(
				huh.NewOption("dark", "dark"),
				huh.NewOption("light", "light"),
				huh.NewOption("dracula", "dracula"),
				huh.NewOption("plain (no colors)", "notty"),
				huh.NewOption("auto-detect", "auto"),
			).
			Value(&cfg.UI.MarkdownStyle),
		huh.NewInput().
			Title("Page pane width (%)").
			Description("Share of the terminal given to the page pane (20-80)").
			Value(&panePercent).
			Validate(intInRange(20, 80)),
		huh.NewInput().
			Title("Scroll throttle (ms)").
			Description("Minimum interval between processed scroll events").
			Value(&throttle).
			Validate(intInRange(1, 5000)),
		huh.NewInput().
			Title("Quiet period (ms)").
			Description("Idle time after the last scroll before a sync session ends").
			Value(&quiet).
			Validate(intInRange(1, 5000)),
	))
	if err := form.Run(); err != nil {
		return err
	}

	if n, err := strconv.Atoi(panePercent); err == nil {
		cfg.UI.PagePanePercent = n
	}
	if n, err := strconv.Atoi(throttle); err == nil {
		cfg.Sync.ThrottleMS = n
	}
	if n, err := strconv.Atoi(quiet); err == nil {
		cfg.Sync.QuietPeriodMS = n
	}
	return nil
}

func intInRange(lo, hi int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("must be a number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}
