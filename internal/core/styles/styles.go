// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tokyo-night": {
		Primary:    lipgloss.Color("#7aa2f7"),
		Secondary:  lipgloss.Color("#7dcfff"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#83a598"),
		Secondary:  lipgloss.Color("#8ec07c"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports, rebuilt by Load.
var (
	// CLI text styles.
	TextPrimaryBoldStyle    lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	// Pane frames.
	PaneBorderStyle       lipgloss.Style
	PaneActiveBorderStyle lipgloss.Style
	PaneTitleStyle        lipgloss.Style

	// Block box emphasis in the page pane. Applied in priority order:
	// feedback > selected > highlighted > hovered > plain.
	BlockBoxStyle       lipgloss.Style
	BlockSelectedStyle  lipgloss.Style
	BlockHighlightStyle lipgloss.Style
	BlockHoverStyle     lipgloss.Style
	BlockFeedbackStyle  lipgloss.Style
	BlockLabelStyle     lipgloss.Style
	PageDividerStyle    lipgloss.Style

	// Markup pane gutter markers.
	SectionMarkerStyle     lipgloss.Style
	SectionHighlightMarker lipgloss.Style
	SectionHoverMarker     lipgloss.Style

	// Status bar and toasts.
	StatusBarStyle     lipgloss.Style
	StatusKeyStyle     lipgloss.Style
	StatusSyncOnStyle  lipgloss.Style
	StatusSyncOffStyle lipgloss.Style
	ToastInfoStyle     lipgloss.Style
	ToastErrorStyle    lipgloss.Style
)

func init() {
	Load(DefaultTheme)
}

// Load activates a theme and rebuilds all exported styles. Unknown
// names fall back to the default theme.
func Load(theme string) {
	p, ok := themes[theme]
	if !ok {
		p = themes[DefaultTheme]
	}
	CurrentPalette = p

	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextWarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	PaneBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface)
	PaneActiveBorderStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary)
	PaneTitleStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)

	BlockBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)
	BlockSelectedStyle = BlockBoxStyle.
		BorderForeground(p.Primary).
		Bold(true)
	BlockHighlightStyle = BlockBoxStyle.
		BorderForeground(p.Warning)
	BlockHoverStyle = BlockBoxStyle.
		BorderForeground(p.Secondary)
	BlockFeedbackStyle = BlockBoxStyle.
		BorderForeground(p.Success).
		Bold(true)
	BlockLabelStyle = lipgloss.NewStyle().Foreground(p.Muted)
	PageDividerStyle = lipgloss.NewStyle().Foreground(p.Muted).Bold(true)

	SectionMarkerStyle = lipgloss.NewStyle().Foreground(p.Surface)
	SectionHighlightMarker = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)
	SectionHoverMarker = lipgloss.NewStyle().Foreground(p.Secondary)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(p.Foreground).
		Background(p.Surface).
		Padding(0, 1)
	StatusKeyStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	StatusSyncOnStyle = lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	StatusSyncOffStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	ToastInfoStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)
	ToastErrorStyle = ToastInfoStyle.BorderForeground(p.Error)
}
