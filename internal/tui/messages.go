package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tandemview/tandem/internal/core/notify"
	docsync "github.com/tandemview/tandem/internal/core/sync"
)

// NavigateMsg asks the pane owning View to scroll entity ID into view.
// Forwarded from the event bus by the command wiring.
type NavigateMsg struct {
	View docsync.View
	ID   int
}

// PrimaryMsg reports the current primary visible entity for the status bar.
type PrimaryMsg struct {
	View docsync.View
	ID   int
}

// SelectedMsg reports an explicit block selection.
type SelectedMsg struct {
	Block int
}

// SyncToggledMsg reports a scroll-sync toggle change.
type SyncToggledMsg struct {
	Enabled bool
}

// ToastMsg pushes a transient notification.
type ToastMsg struct {
	Notification notify.Notification
}

// toastTickMsg drives the toast TTL countdown.
type toastTickMsg struct{}

// repaintMsg forces a re-render after an engine-side timer (highlight
// TTL, click feedback) expires.
type repaintMsg struct{}

func scheduleRepaint(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return repaintMsg{}
	})
}

func scheduleToastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}
