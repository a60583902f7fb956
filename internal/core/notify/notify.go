// Package notify defines transient user-facing notifications surfaced
// as toasts in the TUI status area.
package notify

// Level indicates notification severity.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is one transient user-facing message.
type Notification struct {
	Level   Level
	Message string
}
