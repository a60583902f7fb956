package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/tandemview/tandem/internal/core/document"
	"github.com/tandemview/tandem/internal/core/eventbus"
	"github.com/tandemview/tandem/internal/core/logging"
	"github.com/tandemview/tandem/internal/core/notify"
	"github.com/tandemview/tandem/internal/tui"
)

type TuiCmd struct {
	flags *Flags

	// flags
	markupPath string
	blocksPath string
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "markup",
			Usage:       "path to the generated markup file (bypasses result-directory discovery)",
			Destination: &cmd.markupPath,
		},
		&cli.StringFlag{
			Name:        "blocks",
			Usage:       "path to the block-data JSON (bypasses result-directory discovery)",
			Destination: &cmd.blocksPath,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	loader := document.NewLoader(logging.Component("loader"))
	refs, err := resolveRefs(loader, cmd.markupPath, cmd.blocksPath, c.Args().First())
	if err != nil {
		return err
	}

	bus := eventbus.New(64)
	eventbus.RegisterDebugLogger(bus, logging.Component("events"))

	model, err := tui.New(cmd.flags.Config, bus, loader, refs)
	if err != nil {
		return err
	}
	defer model.Engine().Close()

	prog := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	bridgeEvents(bus, prog.Send)

	busCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go bus.Start(busCtx)

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// bridgeEvents forwards bus events into the bubbletea message loop.
// The engine publishes from its own goroutines; send must be safe to
// call concurrently (Program.Send is).
func bridgeEvents(bus *eventbus.EventBus, send func(tea.Msg)) {
	bus.SubscribeSyncNavigate(func(p eventbus.SyncNavigatePayload) {
		send(tui.NavigateMsg{View: p.View, ID: p.ID})
	})
	bus.SubscribeSyncPrimary(func(p eventbus.SyncPrimaryPayload) {
		send(tui.PrimaryMsg{View: p.View, ID: p.ID})
	})
	bus.SubscribeSyncSelected(func(p eventbus.SyncSelectedPayload) {
		send(tui.SelectedMsg{Block: p.Block})
	})
	bus.SubscribeSyncToggled(func(p eventbus.SyncToggledPayload) {
		send(tui.SyncToggledMsg{Enabled: p.Enabled})
	})
	bus.SubscribeNotificationPublished(func(p eventbus.NotificationPublishedPayload) {
		send(tui.ToastMsg{Notification: notify.Notification{
			Level:   p.Level,
			Message: p.Message,
		}})
	})
}
