package commands

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/tandemview/tandem/internal/core/eventbus"
	"github.com/tandemview/tandem/internal/core/notify"
	docsync "github.com/tandemview/tandem/internal/core/sync"
	"github.com/tandemview/tandem/internal/tui"
)

func TestBridgeEvents_delivers_messages(t *testing.T) {
	bus := eventbus.New(64)
	msgs := make(chan tea.Msg, 8)
	bridgeEvents(bus, func(msg tea.Msg) { msgs <- msg })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bus.Start(ctx)

	bus.PublishSyncNavigate(eventbus.SyncNavigatePayload{View: docsync.ViewMarkup, ID: 3})
	bus.PublishNotificationPublished(eventbus.NotificationPublishedPayload{
		Level:   notify.LevelInfo,
		Message: "opened report",
	})

	require.Equal(t, tui.NavigateMsg{View: docsync.ViewMarkup, ID: 3}, nextMsg(t, msgs))
	require.Equal(t, tui.ToastMsg{Notification: notify.Notification{
		Level:   notify.LevelInfo,
		Message: "opened report",
	}}, nextMsg(t, msgs))
}

func nextMsg(t *testing.T, msgs <-chan tea.Msg) tea.Msg {
	t.Helper()
	select {
	case msg := <-msgs:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message delivered")
		return nil
	}
}
