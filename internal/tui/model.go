// Package tui implements the two-pane terminal viewer: reconstructed
// pages on the left, generated markup on the right, scroll-synced
// through the core engine.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/tandemview/tandem/internal/core/config"
	"github.com/tandemview/tandem/internal/core/document"
	"github.com/tandemview/tandem/internal/core/eventbus"
	"github.com/tandemview/tandem/internal/core/logging"
	"github.com/tandemview/tandem/internal/core/notify"
	docsync "github.com/tandemview/tandem/internal/core/sync"
)

// Model is the root bubbletea model.
type Model struct {
	cfg    *config.Config
	log    zerolog.Logger
	bus    *eventbus.EventBus
	engine *docsync.Engine
	loader *document.Loader

	refs    []document.Ref
	current int
	doc     *document.Document
	matched int

	pages  *pageView
	markup *markupView
	focus  docsync.View

	status statusBar
	toasts *ToastController
	keys   keyMap
	help   help.Model

	width  int
	height int
	ready  bool
}

// New wires a Model over the loaded configuration and the discovered
// result references. The first reference is loaded eagerly so startup
// failures surface before the terminal is taken over.
func New(cfg *config.Config, bus *eventbus.EventBus, loader *document.Loader, refs []document.Ref) (*Model, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("no recognition results to display")
	}

	log := logging.Component("tui")
	engine := docsync.NewEngine(docsync.Options{
		Throttle:        cfg.Sync.Throttle(),
		QuietPeriod:     cfg.Sync.QuietPeriod(),
		HighlightTTL:    cfg.Sync.HighlightTTL(),
		ClickFeedback:   cfg.Sync.ClickFeedback(),
		MinVisibleRatio: cfg.Viewport.MinVisibleRatio,
		MinMatchScore:   cfg.Match.MinScore,
		Notifier:        eventbus.NewSyncNotifier(bus),
		Logger:          logging.Component("sync"),
	})

	m := &Model{
		cfg:    cfg,
		log:    log,
		bus:    bus,
		engine: engine,
		loader: loader,
		refs:   refs,
		pages:  newPageView(),
		markup: newMarkupView(cfg.UI.MarkdownStyle, logging.Component("markup")),
		focus:  docsync.ViewPage,
		toasts: NewToastController(),
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
	m.status.syncActive = engine.SyncEnabled()

	if err := m.loadDocument(0); err != nil {
		engine.Close()
		return nil, err
	}
	return m, nil
}

// Engine exposes the sync engine for event-bus wiring.
func (m *Model) Engine() *docsync.Engine { return m.engine }

func (m *Model) loadDocument(idx int) error {
	ref := m.refs[idx]
	doc, err := m.loader.Load(ref)
	if err != nil {
		return fmt.Errorf("load %s: %w", ref.Name, err)
	}

	mapping := m.engine.SwitchDocument(doc.Catalog, doc.Sections)
	m.current = idx
	m.doc = doc
	m.matched = mapping.Len()
	m.pages.setDocument(doc)
	m.markup.setDocument(doc)

	pos := ""
	if len(m.refs) > 1 {
		pos = fmt.Sprintf("%d/%d", idx+1, len(m.refs))
	}
	m.status.setDocument(doc.Name, pos, m.matched, doc.Catalog.Len(), len(doc.Sections))
	m.status.syncActive = m.engine.SyncEnabled()

	m.bus.PublishDocumentLoaded(eventbus.DocumentLoadedPayload{
		Name:     doc.Name,
		Blocks:   doc.Catalog.Len(),
		Sections: len(doc.Sections),
	})
	m.bus.PublishMappingComputed(eventbus.MappingComputedPayload{
		Matched:  mapping.Len(),
		Blocks:   doc.Catalog.Len(),
		Sections: len(doc.Sections),
	})

	m.log.Info().
		Str("document", doc.Name).
		Int("blocks", doc.Catalog.Len()).
		Int("sections", len(doc.Sections)).
		Int("matched", mapping.Len()).
		Msg("document loaded")

	if m.ready {
		m.refreshPanes()
	}
	return nil
}

// refreshPanes re-renders both panes against the current engine
// snapshot and feeds the resulting geometry back to the engine.
func (m *Model) refreshPanes() {
	snap := m.engine.Snapshot()
	m.status.syncActive = snap.SyncEnabled
	if ext := m.pages.refresh(snap); ext != nil {
		m.engine.SetExtents(docsync.ViewPage, ext)
	}
	if ext := m.markup.refresh(snap); ext != nil {
		m.engine.SetExtents(docsync.ViewMarkup, ext)
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		m.refreshPanes()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case NavigateMsg:
		m.paneFor(msg.View).applyNavigate(msg.ID)
		m.refreshPanes()
		return m, nil

	case PrimaryMsg:
		m.status.setPrimary(msg.View, msg.ID)
		return m, nil

	case SelectedMsg:
		m.status.setSelected(msg.Block)
		return m, nil

	case SyncToggledMsg:
		m.status.syncActive = msg.Enabled
		return m, nil

	case ToastMsg:
		m.toasts.Push(msg.Notification)
		if !m.toasts.Ticking() {
			m.toasts.SetTicking(true)
			return m, scheduleToastTick()
		}
		return m, nil

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if m.toasts.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toasts.SetTicking(false)
		return m, nil

	case repaintMsg:
		m.refreshPanes()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.focusedPane()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.engine.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchPane):
		m.focus = m.focus.Other()
		m.pages.focused = m.focus == docsync.ViewPage
		m.markup.focused = m.focus == docsync.ViewMarkup
		return m, nil

	case key.Matches(msg, m.keys.Down):
		p.vp.LineDown(1)
		m.reportScroll()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		p.vp.LineUp(1)
		m.reportScroll()
		return m, nil

	case key.Matches(msg, m.keys.HalfDown):
		p.vp.HalfViewDown()
		m.reportScroll()
		return m, nil

	case key.Matches(msg, m.keys.HalfUp):
		p.vp.HalfViewUp()
		m.reportScroll()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		p.vp.GotoTop()
		m.reportScroll()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		p.vp.GotoBottom()
		m.reportScroll()
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if id, ok := p.primaryEntity(m.cfg.Viewport.MinVisibleRatio); ok {
			return m, m.clickEntity(m.focus, id)
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleSync):
		enabled := m.engine.ToggleSync()
		m.status.syncActive = enabled
		label := "scroll sync off"
		if enabled {
			label = "scroll sync on"
		}
		m.notifyToast(notify.LevelInfo, label)
		return m, nil

	case key.Matches(msg, m.keys.NextDoc):
		return m, m.switchDocument(m.current + 1)

	case key.Matches(msg, m.keys.PrevDoc):
		return m, m.switchDocument(m.current - 1)

	case key.Matches(msg, m.keys.Yank):
		m.yank()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		m.refreshPanes()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	view, p, line, ok := m.hitTest(msg.X, msg.Y)

	switch msg.Type {
	case tea.MouseWheelUp:
		p.vp.LineUp(3)
		m.focusView(view)
		m.reportScroll()
		return m, nil

	case tea.MouseWheelDown:
		p.vp.LineDown(3)
		m.focusView(view)
		m.reportScroll()
		return m, nil

	case tea.MouseMotion:
		if ok {
			if id, owned := p.entityAt(line); owned {
				m.engine.Hover(view, id)
				m.refreshPanes()
				return m, nil
			}
		}
		m.engine.HoverEnd()
		m.refreshPanes()
		return m, nil

	case tea.MouseLeft:
		if ok {
			m.focusView(view)
			if id, owned := p.entityAt(line); owned {
				return m, m.clickEntity(view, id)
			}
		}
		return m, nil
	}
	return m, nil
}

// hitTest maps terminal coordinates to a pane and a content line.
// Content starts below the pane border and title rows.
func (m *Model) hitTest(x, y int) (docsync.View, *pane, int, bool) {
	pageWidth := m.pageOuterWidth()

	view := docsync.ViewPage
	localX := x
	if x >= pageWidth {
		view = docsync.ViewMarkup
		localX = x - pageWidth
	}
	p := m.paneFor(view)

	const contentTop = 2 // border + title
	line := p.vp.YOffset + y - contentTop
	inside := localX >= 1 && y >= contentTop && y < contentTop+p.vp.Height &&
		line >= 0 && line < len(p.lineOwner)
	return view, p, line, inside
}

func (m *Model) clickEntity(view docsync.View, id int) tea.Cmd {
	m.engine.Click(view, id)
	m.refreshPanes()
	return tea.Batch(
		scheduleRepaint(m.cfg.Sync.ClickFeedback()+10*time.Millisecond),
		scheduleRepaint(m.cfg.Sync.HighlightTTL()+10*time.Millisecond),
	)
}

func (m *Model) switchDocument(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.refs) || idx == m.current {
		return nil
	}
	if err := m.loadDocument(idx); err != nil {
		m.log.Error().Err(err).Msg("document switch failed")
		m.notifyToast(notify.LevelError, err.Error())
		return nil
	}
	m.refreshPanes()
	m.notifyToast(notify.LevelInfo, "opened "+m.doc.Name)
	return nil
}

// yank copies the focused pane's current entity text to the clipboard.
func (m *Model) yank() {
	p := m.focusedPane()
	id, ok := p.primaryEntity(m.cfg.Viewport.MinVisibleRatio)
	if !ok {
		return
	}

	var text, what string
	switch m.focus {
	case docsync.ViewPage:
		b, found := m.doc.Catalog.Get(id)
		if !found {
			return
		}
		text = b.Text
		what = fmt.Sprintf("block %d", id)
	case docsync.ViewMarkup:
		if id >= len(m.doc.Sections) {
			return
		}
		text = m.doc.Sections[id].Raw
		what = fmt.Sprintf("section %d", id)
	}

	if err := clipboard.WriteAll(text); err != nil {
		m.log.Warn().Err(err).Msg("clipboard write failed")
		m.notifyToast(notify.LevelError, "clipboard unavailable")
		return
	}
	m.notifyToast(notify.LevelSuccess, "copied "+what)
}

// notifyToast publishes a notification on the bus; the bridge feeds it
// back as a ToastMsg so bus-originated and local toasts share a path.
func (m *Model) notifyToast(level notify.Level, message string) {
	m.bus.PublishNotificationPublished(eventbus.NotificationPublishedPayload{
		Level:   level,
		Message: message,
	})
}

// reportScroll forwards the focused pane's position to the engine.
func (m *Model) reportScroll() {
	p := m.focusedPane()
	m.engine.OnScroll(m.focus, p.scrollTop(), p.viewportHeight())
	m.refreshPanes()
}

func (m *Model) focusView(view docsync.View) {
	m.focus = view
	m.pages.focused = view == docsync.ViewPage
	m.markup.focused = view == docsync.ViewMarkup
}

func (m *Model) focusedPane() *pane {
	return m.paneFor(m.focus)
}

func (m *Model) paneFor(view docsync.View) *pane {
	if view == docsync.ViewMarkup {
		return &m.markup.pane
	}
	return &m.pages.pane
}

func (m *Model) pageOuterWidth() int {
	w := m.width * m.cfg.UI.PagePanePercent / 100
	if w < 20 {
		w = 20
	}
	return w
}

// layout distributes the terminal between the panes and the chrome
// rows below them.
func (m *Model) layout() {
	helpHeight := 1
	if m.help.ShowAll {
		helpHeight = 6
	}
	chrome := 1 + helpHeight // status bar + help
	paneOuterH := m.height - chrome
	contentH := paneOuterH - 3 // border rows + title
	if contentH < 1 {
		contentH = 1
	}

	pageW := m.pageOuterWidth()
	markupW := m.width - pageW

	m.pages.setSize(pageW-2, contentH)
	m.markup.setSize(markupW-2, contentH)
	m.help.Width = m.width
	m.focusView(m.focus)
}

func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top, m.pages.view(), m.markup.view())
	sections := []string{
		panes,
		m.status.render(m.width),
		m.help.View(m.keys),
	}
	if m.toasts.HasToasts() {
		sections = append(sections, strings.Join(m.toasts.Render(), "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
