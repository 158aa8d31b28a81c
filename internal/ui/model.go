package ui

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quicklaunch/internal/config"
	"quicklaunch/internal/domain"
	"quicklaunch/internal/eventbus"
	"quicklaunch/internal/history"
	"quicklaunch/internal/launch"
	"quicklaunch/internal/rank"
	"quicklaunch/internal/store"
)

// EventMsg wraps a domain event forwarded from the event bus
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerDoneMsg is sent when the descriptor pager exits
type pagerDoneMsg struct {
	err error
}

// Model is the Bubble Tea model for the launcher
type Model struct {
	bus    eventbus.EventBus
	cfg    *config.Config
	ranker *rank.Ranker
	hist   *history.History // nil when history is unavailable
	styles *Styles

	input textinput.Model

	entries  *store.Store
	incoming []domain.Descriptor // descriptors collected during a scan

	results []*store.Entry
	cursor  int
	offset  int

	scanning  bool
	statusMsg string
	recent    []string

	width  int
	height int

	program *tea.Program
}

// NewModel creates the launcher UI model
func NewModel(cfg *config.Config, ranker *rank.Ranker, hist *history.History, bus eventbus.EventBus) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "type to search"
	input.Focus()

	m := &Model{
		bus:     bus,
		cfg:     cfg,
		ranker:  ranker,
		hist:    hist,
		styles:  NewStyles(),
		input:   input,
		entries: store.Build(nil),
	}
	m.refreshRecent()
	return m
}

// SetProgram hands the model its program so it can release the terminal
// around the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			m.statusMsg = m.styles.Error.Render(fmt.Sprintf("pager: %v", msg.err))
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "ctrl+p":
		m.moveCursor(-1)
		return m, nil

	case "down", "ctrl+n":
		m.moveCursor(1)
		return m, nil

	case "enter":
		m.launchSelected()
		return m, nil

	case "ctrl+o":
		return m, m.inspectSelected()
	}

	// Everything else edits the query; the query is replaced wholesale and
	// re-ranked on every keystroke
	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.rerank()
	}
	return m, cmd
}

func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ScanStartedEvent:
		m.scanning = true
		m.incoming = nil
		m.statusMsg = ""

	case eventbus.EntryDiscoveredEvent:
		m.incoming = append(m.incoming, e.Descriptor)

	case eventbus.ScanCompletedEvent:
		m.scanning = false
		// Build a fresh store and swap it in; the old one is never mutated
		m.entries = store.BuildWithOptions(m.incoming, store.Options{
			IncludeHidden: m.cfg.UI.ShowHidden,
		})
		m.incoming = nil
		m.rerank()
		log.Printf("Store rebuilt with %d entries (%d descriptors found)", m.entries.Len(), e.EntriesFound)

	case eventbus.ErrorEvent:
		m.statusMsg = m.styles.Error.Render(e.Message)
	}
}

// rerank recomputes the result list for the current query against the
// current store
func (m *Model) rerank() {
	m.results = m.ranker.Rank(m.entries, m.input.Value())
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.offset = 0
}

func (m *Model) moveCursor(delta int) {
	if len(m.results) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.results) {
		m.cursor = len(m.results) - 1
	}

	// Keep the cursor inside the visible window
	visible := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}
}

func (m *Model) selected() *store.Entry {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return nil
	}
	return m.results[m.cursor]
}

func (m *Model) launchSelected() {
	entry := m.selected()
	if entry == nil {
		return
	}

	if err := launch.Start(entry); err != nil {
		log.Printf("Launch failed: %v", err)
		m.statusMsg = m.styles.Error.Render(fmt.Sprintf("Failed to launch %s: %v", entry.Name, err))
		return
	}

	if m.hist != nil {
		if err := m.hist.Record(entry); err != nil {
			log.Printf("Failed to record launch: %v", err)
		}
		m.refreshRecent()
	}

	m.bus.Publish(eventbus.EntryLaunchedEvent{Name: entry.Name, Exec: entry.Exec})
	m.statusMsg = fmt.Sprintf("Launched %s", entry.Name)
}

func (m *Model) refreshRecent() {
	if m.hist == nil {
		return
	}
	recent, err := m.hist.Recent(3)
	if err != nil {
		log.Printf("Failed to load recent launches: %v", err)
		return
	}
	m.recent = recent
}
