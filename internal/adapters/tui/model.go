// Package tui implements the interactive live view for the status command.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bytes00000111/nativelink/internal/core/ports"
)

// DefaultRefreshInterval is how often the live view polls the daemon.
const DefaultRefreshInterval = time.Second

const statusFetchTimeout = 2 * time.Second

// StatusFunc fetches the current daemon status.
type StatusFunc func(ctx context.Context) (*ports.DaemonStatus, error)

// statusMsg carries a polled daemon status into the update loop.
type statusMsg struct {
	status *ports.DaemonStatus
	err    error
}

// tickMsg triggers the next poll.
type tickMsg time.Time

// Model represents the live status view state.
type Model struct {
	Status   *ports.DaemonStatus
	Err      error
	Width    int
	Height   int
	Quitting bool

	// Interval is the poll period.
	Interval time.Duration

	fetch StatusFunc
}

// NewModel creates a live status model polling with the given function.
func NewModel(fetch StatusFunc) *Model {
	return &Model{
		Interval: DefaultRefreshInterval,
		fetch:    fetch,
	}
}

// Init starts the first poll.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fetchCmd(), m.tickCmd())
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case statusMsg:
		m.Status = msg.status
		m.Err = msg.err

	case tickMsg:
		return m, tea.Batch(m.fetchCmd(), m.tickCmd())
	}

	return m, nil
}

func (m *Model) fetchCmd() tea.Cmd {
	fetch := m.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), statusFetchTimeout)
		defer cancel()

		status, err := fetch(ctx)
		return statusMsg{status: status, err: err}
	}
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the live view and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, fetch StatusFunc) error {
	program := tea.NewProgram(NewModel(fetch), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
