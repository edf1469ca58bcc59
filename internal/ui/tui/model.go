package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxLogLines bounds the log pane.
const maxLogLines = 8

// PhaseView is one provisioning phase as displayed.
type PhaseView struct {
	Name   string
	Done   bool
	Active bool
	Err    error
}

// Model is the Bubble Tea model for a provisioning run.
type Model struct {
	NodeName string
	Phases   []PhaseView
	Logs     []string

	SpinnerFrame int
	StartTime    time.Time

	Width  int
	Height int
	Err    error
	Done   bool
}

// NewModel creates a model displaying the given phases.
func NewModel(nodeName string, phaseNames []string) Model {
	phases := make([]PhaseView, len(phaseNames))
	for i, name := range phaseNames {
		phases[i] = PhaseView{Name: name}
	}
	return Model{
		NodeName:  nodeName,
		Phases:    phases,
		StartTime: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case PhaseMsg:
		m.updatePhase(msg)
		if msg.Err != nil {
			m.Err = msg.Err
			return m, tea.Quit
		}

	case LogMsg:
		m.Logs = append(m.Logs, msg.Line)
		if len(m.Logs) > maxLogLines {
			m.Logs = m.Logs[len(m.Logs)-maxLogLines:]
		}

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

func (m *Model) updatePhase(msg PhaseMsg) {
	idx := -1
	for i, phase := range m.Phases {
		if phase.Name == msg.Name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	// Everything before the reported phase has completed.
	for i := 0; i < idx; i++ {
		m.Phases[i].Done = true
		m.Phases[i].Active = false
	}

	switch {
	case msg.Err != nil:
		m.Phases[idx].Err = msg.Err
		m.Phases[idx].Active = false
	case msg.Done:
		m.Phases[idx].Done = true
		m.Phases[idx].Active = false
	default:
		m.Phases[idx].Active = true
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
