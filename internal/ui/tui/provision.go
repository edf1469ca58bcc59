package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Knight1/linodeapi/internal/provisioning"
)

// RunProvision wraps a provisioning run with the progress TUI. runFn is
// executed in a background goroutine with an Observer that feeds the
// display; the returned error is the run's error, or the TUI's own.
func RunProvision(nodeName string, runFn func(observer provisioning.Observer) error) error {
	m := NewModel(nodeName, provisioning.PhaseNames())
	p := tea.NewProgram(m)

	go func() {
		if err := runFn(&programObserver{program: p}); err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return fm.Err
	}
	if !fm.Done {
		return fmt.Errorf("aborted by operator")
	}
	return nil
}

// programObserver forwards provisioning events into the Bubble Tea program.
type programObserver struct {
	program *tea.Program
}

// Ensure interface compliance.
var _ provisioning.Observer = (*programObserver)(nil)

func (o *programObserver) Printf(format string, v ...interface{}) {
	o.program.Send(LogMsg{Line: fmt.Sprintf(format, v...)})
}

func (o *programObserver) PhaseStart(name string, index, total int) {
	o.program.Send(PhaseMsg{Name: name, Index: index, Total: total})
}

func (o *programObserver) PhaseDone(name string, _ time.Duration) {
	o.program.Send(PhaseMsg{Name: name, Done: true})
}

func (o *programObserver) PhaseFailed(name string, err error) {
	o.program.Send(PhaseMsg{Name: name, Err: err})
}
