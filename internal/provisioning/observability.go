package provisioning

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Logger is the minimal logging surface phases use for progress notices.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Observer receives phase lifecycle events during a run.
type Observer interface {
	Logger

	// PhaseStart is called before a phase runs.
	PhaseStart(name string, index, total int)

	// PhaseDone is called after a phase completes.
	PhaseDone(name string, elapsed time.Duration)

	// PhaseFailed is called when a phase aborts the run.
	PhaseFailed(name string, err error)
}

var (
	phaseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
)

// ConsoleObserver implements Observer on the standard log package, with
// phase markers and fatal diagnostics styled for terminals.
type ConsoleObserver struct {
	plain bool
}

// NewConsoleObserver creates a console observer. With plain set, output is
// unstyled.
func NewConsoleObserver(plain bool) *ConsoleObserver {
	return &ConsoleObserver{plain: plain}
}

// Printf implements Logger.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// PhaseStart implements Observer.
func (o *ConsoleObserver) PhaseStart(name string, index, total int) {
	log.Print(o.render(phaseStyle, fmt.Sprintf("[%d/%d] %s", index, total, name)))
}

// PhaseDone implements Observer.
func (o *ConsoleObserver) PhaseDone(name string, elapsed time.Duration) {
	log.Print(o.render(doneStyle, fmt.Sprintf("[%s] done in %v", name, elapsed.Round(time.Millisecond))))
}

// PhaseFailed implements Observer.
func (o *ConsoleObserver) PhaseFailed(name string, err error) {
	log.Print(o.render(failStyle, fmt.Sprintf("[%s] FAILED: %v", name, err)))
}

func (o *ConsoleObserver) render(style lipgloss.Style, s string) string {
	if o.plain {
		return s
	}
	return style.Render(s)
}
