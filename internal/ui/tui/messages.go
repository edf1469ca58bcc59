// Package tui provides a Bubble Tea terminal UI for provisioning runs.
package tui

// PhaseMsg reports progress of a provisioning phase.
type PhaseMsg struct {
	Name  string
	Index int
	Total int
	Done  bool
	Err   error
}

// LogMsg carries a progress notice for the log pane.
type LogMsg struct {
	Line string
}

// TickMsg is sent periodically to advance the spinner.
type TickMsg struct{}

// ErrMsg carries a fatal error.
type ErrMsg struct{ Err error }

// DoneMsg signals that the run completed.
type DoneMsg struct{}
