package tui

import (
	"fmt"
	"strings"
	"time"
)

func renderView(m Model) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("linode-coreos: %s", m.NodeName)))
	switch {
	case m.Done:
		b.WriteString(" " + doneStyle.Render("done"))
	case m.Err != nil:
		b.WriteString(" " + failedStyle.Render(fmt.Sprintf("failed: %v", m.Err)))
	default:
		b.WriteString(" " + dimStyle.Render(fmt.Sprintf("%v", time.Since(m.StartTime).Round(time.Second))))
	}
	b.WriteString("\n\n")

	for _, phase := range m.Phases {
		var marker, name string
		switch {
		case phase.Err != nil:
			marker = failedStyle.Render(crossMark)
			name = failedStyle.Render(phase.Name)
		case phase.Done:
			marker = doneStyle.Render(checkMark)
			name = phase.Name
		case phase.Active:
			marker = activeStyle.Render(currentSpinner(m.SpinnerFrame))
			name = activeStyle.Render(phase.Name)
		default:
			marker = dimStyle.Render(pending)
			name = dimStyle.Render(phase.Name)
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", marker, name))
	}

	if len(m.Logs) > 0 {
		b.WriteString("\n")
		for _, line := range m.Logs {
			b.WriteString(dimStyle.Render("  "+line) + "\n")
		}
	}

	b.WriteString(footerStyle.Render("  q to abort"))
	b.WriteString("\n")
	return b.String()
}
