package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() Model {
	return NewModel("node1", []string{"create", "disks", "install"})
}

func TestModel_PhaseProgress(t *testing.T) {
	t.Parallel()
	m := testModel()

	next, _ := m.Update(PhaseMsg{Name: "disks", Index: 2, Total: 3})
	m = next.(Model)

	assert.True(t, m.Phases[0].Done, "earlier phases are implied done")
	assert.True(t, m.Phases[1].Active)
	assert.False(t, m.Phases[2].Done)

	next, _ = m.Update(PhaseMsg{Name: "disks", Done: true})
	m = next.(Model)
	assert.True(t, m.Phases[1].Done)
	assert.False(t, m.Phases[1].Active)
}

func TestModel_PhaseFailureQuits(t *testing.T) {
	t.Parallel()
	m := testModel()

	next, cmd := m.Update(PhaseMsg{Name: "install", Err: errors.New("exit status 1")})
	m = next.(Model)

	require.Error(t, m.Err)
	assert.NotNil(t, cmd, "a failed phase must quit the program")
	assert.Error(t, m.Phases[2].Err)
}

func TestModel_LogPaneBounded(t *testing.T) {
	t.Parallel()
	m := testModel()
	for i := 0; i < maxLogLines*2; i++ {
		next, _ := m.Update(LogMsg{Line: "notice"})
		m = next.(Model)
	}
	assert.Len(t, m.Logs, maxLogLines)
}

func TestModel_QuitKeys(t *testing.T) {
	t.Parallel()
	m := testModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.NotNil(t, cmd)
}

func TestView_RendersPhases(t *testing.T) {
	t.Parallel()
	m := testModel()
	next, _ := m.Update(PhaseMsg{Name: "create", Index: 1, Total: 3})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "node1")
	for _, name := range []string{"create", "disks", "install"} {
		assert.True(t, strings.Contains(view, name), "view must list phase %q", name)
	}
}

func TestView_Done(t *testing.T) {
	t.Parallel()
	m := testModel()
	next, _ := m.Update(DoneMsg{})
	m = next.(Model)

	assert.True(t, m.Done)
	assert.Contains(t, m.View(), "done")
}
