package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestModel_Teatest_AddAndDelete drives the program end to end: add a
// contact through the form, delete it from the list, then quit.
func TestModel_Teatest_AddAndDelete(t *testing.T) {
	api := newFakeAPI()
	m := NewModel(api)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 50))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("No contacts yet"))
	}, teatest.WithDuration(3*time.Second))

	tm.Type("Ann Lee")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("ann@example.com")
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Type("555-123-4567")
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Contact added successfully!"))
	}, teatest.WithDuration(3*time.Second))

	// Focus the list: message field, then the list
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Send(tea.KeyMsg{Type: tea.KeyTab})
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Contact deleted successfully!"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	assert.Empty(t, final.Contacts())
	assert.Equal(t, FocusList, final.focus)

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, 1, api.creates)
	require.Len(t, api.deletes, 1)
	assert.Equal(t, "id-1", api.deletes[0])
}
