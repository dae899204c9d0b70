package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

// Focus identifies which part of the screen receives keys. The form
// fields come first in tab order, then the list.
type Focus int

const (
	FocusName Focus = iota
	FocusEmail
	FocusPhone
	FocusMessage
	FocusList
)

const focusCount = int(FocusList) + 1

// Model is the root Bubble Tea model for the contacts client.
type Model struct {
	api    API
	logger *zap.Logger

	contacts []contact.Contact // newest first, as returned by the API
	sortMode contact.SortMode
	cursor   int

	form  formState
	focus Focus

	flash         string
	flashID       int
	flashDuration time.Duration

	width  int
	height int
	help   help.Model
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for API failures.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithFlashDuration overrides how long success messages stay visible.
func WithFlashDuration(d time.Duration) Option {
	return func(m *Model) {
		m.flashDuration = d
	}
}

// NewModel creates a Model with the name field focused.
func NewModel(api API, opts ...Option) Model {
	m := Model{
		api:           api,
		logger:        zap.NewNop(),
		contacts:      []contact.Contact{},
		sortMode:      contact.SortByDate,
		form:          newFormState(),
		focus:         FocusName,
		flashDuration: FlashDuration,
		help:          help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.form.focus(int(m.focus))
	return m
}

// Init fetches the contact list.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadContacts(m.api), textinput.Blink)
}

// Visible returns the contacts in display order.
func (m Model) Visible() []contact.Contact {
	return contact.Sorted(m.contacts, m.sortMode)
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case ContactsLoadedMsg:
		if msg.Err != nil {
			m.logger.Error("failed to fetch contacts", zap.Error(msg.Err))
			return m, nil
		}
		m.contacts = append([]contact.Contact{}, msg.Contacts...)
		m.clampCursor()
		return m, nil

	case ContactCreatedMsg:
		m.form.submitting = false
		if msg.Err != nil {
			m.logger.Error("failed to add contact", zap.Error(msg.Err))
			return m, nil
		}
		m.contacts = append([]contact.Contact{*msg.Contact}, m.contacts...)
		m.form.reset()
		return m, m.showFlash("Contact added successfully!")

	case ContactDeletedMsg:
		if msg.Err != nil {
			m.logger.Error("failed to delete contact", zap.String("id", msg.ID), zap.Error(msg.Err))
			return m, nil
		}
		m.removeContact(msg.ID)
		return m, m.showFlash("Contact deleted successfully!")

	case clearFlashMsg:
		if msg.id == m.flashID {
			m.flash = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input internals
	if m.focus != FocusList {
		return m, m.form.update(int(m.focus), msg)
	}
	return m, nil
}

// handleKey processes key messages with global and focus-specific routing.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, quitBinding()):
		return m, tea.Quit
	case key.Matches(msg, nextBinding()):
		return m, m.setFocus(Focus((int(m.focus) + 1) % focusCount))
	case key.Matches(msg, prevBinding()):
		return m, m.setFocus(Focus((int(m.focus) + focusCount - 1) % focusCount))
	}

	if m.focus == FocusList {
		return m.handleListKey(msg)
	}

	if key.Matches(msg, FormKeyMap().Submit) {
		return m.submit()
	}
	return m, m.form.update(int(m.focus), msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := ListKeyMap(m.sortMode.Label())
	switch {
	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.contacts)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.Sort):
		m.sortMode = m.sortMode.Toggle()
		m.cursor = 0
	case key.Matches(msg, keys.Reload):
		return m, loadContacts(m.api)
	case key.Matches(msg, keys.Delete):
		visible := m.Visible()
		if len(visible) == 0 {
			return m, nil
		}
		return m, deleteContact(m.api, visible[m.cursor].ID)
	}
	return m, nil
}

// submit validates the form and starts a create. It does nothing while
// the submit action is disabled.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.form.canSubmit() {
		return m, nil
	}
	if !m.form.validate() {
		return m, nil
	}
	m.form.submitting = true
	return m, createContact(m.api, m.form.input())
}

func (m *Model) setFocus(f Focus) tea.Cmd {
	m.focus = f
	if f == FocusList {
		m.form.focus(-1)
		m.clampCursor()
		return nil
	}
	return m.form.focus(int(f))
}

// showFlash displays text and schedules it to clear.
func (m *Model) showFlash(text string) tea.Cmd {
	m.flashID++
	m.flash = text
	id := m.flashID
	return tea.Tick(m.flashDuration, func(time.Time) tea.Msg {
		return clearFlashMsg{id: id}
	})
}

func (m *Model) removeContact(id string) {
	kept := m.contacts[:0:0]
	for _, c := range m.contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.contacts = kept
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.contacts) {
		m.cursor = len(m.contacts) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// helpBindings returns the help.KeyMap for the focused area.
func (m Model) helpBindings() help.KeyMap {
	if m.focus == FocusList {
		return ListKeyMap(m.sortMode.Label())
	}
	return FormKeyMap()
}

// View renders the form, flash message, contact list and help bar.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = twoColumnWidth
	}

	formStyle := UnfocusedBorder()
	if m.focus != FocusList {
		formStyle = FocusedBorder()
	}
	// Border and padding take two columns on each side.
	formView := formStyle.Width(width - 2).Render(m.form.View(width - 4))

	cursor := -1
	if m.focus == FocusList {
		cursor = m.cursor
	}
	listView := renderList(m.Visible(), m.sortMode, cursor, width)

	sections := []string{titleStyle.Render("Contact Manager"), formView}
	if m.flash != "" {
		sections = append(sections, flashStyle.Render(m.flash))
	}
	sections = append(sections, listView, m.help.View(m.helpBindings()))

	return strings.TrimRight(lipgloss.JoinVertical(lipgloss.Left, sections...), "\n")
}

// Contacts returns the client's copy of the stored contacts, newest first.
func (m Model) Contacts() []contact.Contact {
	return m.contacts
}

// Flash returns the success message currently shown, if any.
func (m Model) Flash() string {
	return m.flash
}
