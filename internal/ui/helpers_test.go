package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

var errUnavailable = errors.New("service unavailable")

// fakeAPI is an in-memory API. Set fail to make every call return an error.
type fakeAPI struct {
	mu       sync.Mutex
	contacts []contact.Contact
	nextID   int
	now      time.Time
	fail     bool
	creates  int
	deletes  []string
	// deadlines counts calls whose context carried a deadline.
	deadlines int
}

func (f *fakeAPI) noteDeadline(ctx context.Context) {
	if _, ok := ctx.Deadline(); ok {
		f.deadlines++
	}
}

func newFakeAPI(existing ...contact.Contact) *fakeAPI {
	return &fakeAPI{
		contacts: append([]contact.Contact{}, existing...),
		now:      time.Date(2025, 3, 4, 21, 5, 0, 0, time.UTC),
	}
}

func (f *fakeAPI) List(ctx context.Context) ([]contact.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noteDeadline(ctx)
	if f.fail {
		return nil, errUnavailable
	}
	return contact.Sorted(f.contacts, contact.SortByDate), nil
}

func (f *fakeAPI) Create(ctx context.Context, in contact.Input) (*contact.Contact, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noteDeadline(ctx)
	f.creates++
	if f.fail {
		return nil, errUnavailable
	}
	f.nextID++
	f.now = f.now.Add(time.Minute)
	c := contact.New(in)
	c.ID = fmt.Sprintf("id-%d", f.nextID)
	c.CreatedAt = f.now
	f.contacts = append(f.contacts, *c)
	return c, nil
}

func (f *fakeAPI) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.noteDeadline(ctx)
	f.deletes = append(f.deletes, id)
	if f.fail {
		return errUnavailable
	}
	for i, c := range f.contacts {
		if c.ID == id {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func stored(id, name string, createdAt time.Time) contact.Contact {
	return contact.Contact{
		ID:        id,
		Name:      name,
		Email:     strings.ToLower(name) + "@x.com",
		Phone:     "1234567890",
		CreatedAt: createdAt,
	}
}

func newSizedModel(t *testing.T, api API, w, h int) Model {
	t.Helper()
	m := NewModel(api)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

// update applies msg and returns the new model with its command.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

// run applies msg, then feeds the resulting command's message back in,
// the way the runtime would for a single API round trip.
func run(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	m, cmd := update(t, m, msg)
	require.NotNil(t, cmd, "expected a command")
	return update(t, m, cmd())
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func pressTab(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	return m
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// fillForm types name, email and phone, leaving focus on the phone field.
func fillForm(t *testing.T, m Model, name, email, phone string) Model {
	t.Helper()
	m = typeText(t, m, name)
	m = pressTab(t, m)
	m = typeText(t, m, email)
	m = pressTab(t, m)
	return typeText(t, m, phone)
}

// containsPlainText checks if s contains sub after stripping escape sequences.
func containsPlainText(s, sub string) bool {
	return strings.Contains(ansi.Strip(s), sub)
}
