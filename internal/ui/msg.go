// Package ui implements the interactive terminal client: a contact form
// above a card list, backed by the contacts API.
//
// The root Model owns all client state (contacts, sort mode, flash
// message) and passes it down to the form and list views. Every change to
// the contact list is confirmed by the API before it is applied locally.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

// FlashDuration is how long a success message stays on screen.
const FlashDuration = 3 * time.Second

// --- Consumer-side interfaces ---

// API is the subset of the contacts client the UI needs.
type API interface {
	List(ctx context.Context) ([]contact.Contact, error)
	Create(ctx context.Context, in contact.Input) (*contact.Contact, error)
	Delete(ctx context.Context, id string) error
}

// --- tea.Msg types ---

// ContactsLoadedMsg carries the result of API.List.
type ContactsLoadedMsg struct {
	Contacts []contact.Contact
	Err      error
}

// ContactCreatedMsg carries the result of API.Create.
type ContactCreatedMsg struct {
	Contact *contact.Contact
	Err     error
}

// ContactDeletedMsg carries the result of API.Delete.
type ContactDeletedMsg struct {
	ID  string
	Err error
}

// clearFlashMsg hides the flash message it was scheduled for. A newer
// flash replaces the id, so stale timers do nothing.
type clearFlashMsg struct {
	id int
}

// The commands below pass a plain background context. Request deadlines
// come from the API implementation, which for the HTTP client is its
// configured timeout.

// loadContacts returns a tea.Cmd that fetches every contact.
func loadContacts(api API) tea.Cmd {
	return func() tea.Msg {
		contacts, err := api.List(context.Background())
		return ContactsLoadedMsg{Contacts: contacts, Err: err}
	}
}

// createContact returns a tea.Cmd that submits in.
func createContact(api API, in contact.Input) tea.Cmd {
	return func() tea.Msg {
		c, err := api.Create(context.Background(), in)
		return ContactCreatedMsg{Contact: c, Err: err}
	}
}

// deleteContact returns a tea.Cmd that deletes the contact with id.
func deleteContact(api API, id string) tea.Cmd {
	return func() tea.Msg {
		return ContactDeletedMsg{ID: id, Err: api.Delete(context.Background(), id)}
	}
}
