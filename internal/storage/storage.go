package storage

import (
	"context"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

// Storage defines the interface for persisting and querying contacts
type Storage interface {
	// Contact operations
	CreateContact(ctx context.Context, c *contact.Contact) error
	GetContact(ctx context.Context, id string) (*contact.Contact, error)
	ListContacts(ctx context.Context) ([]contact.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	CountContacts(ctx context.Context) (int, error)

	// Status operations
	GetStatus(ctx context.Context) (*Status, error)

	// Database operations
	Close() error
}

// Status contains statistics about the contact database
type Status struct {
	ContactsCount      int
	SchemaVersion      string
	Driver             string
	BuildMode          string
	DatabaseAccessible bool
}
