package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/storage"
	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

// ErrNotFound is returned when a contact id does not exist
var ErrNotFound = errors.New("contact not found")

// StorageError wraps a persistence failure
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Service coordinates validation and storage for contacts
type Service struct {
	storage storage.Storage
	logger  *zap.Logger
}

// New creates a Service. A nil logger disables logging.
func New(store storage.Storage, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		storage: store,
		logger:  logger,
	}
}

// List returns every contact, newest first
func (s *Service) List(ctx context.Context) ([]contact.Contact, error) {
	contacts, err := s.storage.ListContacts(ctx)
	if err != nil {
		return nil, s.storageError("list contacts", err)
	}
	return contacts, nil
}

// Create validates the input and stores a new contact.
// Invalid input returns a *contact.ValidationError and the store is not touched.
func (s *Service) Create(ctx context.Context, in contact.Input) (*contact.Contact, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	c := contact.New(in)
	if err := s.storage.CreateContact(ctx, c); err != nil {
		return nil, s.storageError("create contact", err)
	}

	s.logger.Info("contact created", zap.String("id", c.ID))
	return c, nil
}

// Get returns the contact with the given id
func (s *Service) Get(ctx context.Context, id string) (*contact.Contact, error) {
	c, err := s.storage.GetContact(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, s.storageError("get contact", err)
	}
	return c, nil
}

// Delete removes the contact with the given id
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.storage.DeleteContact(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return s.storageError("delete contact", err)
	}

	s.logger.Info("contact deleted", zap.String("id", id))
	return nil
}

// Status reports database health and the number of stored contacts
func (s *Service) Status(ctx context.Context) (*storage.Status, error) {
	status, err := s.storage.GetStatus(ctx)
	if err != nil {
		return status, s.storageError("get status", err)
	}
	return status, nil
}

func (s *Service) storageError(op string, err error) error {
	s.logger.Error("storage failure", zap.String("op", op), zap.Error(err))
	return &StorageError{Op: op, Err: err}
}
