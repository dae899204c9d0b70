package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/pkg/contact"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a SQLiteStorage
type Option func(*SQLiteStorage)

// WithClock overrides the clock used to stamp CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *SQLiteStorage) {
		s.now = now
	}
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer; this also keeps one shared
	// connection alive for :memory: databases.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// ResolvePath expands a leading ~ and creates the parent directory of a
// file-backed database. MemoryPath is returned unchanged.
func ResolvePath(dbPath string) (string, error) {
	if dbPath == MemoryPath || strings.HasPrefix(dbPath, "file:") {
		return dbPath, nil
	}
	if dbPath == "~" || strings.HasPrefix(dbPath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, strings.TrimPrefix(dbPath, "~"))
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create database directory: %w", err)
	}
	return dbPath, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string, opts ...Option) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Apply migrations
	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return newWithDB(db, opts...), nil
}

// newWithDB wraps an already migrated database handle
func newWithDB(db *sql.DB, opts ...Option) *SQLiteStorage {
	s := &SQLiteStorage{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for migration tooling.
func (s *SQLiteStorage) DB() *sql.DB {
	return s.db
}

// Contact operations

// CreateContact stamps c with a new id and creation time and inserts it.
// The stored created_at never goes below the newest existing row, so a
// wall clock stepping backwards cannot reorder the list.
func (s *SQLiteStorage) CreateContact(ctx context.Context, c *contact.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, phone, message, created_at)
		VALUES (?, ?, ?, ?, ?, MAX(?, COALESCE((SELECT MAX(created_at) FROM contacts), 0)))
		RETURNING created_at
	`
	id := uuid.NewString()
	var createdAt int64
	err := s.db.QueryRowContext(ctx, query,
		id, c.Name, c.Email, c.Phone, c.Message, s.now().UTC().UnixNano()).Scan(&createdAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	c.ID = id
	c.CreatedAt = time.Unix(0, createdAt).UTC()
	return nil
}

func (s *SQLiteStorage) GetContact(ctx context.Context, id string) (*contact.Contact, error) {
	query := `
		SELECT id, name, email, phone, message, created_at
		FROM contacts
		WHERE id = ?
	`
	c, err := scanContact(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

func (s *SQLiteStorage) ListContacts(ctx context.Context) ([]contact.Contact, error) {
	query := `
		SELECT id, name, email, phone, message, created_at
		FROM contacts
		ORDER BY created_at DESC, seq DESC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]contact.Contact, 0)
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *SQLiteStorage) DeleteContact(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStorage) CountContacts(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contacts").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count contacts: %w", err)
	}
	return n, nil
}

// Status operations

func (s *SQLiteStorage) GetStatus(ctx context.Context) (*Status, error) {
	status := &Status{
		Driver:    DriverName,
		BuildMode: BuildMode,
	}

	if err := s.db.PingContext(ctx); err != nil {
		return status, fmt.Errorf("database not accessible: %w", err)
	}
	status.DatabaseAccessible = true

	version, err := SchemaVersion(ctx, s.db)
	if err != nil {
		return status, err
	}
	status.SchemaVersion = version

	count, err := s.CountContacts(ctx)
	if err != nil {
		return status, err
	}
	status.ContactsCount = count

	return status, nil
}

// rowScanner is implemented by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContact(row rowScanner) (*contact.Contact, error) {
	var c contact.Contact
	var createdAt int64
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Message, &createdAt); err != nil {
		return nil, err
	}
	c.CreatedAt = time.Unix(0, createdAt).UTC()
	return &c, nil
}

// isMissingTable reports whether err is SQLite's "no such table" failure
func isMissingTable(err error) bool {
	return err != nil && strings.Contains(err.Error(), "no such table")
}
