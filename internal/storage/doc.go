// Package storage provides SQLite-based persistence for contacts.
//
// # Database Schema
//
// Tables:
//   - schema_version: applied migration versions
//   - contacts: one row per contact document
//
// Each contact carries a public UUID (id) and an internal AUTOINCREMENT
// sequence (seq). created_at is stored as Unix nanoseconds; listing orders by
// created_at DESC and then seq DESC, so two records stamped in the same
// clock tick still come back newest first.
//
// # Basic Usage
//
//	db, err := storage.NewSQLiteStorage("/home/me/.contacts/contacts.db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	c := contact.New(contact.Input{Name: "Ann", Email: "ann@x.com", Phone: "1234567890"})
//	if err := db.CreateContact(ctx, c); err != nil {
//	    return err
//	}
//	// c.ID and c.CreatedAt are now set
//
//	all, err := db.ListContacts(ctx)
//
//	err = db.DeleteContact(ctx, c.ID)
//	if errors.Is(err, storage.ErrNotFound) {
//	    // nothing to delete
//	}
//
// Storage does not validate input; callers go through the service package.
// Duplicate emails and phones are accepted.
//
// # Migrations
//
// Migrations are keyed by semantic version and applied on open:
//
//	err := storage.ApplyMigrations(ctx, sqlDB)
//	err = storage.RollbackMigration(ctx, sqlDB)
//
// # Build Tags
//
// Pure Go build (default):
//
//   - Uses modernc.org/sqlite
//
//     CGO_ENABLED=0 go build ./...
//
// CGO build (sqlite_cgo tag):
//
//   - Uses github.com/mattn/go-sqlite3
//
//     CGO_ENABLED=1 go build -tags "sqlite_cgo" ./...
package storage
