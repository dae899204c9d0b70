package storage_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KrishTanna28/CollEdge-Internship-Assignment/internal/storage"
)

func openMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open(storage.DriverName, storage.MemoryPath)
	require.NoError(t, err)
	// One connection, otherwise each pooled connection sees its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, table string) bool {
	t.Helper()
	var name string
	err := db.QueryRowContext(context.Background(),
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
	if err == sql.ErrNoRows {
		return false
	}
	require.NoError(t, err)
	return true
}

func TestApplyMigrations(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, storage.ApplyMigrations(ctx, db))

	version, err := storage.SchemaVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, storage.CurrentSchemaVersion, version)

	for _, table := range []string{"schema_version", "contacts"} {
		assert.True(t, tableExists(t, db, table), "table %s should exist", table)
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, storage.ApplyMigrations(ctx, db))
	require.NoError(t, storage.ApplyMigrations(ctx, db))

	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_version").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, len(storage.AllMigrations), count)
}

func TestSchemaVersion_Fresh(t *testing.T) {
	db := openMemoryDB(t)

	version, err := storage.SchemaVersion(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0", version)
}

func TestRollbackMigration(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()

	require.NoError(t, storage.ApplyMigrations(ctx, db))
	require.NoError(t, storage.RollbackMigration(ctx, db))

	assert.False(t, tableExists(t, db, "contacts"))

	// Nothing left to roll back
	assert.Error(t, storage.RollbackMigration(ctx, db))

	// And the schema can be rebuilt
	require.NoError(t, storage.ApplyMigrations(ctx, db))
	assert.True(t, tableExists(t, db, "contacts"))
}

func TestContactsTableRejectsEmptyRequiredColumns(t *testing.T) {
	db := openMemoryDB(t)
	ctx := context.Background()
	require.NoError(t, storage.ApplyMigrations(ctx, db))

	_, err := db.ExecContext(ctx,
		"INSERT INTO contacts (id, name, email, phone, created_at) VALUES ('x', '', 'a@b.co', '1234567890', 1)")
	assert.Error(t, err)
}
