package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpen_AppliesMigrationsOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "journal.db")

	db, err := Open(ctx, Config{Path: path}, zap.NewNop())
	require.NoError(t, err)

	var tables int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='submissions'`).Scan(&tables))
	assert.Equal(t, 1, tables)
	require.NoError(t, db.Close())

	// reopening must not reapply
	db, err = Open(ctx, Config{Path: path}, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	var applied int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM migrations`).Scan(&applied))
	assert.Equal(t, 1, applied)
}

func TestLoadMigrations(t *testing.T) {
	m := NewMigrationManager(nil, zap.NewNop())
	migrations, err := m.LoadMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Equal(t, "001_create_submissions", migrations[0].Name)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(context.Background(), Config{}, zap.NewNop())
	assert.Error(t, err)
}

func TestTransaction_RollsBack(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, Config{Path: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	boom := errors.New("boom")
	err = Transaction(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO submissions (id, kind, email, created_at) VALUES ('x', 'newsletter', 'a@b', CURRENT_TIMESTAMP)`)
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM submissions`).Scan(&n))
	assert.Equal(t, 0, n)
}
