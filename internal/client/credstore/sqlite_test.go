package credstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:credstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE credentials (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, repo.Save(ctx, "tok-1"))
	token, err = repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)

	// save replaces: at most one credential is live
	require.NoError(t, repo.Save(ctx, "tok-2"))
	token, err = repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)

	require.NoError(t, repo.Clear(ctx))
	token, err = repo.Token(ctx)
	require.NoError(t, err)
	require.Empty(t, token)
}

func TestClearOnEmptyStoreIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLiteRepository(setupDB(t))

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))
}

func TestOpenRunsMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "client.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSQLiteRepository(db)
	require.NoError(t, repo.Save(ctx, "tok-1"))

	token, err := repo.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "tok-1", token)
}
