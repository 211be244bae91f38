package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solatis/translit/internal/types"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "translit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, MigrateUp(ctx, db))
	return db
}

func TestDataSourceFor(t *testing.T) {
	tests := []struct {
		url, driver, dsn string
	}{
		{"sqlite://translit.db", "sqlite3", "translit.db"},
		{"sqlite://data/translit.db", "sqlite3", "data/translit.db"},
		{"sqlite:///var/lib/translit.db", "sqlite3", "/var/lib/translit.db"},
		{"postgres://u@localhost/translit", "postgres", "postgres://u@localhost/translit"},
	}
	for _, tt := range tests {
		driver, dsn, err := dataSourceFor(tt.url)
		require.NoError(t, err, tt.url)
		assert.Equal(t, tt.driver, driver, tt.url)
		assert.Equal(t, tt.dsn, dsn, tt.url)
	}

	_, _, err := dataSourceFor("mysql://localhost/x")
	assert.Error(t, err)
	_, _, err = dataSourceFor("sqlite://")
	assert.Error(t, err)
}

func TestMigrate(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	// second run is a no-op
	require.NoError(t, MigrateUp(ctx, db))

	statuses, err := MigrateStatus(ctx, db)
	require.NoError(t, err)
	require.NotEmpty(t, statuses)
	for _, s := range statuses {
		assert.True(t, s.Applied, s.ID)
		assert.NotEmpty(t, s.AppliedAt, s.ID)
	}

	_, err = db.Exec("UPDATE migrations SET checksum = 'tampered' WHERE migration_id = '001_initial_schema.sql'")
	require.NoError(t, err)
	assert.Error(t, MigrateUp(ctx, db))
}

func TestStore(t *testing.T) {
	db := openTestDB(t)
	store, err := NewStore(db)
	require.NoError(t, err)
	ctx := context.Background()

	res := &types.Resource{Transforms: []types.TransformSource{{
		Source:    "Latin",
		Target:    "ASCII",
		Direction: "both",
		Rules:     []string{"$v = [aeiou] ;", ":: [a-z] ;", "a > b ;"},
	}}}
	id, err := store.ImportResource(ctx, "Latin-ASCII", res)
	require.NoError(t, err)
	_, err = types.ParseTransformID(string(id))
	require.NoError(t, err)
	assert.False(t, types.TransformIDTime(id).IsZero())

	ok, err := store.ResourceExists(ctx, types.NamespaceShared, types.CategoryTransforms, "Latin-ASCII")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := store.GetResource(ctx, types.NamespaceShared, types.CategoryTransforms, "Latin-ASCII")
	require.NoError(t, err)
	assert.Equal(t, res, got)

	// reimport replaces
	res.Transforms[0].Rules = []string{"x > y ;"}
	res.Transforms[0].Direction = ""
	_, err = store.ImportResource(ctx, "Latin-ASCII", res)
	require.NoError(t, err)
	got, err = store.GetResource(ctx, types.NamespaceShared, types.CategoryTransforms, "Latin-ASCII")
	require.NoError(t, err)
	assert.Equal(t, []string{"x > y ;"}, got.Transforms[0].Rules)
	assert.Equal(t, "forward", got.Transforms[0].Direction)

	rows, err := store.ListTransforms(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Latin-ASCII", rows[0].Name)
}

func TestStore_Missing(t *testing.T) {
	store, err := NewStore(openTestDB(t))
	require.NoError(t, err)
	ctx := context.Background()

	ok, err := store.ResourceExists(ctx, types.NamespaceShared, types.CategoryTransforms, "Nope")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.GetResource(ctx, types.NamespaceShared, types.CategoryTransforms, "Nope")
	assert.ErrorIs(t, err, types.ErrResourceNotFound)

	_, err = store.GetResource(ctx, "locales", "names", "de")
	assert.ErrorIs(t, err, types.ErrResourceNotFound)

	_, err = store.ImportResource(ctx, "Empty", &types.Resource{})
	assert.ErrorIs(t, err, types.ErrEmptyResource)
}
