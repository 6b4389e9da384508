package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/memberhub/internal/database/repository"
)

func setupDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, RunMigrations(dbPath, ""))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, ctx
}

func TestMigrationsAreRepeatable(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "twice.db")
	require.NoError(t, RunMigrations(dbPath, ""))
	require.NoError(t, RunMigrations(dbPath, ""))
}

func TestMigrationsFromDirectory(t *testing.T) {
	t.Parallel()
	dir, err := filepath.Abs("migrations")
	require.NoError(t, err)
	dbPath := filepath.Join(t.TempDir(), "dir.db")
	require.NoError(t, RunMigrations(dbPath, dir))

	db, err := Open(dbPath)
	require.NoError(t, err)
	defer db.Close()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM members").Scan(&n))
	require.Zero(t, n)
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()
	db, ctx := setupDB(t)

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	sample := DefaultSampleData()
	members, err := repository.NewMemberRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(sample.Members), members)

	resources, err := repository.NewResourceRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(sample.Resources), resources)

	events, err := repository.NewEventRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(sample.Events), events)
}

func TestSeedDefaultsLeavesExistingDirectory(t *testing.T) {
	t.Parallel()
	db, ctx := setupDB(t)

	repo := repository.NewMemberRepo(db)
	require.NoError(t, repo.Upsert(ctx, repository.Member{ID: "m-1", Name: "Only Member", JoinedOn: "2024-01-01", Status: repository.MemberActive}))
	require.NoError(t, SeedDefaults(ctx, db))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestSampleIDsAreStable(t *testing.T) {
	a, b := DefaultSampleData(), DefaultSampleData()
	require.Equal(t, a.Members[0].ID, b.Members[0].ID)
	seen := map[string]bool{}
	for _, m := range a.Members {
		require.False(t, seen[m.ID])
		seen[m.ID] = true
	}
}

func TestWithTxRollsBack(t *testing.T) {
	t.Parallel()
	db, ctx := setupDB(t)

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO members(id, name, joined_on) VALUES ('x', 'X', '2024-01-01')`); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO no_such_table VALUES (1)`)
		return err
	})
	require.Error(t, err)

	n, err := repository.NewMemberRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSeedDefaultsLeavesEmptiedDirectoryEmpty(t *testing.T) {
	t.Parallel()
	db, ctx := setupDB(t)

	require.NoError(t, SeedDefaults(ctx, db))
	marker, err := Setting(ctx, db, sampleSeededKey)
	require.NoError(t, err)
	require.NotEmpty(t, marker)

	_, err = db.ExecContext(ctx, `DELETE FROM members`)
	require.NoError(t, err)
	require.NoError(t, SeedDefaults(ctx, db))

	n, err := repository.NewMemberRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n, "startup must not refill a directory the operator emptied")

	require.NoError(t, Seed(ctx, db, DefaultSampleData()))
	n, err = repository.NewMemberRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(DefaultSampleData().Members), n)
}

func TestSettingRoundTrip(t *testing.T) {
	t.Parallel()
	db, ctx := setupDB(t)

	v, err := Setting(ctx, db, "missing")
	require.NoError(t, err)
	require.Empty(t, v)

	require.NoError(t, SetSetting(ctx, db, "k", "one"))
	require.NoError(t, SetSetting(ctx, db, "k", "two"))
	v, err = Setting(ctx, db, "k")
	require.NoError(t, err)
	require.Equal(t, "two", v)
}
