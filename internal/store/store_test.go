package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-engine/internal/domain"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db.Pool))
	return db
}

func sampleJob(id string) domain.JobRecord {
	return domain.JobRecord{
		ID:       id,
		Title:    "Backend Engineer",
		Company:  "Acme",
		Location: "Beijing",
		Skills:   []string{"Go", "SQL"},
		Type:     "fulltime",
		Category: "软件开发",
		PostedAt: "2024-06-01T00:00:00Z",
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := testDB(t)
	assert.NoError(t, Migrate(db.Pool))
}

func TestUpsertAndList(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	require.NoError(t, UpsertJob(ctx, db.Pool, sampleJob("j1")))
	require.NoError(t, UpsertJob(ctx, db.Pool, sampleJob("j2")))

	// Upsert with the same id replaces, not duplicates.
	updated := sampleJob("j1")
	updated.Title = "Staff Engineer"
	require.NoError(t, UpsertJob(ctx, db.Pool, updated))

	jobs, err := ListJobs(ctx, db.Pool)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Staff Engineer", jobs[0].Title)
	assert.Equal(t, []string{"Go", "SQL"}, jobs[0].Skills)
}

func TestFavoritesRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	require.NoError(t, AddFavorite(ctx, db.Pool, "j1"))
	require.NoError(t, AddFavorite(ctx, db.Pool, "j2"))
	require.NoError(t, AddFavorite(ctx, db.Pool, "j1")) // ignored

	ids, err := ListFavorites(ctx, db.Pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"j1", "j2"}, ids)

	require.NoError(t, RemoveFavorite(ctx, db.Pool, "j1"))
	ids, err = ListFavorites(ctx, db.Pool)
	require.NoError(t, err)
	assert.Equal(t, []string{"j2"}, ids)
}

func TestJobsCacheGenerations(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	cache := NewJobsCache(db.Pool)

	jobs, gen0 := cache.Snapshot()
	assert.Empty(t, jobs)

	require.NoError(t, UpsertJob(ctx, db.Pool, sampleJob("j1")))
	require.NoError(t, cache.Refresh(ctx))

	jobs, gen1 := cache.Snapshot()
	assert.Len(t, jobs, 1)
	assert.Greater(t, gen1, gen0)

	require.NoError(t, cache.Refresh(ctx))
	_, gen2 := cache.Snapshot()
	assert.Greater(t, gen2, gen1, "every refresh bumps the generation")
}
