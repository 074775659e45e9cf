package main

import (
	"context"
	"database/sql"
	"log"
	"sync/atomic"
	"time"

	"jobboard-engine/internal/config"
	"jobboard-engine/internal/source"
	"jobboard-engine/internal/store"
	"jobboard-engine/internal/taxonomy"
)

// refetcher owns the "taxonomy changed, go re-pull" reaction. Each refetch
// is tagged with the taxonomy generation that triggered it; results landing
// after a newer generation exists are discarded, so a slow fetch can never
// clobber state derived from a fresher taxonomy.
//
// Only job data is re-pulled here: the taxonomy store already holds the
// new value, and the favorites overlay is served straight from the DB per
// request, so browser views re-read it themselves on the SSE signal.
type refetcher struct {
	db    *sql.DB
	cache *store.JobsCache
	cfg   *atomic.Value // stores config.Config
	tax   *taxonomy.Store

	inflight atomic.Uint64
}

func newRefetcher(db *sql.DB, cache *store.JobsCache, cfg *atomic.Value, tax *taxonomy.Store) *refetcher {
	return &refetcher{db: db, cache: cache, cfg: cfg, tax: tax}
}

// refreshJobs pulls the feeds, upserts into the store, and reloads the
// cache. The source client is rebuilt from the current config each time,
// so feed edits via /config apply on the next refresh. Fetch errors are
// already downgraded to empty feeds by the source client; errors here mean
// the store itself misbehaved.
func (rf *refetcher) refreshJobs(ctx context.Context) error {
	src := source.New(rf.cfg.Load().(config.Config))

	jobs, err := src.FetchAll(ctx)
	if err != nil {
		return err
	}
	for _, j := range jobs {
		if j.ID == "" {
			continue
		}
		if err := store.UpsertJob(ctx, rf.db, j); err != nil {
			return err
		}
	}
	return rf.cache.Refresh(ctx)
}

// onTaxonomyChanged runs after every successful taxonomy save.
func (rf *refetcher) onTaxonomyChanged() {
	gen := rf.tax.Snapshot().Generation
	rf.inflight.Store(gen)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		err := rf.refreshJobs(ctx)

		// Stale guard: a newer save superseded this refetch.
		if rf.inflight.Load() != gen {
			log.Printf("level=info msg=\"refetch superseded\" generation=%d", gen)
			return
		}
		if err != nil {
			log.Printf("level=warn msg=\"refetch after taxonomy change failed\" generation=%d err=%v", gen, err)
			return
		}
		log.Printf("level=info msg=\"refetched after taxonomy change\" generation=%d", gen)
	}()
}
