package store

import (
	"context"
	"database/sql"
	"sync"

	"jobboard-engine/internal/domain"
)

// JobsCache keeps the current job slice in memory with a generation
// counter, so the filter memo can tell "same jobs" apart from "reloaded
// jobs" without comparing slices.
type JobsCache struct {
	db *sql.DB

	mu   sync.Mutex
	jobs []domain.JobRecord
	gen  uint64
}

func NewJobsCache(db *sql.DB) *JobsCache {
	return &JobsCache{db: db}
}

// Refresh reloads from the database and bumps the generation. On error the
// previous snapshot stays valid.
func (c *JobsCache) Refresh(ctx context.Context) error {
	jobs, err := ListJobs(ctx, c.db)
	if err != nil {
		return err
	}
	if jobs == nil {
		jobs = []domain.JobRecord{}
	}

	c.mu.Lock()
	c.jobs = jobs
	c.gen++
	c.mu.Unlock()
	return nil
}

// Snapshot returns the cached jobs and their generation. The slice is
// shared; callers must not mutate it.
func (c *JobsCache) Snapshot() ([]domain.JobRecord, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.jobs == nil {
		return []domain.JobRecord{}, c.gen
	}
	return c.jobs, c.gen
}
