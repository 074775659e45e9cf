package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"jobboard-engine/internal/config"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/filter"
	"jobboard-engine/internal/store"
	"jobboard-engine/internal/taxonomy"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	Taxonomy *taxonomy.Store
	Jobs     *store.JobsCache
	Memo     *filter.Memo

	// Config persistence
	CfgVal      *atomic.Value // stores config.Config
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Keyring account holding the admin bearer token.
	AdminKeyringAccount string

	// RefreshJobs re-pulls the upstream feeds into the store and the jobs
	// cache (injected for testability).
	RefreshJobs func(ctx context.Context) error
}
