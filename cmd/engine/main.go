package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"jobboard-engine/internal/config"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/filter"
	"jobboard-engine/internal/httpapi"
	"jobboard-engine/internal/store"
	"jobboard-engine/internal/taxonomy"
)

func main() {
	// Engine data dir: env if provided, else local folder.
	dataDir := os.Getenv("JOBBOARD_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable; /config PUT swaps cfgVal.
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		cfg, vr := config.NormalizeAndValidate(cfg)
		if !vr.OK() {
			return cfg, fmt.Errorf("config invalid: %v", vr.Errors)
		}
		for _, wmsg := range vr.Warnings {
			log.Printf("level=warn msg=\"config\" warning=%q", wmsg)
		}
		return cfg, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(dataDir, "jobboard.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := store.Migrate(db.Pool); err != nil {
		log.Fatal(err)
	}

	// Taxonomy: load failure leaves the seed in place so classification
	// keeps working in degraded mode.
	taxStore := taxonomy.NewStore(filepath.Join(dataDir, "location_categories.yml"))
	_ = taxStore.Load()

	hub := events.NewHub()
	jobsCache := store.NewJobsCache(db.Pool)

	ref := newRefetcher(db.Pool, jobsCache, &cfgVal, taxStore)

	// Warm the cache; an empty or failing feed set still leaves a usable
	// (empty) listing.
	startCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := ref.refreshJobs(startCtx); err != nil {
		log.Printf("level=warn msg=\"initial job fetch failed\" err=%v", err)
	}
	cancel()

	// Taxonomy edits trigger an independent re-pull of everything that
	// depends on it.
	unsubscribe := taxStore.Subscribe(ref.onTaxonomyChanged)
	defer unsubscribe()

	mux := httpapi.NewMux(httpapi.Deps{
		DB:                  db.Pool,
		Hub:                 hub,
		Taxonomy:            taxStore,
		Jobs:                jobsCache,
		Memo:                filter.NewMemo(),
		CfgVal:              &cfgVal,
		UserCfgPath:         userCfgPath,
		LoadCfg:             loadCfg,
		AdminKeyringAccount: cfg.Admin.KeyringAccount,
		RefreshJobs:         ref.refreshJobs,
	})

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("level=info msg=\"engine listening\" addr=http://%s data_dir=%s", addr, dataDir)

	srv := &http.Server{
		Handler: httpapi.Chain(mux,
			httpapi.RequestID,
			httpapi.Cors,
			httpapi.Recover,
			httpapi.AccessLog,
		),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
