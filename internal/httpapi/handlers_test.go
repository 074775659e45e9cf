package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-engine/internal/config"
	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/filter"
	"jobboard-engine/internal/store"
	"jobboard-engine/internal/taxonomy"
)

func testDeps(t *testing.T) (Deps, *store.DB) {
	t.Helper()

	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, store.Migrate(db.Pool))

	taxStore := taxonomy.NewStore(filepath.Join(t.TempDir(), "tax.yml"))
	cache := store.NewJobsCache(db.Pool)

	userCfgPath := filepath.Join(t.TempDir(), "config.yml")
	var cfg config.Config
	cfg.App.Port = 38472
	cfg.Admin.KeyringAccount = "jobboard-test:admin"
	cfg, _ = config.NormalizeAndValidate(cfg)
	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	return Deps{
		DB:                  db.Pool,
		Hub:                 events.NewHub(),
		Taxonomy:            taxStore,
		Jobs:                cache,
		Memo:                filter.NewMemo(),
		CfgVal:              &cfgVal,
		UserCfgPath:         userCfgPath,
		LoadCfg:             func() (config.Config, error) { return config.Load(userCfgPath) },
		AdminKeyringAccount: "jobboard-test:admin",
		RefreshJobs:         func(ctx context.Context) error { return cache.Refresh(ctx) },
	}, db
}

func seedJobs(t *testing.T, d Deps, db *store.DB, jobs ...domain.JobRecord) {
	t.Helper()
	ctx := context.Background()
	for _, j := range jobs {
		require.NoError(t, store.UpsertJob(ctx, db.Pool, j))
	}
	require.NoError(t, d.Jobs.Refresh(ctx))
}

func TestGetLocationCategories(t *testing.T) {
	d, _ := testDeps(t)
	mux := NewMux(d)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/location-categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got taxonomy.Taxonomy
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, taxonomy.DefaultSeed(), got)
}

func TestPostLocationCategoriesRequiresToken(t *testing.T) {
	d, _ := testDeps(t)
	mux := NewMux(d)

	body := `{"domesticKeywords":["beijing"],"overseasKeywords":["usa"],"globalKeywords":["remote"]}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/location-categories", strings.NewReader(body)))

	assert.GreaterOrEqual(t, rec.Code, 400, "unauthenticated taxonomy edit must be rejected")

	// And the taxonomy is untouched.
	assert.Equal(t, taxonomy.DefaultSeed(), d.Taxonomy.Snapshot().Taxonomy)
}

func TestJobsListFiltersRanksAndCounts(t *testing.T) {
	d, db := testDeps(t)
	mux := NewMux(d)

	seedJobs(t, d, db,
		domain.JobRecord{ID: "1", Title: "Backend", Location: "Beijing", Category: "软件开发", PostedAt: "2024-01-01", CanRefer: true},
		domain.JobRecord{ID: "2", Title: "Frontend", Location: "Shanghai", Category: "软件开发", PostedAt: "2024-06-01"},
		domain.JobRecord{ID: "3", Title: "Designer", Location: "London", Category: "设计", PostedAt: "2024-03-01"},
		domain.JobRecord{ID: "4", Title: "Writer", Location: "Beijing", Category: "内容", PostedAt: "2024-02-01"},
	)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs?region=domestic&category=软件开发", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got struct {
		Jobs           []domain.JobRecord `json:"jobs"`
		Total          int                `json:"total"`
		BaseCount      int                `json:"baseCount"`
		CategoryCounts map[string]int     `json:"categoryCounts"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	// London is overseas-only; the category facet narrows to the two
	// 软件开发 jobs; ranking puts the referable one first.
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 3, got.BaseCount)
	assert.Equal(t, "1", got.Jobs[0].ID)
	assert.Equal(t, map[string]int{"软件开发": 2, "内容": 1}, got.CategoryCounts)
}

func TestAuditLocations(t *testing.T) {
	d, db := testDeps(t)
	mux := NewMux(d)

	seedJobs(t, d, db,
		domain.JobRecord{ID: "1", Location: "Beijing"},
		domain.JobRecord{ID: "2", Location: "Beijing"},
		domain.JobRecord{ID: "3", Location: "Atlantis"},
	)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/audit/locations", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []struct {
		Location     string `json:"location"`
		Count        int    `json:"count"`
		Label        string `json:"label"`
		DisplayLabel string `json:"displayLabel"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)

	assert.Equal(t, "Beijing", got[0].Location)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, "domestic", got[0].Label)
	assert.Equal(t, "国内", got[0].DisplayLabel)

	assert.Equal(t, "Atlantis", got[1].Location)
	assert.Equal(t, "unclassified", got[1].Label)
	assert.Equal(t, "未分类", got[1].DisplayLabel)
}

func TestAuditAssignStatusCodes(t *testing.T) {
	// Exercised past the auth wrapper; the router tests cover token checks.
	d, _ := testDeps(t)
	ah := AuditHandler{Jobs: d.Jobs, Taxonomy: d.Taxonomy, Hub: d.Hub}

	// A caller mistake (unknown category) is a 400.
	rec := httptest.NewRecorder()
	ah.Assign(rec, httptest.NewRequest(http.MethodPost, "/audit/assign",
		strings.NewReader(`{"category":"nowhere","location":"Mars"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A failed save is a 500. A regular file where the store's parent
	// directory should be makes the write fail.
	blocked := filepath.Join(t.TempDir(), "notadir")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))
	ah.Taxonomy = taxonomy.NewStore(filepath.Join(blocked, "tax.yml"))

	rec = httptest.NewRecorder()
	ah.Assign(rec, httptest.NewRequest(http.MethodPost, "/audit/assign",
		strings.NewReader(`{"category":"domestic","location":"Mars"}`)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestFavoritesEndpoints(t *testing.T) {
	d, _ := testDeps(t)
	mux := NewMux(d)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/favorites/j1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favorites", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var ids []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ids))
	assert.Equal(t, []string{"j1"}, ids)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/favorites/j1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/favorites", nil))
	var empty []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &empty))
	assert.Empty(t, empty)
}

func TestGetConfig(t *testing.T) {
	d, _ := testDeps(t)
	mux := NewMux(d)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got config.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 38472, got.App.Port)
}

func TestPutConfigRequiresToken(t *testing.T) {
	d, _ := testDeps(t)
	mux := NewMux(d)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(`{}`)))

	assert.GreaterOrEqual(t, rec.Code, 400, "unauthenticated config edit must be rejected")
}

func TestConfigPutPersistsAndSwaps(t *testing.T) {
	d, _ := testDeps(t)

	// Exercise the handler past the auth wrapper, which the router covers
	// separately above.
	ch := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath, LoadCfg: d.LoadCfg}

	next := d.CfgVal.Load().(config.Config)
	next.App.Port = 40000
	body, err := json.Marshal(next)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	ch.Put(rec, httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(string(body))))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// The file round-tripped and the live value swapped.
	onDisk, err := config.Load(d.UserCfgPath)
	require.NoError(t, err)
	assert.Equal(t, 40000, onDisk.App.Port)
	assert.Equal(t, 40000, d.CfgVal.Load().(config.Config).App.Port)
}

func TestConfigPutRejectsInvalid(t *testing.T) {
	d, _ := testDeps(t)
	ch := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath, LoadCfg: d.LoadCfg}

	bad := d.CfgVal.Load().(config.Config)
	bad.App.Port = -1
	body, err := json.Marshal(bad)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	ch.Put(rec, httptest.NewRequest(http.MethodPut, "/config", strings.NewReader(string(body))))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 38472, d.CfgVal.Load().(config.Config).App.Port, "live config untouched")
}

func TestHealth(t *testing.T) {
	d, _ := testDeps(t)
	mux := NewMux(d)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}
