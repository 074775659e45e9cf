package filter

import (
	"sort"
	"strings"
	"sync"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/taxonomy"
)

// Memo caches the last pipeline evaluation per facet set. The listing UI
// re-derives on every keystroke and every unrelated re-render; when the
// (jobs generation, taxonomy generation, criteria, tab) key is unchanged,
// the cached slice is returned instead of re-running O(N·K) matching.
type Memo struct {
	mu   sync.Mutex
	last map[string]memoEntry
}

type memoEntry struct {
	key  memoKey
	jobs []domain.JobRecord
}

type memoKey struct {
	jobsGen     uint64
	taxonomyGen uint64
	criteria    string
	tab         domain.RegionTab
}

func NewMemo() *Memo {
	return &Memo{last: make(map[string]memoEntry)}
}

// Apply is the memoized form of filter.Apply. jobsGen must change whenever
// the jobs slice does; the taxonomy generation comes from the store
// snapshot. The returned slice is shared: callers must not mutate it.
func (m *Memo) Apply(jobs []domain.JobRecord, jobsGen uint64, c domain.FilterCriteria, snap taxonomy.Snapshot, tab domain.RegionTab, facets []Facet) []domain.JobRecord {
	fk := facetSetKey(facets)
	key := memoKey{
		jobsGen:     jobsGen,
		taxonomyGen: snap.Generation,
		criteria:    c.Key(),
		tab:         tab,
	}

	m.mu.Lock()
	if e, ok := m.last[fk]; ok && e.key == key {
		m.mu.Unlock()
		return e.jobs
	}
	m.mu.Unlock()

	out := Apply(jobs, c, snap.Taxonomy, tab, facets)

	m.mu.Lock()
	m.last[fk] = memoEntry{key: key, jobs: out}
	m.mu.Unlock()
	return out
}

func facetSetKey(facets []Facet) string {
	names := make([]string, len(facets))
	for i, f := range facets {
		names[i] = string(f)
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
