package httpapi

import (
	"net/http"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/filter"
	"jobboard-engine/internal/rank"
	"jobboard-engine/internal/store"
	"jobboard-engine/internal/taxonomy"
)

type JobsHandler struct {
	Jobs     *store.JobsCache
	Taxonomy *taxonomy.Store
	Memo     *filter.Memo
}

// jobsResponse carries the ranked page plus the numbers the tab chrome
// needs: baseCount is the match count with every facet except category, and
// categoryCounts breaks that base set down per category.
type jobsResponse struct {
	Jobs           []domain.JobRecord `json:"jobs"`
	Total          int                `json:"total"`
	BaseCount      int                `json:"baseCount"`
	CategoryCounts map[string]int     `json:"categoryCounts"`
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := domain.FilterCriteria{
		Search:     domain.ParseConstraint(q.Get("search")),
		JobType:    domain.ParseConstraint(q.Get("type")),
		Category:   domain.ParseConstraint(q.Get("category")),
		Location:   domain.ParseConstraint(q.Get("location")),
		Experience: domain.ParseConstraint(q.Get("experience")),
		Remote:     domain.ParseRemoteFilter(q.Get("remote")),
	}
	tab := domain.ParseRegionTab(q.Get("region"))

	jobs, jobsGen := h.Jobs.Snapshot()
	snap := h.Taxonomy.Snapshot()

	filtered := h.Memo.Apply(jobs, jobsGen, criteria, snap, tab, filter.All())
	base := h.Memo.Apply(jobs, jobsGen, criteria, snap, tab, filter.AllExcept(filter.FacetCategory))

	counts := make(map[string]int)
	for _, j := range base {
		if j.Category != "" {
			counts[j.Category]++
		}
	}

	writeJSON(w, jobsResponse{
		Jobs:           rank.Rank(filtered),
		Total:          len(filtered),
		BaseCount:      len(base),
		CategoryCounts: counts,
	})
}
