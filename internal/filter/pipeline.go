// Package filter composes the independent listing facets into an AND
// pipeline. Facets are addressed by name so callers can evaluate a subset,
// which is how the category tab counters are computed without narrowing by
// category itself.
package filter

import (
	"strings"

	"jobboard-engine/internal/classify"
	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/taxonomy"
)

// Facet identifies one filtering dimension.
type Facet string

const (
	FacetSearch     Facet = "search"
	FacetJobType    Facet = "jobType"
	FacetCategory   Facet = "category"
	FacetLocation   Facet = "location"
	FacetExperience Facet = "experience"
	FacetRemote     Facet = "remote"
	FacetRegion     Facet = "region"
)

// All returns every facet, region included.
func All() []Facet {
	return []Facet{
		FacetSearch, FacetJobType, FacetCategory, FacetLocation,
		FacetExperience, FacetRemote, FacetRegion,
	}
}

// AllExcept returns every facet minus the given ones.
func AllExcept(skip ...Facet) []Facet {
	drop := make(map[Facet]bool, len(skip))
	for _, f := range skip {
		drop[f] = true
	}
	var out []Facet
	for _, f := range All() {
		if !drop[f] {
			out = append(out, f)
		}
	}
	return out
}

// Apply returns the jobs passing every listed facet, preserving input
// order. An unconstrained facet passes everything, so listing it is
// harmless; the facets argument exists for partial evaluation, not for
// skipping "all" values.
func Apply(jobs []domain.JobRecord, c domain.FilterCriteria, t taxonomy.Taxonomy, tab domain.RegionTab, facets []Facet) []domain.JobRecord {
	out := make([]domain.JobRecord, 0, len(jobs))
	for _, j := range jobs {
		if passes(j, c, t, tab, facets) {
			out = append(out, j)
		}
	}
	return out
}

func passes(j domain.JobRecord, c domain.FilterCriteria, t taxonomy.Taxonomy, tab domain.RegionTab, facets []Facet) bool {
	for _, f := range facets {
		var ok bool
		switch f {
		case FacetSearch:
			ok = matchSearch(j, c.Search)
		case FacetJobType:
			ok = !c.JobType.Active() || j.Type == c.JobType.Value()
		case FacetCategory:
			ok = matchCategory(j, c.Category)
		case FacetLocation:
			ok = matchLocation(j, c.Location)
		case FacetExperience:
			ok = !c.Experience.Active() || j.ExperienceLevel == c.Experience.Value()
		case FacetRemote:
			ok = matchRemote(j, c.Remote)
		case FacetRegion:
			ok = classify.Classify(j, t).InTab(tab)
		default:
			ok = true
		}
		if !ok {
			return false
		}
	}
	return true
}

func matchSearch(j domain.JobRecord, c domain.Constraint) bool {
	if !c.Active() {
		return true
	}
	q := strings.ToLower(c.Value())
	if strings.Contains(strings.ToLower(j.Title), q) ||
		strings.Contains(strings.ToLower(j.Company), q) ||
		strings.Contains(strings.ToLower(j.Location), q) {
		return true
	}
	for _, s := range j.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func matchCategory(j domain.JobRecord, c domain.Constraint) bool {
	if !c.Active() {
		return true
	}
	if j.Category == c.Value() {
		return true
	}
	q := strings.ToLower(c.Value())
	for _, s := range j.Skills {
		if strings.Contains(strings.ToLower(s), q) {
			return true
		}
	}
	return false
}

func matchLocation(j domain.JobRecord, c domain.Constraint) bool {
	if !c.Active() {
		return true
	}
	v := c.Value()
	// "Remote"/"Worldwide" are UI sentinels that also pull in remote-ish
	// jobs whose location text says something else entirely.
	if (v == "Remote" || v == "Worldwide") && isRemoteish(j) {
		return true
	}
	return strings.Contains(strings.ToLower(j.Location), strings.ToLower(v))
}

func matchRemote(j domain.JobRecord, r domain.RemoteFilter) bool {
	switch r {
	case domain.RemoteYes:
		return isRemoteish(j)
	case domain.RemoteNo:
		return !isRemoteish(j)
	default:
		return true
	}
}

func isRemoteish(j domain.JobRecord) bool {
	return j.Type == "remote" || strings.Contains(j.Location, "远程") || j.IsRemote
}
