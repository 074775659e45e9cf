// Package audit backs the admin screen that inspects how live job data
// classifies under the current taxonomy and pushes keyword fixes back in.
package audit

import (
	"errors"
	"fmt"
	"sort"

	"jobboard-engine/internal/classify"
	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/taxonomy"
)

// Entry is one distinct raw location string seen in job data, how many
// jobs carry it, and how the current taxonomy labels it.
type Entry struct {
	Location string             `json:"location"`
	Count    int                `json:"count"`
	Label    domain.RegionLabel `json:"label"`
}

// Audit groups jobs by their raw location string (no normalization: the
// admin needs to see exactly what the data says, casing and whitespace
// included), classifies each, and returns entries by count descending.
// Ties keep first-seen order.
func Audit(jobs []domain.JobRecord, t taxonomy.Taxonomy) []Entry {
	counts := make(map[string]int)
	var order []string
	for _, j := range jobs {
		if _, seen := counts[j.Location]; !seen {
			order = append(order, j.Location)
		}
		counts[j.Location]++
	}

	out := make([]Entry, 0, len(order))
	for _, loc := range order {
		out = append(out, Entry{
			Location: loc,
			Count:    counts[loc],
			Label:    classify.ClassifyLocation(loc, t).Label(),
		})
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].Count > out[k].Count
	})
	return out
}

// ErrUnknownCategory is returned by Assign when the category names none of
// the three keyword lists. Callers use it to tell a caller mistake apart
// from a failed save.
var ErrUnknownCategory = errors.New("unknown taxonomy category")

// Assign appends the raw location string verbatim to the named keyword list
// and saves, which notifies every subscriber. The string is not trimmed or
// deduplicated; matching lowercases at lookup time, and the audit screen
// surfaces duplicates via taxonomy validation warnings instead.
func Assign(store *taxonomy.Store, category taxonomy.Category, location string) error {
	snap := store.Snapshot()
	next, ok := snap.Taxonomy.Append(category, location)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return store.Save(next)
}
