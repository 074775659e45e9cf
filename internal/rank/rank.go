// Package rank orders filtered jobs for display.
package rank

import (
	"sort"

	"jobboard-engine/internal/domain"
)

// Rank sorts jobs in place-copy order: referable first, then trusted, then
// newest. Unparseable dates compare as the zero time, so they sink below
// every valid date rather than destabilizing the order. The sort is stable;
// fully tied jobs keep their input order.
func Rank(jobs []domain.JobRecord) []domain.JobRecord {
	out := append([]domain.JobRecord(nil), jobs...)
	sort.SliceStable(out, func(i, k int) bool {
		return Less(out[i], out[k])
	})
	return out
}

// Less is the ranking comparator: a strict weak ordering over
// (CanRefer desc, IsTrusted desc, PostedAt desc).
func Less(a, b domain.JobRecord) bool {
	if a.CanRefer != b.CanRefer {
		return a.CanRefer
	}
	if a.IsTrusted != b.IsTrusted {
		return a.IsTrusted
	}
	return a.PostedTime().After(b.PostedTime())
}
