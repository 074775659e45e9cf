// Package classify decides which region tabs a job belongs to, driven by
// the admin-editable keyword taxonomy. Classification is pure: same job,
// same taxonomy, same verdict.
package classify

import (
	"regexp"
	"strings"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/taxonomy"
)

// globalLocationRE is a hardcoded safety net: locations that obviously mean
// "anywhere" count as global even when the admin removes the matching
// keywords from the taxonomy.
var globalLocationRE = regexp.MustCompile(`anywhere|everywhere|worldwide|不限地点`)

// Classify labels one job against the taxonomy.
//
// The match rule is deliberately asymmetric: a keyword hits on exact
// membership anywhere in the location∪skills pool, but on substring
// containment against the location only. "york" therefore matches a job
// located in "New York" but not one skilled in "new york city planning".
func Classify(job domain.JobRecord, t taxonomy.Taxonomy) domain.Verdict {
	loc := normalize(job.Location)

	pool := make(map[string]struct{}, len(job.Skills)+1)
	pool[loc] = struct{}{}
	for _, s := range job.Skills {
		pool[normalize(s)] = struct{}{}
	}

	hit := func(keywords []string) bool {
		for _, kw := range keywords {
			k := normalize(kw)
			if k == "" {
				continue
			}
			if _, ok := pool[k]; ok {
				return true
			}
			if strings.Contains(loc, k) {
				return true
			}
		}
		return false
	}

	return domain.Verdict{
		IsDomestic: hit(t.DomesticKeywords),
		IsOverseas: hit(t.OverseasKeywords),
		IsGlobal:   hit(t.GlobalKeywords) || globalLocationRE.MatchString(loc),
	}
}

// ClassifyLocation labels a bare location string, used by the audit screen
// where only the distinct location text is known.
func ClassifyLocation(location string, t taxonomy.Taxonomy) domain.Verdict {
	return Classify(domain.JobRecord{Location: location}, t)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
