package taxonomy

import "strings"

// Taxonomy is the admin-configured keyword lists driving region
// classification. Lists are order-preserving and may contain duplicates;
// matching is case-insensitive, so casing here is cosmetic.
type Taxonomy struct {
	DomesticKeywords []string `yaml:"domestic_keywords" json:"domesticKeywords"`
	OverseasKeywords []string `yaml:"overseas_keywords" json:"overseasKeywords"`
	GlobalKeywords   []string `yaml:"global_keywords" json:"globalKeywords"`
}

// Category names a keyword list for the audit assignment flow.
type Category string

const (
	CategoryDomestic Category = "domestic"
	CategoryOverseas Category = "overseas"
	CategoryGlobal   Category = "global"
)

// DefaultSeed is the hardcoded fallback taxonomy. It is what classification
// runs against when the persisted taxonomy cannot be loaded, so the lists
// must never be empty.
func DefaultSeed() Taxonomy {
	return Taxonomy{
		DomesticKeywords: []string{
			"北京", "上海", "深圳", "广州", "杭州", "成都", "武汉", "南京",
			"beijing", "shanghai", "shenzhen", "guangzhou", "hangzhou", "china",
		},
		OverseasKeywords: []string{
			"usa", "united states", "uk", "london", "germany", "berlin",
			"singapore", "japan", "tokyo", "canada", "australia", "europe",
		},
		GlobalKeywords: []string{
			"remote", "global", "worldwide", "远程",
		},
	}
}

// Clone deep-copies t so callers can hand snapshots out without aliasing
// the store's current value.
func (t Taxonomy) Clone() Taxonomy {
	return Taxonomy{
		DomesticKeywords: append([]string(nil), t.DomesticKeywords...),
		OverseasKeywords: append([]string(nil), t.OverseasKeywords...),
		GlobalKeywords:   append([]string(nil), t.GlobalKeywords...),
	}
}

// List returns the keyword list for a category, or nil for an unknown one.
func (t Taxonomy) List(c Category) []string {
	switch c {
	case CategoryDomestic:
		return t.DomesticKeywords
	case CategoryOverseas:
		return t.OverseasKeywords
	case CategoryGlobal:
		return t.GlobalKeywords
	}
	return nil
}

// Append returns a copy of t with kw appended verbatim to the named list.
// No trimming, no dedupe: the audit flow stores raw location strings and
// matching lowercases at lookup time anyway.
func (t Taxonomy) Append(c Category, kw string) (Taxonomy, bool) {
	out := t.Clone()
	switch c {
	case CategoryDomestic:
		out.DomesticKeywords = append(out.DomesticKeywords, kw)
	case CategoryOverseas:
		out.OverseasKeywords = append(out.OverseasKeywords, kw)
	case CategoryGlobal:
		out.GlobalKeywords = append(out.GlobalKeywords, kw)
	default:
		return t, false
	}
	return out, true
}

// Validation carries non-fatal findings about a taxonomy. Duplicates and
// blanks are warnings, not errors: the stored lists are kept verbatim.
type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v Validation) OK() bool { return len(v.Errors) == 0 }

// Validate checks a taxonomy about to be saved. Empty lists are rejected:
// a tab backed by an empty list silently hides every job, which has never
// been what an admin meant.
func Validate(t Taxonomy) Validation {
	var res Validation

	check := func(name string, list []string) {
		if len(list) == 0 {
			res.Errors = append(res.Errors, name+" must have at least 1 keyword")
			return
		}
		seen := map[string]int{}
		for _, kw := range list {
			key := strings.ToLower(strings.TrimSpace(kw))
			if key == "" {
				res.Warnings = append(res.Warnings, name+" contains a blank keyword")
				continue
			}
			seen[key]++
		}
		for kw, n := range seen {
			if n > 1 {
				res.Warnings = append(res.Warnings, name+" has duplicate keyword "+kw)
			}
		}
	}

	check("domestic_keywords", t.DomesticKeywords)
	check("overseas_keywords", t.OverseasKeywords)
	check("global_keywords", t.GlobalKeywords)
	return res
}
