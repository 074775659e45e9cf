package source

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FindLocation digs a location string out of an HTML job description for
// feeds that never fill the location field properly.
func FindLocation(doc *goquery.Document) string {
	candidates := []string{
		".location",
		".job__location",
		".job-location",
		"[data-testid='job-location']",
		"[data-testid='location']",
	}

	for _, sel := range candidates {
		if t := CleanText(doc.Find(sel).First().Text()); t != "" {
			return t
		}
	}

	if v, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok {
		if loc := ExtractLocationFromLabeledText(v); loc != "" {
			return loc
		}
	}

	body := CleanText(doc.Find("body").Text())
	return ExtractLocationFromLabeledText(body)
}

// ExtractLocationFromLabeledText pulls the text after a "Location:" style
// label out of plain prose.
func ExtractLocationFromLabeledText(s string) string {
	low := strings.ToLower(s)

	labels := []string{
		"location:",
		"locations:",
		"job location:",
		"工作地点:",
		"工作地点：",
	}

	for _, lab := range labels {
		if i := strings.Index(low, lab); i >= 0 {
			start := i + len(lab)
			rest := strings.TrimSpace(s[start:])

			// stop at newline-ish boundaries if present
			for _, cut := range []string{"\n", "\r", " | ", " · "} {
				if j := strings.Index(rest, cut); j >= 0 {
					rest = rest[:j]
				}
			}

			rest = CleanText(rest)
			if rest != "" && len(rest) <= 80 {
				return rest
			}
		}
	}
	return ""
}

func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
