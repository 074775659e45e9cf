package domain

import "time"

// JobRecord is a single posting as the engine sees it. The job store owns
// these; everything downstream treats them as read-only.
type JobRecord struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"` // free text, may be empty
	Skills          []string `json:"skills"`
	Type            string   `json:"type"`
	Category        string   `json:"category"`
	ExperienceLevel string   `json:"experienceLevel"`
	IsRemote        bool     `json:"isRemote"`
	CanRefer        bool     `json:"canRefer"`
	IsTrusted       bool     `json:"isTrusted"`
	PostedAt        string   `json:"postedAt"` // raw timestamp string, may be malformed
	SourceURL       string   `json:"sourceUrl"`
}

// PostedTime parses PostedAt. An unparseable or empty value sorts as the
// zero time so date comparison never produces an inconsistent order.
func (j JobRecord) PostedTime() time.Time {
	if j.PostedAt == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, j.PostedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}
