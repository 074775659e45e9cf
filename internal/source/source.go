// Package source pulls job records from configured upstream feeds. The
// feeds are the engine's external job data collaborator; everything past
// this package treats the records as read-only.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	"jobboard-engine/internal/config"
	"jobboard-engine/internal/domain"
)

// feedJob is the wire shape of one upstream job. DescriptionHTML is only
// used to repair a missing location; it is dropped before storage.
type feedJob struct {
	domain.JobRecord
	DescriptionHTML string `json:"descriptionHtml"`
}

type Client struct {
	feeds   []config.Feed
	limiter *HostLimiter
	http    *http.Client
}

func New(cfg config.Config) *Client {
	return &Client{
		feeds:   cfg.Source.Feeds,
		limiter: NewHostLimiter(cfg.Source.RequestsPerSec, cfg.Source.Burst),
		http: &http.Client{
			Timeout: time.Duration(cfg.Source.TimeoutSeconds) * time.Second,
		},
	}
}

// FetchAll pulls every configured feed concurrently. A failing feed is
// logged and skipped; the caller always gets a usable (possibly empty)
// slice, never nil with a partial error.
func (c *Client) FetchAll(ctx context.Context) ([]domain.JobRecord, error) {
	results := make([][]domain.JobRecord, len(c.feeds))

	var g errgroup.Group
	for i, f := range c.feeds {
		i, f := i, f
		g.Go(func() error {
			jobs, err := c.fetchFeed(ctx, f)
			if err != nil {
				log.Printf("level=warn msg=\"feed fetch failed\" feed=%s err=%v", f.Name, err)
				return nil
			}
			results[i] = jobs
			return nil
		})
	}
	_ = g.Wait()

	var out []domain.JobRecord
	for _, r := range results {
		out = append(out, r...)
	}
	if out == nil {
		out = []domain.JobRecord{}
	}
	return out, nil
}

func (c *Client) fetchFeed(ctx context.Context, f config.Feed) ([]domain.JobRecord, error) {
	if err := c.limiter.WaitURL(ctx, f.URL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed %s: status %d", f.Name, resp.StatusCode)
	}

	var raw []feedJob
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("feed %s: decode: %w", f.Name, err)
	}

	out := make([]domain.JobRecord, 0, len(raw))
	for _, fj := range raw {
		j := fj.JobRecord
		if strings.TrimSpace(j.Location) == "" && fj.DescriptionHTML != "" {
			j.Location = locationFromHTML(fj.DescriptionHTML)
		}
		out = append(out, j)
	}
	return out, nil
}

func locationFromHTML(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return FindLocation(doc)
}
