package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaults, trims feed entries, and reports
// anything that would make the engine misbehave at runtime.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Source.RequestsPerSec <= 0 {
		out.Source.RequestsPerSec = 1.0
	}
	if out.Source.Burst <= 0 {
		out.Source.Burst = 2
	}
	if out.Source.TimeoutSeconds <= 0 {
		out.Source.TimeoutSeconds = 30
	}

	seen := map[string]bool{}
	feeds := out.Source.Feeds[:0]
	for i, f := range out.Source.Feeds {
		f.Name = strings.TrimSpace(f.Name)
		f.URL = strings.TrimSpace(f.URL)
		if f.URL == "" {
			res.addErr("source.feeds[%d].url is required", i)
			continue
		}
		if _, err := url.Parse(f.URL); err != nil {
			res.addErr("source.feeds[%d].url is not a valid URL: %v", i, err)
			continue
		}
		if f.Name == "" {
			f.Name = f.URL
		}
		if seen[f.URL] {
			res.addWarn("source.feeds[%d] duplicates %s", i, f.URL)
			continue
		}
		seen[f.URL] = true
		feeds = append(feeds, f)
	}
	out.Source.Feeds = feeds

	if len(out.Source.Feeds) == 0 {
		res.addWarn("no source feeds configured; the jobs list will stay empty until one is added")
	}
	if strings.TrimSpace(out.Admin.KeyringAccount) == "" {
		res.addWarn("admin.keyring_account is empty; taxonomy edits will be rejected until a token is set")
	}

	return out, res
}
