package httpapi

import (
	"context"
	"net/http"

	"jobboard-engine/internal/events"
)

type RefreshHandler struct {
	Hub         *events.Hub
	RefreshJobs func(ctx context.Context) error
}

// Run re-pulls the upstream feeds on demand and tells views to re-read.
func (h RefreshHandler) Run(w http.ResponseWriter, r *http.Request) {
	if err := h.RefreshJobs(r.Context()); err != nil {
		WriteError(w, r, http.StatusBadGateway, "refresh_failed", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeJobsRefreshed, 1, nil))
	writeJSON(w, map[string]any{"ok": true})
}
