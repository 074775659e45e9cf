package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobboard-engine/internal/audit"
	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/store"
	"jobboard-engine/internal/taxonomy"
)

type AuditHandler struct {
	Jobs     *store.JobsCache
	Taxonomy *taxonomy.Store
	Hub      *events.Hub
}

type auditEntry struct {
	Location     string             `json:"location"`
	Count        int                `json:"count"`
	Label        domain.RegionLabel `json:"label"`
	DisplayLabel string             `json:"displayLabel"`
}

func (h AuditHandler) Locations(w http.ResponseWriter, r *http.Request) {
	jobs, _ := h.Jobs.Snapshot()
	snap := h.Taxonomy.Snapshot()

	entries := audit.Audit(jobs, snap.Taxonomy)
	out := make([]auditEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, auditEntry{
			Location:     e.Location,
			Count:        e.Count,
			Label:        e.Label,
			DisplayLabel: displayLabel(e.Label),
		})
	}
	writeJSON(w, out)
}

type assignRequest struct {
	Category string `json:"category"`
	Location string `json:"location"`
}

// Assign is the one-click keyword assignment: the raw location string goes
// verbatim into the chosen list and everyone refetches.
func (h AuditHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Location == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_request", "location is required")
		return
	}

	if err := audit.Assign(h.Taxonomy, taxonomy.Category(req.Category), req.Location); err != nil {
		if errors.Is(err, audit.ErrUnknownCategory) {
			WriteError(w, r, http.StatusBadRequest, "invalid_request", err.Error())
			return
		}
		WriteError(w, r, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeTaxonomyUpdated, 1, nil))
	writeJSON(w, map[string]any{"ok": true})
}
