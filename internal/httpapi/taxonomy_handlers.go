package httpapi

import (
	"encoding/json"
	"net/http"

	"jobboard-engine/internal/events"
	"jobboard-engine/internal/taxonomy"
)

type TaxonomyHandler struct {
	Store *taxonomy.Store
	Hub   *events.Hub
}

func (h TaxonomyHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Snapshot()
	writeJSON(w, snap.Taxonomy)
}

// Put replaces the taxonomy wholesale. On success every in-process
// subscriber fires and a zero-data taxonomy_updated event goes out over
// SSE; views refetch on their own.
func (h TaxonomyHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming taxonomy.Taxonomy
	if err := dec.Decode(&incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if vr := taxonomy.Validate(incoming); !vr.OK() {
		WriteJSON(w, http.StatusBadRequest, vr)
		return
	}

	if err := h.Store.Save(incoming); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "save_failed", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeTaxonomyUpdated, 1, nil))
	writeJSON(w, h.Store.Snapshot().Taxonomy)
}

func (h TaxonomyHandler) Validate(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Snapshot()
	writeJSON(w, taxonomy.Validate(snap.Taxonomy))
}
