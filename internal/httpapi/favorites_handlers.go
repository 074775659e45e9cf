package httpapi

import (
	"database/sql"
	"net/http"
	"strings"

	"jobboard-engine/internal/store"
)

type FavoritesHandler struct {
	DB *sql.DB
}

func (h FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := store.ListFavorites(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, ids)
}

func (h FavoritesHandler) Add(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/favorites/")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "job id is required")
		return
	}
	if err := store.AddFavorite(r.Context(), h.DB, id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "id": id})
}

func (h FavoritesHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/favorites/")
	if id == "" {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "job id is required")
		return
	}
	if err := store.RemoveFavorite(r.Context(), h.DB, id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "db_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true, "id": id})
}
