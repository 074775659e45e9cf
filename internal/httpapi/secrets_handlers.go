package httpapi

import (
	"encoding/json"
	"net/http"

	"jobboard-engine/internal/secrets"
)

type SecretsHandler struct {
	KeyringAccount string
}

type setTokenRequest struct {
	Token string `json:"token"`
}

// SetAdminToken stores the taxonomy-edit bearer token in the OS keyring.
// The engine binds to loopback, so reaching this endpoint already means
// local access.
func (h SecretsHandler) SetAdminToken(w http.ResponseWriter, r *http.Request) {
	var req setTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if err := secrets.SetAdminToken(h.KeyringAccount, req.Token); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_error", err.Error())
		return
	}
	writeJSON(w, map[string]any{"ok": true})
}
