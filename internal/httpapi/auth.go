package httpapi

import (
	"net/http"
	"strings"

	"jobboard-engine/internal/secrets"
)

// requireAdmin wraps taxonomy-mutating handlers with a bearer token check
// against the keyring. No token configured means no edits, not open edits.
func requireAdmin(account string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stored, err := secrets.GetAdminToken(account)
		if err != nil {
			WriteError(w, r, http.StatusForbidden, "admin_token_unset", err.Error())
			return
		}

		presented := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if presented == "" || !secrets.TokenMatches(presented, stored) {
			WriteError(w, r, http.StatusUnauthorized, "unauthorized", "missing or invalid admin token")
			return
		}
		next(w, r)
	}
}
