package httpapi

import "net/http"

func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: Health,
	}))

	// Listing
	jh := JobsHandler{Jobs: d.Jobs, Taxonomy: d.Taxonomy, Memo: d.Memo}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))

	rh := RefreshHandler{Hub: d.Hub, RefreshJobs: d.RefreshJobs}
	mux.HandleFunc("/jobs/refresh", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: rh.Run,
	}))

	// Taxonomy (the two persisted endpoints)
	th := TaxonomyHandler{Store: d.Taxonomy, Hub: d.Hub}
	mux.HandleFunc("/location-categories", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  th.Get,
		http.MethodPost: requireAdmin(d.AdminKeyringAccount, th.Put),
	}))
	mux.HandleFunc("/location-categories/validate", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: th.Validate,
	}))

	// Config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: requireAdmin(d.AdminKeyringAccount, ch.Put),
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Admin audit
	ah := AuditHandler{Jobs: d.Jobs, Taxonomy: d.Taxonomy, Hub: d.Hub}
	mux.HandleFunc("/audit/locations", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.Locations,
	}))
	mux.HandleFunc("/audit/assign", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: requireAdmin(d.AdminKeyringAccount, ah.Assign),
	}))

	// Favorites overlay
	fh := FavoritesHandler{DB: d.DB}
	mux.HandleFunc("/favorites", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: fh.List,
	}))
	mux.HandleFunc("/favorites/", methodMux(map[string]http.HandlerFunc{
		http.MethodPost:   fh.Add,
		http.MethodDelete: fh.Remove,
	}))

	// Secrets
	sh := SecretsHandler{KeyringAccount: d.AdminKeyringAccount}
	mux.HandleFunc("/api/secrets/admin-token", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sh.SetAdminToken,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
