package httpapi

import (
	"encoding/json"
	"net/http"
)

// APIError is the envelope every non-2xx handler response uses. The request
// ID is echoed back so a client error can be matched against the access log.
type APIError struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

// WriteJSON encodes v with an explicit status code. Handlers that only ever
// answer 200 use the writeJSON helper instead.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError answers with an APIError envelope. code is a stable
// machine-readable token; message is free text for humans.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e APIError
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	WriteJSON(w, status, e)
}
