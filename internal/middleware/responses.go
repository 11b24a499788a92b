package middleware

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// WriteError reports a failed request. htmx callers get JSON with HX-Reswap: none so the
// current page stays in place; page loads get plain text.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if !IsHTMX(r.Context()) && r.Header.Get("HX-Request") != "true" {
		http.Error(w, msg, code)
		return
	}
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("HX-Reswap", "none")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg, Status: code})
}
