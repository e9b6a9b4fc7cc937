package v1

import (
	"net/http"
	"strings"
)

// requireJSON ensures the request has Content-Type application/json
// (optionally with params). Writes 415 if not JSON and returns false;
// otherwise returns true.
func requireJSON(w http.ResponseWriter, r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		envelope(w, http.StatusUnsupportedMediaType, nil, "Please ensure to send full body of the input with allowed values")
		return false
	}
	mime := strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
	if mime != "application/json" {
		envelope(w, http.StatusUnsupportedMediaType, nil, "Please ensure to send full body of the input with allowed values")
		return false
	}
	return true
}
