package v1

import (
	"encoding/json"
	"net/http"
)

// toJSON writes a JSON response with status code.
func toJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// envelope writes the standard response wrapper.
func envelope(w http.ResponseWriter, status int, data any, message string) {
	toJSON(w, status, apiResponse{Data: data, Message: message, StatusCode: status})
}
