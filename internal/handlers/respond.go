package handlers

import (
	"encoding/json"
	"net/http"
)

// ResponseWithJson writes a JSON response body with the given status code.
func ResponseWithJson(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
