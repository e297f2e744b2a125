package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and sends it as the response body with the given
// status code and a "Content-Type: application/json" header. Marshaling
// happens before any header is written, so a value that cannot be encoded
// turns into a plain 500 response and a wrapped error instead of a
// half-written body.
//
//	WriteJSON(w, project, http.StatusCreated)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
