package shared

import (
	"encoding/json"
	"net/http"
)

// Message is the fixed-shape error body returned to clients. Failure
// responses never carry internal detail beyond this single string.
type Message struct {
	Message string `json:"message"`
}

// JSON writes v as an application/json response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Headers are flushed at this point; an encode failure has nowhere to go.
	_ = json.NewEncoder(w).Encode(v)
}
