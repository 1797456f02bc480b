package utils

import (
	"encoding/json"
	"net/http"
)

type ErrorPayload struct {
	Error string `json:"error"`
}

// JSONResponse writes v as the JSON body with the given status.
func JSONResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorResponse writes {"error": message}.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, ErrorPayload{Error: message})
}
