package api

import (
	"encoding/json"
	"net/http"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ValidationResult is returned by the validate endpoint.
type ValidationResult struct {
	Valid    bool                `json:"valid"`
	Errors   map[string][]string `json:"errors"`
	Messages map[string][]string `json:"messages,omitempty"`
}

type formList struct {
	Forms []string `json:"forms"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: ErrorDetail{Code: code, Message: message}})
}
