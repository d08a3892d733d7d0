package httpapi

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the inner error object of every failed API response.
type ErrorBody struct {
	Code    string            `json:"code,omitempty"`
	Message string            `json:"message"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// ErrorEnvelope standardizes JSON error responses for API namespaces.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) error {
	if w == nil {
		return nil
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return nil
	}
	return json.NewEncoder(w).Encode(payload)
}

func WriteError(w http.ResponseWriter, status int, code, message string, meta map[string]string) error {
	return WriteJSON(w, status, &ErrorEnvelope{
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Meta:    meta,
		},
	})
}
