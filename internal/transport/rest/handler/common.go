package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"careinspect/internal/service"
	"careinspect/internal/store"
)

// GotoRequest is the request body for jumping to a section by index, shared
// by both flows' goto endpoints.
type GotoRequest struct {
	Index int `json:"index"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeServiceError maps service sentinels onto HTTP statuses: unknown ids
// are 404, gating failures are 409, bad input is 400.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrSessionNotFound),
		errors.Is(err, service.ErrUnknownSection),
		errors.Is(err, service.ErrUnknownQuestion):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotReady):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
