package handlers

import (
	"encoding/json"
	"errors"
	"flight-info-service/internal/domain"
	"flight-info-service/internal/platform/obs"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors to HTTP statuses.
// Unclassified errors are logged and reported as 500 without detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidIdentifier):
		writeError(w, r, http.StatusBadRequest, "invalid airport code")
	case errors.Is(err, domain.ErrUnsupportedUnit):
		writeError(w, r, http.StatusBadRequest, "unsupported unit")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "airport not found")
	case errors.Is(err, domain.ErrUpstream):
		log.Printf("upstream failure: req_id=%s path=%s err=%v", obs.RequestID(r.Context()), r.URL.Path, err)
		writeError(w, r, http.StatusBadGateway, "airport data source unavailable")
	case errors.Is(err, domain.ErrInvalidCoordinate):
		// Bad coordinates come from stored or remote data, not from the caller.
		log.Printf("invalid airport data: req_id=%s path=%s err=%v", obs.RequestID(r.Context()), r.URL.Path, err)
		writeError(w, r, http.StatusBadGateway, "invalid airport location data")
	default:
		log.Printf("request failed: req_id=%s path=%s err=%v", obs.RequestID(r.Context()), r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
