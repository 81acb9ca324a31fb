package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell/app/errs"
)

// sendJSON writes data as a JSON response with the given status.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError maps a service error to the matching HTTP status and a
// structured JSON body. Validation responses carry the full field map so
// clients can render every violation.
func sendError(w http.ResponseWriter, err error) {
	var ve *errs.ValidationError
	switch {
	case errors.As(err, &ve):
		sendJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
	case errs.IsNotFound(err):
		sendJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errs.IsTransient(err):
		sendJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "storage commit failed, retry the request"})
	default:
		sendJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// actingIdentity extracts the externally authenticated author identity.
// Authentication itself happens upstream; this layer only consumes the
// resulting identifier.
func actingIdentity(r *http.Request) string {
	return r.Header.Get("X-Author-ID")
}
