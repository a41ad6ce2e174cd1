package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/insight"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}

// writeServiceError maps the service's typed errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case insight.IsInvalidRequest(err):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case insight.IsNotFound(err):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case insight.IsTooBusy(err):
		IncrementBackpressure("summary")
		writeJSONError(w, http.StatusTooManyRequests, err.Error())
	case insight.IsDependencyUnavailable(err):
		writeJSONError(w, http.StatusServiceUnavailable, err.Error())
	default:
		if he, ok := err.(HTTPError); ok {
			writeJSONError(w, he.StatusCode(), he.Error())
			return
		}
		writeJSONError(w, http.StatusInternalServerError, err.Error())
	}
}
