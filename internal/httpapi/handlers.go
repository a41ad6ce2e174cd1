package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// writeJSON writes v with the JSON content type.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}

// decodeJSON enforces the JSON content type and the body cap before decoding.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		// Oversize bodies also land here; 400 avoids leaking size details.
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func handleDatabases(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dbs, err := svc.ListDatabases(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, types.DatabaseInfo{Databases: dbs})
	}
}

func handleTables(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		database := chi.URLParam(r, "database")
		tables, err := svc.ListTables(r.Context(), database)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, types.DatabaseInfo{
			Databases: []string{database},
			Tables:    map[string][]string{database: tables},
		})
	}
}

func handlePatients(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		database := chi.URLParam(r, "database")
		ids, err := svc.ListPatients(r.Context(), database)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, types.DatabaseInfo{
			Databases:  []string{database},
			PatientIDs: ids,
		})
	}
}

func handleSummary(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SummaryRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		res, err := svc.Summarize(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, res)
	}
}

func handleChat(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		res, err := svc.Chat(r.Context(), req)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, res)
	}
}

func handleReady(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("not ready"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	}
}

func handleStatus(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := statusInfo
		st.Ready = svc.Ping(r.Context()) == nil
		writeJSON(w, st)
	}
}
