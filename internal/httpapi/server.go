package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	ListDatabases(ctx context.Context) ([]string, error)
	ListTables(ctx context.Context, database string) ([]string, error)
	ListPatients(ctx context.Context, database string) ([]string, error)
	Summarize(ctx context.Context, req types.SummaryRequest) (*types.SummaryResponse, error)
	Chat(ctx context.Context, req types.ChatRequest) (*types.ChatResponse, error)
	Ping(ctx context.Context) error
}

// NewMux builds the insight daemon's router.
func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		opts := cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}
		if len(opts.AllowedOrigins) == 0 {
			opts.AllowedOrigins = []string{"*"}
		}
		if len(opts.AllowedMethods) == 0 {
			opts.AllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
		}
		if len(opts.AllowedHeaders) == 0 {
			opts.AllowedHeaders = []string{"Accept", "Content-Type"}
		}
		r.Use(cors.Handler(opts))
	}
	r.Use(RequestLogger)
	r.Use(MetricsMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/databases", handleDatabases(svc))
		r.Get("/databases/{database}/tables", handleTables(svc))
		r.Get("/databases/{database}/patients", handlePatients(svc))
		r.Post("/summary", handleSummary(svc))
		r.Post("/chat", handleChat(svc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", handleReady(svc))
	r.Get("/status", handleStatus(svc))

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	return r
}
