package insight

import (
	"context"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/athena"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/prompts"
)

// Every model call runs under this system prompt.
const systemPrompt = "You are a medical expert."

// Catalog is the Athena surface the service relies on.
type Catalog interface {
	ListDatabases(ctx context.Context) ([]string, error)
	ListTables(ctx context.Context, database string) ([]string, error)
	Query(ctx context.Context, database, sql string) (*athena.Result, error)
}

// Generator produces text from one prompt.
type Generator interface {
	Generate(ctx context.Context, model, system, prompt string) (string, error)
}

// Config carries the service defaults. Zero values fall back to the stock
// HealthLake demo settings.
type Config struct {
	// Database used when a request does not name one.
	Database string
	// Model answers chat questions and consolidates summaries.
	Model string
	// SummaryModel writes the per-section summaries.
	SummaryModel string
	// MaxSectionRows caps the rows fed to the summary model per table.
	MaxSectionRows int
	// MaxConcurrentSummaries bounds in-flight Summarize calls.
	MaxConcurrentSummaries int
}

// Service answers the API operations over a Catalog and a Generator.
type Service struct {
	catalog   Catalog
	gen       Generator
	store     *prompts.Store
	cfg       Config
	summaryCh chan struct{}
}

// New wires the backends together, applying defaults for unset Config
// fields. store may be nil for the built-in templates.
func New(catalog Catalog, gen Generator, store *prompts.Store, cfg Config) *Service {
	if cfg.Database == "" {
		cfg.Database = "healthlake_db"
	}
	if cfg.Model == "" {
		cfg.Model = "us.anthropic.claude-3-5-sonnet-20240620-v1:0"
	}
	if cfg.SummaryModel == "" {
		cfg.SummaryModel = "us.anthropic.claude-3-sonnet-20240229-v1:0"
	}
	if cfg.MaxSectionRows <= 0 {
		cfg.MaxSectionRows = 50
	}
	if cfg.MaxConcurrentSummaries <= 0 {
		cfg.MaxConcurrentSummaries = 4
	}
	if store == nil {
		store = prompts.NewStore()
	}
	return &Service{
		catalog:   catalog,
		gen:       gen,
		store:     store,
		cfg:       cfg,
		summaryCh: make(chan struct{}, cfg.MaxConcurrentSummaries),
	}
}

// Ping verifies the catalog is reachable; the readiness probe keys off it.
func (s *Service) Ping(ctx context.Context) error {
	if _, err := s.catalog.ListDatabases(ctx); err != nil {
		return classifyAWS(err, "", "")
	}
	return nil
}
