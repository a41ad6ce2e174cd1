package main

import (
	"context"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	athenasdk "github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/rs/zerolog"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/athena"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/bedrock"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/config"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/httpapi"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/insight"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/prompts"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

func main() {
	// Flags with environment variable defaults
	defaultAddr := ":8000"
	if v := os.Getenv("INSIGHTD_ADDR"); v != "" {
		defaultAddr = v
	}
	addr := flag.String("addr", defaultAddr, "HTTP listen address, e.g. :8000")
	cfgPath := flag.String("config", "", "Optional config file (.yaml/.yml/.json/.toml)")
	region := flag.String("region", "", "AWS region override (default from environment/shared config)")
	database := flag.String("database", "", "Default Glue database (default healthlake_db)")
	templateURL := flag.String("template-url", "", "Base URL for prompt template overrides (file:// or http(s)://)")
	corsOrigins := flag.String("cors-origins", "", "Comma-separated origins allowed to call the API (default CORS off)")
	logLevel := flag.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	logFormat := flag.String("log-format", "json", "Log format: json or console")
	flag.Parse()

	logger := newLogger(*logLevel, *logFormat)

	api := config.Default().API
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		api = mergeAPI(api, loaded.API)
	}
	// Precedence for the listen address: flag, then INSIGHTD_ADDR, then the
	// config file, then the stock default.
	switch {
	case *addr != defaultAddr:
		api.Addr = *addr
	case os.Getenv("INSIGHTD_ADDR") != "":
		api.Addr = defaultAddr
	case api.Addr == "":
		api.Addr = defaultAddr
	}
	if *region != "" {
		api.Region = *region
	}
	if *database != "" {
		api.Database = *database
	}
	if *templateURL != "" {
		api.TemplateURL = *templateURL
	}
	if origins := splitCSV(*corsOrigins); len(origins) > 0 {
		api.CORSOrigins = origins
	}

	ctx := context.Background()
	var awsOpts []func(*awsconfig.LoadOptions) error
	if api.Region != "" {
		awsOpts = append(awsOpts, awsconfig.WithRegion(api.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsOpts...)
	if err != nil {
		log.Fatalf("failed to load AWS config: %v", err)
	}

	catalog := athena.New(athenasdk.NewFromConfig(awsCfg), athena.Config{
		Catalog:        api.Catalog,
		Workgroup:      api.Workgroup,
		OutputLocation: api.OutputLocation,
		PollInterval:   time.Duration(api.PollIntervalMS) * time.Millisecond,
		QueryTimeout:   time.Duration(api.QueryTimeoutSec) * time.Second,
	})
	gen := bedrock.New(bedrockruntime.NewFromConfig(awsCfg), bedrock.Config{
		MaxTokens:   api.MaxTokens,
		Temperature: api.Temperature,
	})

	store := prompts.NewStore()
	if api.TemplateURL != "" {
		if err := store.LoadURL(ctx, api.TemplateURL); err != nil {
			log.Fatalf("failed to load prompt templates: %v", err)
		}
		logger.Info().Str("url", api.TemplateURL).Msg("prompt template overrides loaded")
	}

	svc := insight.New(catalog, gen, store, insight.Config{
		Database:               api.Database,
		Model:                  api.Model,
		SummaryModel:           api.SummaryModel,
		MaxSectionRows:         api.MaxSectionRows,
		MaxConcurrentSummaries: api.MaxConcurrentSummaries,
	})

	httpapi.SetLogger(logger)
	if api.MaxBodyBytes > 0 {
		httpapi.SetMaxBodyBytes(api.MaxBodyBytes)
	}
	if len(api.CORSOrigins) > 0 {
		httpapi.SetCORSOptions(true, api.CORSOrigins, nil, nil)
	}
	httpapi.SetStatusInfo(types.ServiceStatus{
		Catalog:      api.Catalog,
		Database:     api.Database,
		Model:        api.Model,
		SummaryModel: api.SummaryModel,
	})

	mux := httpapi.NewMux(svc) // registers /api/v1, /healthz, /readyz, /status, /metrics
	srv := &http.Server{Addr: api.Addr, Handler: mux}

	go func() {
		logger.Info().
			Str("addr", api.Addr).
			Str("catalog", api.Catalog).
			Str("database", api.Database).
			Msg("insightd listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown (Ctrl+C / SIGTERM)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
	}
}

// mergeAPI overlays the non-zero fields of a loaded file section onto the
// stock defaults.
func mergeAPI(base, loaded config.APIConfig) config.APIConfig {
	if loaded.Addr != "" {
		base.Addr = loaded.Addr
	}
	if loaded.Region != "" {
		base.Region = loaded.Region
	}
	if loaded.Catalog != "" {
		base.Catalog = loaded.Catalog
	}
	if loaded.Database != "" {
		base.Database = loaded.Database
	}
	if loaded.Workgroup != "" {
		base.Workgroup = loaded.Workgroup
	}
	if loaded.OutputLocation != "" {
		base.OutputLocation = loaded.OutputLocation
	}
	if loaded.Model != "" {
		base.Model = loaded.Model
	}
	if loaded.SummaryModel != "" {
		base.SummaryModel = loaded.SummaryModel
	}
	if loaded.MaxTokens > 0 {
		base.MaxTokens = loaded.MaxTokens
	}
	if loaded.Temperature > 0 {
		base.Temperature = loaded.Temperature
	}
	if loaded.TemplateURL != "" {
		base.TemplateURL = loaded.TemplateURL
	}
	if loaded.QueryTimeoutSec > 0 {
		base.QueryTimeoutSec = loaded.QueryTimeoutSec
	}
	if loaded.PollIntervalMS > 0 {
		base.PollIntervalMS = loaded.PollIntervalMS
	}
	if loaded.MaxSectionRows > 0 {
		base.MaxSectionRows = loaded.MaxSectionRows
	}
	if loaded.MaxConcurrentSummaries > 0 {
		base.MaxConcurrentSummaries = loaded.MaxConcurrentSummaries
	}
	if loaded.MaxBodyBytes > 0 {
		base.MaxBodyBytes = loaded.MaxBodyBytes
	}
	if len(loaded.CORSOrigins) > 0 {
		base.CORSOrigins = loaded.CORSOrigins
	}
	return base
}

// splitCSV splits a comma separated flag value, trimming blanks.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func newLogger(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	var w io.Writer = os.Stderr
	if format == "console" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
