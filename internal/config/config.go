package config

import (
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// Config carries the settings of both binaries. stackrun reads the stack
// section, insightd the api section; a file may hold either alone.
type Config struct {
	Stack StackConfig `json:"stack" yaml:"stack" toml:"stack"`
	API   APIConfig   `json:"api" yaml:"api" toml:"api"`
}

// StackConfig parameterizes the Streamlit supervisor.
// Zero values mean "unspecified" and will be replaced by defaults in main.
type StackConfig struct {
	Bin        string          `json:"bin" yaml:"bin" toml:"bin"`
	Script     string          `json:"script" yaml:"script" toml:"script"`
	Dir        string          `json:"dir" yaml:"dir" toml:"dir"`
	Apps       []types.AppSpec `json:"apps" yaml:"apps" toml:"apps"`
	StatusAddr string          `json:"status_addr" yaml:"status_addr" toml:"status_addr"`
}

// APIConfig parameterizes the insight daemon.
type APIConfig struct {
	Addr           string `json:"addr" yaml:"addr" toml:"addr"`
	Region         string `json:"region" yaml:"region" toml:"region"`
	Catalog        string `json:"catalog" yaml:"catalog" toml:"catalog"`
	Database       string `json:"database" yaml:"database" toml:"database"`
	Workgroup      string `json:"workgroup" yaml:"workgroup" toml:"workgroup"`
	OutputLocation string `json:"output_location" yaml:"output_location" toml:"output_location"`

	Model        string  `json:"model" yaml:"model" toml:"model"`
	SummaryModel string  `json:"summary_model" yaml:"summary_model" toml:"summary_model"`
	MaxTokens    int     `json:"max_tokens" yaml:"max_tokens" toml:"max_tokens"`
	Temperature  float64 `json:"temperature" yaml:"temperature" toml:"temperature"`

	// TemplateURL optionally overrides the built-in prompt templates; file://
	// and http(s):// URLs are accepted.
	TemplateURL string `json:"template_url" yaml:"template_url" toml:"template_url"`

	QueryTimeoutSec        int `json:"query_timeout_sec" yaml:"query_timeout_sec" toml:"query_timeout_sec"`
	PollIntervalMS         int `json:"poll_interval_ms" yaml:"poll_interval_ms" toml:"poll_interval_ms"`
	MaxSectionRows         int `json:"max_section_rows" yaml:"max_section_rows" toml:"max_section_rows"`
	MaxConcurrentSummaries int `json:"max_concurrent_summaries" yaml:"max_concurrent_summaries" toml:"max_concurrent_summaries"`

	MaxBodyBytes int64    `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes"`
	CORSOrigins  []string `json:"cors_origins" yaml:"cors_origins" toml:"cors_origins"`
}

// Default returns the stock configuration: the four Streamlit children of the
// demo stack and the api_service defaults.
func Default() Config {
	return Config{
		Stack: StackConfig{
			Bin:    "streamlit",
			Script: "app_fhir.py",
			Apps: []types.AppSpec{
				{Name: "sidebar", Route: "/sidebar", Port: 8510},
				{Name: "summary", Route: "/summary", Port: 8511},
				{Name: "chat", Route: "/chat", Port: 8512},
				{Name: "fhir", Route: "/fhir", Port: 8513},
			},
		},
		API: APIConfig{
			Addr:                   ":8000",
			Catalog:                "AwsDataCatalog",
			Database:               "healthlake_db",
			Workgroup:              "primary",
			Model:                  "us.anthropic.claude-3-5-sonnet-20240620-v1:0",
			SummaryModel:           "us.anthropic.claude-3-sonnet-20240229-v1:0",
			MaxTokens:              4096,
			Temperature:            0,
			QueryTimeoutSec:        120,
			PollIntervalMS:         500,
			MaxSectionRows:         50,
			MaxConcurrentSummaries: 4,
			MaxBodyBytes:           1 << 20,
		},
	}
}
