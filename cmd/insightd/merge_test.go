package main

import (
	"testing"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/config"
)

func TestMergeAPI(t *testing.T) {
	base := config.Default().API

	got := mergeAPI(base, config.APIConfig{})
	if got.Addr != ":8000" || got.Catalog != "AwsDataCatalog" || got.Database != "healthlake_db" {
		t.Fatalf("empty overlay changed defaults: %+v", got)
	}

	got = mergeAPI(base, config.APIConfig{
		Region:       "us-east-1",
		Database:     "other_db",
		MaxTokens:    1024,
		CORSOrigins:  []string{"http://localhost:8512"},
		SummaryModel: "custom-model",
	})
	if got.Region != "us-east-1" || got.Database != "other_db" || got.MaxTokens != 1024 {
		t.Fatalf("overlay not applied: %+v", got)
	}
	if got.SummaryModel != "custom-model" {
		t.Fatalf("summary model not overridden: %+v", got)
	}
	if got.Model != "us.anthropic.claude-3-5-sonnet-20240620-v1:0" {
		t.Fatalf("model default lost: %+v", got)
	}
	if len(got.CORSOrigins) != 1 {
		t.Fatalf("cors origins lost: %+v", got)
	}
}
