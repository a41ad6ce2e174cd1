package types

// SummaryRequest asks for consolidated and per-section summaries of one
// patient's FHIR records.
type SummaryRequest struct {
	// Glue database holding the HealthLake export.
	// example: healthlake_db
	Database string `json:"database" example:"healthlake_db"`
	// FHIR resource tables to summarize, in order.
	// example: ["patient","condition","observation"]
	Tables []string `json:"tables" example:"[\"patient\",\"condition\"]"`
	// FHIR id of the patient.
	// example: 52f7cd65-e2b1-47dd-bcdd-0b1a0239a86c
	PatientID string `json:"patient_id" example:"52f7cd65-e2b1-47dd-bcdd-0b1a0239a86c"`
	// Template used to consolidate the section summaries. The {sections}
	// placeholder receives the per-table summaries.
	PromptTemplate string `json:"prompt_template"`
	// Bedrock model id for the consolidation call. Empty selects the server
	// default.
	// example: us.anthropic.claude-3-5-sonnet-20240620-v1:0
	Model string `json:"model,omitempty" example:"us.anthropic.claude-3-5-sonnet-20240620-v1:0"`
	// Bedrock model id for the per-section calls. Empty selects the server
	// default.
	// example: us.anthropic.claude-3-sonnet-20240229-v1:0
	SummaryModel string `json:"summary_model,omitempty" example:"us.anthropic.claude-3-sonnet-20240229-v1:0"`
}

// SummaryResponse carries the consolidated summary and the per-table
// summaries it was built from.
type SummaryResponse struct {
	ConsolidatedSummary string `json:"consolidated_summary"`
	// Keyed by table name.
	FHIRSectionSummary map[string]string `json:"fhir_section_summary"`
}

// ChatRequest asks a question against a previously produced summary.
type ChatRequest struct {
	// Question about the record.
	// example: Which medications is the patient taking?
	Question string `json:"question" example:"Which medications is the patient taking?"`
	// Medical record text the question is answered from.
	Context string `json:"context"`
	// Bedrock model id. Empty selects the server default.
	// example: us.anthropic.claude-3-5-sonnet-20240620-v1:0
	Model string `json:"model,omitempty" example:"us.anthropic.claude-3-5-sonnet-20240620-v1:0"`
}

// ChatResponse is the model's answer.
type ChatResponse struct {
	Response string `json:"response"`
}

// DatabaseInfo is returned by the catalog listing endpoints. Tables and
// PatientIDs are populated only by the endpoints that produce them.
type DatabaseInfo struct {
	// Databases in the configured catalog.
	// example: ["healthlake_db"]
	Databases []string `json:"databases"`
	// Tables per database.
	Tables map[string][]string `json:"tables,omitempty"`
	// Patient ids found in the database.
	PatientIDs []string `json:"patient_ids,omitempty"`
}

// ServiceStatus reports the daemon's effective configuration and readiness.
type ServiceStatus struct {
	// example: AwsDataCatalog
	Catalog string `json:"catalog" example:"AwsDataCatalog"`
	// example: healthlake_db
	Database string `json:"database" example:"healthlake_db"`
	// Consolidation and chat model id.
	Model string `json:"model"`
	// Per-section summary model id.
	SummaryModel string `json:"summary_model"`
	// Whether the Athena catalog is reachable.
	// example: true
	Ready bool `json:"ready" example:"true"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
