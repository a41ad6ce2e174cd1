// Package insight implements the FHIR data access operations: catalog
// introspection, patient listing and LLM summarization of patient records
// held in a HealthLake-backed Athena database.
//
// The package is organized by concern across files:
//   - service.go: Service struct, backend seams, construction
//   - catalog.go: database, table and patient listing
//   - summarize.go: per-section summaries + consolidation, admission cap
//   - chat.go: question answering over a provided record
//   - sql.go: SQL assembly for HealthLake resource tables
//   - errors.go, awsclass.go: error taxonomy and AWS error translation
//
// The service itself does not log; the HTTP layer observes requests and the
// typed errors carry the status mapping.
package insight
