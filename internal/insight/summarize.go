package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/prompts"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/pkg/types"
)

// Summarize queries every requested FHIR table for the patient, has the
// summary model write one summary per section and the main model consolidate
// them. Sections run sequentially; concurrency is bounded per request via
// the admission cap.
func (s *Service) Summarize(ctx context.Context, req types.SummaryRequest) (*types.SummaryResponse, error) {
	if err := s.validateSummary(&req); err != nil {
		return nil, err
	}
	release, err := s.admitSummary()
	if err != nil {
		return nil, err
	}
	defer release()

	sections := make(map[string]string, len(req.Tables))
	for _, table := range req.Tables {
		text, err := s.summarizeSection(ctx, req, table)
		if err != nil {
			return nil, err
		}
		sections[table] = text
	}
	consolidated, err := s.consolidate(ctx, req, sections)
	if err != nil {
		return nil, err
	}
	return &types.SummaryResponse{
		ConsolidatedSummary: consolidated,
		FHIRSectionSummary:  sections,
	}, nil
}

// validateSummary checks the request and fills the configured defaults in
// place.
func (s *Service) validateSummary(req *types.SummaryRequest) error {
	if req.Database == "" {
		req.Database = s.cfg.Database
	}
	if !validIdent(req.Database) {
		return invalidRequestError{msg: "invalid database name"}
	}
	if len(req.Tables) == 0 {
		return invalidRequestError{msg: "tables is required"}
	}
	for _, t := range req.Tables {
		if !validIdent(t) {
			return invalidRequestError{msg: "invalid table name: " + t}
		}
	}
	if !validPatientID(req.PatientID) {
		return invalidRequestError{msg: "invalid patient_id"}
	}
	if req.Model == "" {
		req.Model = s.cfg.Model
	}
	if req.SummaryModel == "" {
		req.SummaryModel = s.cfg.SummaryModel
	}
	return nil
}

// admitSummary reserves one of the bounded summary slots.
func (s *Service) admitSummary() (func(), error) {
	select {
	case s.summaryCh <- struct{}{}:
		return func() { <-s.summaryCh }, nil
	default:
		return func() {}, tooBusyError{}
	}
}

func (s *Service) summarizeSection(ctx context.Context, req types.SummaryRequest, table string) (string, error) {
	sql := sectionSQL(req.Database, table, req.PatientID, s.cfg.MaxSectionRows)
	res, err := s.catalog.Query(ctx, req.Database, sql)
	if err != nil {
		return "", classifyAWS(err, "table", req.Database+"."+table)
	}
	if len(res.Rows) == 0 {
		return "No records found in this section.", nil
	}
	prompt := prompts.Render(s.store.Get(prompts.Section), map[string]string{
		"table":      table,
		"patient_id": req.PatientID,
		"rows":       formatRows(res),
	})
	text, err := s.gen.Generate(ctx, req.SummaryModel, systemPrompt, prompt)
	if err != nil {
		return "", classifyAWS(err, "", "")
	}
	return text, nil
}

func (s *Service) consolidate(ctx context.Context, req types.SummaryRequest, sections map[string]string) (string, error) {
	tmpl := req.PromptTemplate
	if tmpl == "" {
		tmpl = s.store.Get(prompts.Consolidation)
	}
	prompt := prompts.Render(tmpl, map[string]string{
		"sections":   formatSections(req.Tables, sections),
		"patient_id": req.PatientID,
	})
	text, err := s.gen.Generate(ctx, req.Model, systemPrompt, prompt)
	if err != nil {
		return "", classifyAWS(err, "", "")
	}
	return text, nil
}

// formatSections keeps the requested table order.
func formatSections(order []string, sections map[string]string) string {
	var b strings.Builder
	for _, t := range order {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", t, sections[t])
	}
	return strings.TrimRight(b.String(), "\n")
}
