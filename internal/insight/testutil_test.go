package insight

import (
	"context"
	"strings"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/athena"
)

// fakeCatalog is a scripted Catalog. Query results are keyed by a substring
// of the SQL so one fake serves multi-table flows.
type fakeCatalog struct {
	databases []string
	tables    map[string][]string
	results   map[string]*athena.Result
	queries   []string
	listErr   error
	tablesErr error
	queryErr  error
}

func (f *fakeCatalog) ListDatabases(context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.databases, nil
}

func (f *fakeCatalog) ListTables(_ context.Context, database string) ([]string, error) {
	if f.tablesErr != nil {
		return nil, f.tablesErr
	}
	return f.tables[database], nil
}

func (f *fakeCatalog) Query(_ context.Context, _ string, sql string) (*athena.Result, error) {
	f.queries = append(f.queries, sql)
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	for key, res := range f.results {
		if strings.Contains(sql, key) {
			return res, nil
		}
	}
	return &athena.Result{}, nil
}

type genCall struct {
	model  string
	system string
	prompt string
}

// fakeGenerator records calls and replies by prompt substring.
type fakeGenerator struct {
	calls   []genCall
	replies map[string]string
	reply   string
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, model, system, prompt string) (string, error) {
	f.calls = append(f.calls, genCall{model: model, system: system, prompt: prompt})
	if f.err != nil {
		return "", f.err
	}
	for key, r := range f.replies {
		if strings.Contains(prompt, key) {
			return r, nil
		}
	}
	if f.reply != "" {
		return f.reply, nil
	}
	return "generated", nil
}
