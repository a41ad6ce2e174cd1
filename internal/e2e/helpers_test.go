package e2e

import (
	"context"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/smithy-go"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/athena"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/httpapi"
	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/insight"
)

// memCatalog serves canned catalog data so the full HTTP stack can run
// without AWS.
type memCatalog struct {
	mu        sync.Mutex
	databases []string
	tables    map[string][]string
	// results maps a SQL substring to the rows returned for it.
	results map[string]*athena.Result
	listErr error
	queries []string
}

func (c *memCatalog) ListDatabases(context.Context) ([]string, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.databases, nil
}

func (c *memCatalog) ListTables(_ context.Context, database string) ([]string, error) {
	tables, ok := c.tables[database]
	if !ok {
		return nil, &smithy.GenericAPIError{Code: "EntityNotFoundException", Message: "Database " + database + " not found"}
	}
	return tables, nil
}

func (c *memCatalog) Query(_ context.Context, database, sql string) (*athena.Result, error) {
	c.mu.Lock()
	c.queries = append(c.queries, sql)
	c.mu.Unlock()
	for key, res := range c.results {
		if strings.Contains(sql, key) {
			return res, nil
		}
	}
	return &athena.Result{}, nil
}

// scriptedGen answers prompts by substring match; gate, when set, blocks
// every call until released.
type scriptedGen struct {
	mu      sync.Mutex
	replies map[string]string
	calls   []string
	gate    chan struct{}
}

func (g *scriptedGen) Generate(ctx context.Context, model, system, prompt string) (string, error) {
	if g.gate != nil {
		select {
		case <-g.gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	g.mu.Lock()
	g.calls = append(g.calls, prompt)
	g.mu.Unlock()
	for key, reply := range g.replies {
		if strings.Contains(prompt, key) {
			return reply, nil
		}
	}
	return "generated text", nil
}

func defaultCatalog() *memCatalog {
	return &memCatalog{
		databases: []string{"healthlake_db"},
		tables:    map[string][]string{"healthlake_db": {"patient", "condition"}},
		results: map[string]*athena.Result{
			"SELECT id FROM healthlake_db.patient": {
				Columns: []string{"id"},
				Rows:    [][]string{{"p-1"}, {"p-2"}},
			},
			".patient WHERE": {
				Columns: []string{"id", "gender"},
				Rows:    [][]string{{"p-1", "female"}},
			},
			".condition WHERE": {
				Columns: []string{"code"},
				Rows:    [][]string{{"diabetes"}},
			},
		},
	}
}

func newServer(t *testing.T, catalog *memCatalog, gen *scriptedGen, cfg insight.Config) *httptest.Server {
	t.Helper()
	svc := insight.New(catalog, gen, nil, cfg)
	srv := httptest.NewServer(httpapi.NewMux(svc))
	t.Cleanup(srv.Close)
	return srv
}
