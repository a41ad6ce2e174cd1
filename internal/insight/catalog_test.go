package insight

import (
	"context"
	"fmt"
	"testing"

	"github.com/neomartinez30/extract-medical-insights-from-amazon-healthlake-with-bedrock/internal/athena"
)

func TestListDatabases_PassThrough(t *testing.T) {
	cat := &fakeCatalog{databases: []string{"healthlake_db", "other"}}
	s := New(cat, &fakeGenerator{}, nil, Config{})
	got, err := s.ListDatabases(context.Background())
	if err != nil {
		t.Fatalf("ListDatabases: %v", err)
	}
	if len(got) != 2 || got[0] != "healthlake_db" {
		t.Fatalf("unexpected databases: %v", got)
	}
}

func TestListTables_InvalidDatabase(t *testing.T) {
	s := New(&fakeCatalog{}, &fakeGenerator{}, nil, Config{})
	_, err := s.ListTables(context.Background(), "bad-db; DROP")
	if !IsInvalidRequest(err) {
		t.Fatalf("expected invalid request, got %v", err)
	}
}

func TestListTables_MissingSchemaTranslatesToNotFound(t *testing.T) {
	cat := &fakeCatalog{tablesErr: fmt.Errorf("list tables of nope: SCHEMA_NOT_FOUND: line 1")}
	s := New(cat, &fakeGenerator{}, nil, Config{})
	_, err := s.ListTables(context.Background(), "nope")
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListPatients_BuildsQueryAndExtractsIDs(t *testing.T) {
	cat := &fakeCatalog{
		results: map[string]*athena.Result{
			".patient": {Columns: []string{"id"}, Rows: [][]string{{"p-1"}, {"p-2"}, {""}}},
		},
	}
	s := New(cat, &fakeGenerator{}, nil, Config{})
	ids, err := s.ListPatients(context.Background(), "")
	if err != nil {
		t.Fatalf("ListPatients: %v", err)
	}
	if len(cat.queries) != 1 || cat.queries[0] != "SELECT id FROM healthlake_db.patient" {
		t.Fatalf("unexpected sql: %v", cat.queries)
	}
	if len(ids) != 2 || ids[0] != "p-1" || ids[1] != "p-2" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestListPatients_ExplicitDatabase(t *testing.T) {
	cat := &fakeCatalog{}
	s := New(cat, &fakeGenerator{}, nil, Config{})
	if _, err := s.ListPatients(context.Background(), "demo_db"); err != nil {
		t.Fatalf("ListPatients: %v", err)
	}
	if cat.queries[0] != "SELECT id FROM demo_db.patient" {
		t.Fatalf("database not honored: %v", cat.queries)
	}
}
