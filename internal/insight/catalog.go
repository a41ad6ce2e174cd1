package insight

import (
	"context"
)

// ListDatabases returns the database names of the configured catalog.
func (s *Service) ListDatabases(ctx context.Context) ([]string, error) {
	dbs, err := s.catalog.ListDatabases(ctx)
	if err != nil {
		return nil, classifyAWS(err, "", "")
	}
	return dbs, nil
}

// ListTables returns the table names of one database.
func (s *Service) ListTables(ctx context.Context, database string) ([]string, error) {
	if !validIdent(database) {
		return nil, invalidRequestError{msg: "invalid database name"}
	}
	tables, err := s.catalog.ListTables(ctx, database)
	if err != nil {
		return nil, classifyAWS(err, "database", database)
	}
	return tables, nil
}

// ListPatients returns the ids of the patient table in database; empty
// database falls back to the configured default.
func (s *Service) ListPatients(ctx context.Context, database string) ([]string, error) {
	if database == "" {
		database = s.cfg.Database
	}
	if !validIdent(database) {
		return nil, invalidRequestError{msg: "invalid database name"}
	}
	res, err := s.catalog.Query(ctx, database, patientsSQL(database))
	if err != nil {
		return nil, classifyAWS(err, "database", database)
	}
	ids := make([]string, 0, len(res.Rows))
	for _, r := range res.Rows {
		if len(r) > 0 && r[0] != "" {
			ids = append(ids, r[0])
		}
	}
	return ids, nil
}
