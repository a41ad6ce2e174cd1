// Package athena wraps the Athena SDK behind the small query surface the
// insight service needs: catalog introspection plus run-to-completion SQL.
package athena

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
)

// API is the subset of the SDK client this package relies on. Tests
// substitute a scripted fake; production passes *athena.Client.
type API interface {
	ListDatabases(ctx context.Context, in *athena.ListDatabasesInput, opts ...func(*athena.Options)) (*athena.ListDatabasesOutput, error)
	ListTableMetadata(ctx context.Context, in *athena.ListTableMetadataInput, opts ...func(*athena.Options)) (*athena.ListTableMetadataOutput, error)
	StartQueryExecution(ctx context.Context, in *athena.StartQueryExecutionInput, opts ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error)
	GetQueryExecution(ctx context.Context, in *athena.GetQueryExecutionInput, opts ...func(*athena.Options)) (*athena.GetQueryExecutionOutput, error)
	GetQueryResults(ctx context.Context, in *athena.GetQueryResultsInput, opts ...func(*athena.Options)) (*athena.GetQueryResultsOutput, error)
}

// Config tunes query execution. Zero values fall back to the defaults below.
type Config struct {
	// Catalog is the Athena data catalog, usually AwsDataCatalog.
	Catalog string
	// Workgroup may be empty for the account default.
	Workgroup string
	// OutputLocation is the s3:// prefix for query results; empty relies on
	// the workgroup's configured location.
	OutputLocation string
	// PollInterval between GetQueryExecution calls.
	PollInterval time.Duration
	// QueryTimeout bounds one Query call end to end.
	QueryTimeout time.Duration
}

// Client runs catalog lookups and SQL queries.
type Client struct {
	api API
	cfg Config
}

// New wraps api with cfg, applying defaults for unset fields.
func New(api API, cfg Config) *Client {
	if cfg.Catalog == "" {
		cfg.Catalog = "AwsDataCatalog"
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 500 * time.Millisecond
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 2 * time.Minute
	}
	return &Client{api: api, cfg: cfg}
}

// Catalog reports the configured data catalog name.
func (c *Client) Catalog() string { return c.cfg.Catalog }

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}
