package athena

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
)

// ListDatabases returns the database names of the configured catalog.
func (c *Client) ListDatabases(ctx context.Context) ([]string, error) {
	var out []string
	var token *string
	for {
		resp, err := c.api.ListDatabases(ctx, &athena.ListDatabasesInput{
			CatalogName: aws.String(c.cfg.Catalog),
			NextToken:   token,
		})
		if err != nil {
			return nil, fmt.Errorf("list databases: %w", err)
		}
		for _, d := range resp.DatabaseList {
			out = append(out, aws.ToString(d.Name))
		}
		if resp.NextToken == nil {
			return out, nil
		}
		token = resp.NextToken
	}
}

// ListTables returns the table names of one database.
func (c *Client) ListTables(ctx context.Context, database string) ([]string, error) {
	var out []string
	var token *string
	for {
		resp, err := c.api.ListTableMetadata(ctx, &athena.ListTableMetadataInput{
			CatalogName:  aws.String(c.cfg.Catalog),
			DatabaseName: aws.String(database),
			NextToken:    token,
		})
		if err != nil {
			return nil, fmt.Errorf("list tables of %s: %w", database, err)
		}
		for _, t := range resp.TableMetadataList {
			out = append(out, aws.ToString(t.Name))
		}
		if resp.NextToken == nil {
			return out, nil
		}
		token = resp.NextToken
	}
}
