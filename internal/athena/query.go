package athena

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	athtypes "github.com/aws/aws-sdk-go-v2/service/athena/types"
	"github.com/google/uuid"
)

// Result is one query's tabular output with the header row stripped.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Query starts sql against database, polls to completion and fetches every
// result page. The call is bounded by the configured query timeout on top of
// whatever deadline ctx already carries.
func (c *Client) Query(ctx context.Context, database, sql string) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.QueryTimeout)
	defer cancel()

	in := &athena.StartQueryExecutionInput{
		QueryString: aws.String(sql),
		// Athena requires 32..128 chars; a UUID string is 36 and makes
		// retried starts idempotent.
		ClientRequestToken: aws.String(uuid.NewString()),
		QueryExecutionContext: &athtypes.QueryExecutionContext{
			Catalog:  aws.String(c.cfg.Catalog),
			Database: aws.String(database),
		},
		WorkGroup: strPtrOrNil(c.cfg.Workgroup),
	}
	if c.cfg.OutputLocation != "" {
		in.ResultConfiguration = &athtypes.ResultConfiguration{
			OutputLocation: aws.String(c.cfg.OutputLocation),
		}
	}
	started, err := c.api.StartQueryExecution(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("start query: %w", err)
	}
	qid := started.QueryExecutionId

	if err := c.waitDone(ctx, qid); err != nil {
		return nil, err
	}
	return c.fetchResults(ctx, qid)
}

// waitDone polls until the execution reaches a terminal state.
func (c *Client) waitDone(ctx context.Context, qid *string) error {
	t := time.NewTicker(c.cfg.PollInterval)
	defer t.Stop()
	for {
		resp, err := c.api.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{QueryExecutionId: qid})
		if err != nil {
			return fmt.Errorf("get query execution: %w", err)
		}
		status := resp.QueryExecution.Status
		switch status.State {
		case athtypes.QueryExecutionStateSucceeded:
			return nil
		case athtypes.QueryExecutionStateFailed, athtypes.QueryExecutionStateCancelled:
			reason := aws.ToString(status.StateChangeReason)
			if reason == "" {
				reason = string(status.State)
			}
			return fmt.Errorf("query %s: %s", strings.ToLower(string(status.State)), reason)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (c *Client) fetchResults(ctx context.Context, qid *string) (*Result, error) {
	res := &Result{}
	var token *string
	first := true
	for {
		resp, err := c.api.GetQueryResults(ctx, &athena.GetQueryResultsInput{
			QueryExecutionId: qid,
			NextToken:        token,
		})
		if err != nil {
			return nil, fmt.Errorf("get query results: %w", err)
		}
		if resp.ResultSet == nil {
			return res, nil
		}
		if first && resp.ResultSet.ResultSetMetadata != nil {
			for _, ci := range resp.ResultSet.ResultSetMetadata.ColumnInfo {
				res.Columns = append(res.Columns, aws.ToString(ci.Name))
			}
		}
		rows := resp.ResultSet.Rows
		if first && len(rows) > 0 {
			// Athena repeats the header as the first row of the first page.
			rows = rows[1:]
		}
		first = false
		for _, r := range rows {
			row := make([]string, 0, len(r.Data))
			for _, d := range r.Data {
				row = append(row, aws.ToString(d.VarCharValue))
			}
			res.Rows = append(res.Rows, row)
		}
		if resp.NextToken == nil {
			return res, nil
		}
		token = resp.NextToken
	}
}
