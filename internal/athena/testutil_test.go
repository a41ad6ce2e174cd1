package athena

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	athtypes "github.com/aws/aws-sdk-go-v2/service/athena/types"
)

// fakeAthena scripts the SDK surface page by page.
type fakeAthena struct {
	dbPages  []*athena.ListDatabasesOutput
	dbCalls  int
	tblPages []*athena.ListTableMetadataOutput
	tblCalls int
	tblInput *athena.ListTableMetadataInput

	startInput *athena.StartQueryExecutionInput
	startErr   error
	states     []athtypes.QueryExecutionState
	stateIdx   int
	reason     string

	resPages []*athena.GetQueryResultsOutput
	resCalls int
}

func (f *fakeAthena) ListDatabases(_ context.Context, _ *athena.ListDatabasesInput, _ ...func(*athena.Options)) (*athena.ListDatabasesOutput, error) {
	out := f.dbPages[f.dbCalls]
	f.dbCalls++
	return out, nil
}

func (f *fakeAthena) ListTableMetadata(_ context.Context, in *athena.ListTableMetadataInput, _ ...func(*athena.Options)) (*athena.ListTableMetadataOutput, error) {
	f.tblInput = in
	out := f.tblPages[f.tblCalls]
	f.tblCalls++
	return out, nil
}

func (f *fakeAthena) StartQueryExecution(_ context.Context, in *athena.StartQueryExecutionInput, _ ...func(*athena.Options)) (*athena.StartQueryExecutionOutput, error) {
	f.startInput = in
	if f.startErr != nil {
		return nil, f.startErr
	}
	return &athena.StartQueryExecutionOutput{QueryExecutionId: aws.String("qid-1")}, nil
}

func (f *fakeAthena) GetQueryExecution(_ context.Context, _ *athena.GetQueryExecutionInput, _ ...func(*athena.Options)) (*athena.GetQueryExecutionOutput, error) {
	st := f.states[f.stateIdx]
	if f.stateIdx < len(f.states)-1 {
		f.stateIdx++
	}
	return &athena.GetQueryExecutionOutput{
		QueryExecution: &athtypes.QueryExecution{
			Status: &athtypes.QueryExecutionStatus{
				State:             st,
				StateChangeReason: aws.String(f.reason),
			},
		},
	}, nil
}

func (f *fakeAthena) GetQueryResults(_ context.Context, _ *athena.GetQueryResultsInput, _ ...func(*athena.Options)) (*athena.GetQueryResultsOutput, error) {
	out := f.resPages[f.resCalls]
	f.resCalls++
	return out, nil
}

func row(vals ...string) athtypes.Row {
	r := athtypes.Row{}
	for _, v := range vals {
		r.Data = append(r.Data, athtypes.Datum{VarCharValue: aws.String(v)})
	}
	return r
}
