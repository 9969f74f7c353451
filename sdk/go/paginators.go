package docanalysis

import (
	"context"
	"errors"
	"iter"
)

// ErrNoMorePages is returned by NextPage once the last page was read.
var ErrNoMorePages = errors.New("docanalysis: no more pages")

// PaginatorOptions tunes a paginator.
type PaginatorOptions struct {
	// Limit sets MaxResults on every request when positive.
	Limit int32

	// StopOnDuplicateToken ends pagination when the service returns the
	// token it was just given. Enabled by default.
	StopOnDuplicateToken bool
}

// Paginator walks a NextToken paginated operation one page at a time.
type Paginator[O any] struct {
	fetch        func(ctx context.Context, token *string, limit int32) (O, *string, error)
	options      PaginatorOptions
	initialToken *string
	nextToken    *string
	firstPage    bool
}

func newPaginator[O any](initial *string, fetch func(context.Context, *string, int32) (O, *string, error), optFns []func(*PaginatorOptions)) *Paginator[O] {
	options := PaginatorOptions{StopOnDuplicateToken: true}
	for _, fn := range optFns {
		fn(&options)
	}
	return &Paginator[O]{
		fetch:        fetch,
		options:      options,
		initialToken: initial,
		nextToken:    initial,
		firstPage:    true,
	}
}

// HasMorePages reports whether NextPage has a page to return.
func (p *Paginator[O]) HasMorePages() bool {
	return p.firstPage || (p.nextToken != nil && *p.nextToken != "")
}

// NextPage fetches the next page.
func (p *Paginator[O]) NextPage(ctx context.Context) (O, error) {
	var zero O
	if !p.HasMorePages() {
		return zero, ErrNoMorePages
	}
	out, next, err := p.step(ctx, p.nextToken)
	if err != nil {
		return zero, err
	}
	p.firstPage = false
	p.nextToken = next
	return out, nil
}

func (p *Paginator[O]) step(ctx context.Context, token *string) (O, *string, error) {
	out, next, err := p.fetch(ctx, token, p.options.Limit)
	if err != nil {
		return out, nil, err
	}
	if next != nil && *next == "" {
		next = nil
	}
	if p.options.StopOnDuplicateToken && token != nil && next != nil && *token == *next {
		next = nil
	}
	return out, next, nil
}

// Pages returns a sequence of every page, starting over from the first page
// each time it is ranged over. Iteration stops after the first error.
func (p *Paginator[O]) Pages(ctx context.Context) iter.Seq2[O, error] {
	return func(yield func(O, error) bool) {
		token := p.initialToken
		for {
			out, next, err := p.step(ctx, token)
			if !yield(out, err) || err != nil || next == nil {
				return
			}
			token = next
		}
	}
}

// GetDocumentAnalysisAPIClient is the subset of Client used by the GetDocumentAnalysis paginator.
type GetDocumentAnalysisAPIClient interface {
	GetDocumentAnalysis(context.Context, *GetDocumentAnalysisInput) (*GetDocumentAnalysisOutput, error)
}

// NewGetDocumentAnalysisPaginator returns a paginator over GetDocumentAnalysis. params is copied per
// request; its NextToken is the starting point.
func NewGetDocumentAnalysisPaginator(client GetDocumentAnalysisAPIClient, params *GetDocumentAnalysisInput, optFns ...func(*PaginatorOptions)) *Paginator[*GetDocumentAnalysisOutput] {
	if params == nil {
		params = &GetDocumentAnalysisInput{}
	}
	fetch := func(ctx context.Context, token *string, limit int32) (*GetDocumentAnalysisOutput, *string, error) {
		in := *params
		in.NextToken = token
		if limit > 0 {
			in.MaxResults = &limit
		}
		out, err := client.GetDocumentAnalysis(ctx, &in)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	}
	return newPaginator(params.NextToken, fetch, optFns)
}

// GetDocumentTextDetectionAPIClient is the subset of Client used by the GetDocumentTextDetection paginator.
type GetDocumentTextDetectionAPIClient interface {
	GetDocumentTextDetection(context.Context, *GetDocumentTextDetectionInput) (*GetDocumentTextDetectionOutput, error)
}

// NewGetDocumentTextDetectionPaginator returns a paginator over GetDocumentTextDetection. params is copied per
// request; its NextToken is the starting point.
func NewGetDocumentTextDetectionPaginator(client GetDocumentTextDetectionAPIClient, params *GetDocumentTextDetectionInput, optFns ...func(*PaginatorOptions)) *Paginator[*GetDocumentTextDetectionOutput] {
	if params == nil {
		params = &GetDocumentTextDetectionInput{}
	}
	fetch := func(ctx context.Context, token *string, limit int32) (*GetDocumentTextDetectionOutput, *string, error) {
		in := *params
		in.NextToken = token
		if limit > 0 {
			in.MaxResults = &limit
		}
		out, err := client.GetDocumentTextDetection(ctx, &in)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	}
	return newPaginator(params.NextToken, fetch, optFns)
}

// GetExpenseAnalysisAPIClient is the subset of Client used by the GetExpenseAnalysis paginator.
type GetExpenseAnalysisAPIClient interface {
	GetExpenseAnalysis(context.Context, *GetExpenseAnalysisInput) (*GetExpenseAnalysisOutput, error)
}

// NewGetExpenseAnalysisPaginator returns a paginator over GetExpenseAnalysis. params is copied per
// request; its NextToken is the starting point.
func NewGetExpenseAnalysisPaginator(client GetExpenseAnalysisAPIClient, params *GetExpenseAnalysisInput, optFns ...func(*PaginatorOptions)) *Paginator[*GetExpenseAnalysisOutput] {
	if params == nil {
		params = &GetExpenseAnalysisInput{}
	}
	fetch := func(ctx context.Context, token *string, limit int32) (*GetExpenseAnalysisOutput, *string, error) {
		in := *params
		in.NextToken = token
		if limit > 0 {
			in.MaxResults = &limit
		}
		out, err := client.GetExpenseAnalysis(ctx, &in)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	}
	return newPaginator(params.NextToken, fetch, optFns)
}

// GetLendingAnalysisAPIClient is the subset of Client used by the GetLendingAnalysis paginator.
type GetLendingAnalysisAPIClient interface {
	GetLendingAnalysis(context.Context, *GetLendingAnalysisInput) (*GetLendingAnalysisOutput, error)
}

// NewGetLendingAnalysisPaginator returns a paginator over GetLendingAnalysis. params is copied per
// request; its NextToken is the starting point.
func NewGetLendingAnalysisPaginator(client GetLendingAnalysisAPIClient, params *GetLendingAnalysisInput, optFns ...func(*PaginatorOptions)) *Paginator[*GetLendingAnalysisOutput] {
	if params == nil {
		params = &GetLendingAnalysisInput{}
	}
	fetch := func(ctx context.Context, token *string, limit int32) (*GetLendingAnalysisOutput, *string, error) {
		in := *params
		in.NextToken = token
		if limit > 0 {
			in.MaxResults = &limit
		}
		out, err := client.GetLendingAnalysis(ctx, &in)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	}
	return newPaginator(params.NextToken, fetch, optFns)
}

// ListAdaptersAPIClient is the subset of Client used by the ListAdapters paginator.
type ListAdaptersAPIClient interface {
	ListAdapters(context.Context, *ListAdaptersInput) (*ListAdaptersOutput, error)
}

// NewListAdaptersPaginator returns a paginator over ListAdapters. params is copied per
// request; its NextToken is the starting point.
func NewListAdaptersPaginator(client ListAdaptersAPIClient, params *ListAdaptersInput, optFns ...func(*PaginatorOptions)) *Paginator[*ListAdaptersOutput] {
	if params == nil {
		params = &ListAdaptersInput{}
	}
	fetch := func(ctx context.Context, token *string, limit int32) (*ListAdaptersOutput, *string, error) {
		in := *params
		in.NextToken = token
		if limit > 0 {
			in.MaxResults = &limit
		}
		out, err := client.ListAdapters(ctx, &in)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	}
	return newPaginator(params.NextToken, fetch, optFns)
}

// ListAdapterVersionsAPIClient is the subset of Client used by the ListAdapterVersions paginator.
type ListAdapterVersionsAPIClient interface {
	ListAdapterVersions(context.Context, *ListAdapterVersionsInput) (*ListAdapterVersionsOutput, error)
}

// NewListAdapterVersionsPaginator returns a paginator over ListAdapterVersions. params is copied per
// request; its NextToken is the starting point.
func NewListAdapterVersionsPaginator(client ListAdapterVersionsAPIClient, params *ListAdapterVersionsInput, optFns ...func(*PaginatorOptions)) *Paginator[*ListAdapterVersionsOutput] {
	if params == nil {
		params = &ListAdapterVersionsInput{}
	}
	fetch := func(ctx context.Context, token *string, limit int32) (*ListAdapterVersionsOutput, *string, error) {
		in := *params
		in.NextToken = token
		if limit > 0 {
			in.MaxResults = &limit
		}
		out, err := client.ListAdapterVersions(ctx, &in)
		if err != nil {
			return nil, nil, err
		}
		return out, out.NextToken, nil
	}
	return newPaginator(params.NextToken, fetch, optFns)
}
