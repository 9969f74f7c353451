package docanalysis_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	docanalysis "docanalysis/sdk/go"
	"docanalysis/sdk/go/types"
)

type listAdaptersStub struct {
	pages map[string]*docanalysis.ListAdaptersOutput
	calls []*docanalysis.ListAdaptersInput
	err   error
}

func (s *listAdaptersStub) ListAdapters(_ context.Context, in *docanalysis.ListAdaptersInput) (*docanalysis.ListAdaptersOutput, error) {
	s.calls = append(s.calls, in)
	if s.err != nil {
		return nil, s.err
	}
	return s.pages[in.GetNextToken()], nil
}

func twoPageStub() *listAdaptersStub {
	return &listAdaptersStub{pages: map[string]*docanalysis.ListAdaptersOutput{
		"": (&docanalysis.ListAdaptersOutput{}).
			WithAdapters(*(&types.AdapterOverview{}).SetAdapterId("adapter00001")).
			SetNextToken("abc"),
		"abc": (&docanalysis.ListAdaptersOutput{}).
			WithAdapters(*(&types.AdapterOverview{}).SetAdapterId("adapter00002")),
	}}
}

func TestListAdaptersPaginatorYieldsTwoPages(t *testing.T) {
	stub := twoPageStub()
	p := docanalysis.NewListAdaptersPaginator(stub, &docanalysis.ListAdaptersInput{})

	var ids []string
	for p.HasMorePages() {
		page, err := p.NextPage(context.Background())
		require.NoError(t, err)
		for _, a := range page.Adapters {
			ids = append(ids, a.GetAdapterId())
		}
	}
	assert.Equal(t, []string{"adapter00001", "adapter00002"}, ids)
	require.Len(t, stub.calls, 2)
	assert.Nil(t, stub.calls[0].NextToken)
	assert.Equal(t, "abc", stub.calls[1].GetNextToken())

	_, err := p.NextPage(context.Background())
	assert.ErrorIs(t, err, docanalysis.ErrNoMorePages)
}

func TestPagesIsRestartable(t *testing.T) {
	stub := twoPageStub()
	p := docanalysis.NewListAdaptersPaginator(stub, nil, func(o *docanalysis.PaginatorOptions) {
		o.Limit = 1
	})

	for round := 0; round < 2; round++ {
		n := 0
		for page, err := range p.Pages(context.Background()) {
			require.NoError(t, err)
			require.NotNil(t, page)
			n++
		}
		assert.Equal(t, 2, n, "round %d", round)
	}
	require.Len(t, stub.calls, 4)
	assert.Equal(t, int32(1), stub.calls[0].GetMaxResults())
}

func TestPaginatorStopsOnRepeatedToken(t *testing.T) {
	stub := &listAdaptersStub{pages: map[string]*docanalysis.ListAdaptersOutput{
		"":     (&docanalysis.ListAdaptersOutput{}).SetNextToken("loop"),
		"loop": (&docanalysis.ListAdaptersOutput{}).SetNextToken("loop"),
	}}
	p := docanalysis.NewListAdaptersPaginator(stub, &docanalysis.ListAdaptersInput{})
	n := 0
	for p.HasMorePages() {
		_, err := p.NextPage(context.Background())
		require.NoError(t, err)
		n++
	}
	assert.Equal(t, 2, n)
}

func TestPaginatorStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	stub := &listAdaptersStub{err: boom}
	p := docanalysis.NewListAdaptersPaginator(stub, nil)

	n := 0
	for _, err := range p.Pages(context.Background()) {
		assert.ErrorIs(t, err, boom)
		n++
	}
	assert.Equal(t, 1, n)
	assert.True(t, p.HasMorePages())
}
