package docanalysis

import (
	"context"
	"time"

	"docanalysis/sdk/go/types"
)

// ListAdapterVersions lists adapter versions, optionally for a single adapter.
func (c *Client) ListAdapterVersions(ctx context.Context, params *ListAdapterVersionsInput) (*ListAdapterVersionsOutput, error) {
	if params == nil {
		params = &ListAdapterVersionsInput{}
	}
	out := &ListAdapterVersionsOutput{}
	if err := c.invoke(ctx, "ListAdapterVersions", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type ListAdapterVersionsInput struct {
	AdapterId          *string    `json:"AdapterId,omitzero"`
	AfterCreationTime  *time.Time `json:"AfterCreationTime,omitzero"`
	BeforeCreationTime *time.Time `json:"BeforeCreationTime,omitzero"`
	MaxResults         *int32     `json:"MaxResults,omitzero"`
	NextToken          *string    `json:"NextToken,omitzero"`
}

type ListAdapterVersionsOutput struct {
	AdapterVersions []types.AdapterVersionOverview `json:"AdapterVersions,omitzero"`
	NextToken       *string                        `json:"NextToken,omitzero"`
}
