package docanalysis

import (
	"context"
	"time"

	"docanalysis/sdk/go/types"
)

// ListAdapters lists adapters, optionally filtered by creation time.
func (c *Client) ListAdapters(ctx context.Context, params *ListAdaptersInput) (*ListAdaptersOutput, error) {
	if params == nil {
		params = &ListAdaptersInput{}
	}
	out := &ListAdaptersOutput{}
	if err := c.invoke(ctx, "ListAdapters", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type ListAdaptersInput struct {
	AfterCreationTime  *time.Time `json:"AfterCreationTime,omitzero"`
	BeforeCreationTime *time.Time `json:"BeforeCreationTime,omitzero"`
	MaxResults         *int32     `json:"MaxResults,omitzero"`
	NextToken          *string    `json:"NextToken,omitzero"`
}

type ListAdaptersOutput struct {
	Adapters  []types.AdapterOverview `json:"Adapters,omitzero"`
	NextToken *string                 `json:"NextToken,omitzero"`
}
