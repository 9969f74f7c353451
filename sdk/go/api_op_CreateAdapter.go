package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// CreateAdapter creates a custom adapter.
func (c *Client) CreateAdapter(ctx context.Context, params *CreateAdapterInput) (*CreateAdapterOutput, error) {
	if params == nil {
		params = &CreateAdapterInput{}
	}
	out := &CreateAdapterOutput{}
	if err := c.invoke(ctx, "CreateAdapter", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateAdapterInput struct {
	AdapterName        *string             `json:"AdapterName,omitzero"`
	ClientRequestToken *string             `json:"ClientRequestToken,omitzero"`
	Description        *string             `json:"Description,omitzero"`
	FeatureTypes       []types.FeatureType `json:"FeatureTypes,omitzero"`
	AutoUpdate         types.AutoUpdate    `json:"AutoUpdate,omitzero"`
	Tags               map[string]string   `json:"Tags,omitzero"`
}

type CreateAdapterOutput struct {
	AdapterId *string `json:"AdapterId,omitzero"`
}
