package docanalysis

import (
	"context"
	"time"

	"docanalysis/sdk/go/types"
)

// GetAdapter describes an adapter.
func (c *Client) GetAdapter(ctx context.Context, params *GetAdapterInput) (*GetAdapterOutput, error) {
	if params == nil {
		params = &GetAdapterInput{}
	}
	out := &GetAdapterOutput{}
	if err := c.invoke(ctx, "GetAdapter", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetAdapterInput struct {
	AdapterId *string `json:"AdapterId,omitzero"`
}

type GetAdapterOutput struct {
	AdapterId    *string             `json:"AdapterId,omitzero"`
	AdapterName  *string             `json:"AdapterName,omitzero"`
	CreationTime *time.Time          `json:"CreationTime,omitzero"`
	Description  *string             `json:"Description,omitzero"`
	FeatureTypes []types.FeatureType `json:"FeatureTypes,omitzero"`
	AutoUpdate   types.AutoUpdate    `json:"AutoUpdate,omitzero"`
	Tags         map[string]string   `json:"Tags,omitzero"`
}
