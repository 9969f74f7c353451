package docanalysis

import (
	"context"
	"time"

	"docanalysis/sdk/go/types"
)

// UpdateAdapter changes the name, description or auto-update setting of an adapter.
func (c *Client) UpdateAdapter(ctx context.Context, params *UpdateAdapterInput) (*UpdateAdapterOutput, error) {
	if params == nil {
		params = &UpdateAdapterInput{}
	}
	out := &UpdateAdapterOutput{}
	if err := c.invoke(ctx, "UpdateAdapter", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateAdapterInput struct {
	AdapterId   *string          `json:"AdapterId,omitzero"`
	Description *string          `json:"Description,omitzero"`
	AdapterName *string          `json:"AdapterName,omitzero"`
	AutoUpdate  types.AutoUpdate `json:"AutoUpdate,omitzero"`
}

type UpdateAdapterOutput struct {
	AdapterId    *string             `json:"AdapterId,omitzero"`
	AdapterName  *string             `json:"AdapterName,omitzero"`
	CreationTime *time.Time          `json:"CreationTime,omitzero"`
	Description  *string             `json:"Description,omitzero"`
	FeatureTypes []types.FeatureType `json:"FeatureTypes,omitzero"`
	AutoUpdate   types.AutoUpdate    `json:"AutoUpdate,omitzero"`
}
