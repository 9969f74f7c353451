package docanalysis

import "context"

// DeleteAdapter deletes an adapter and all of its versions.
func (c *Client) DeleteAdapter(ctx context.Context, params *DeleteAdapterInput) (*DeleteAdapterOutput, error) {
	if params == nil {
		params = &DeleteAdapterInput{}
	}
	out := &DeleteAdapterOutput{}
	if err := c.invoke(ctx, "DeleteAdapter", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteAdapterInput struct {
	AdapterId *string `json:"AdapterId,omitzero"`
}

type DeleteAdapterOutput struct{}
