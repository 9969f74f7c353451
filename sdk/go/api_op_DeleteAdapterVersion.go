package docanalysis

import "context"

// DeleteAdapterVersion deletes one version of an adapter.
func (c *Client) DeleteAdapterVersion(ctx context.Context, params *DeleteAdapterVersionInput) (*DeleteAdapterVersionOutput, error) {
	if params == nil {
		params = &DeleteAdapterVersionInput{}
	}
	out := &DeleteAdapterVersionOutput{}
	if err := c.invoke(ctx, "DeleteAdapterVersion", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteAdapterVersionInput struct {
	AdapterId      *string `json:"AdapterId,omitzero"`
	AdapterVersion *string `json:"AdapterVersion,omitzero"`
}

type DeleteAdapterVersionOutput struct{}
