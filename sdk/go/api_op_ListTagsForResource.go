package docanalysis

import "context"

// ListTagsForResource returns the tags of an adapter or adapter version.
func (c *Client) ListTagsForResource(ctx context.Context, params *ListTagsForResourceInput) (*ListTagsForResourceOutput, error) {
	if params == nil {
		params = &ListTagsForResourceInput{}
	}
	out := &ListTagsForResourceOutput{}
	if err := c.invoke(ctx, "ListTagsForResource", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type ListTagsForResourceInput struct {
	ResourceARN *string `json:"ResourceARN,omitzero"`
}

type ListTagsForResourceOutput struct {
	Tags map[string]string `json:"Tags,omitzero"`
}
