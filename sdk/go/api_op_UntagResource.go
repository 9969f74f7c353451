package docanalysis

import "context"

// UntagResource removes tags from a resource.
func (c *Client) UntagResource(ctx context.Context, params *UntagResourceInput) (*UntagResourceOutput, error) {
	if params == nil {
		params = &UntagResourceInput{}
	}
	out := &UntagResourceOutput{}
	if err := c.invoke(ctx, "UntagResource", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type UntagResourceInput struct {
	ResourceARN *string  `json:"ResourceARN,omitzero"`
	TagKeys     []string `json:"TagKeys,omitzero"`
}

type UntagResourceOutput struct{}
