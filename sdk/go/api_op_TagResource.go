package docanalysis

import "context"

// TagResource adds or overwrites tags on a resource.
func (c *Client) TagResource(ctx context.Context, params *TagResourceInput) (*TagResourceOutput, error) {
	if params == nil {
		params = &TagResourceInput{}
	}
	out := &TagResourceOutput{}
	if err := c.invoke(ctx, "TagResource", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type TagResourceInput struct {
	ResourceARN *string           `json:"ResourceARN,omitzero"`
	Tags        map[string]string `json:"Tags,omitzero"`
}

type TagResourceOutput struct{}
