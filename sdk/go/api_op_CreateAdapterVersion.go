package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// CreateAdapterVersion trains a new version of an adapter from a dataset manifest.
func (c *Client) CreateAdapterVersion(ctx context.Context, params *CreateAdapterVersionInput) (*CreateAdapterVersionOutput, error) {
	if params == nil {
		params = &CreateAdapterVersionInput{}
	}
	out := &CreateAdapterVersionOutput{}
	if err := c.invoke(ctx, "CreateAdapterVersion", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateAdapterVersionInput struct {
	AdapterId          *string                            `json:"AdapterId,omitzero"`
	ClientRequestToken *string                            `json:"ClientRequestToken,omitzero"`
	DatasetConfig      *types.AdapterVersionDatasetConfig `json:"DatasetConfig,omitzero"`
	KMSKeyId           *string                            `json:"KMSKeyId,omitzero"`
	OutputConfig       *types.OutputConfig                `json:"OutputConfig,omitzero"`
	Tags               map[string]string                  `json:"Tags,omitzero"`
}

type CreateAdapterVersionOutput struct {
	AdapterId      *string `json:"AdapterId,omitzero"`
	AdapterVersion *string `json:"AdapterVersion,omitzero"`
}
