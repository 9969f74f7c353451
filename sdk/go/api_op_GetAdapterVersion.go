package docanalysis

import (
	"context"
	"time"

	"docanalysis/sdk/go/types"
)

// GetAdapterVersion describes an adapter version, including its evaluation metrics.
func (c *Client) GetAdapterVersion(ctx context.Context, params *GetAdapterVersionInput) (*GetAdapterVersionOutput, error) {
	if params == nil {
		params = &GetAdapterVersionInput{}
	}
	out := &GetAdapterVersionOutput{}
	if err := c.invoke(ctx, "GetAdapterVersion", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetAdapterVersionInput struct {
	AdapterId      *string `json:"AdapterId,omitzero"`
	AdapterVersion *string `json:"AdapterVersion,omitzero"`
}

type GetAdapterVersionOutput struct {
	AdapterId         *string                                `json:"AdapterId,omitzero"`
	AdapterVersion    *string                                `json:"AdapterVersion,omitzero"`
	CreationTime      *time.Time                             `json:"CreationTime,omitzero"`
	FeatureTypes      []types.FeatureType                    `json:"FeatureTypes,omitzero"`
	Status            types.AdapterVersionStatus             `json:"Status,omitzero"`
	StatusMessage     *string                                `json:"StatusMessage,omitzero"`
	DatasetConfig     *types.AdapterVersionDatasetConfig     `json:"DatasetConfig,omitzero"`
	KMSKeyId          *string                                `json:"KMSKeyId,omitzero"`
	OutputConfig      *types.OutputConfig                    `json:"OutputConfig,omitzero"`
	EvaluationMetrics []types.AdapterVersionEvaluationMetric `json:"EvaluationMetrics,omitzero"`
	Tags              map[string]string                      `json:"Tags,omitzero"`
}
