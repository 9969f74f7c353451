package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// StartDocumentAnalysis starts an asynchronous analysis of a stored multi-page document.
func (c *Client) StartDocumentAnalysis(ctx context.Context, params *StartDocumentAnalysisInput) (*StartDocumentAnalysisOutput, error) {
	if params == nil {
		params = &StartDocumentAnalysisInput{}
	}
	out := &StartDocumentAnalysisOutput{}
	if err := c.invoke(ctx, "StartDocumentAnalysis", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type StartDocumentAnalysisInput struct {
	DocumentLocation *types.DocumentLocation `json:"DocumentLocation,omitzero"`
	FeatureTypes     []types.FeatureType     `json:"FeatureTypes,omitzero"`

	// Idempotency token: retries with the same token and parameters return the same JobId.
	ClientRequestToken *string `json:"ClientRequestToken,omitzero"`

	JobTag              *string                    `json:"JobTag,omitzero"`
	NotificationChannel *types.NotificationChannel `json:"NotificationChannel,omitzero"`
	OutputConfig        *types.OutputConfig        `json:"OutputConfig,omitzero"`
	KMSKeyId            *string                    `json:"KMSKeyId,omitzero"`
	QueriesConfig       *types.QueriesConfig       `json:"QueriesConfig,omitzero"`
	AdaptersConfig      *types.AdaptersConfig      `json:"AdaptersConfig,omitzero"`
}

type StartDocumentAnalysisOutput struct {
	JobId *string `json:"JobId,omitzero"`
}
