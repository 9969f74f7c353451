package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// StartLendingAnalysis starts an asynchronous classification and extraction of a lending package.
func (c *Client) StartLendingAnalysis(ctx context.Context, params *StartLendingAnalysisInput) (*StartLendingAnalysisOutput, error) {
	if params == nil {
		params = &StartLendingAnalysisInput{}
	}
	out := &StartLendingAnalysisOutput{}
	if err := c.invoke(ctx, "StartLendingAnalysis", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type StartLendingAnalysisInput struct {
	DocumentLocation *types.DocumentLocation `json:"DocumentLocation,omitzero"`

	// Idempotency token: retries with the same token and parameters return the same JobId.
	ClientRequestToken *string `json:"ClientRequestToken,omitzero"`

	JobTag              *string                    `json:"JobTag,omitzero"`
	NotificationChannel *types.NotificationChannel `json:"NotificationChannel,omitzero"`
	OutputConfig        *types.OutputConfig        `json:"OutputConfig,omitzero"`
	KMSKeyId            *string                    `json:"KMSKeyId,omitzero"`
}

type StartLendingAnalysisOutput struct {
	JobId *string `json:"JobId,omitzero"`
}
