package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// StartExpenseAnalysis starts an asynchronous expense analysis of a stored document.
func (c *Client) StartExpenseAnalysis(ctx context.Context, params *StartExpenseAnalysisInput) (*StartExpenseAnalysisOutput, error) {
	if params == nil {
		params = &StartExpenseAnalysisInput{}
	}
	out := &StartExpenseAnalysisOutput{}
	if err := c.invoke(ctx, "StartExpenseAnalysis", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type StartExpenseAnalysisInput struct {
	DocumentLocation *types.DocumentLocation `json:"DocumentLocation,omitzero"`

	// Idempotency token: retries with the same token and parameters return the same JobId.
	ClientRequestToken *string `json:"ClientRequestToken,omitzero"`

	JobTag              *string                    `json:"JobTag,omitzero"`
	NotificationChannel *types.NotificationChannel `json:"NotificationChannel,omitzero"`
	OutputConfig        *types.OutputConfig        `json:"OutputConfig,omitzero"`
	KMSKeyId            *string                    `json:"KMSKeyId,omitzero"`
}

type StartExpenseAnalysisOutput struct {
	JobId *string `json:"JobId,omitzero"`
}
