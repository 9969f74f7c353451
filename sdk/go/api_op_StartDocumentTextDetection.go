package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// StartDocumentTextDetection starts an asynchronous text detection of a stored multi-page document.
func (c *Client) StartDocumentTextDetection(ctx context.Context, params *StartDocumentTextDetectionInput) (*StartDocumentTextDetectionOutput, error) {
	if params == nil {
		params = &StartDocumentTextDetectionInput{}
	}
	out := &StartDocumentTextDetectionOutput{}
	if err := c.invoke(ctx, "StartDocumentTextDetection", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type StartDocumentTextDetectionInput struct {
	DocumentLocation *types.DocumentLocation `json:"DocumentLocation,omitzero"`

	// Idempotency token: retries with the same token and parameters return the same JobId.
	ClientRequestToken *string `json:"ClientRequestToken,omitzero"`

	JobTag              *string                    `json:"JobTag,omitzero"`
	NotificationChannel *types.NotificationChannel `json:"NotificationChannel,omitzero"`
	OutputConfig        *types.OutputConfig        `json:"OutputConfig,omitzero"`
	KMSKeyId            *string                    `json:"KMSKeyId,omitzero"`
}

type StartDocumentTextDetectionOutput struct {
	JobId *string `json:"JobId,omitzero"`
}
