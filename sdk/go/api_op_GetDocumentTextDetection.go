package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// GetDocumentTextDetection returns the status and a page of blocks of a text detection job.
func (c *Client) GetDocumentTextDetection(ctx context.Context, params *GetDocumentTextDetectionInput) (*GetDocumentTextDetectionOutput, error) {
	if params == nil {
		params = &GetDocumentTextDetectionInput{}
	}
	out := &GetDocumentTextDetectionOutput{}
	if err := c.invoke(ctx, "GetDocumentTextDetection", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetDocumentTextDetectionInput struct {
	JobId      *string `json:"JobId,omitzero"`
	MaxResults *int32  `json:"MaxResults,omitzero"`
	NextToken  *string `json:"NextToken,omitzero"`
}

type GetDocumentTextDetectionOutput struct {
	DocumentMetadata               *types.DocumentMetadata `json:"DocumentMetadata,omitzero"`
	JobStatus                      types.JobStatus         `json:"JobStatus,omitzero"`
	NextToken                      *string                 `json:"NextToken,omitzero"`
	Blocks                         []types.Block           `json:"Blocks,omitzero"`
	Warnings                       []types.Warning         `json:"Warnings,omitzero"`
	StatusMessage                  *string                 `json:"StatusMessage,omitzero"`
	DetectDocumentTextModelVersion *string                 `json:"DetectDocumentTextModelVersion,omitzero"`
}
