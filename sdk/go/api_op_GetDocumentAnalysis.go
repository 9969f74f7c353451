package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// GetDocumentAnalysis returns the status and a page of blocks of a document analysis job.
func (c *Client) GetDocumentAnalysis(ctx context.Context, params *GetDocumentAnalysisInput) (*GetDocumentAnalysisOutput, error) {
	if params == nil {
		params = &GetDocumentAnalysisInput{}
	}
	out := &GetDocumentAnalysisOutput{}
	if err := c.invoke(ctx, "GetDocumentAnalysis", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetDocumentAnalysisInput struct {
	JobId      *string `json:"JobId,omitzero"`
	MaxResults *int32  `json:"MaxResults,omitzero"`
	NextToken  *string `json:"NextToken,omitzero"`
}

type GetDocumentAnalysisOutput struct {
	DocumentMetadata            *types.DocumentMetadata `json:"DocumentMetadata,omitzero"`
	JobStatus                   types.JobStatus         `json:"JobStatus,omitzero"`
	NextToken                   *string                 `json:"NextToken,omitzero"`
	Blocks                      []types.Block           `json:"Blocks,omitzero"`
	Warnings                    []types.Warning         `json:"Warnings,omitzero"`
	StatusMessage               *string                 `json:"StatusMessage,omitzero"`
	AnalyzeDocumentModelVersion *string                 `json:"AnalyzeDocumentModelVersion,omitzero"`
}
