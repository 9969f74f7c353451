package docanalysis

import (
	"context"

	"docanalysis/sdk/go/types"
)

// GetLendingAnalysis returns the status and a page of per-page results of a lending analysis job.
func (c *Client) GetLendingAnalysis(ctx context.Context, params *GetLendingAnalysisInput) (*GetLendingAnalysisOutput, error) {
	if params == nil {
		params = &GetLendingAnalysisInput{}
	}
	out := &GetLendingAnalysisOutput{}
	if err := c.invoke(ctx, "GetLendingAnalysis", params, out); err != nil {
		return nil, err
	}
	return out, nil
}

type GetLendingAnalysisInput struct {
	JobId      *string `json:"JobId,omitzero"`
	MaxResults *int32  `json:"MaxResults,omitzero"`
	NextToken  *string `json:"NextToken,omitzero"`
}

type GetLendingAnalysisOutput struct {
	DocumentMetadata           *types.DocumentMetadata `json:"DocumentMetadata,omitzero"`
	JobStatus                  types.JobStatus         `json:"JobStatus,omitzero"`
	NextToken                  *string                 `json:"NextToken,omitzero"`
	Results                    []types.LendingResult   `json:"Results,omitzero"`
	Warnings                   []types.Warning         `json:"Warnings,omitzero"`
	StatusMessage              *string                 `json:"StatusMessage,omitzero"`
	AnalyzeLendingModelVersion *string                 `json:"AnalyzeLendingModelVersion,omitzero"`
}
